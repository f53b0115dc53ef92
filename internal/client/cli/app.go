package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/wepub/internal/client/api"
	"github.com/dmitrijs2005/wepub/internal/client/config"
	"github.com/dmitrijs2005/wepub/internal/client/credstore"
	"github.com/dmitrijs2005/wepub/internal/client/output"
	"github.com/dmitrijs2005/wepub/internal/client/router"
	"github.com/dmitrijs2005/wepub/internal/client/session"
	"github.com/dmitrijs2005/wepub/internal/client/transport"
	"github.com/dmitrijs2005/wepub/internal/filex"
	"github.com/dmitrijs2005/wepub/internal/logging"

	_ "modernc.org/sqlite"
)

type App struct {
	config    *config.Config
	logger    logging.Logger
	transport *transport.Client
	clients   *api.Clients
	session   *session.Controller
	nav       *router.Navigator
	printer   *output.Printer
	reader    *bufio.Reader
	out       io.Writer
	db        *sql.DB
}

// NewApp opens the credential store named by the config and assembles the
// application around it.
func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	logger := logging.New(os.Stderr, c.LogLevel)

	mode, err := output.ParseColorMode(c.Color)
	if err != nil {
		return nil, err
	}
	printer := output.NewPrinter(os.Stdout, os.Stderr, output.ResolveColors(mode))

	var (
		store credstore.Store
		db    *sql.DB
	)
	if c.Ephemeral {
		store = credstore.NewMemoryStore("")
	} else {
		path, err := filex.EnsureParentDir(c.StorePath)
		if err != nil {
			return nil, fmt.Errorf("error preparing credential store: %w", err)
		}
		db, err = credstore.Open(ctx, path)
		if err != nil {
			return nil, fmt.Errorf("error initializing credential store: %w", err)
		}
		store = credstore.NewSQLiteStore(db)
	}

	a, err := newApp(ctx, c, store, logger, printer, os.Stdin)
	if err != nil {
		if db != nil {
			_ = db.Close()
		}
		return nil, err
	}
	a.db = db
	return a, nil
}

// newApp wires the session stack over an already opened store.
func newApp(ctx context.Context, c *config.Config, store credstore.Store, logger logging.Logger,
	printer *output.Printer, in io.Reader) (*App, error) {
	tr := transport.New(c.ServerURL, store,
		transport.WithDefaultTimeout(c.RequestTimeout),
		transport.WithLogger(logger),
	)
	clients := api.NewClients(tr)
	clients.Articles.SetGenerateTimeout(c.GenerateTimeout)

	ctrl, err := session.New(ctx, store, clients.Auth, logger)
	if err != nil {
		return nil, err
	}
	nav := router.NewNavigator(store, logger)

	a := &App{
		config:    c,
		logger:    logger,
		transport: tr,
		clients:   clients,
		session:   ctrl,
		nav:       nav,
		printer:   printer,
		reader:    bufio.NewReader(in),
		out:       printer.Out(),
	}

	tr.OnUnauthorized(a.sessionExpired)
	tr.OnUnauthorized(ctrl.HandleUnauthorized)
	tr.OnUnauthorized(nav.HandleUnauthorized)

	return a, nil
}

// Run restores the session, then serves commands until the user exits or
// input ends.
func (a *App) Run(ctx context.Context) {
	defer a.Close()

	a.printer.Info("Welcome to wepub (type 'help' for commands)")
	a.restore(ctx)

	runREPL(ctx, a, a.reader)
}

// restore validates a stored credential by fetching the profile and then
// enters the start location.
func (a *App) restore(ctx context.Context) {
	if a.session.IsAuthenticated() {
		if err := a.session.RefreshProfile(ctx); err != nil {
			a.logger.Info(ctx, "stored session is no longer valid", "error", err)
		}
	}
	if _, err := a.nav.Navigate(ctx, router.Root); err != nil {
		a.report(err)
	}
	if a.session.IsAuthenticated() {
		a.printer.Info("Signed in as %s", a.session.Snapshot().Username())
	} else {
		a.printer.Info("Not signed in. Use 'login' or 'register'.")
	}
}

func (a *App) Close() error {
	if a.db != nil {
		return a.db.Close()
	}
	return nil
}

// sessionExpired runs before the session drops its state, so a rejected
// login attempt stays quiet.
func (a *App) sessionExpired(context.Context) {
	if a.session.IsAuthenticated() {
		a.printer.Warning("Your session has ended. Please log in again.")
	}
}

func (a *App) prompt() string {
	s := "wepub " + a.nav.Location()
	if name := a.session.Snapshot().Username(); name != "" {
		s += " (" + name + ")"
	}
	return s + "> "
}

// enter asks the navigator for route and reports whether the shell may run
// a command there.
func (a *App) enter(ctx context.Context, route string) bool {
	if route == "" {
		return true
	}
	loc, err := a.nav.Navigate(ctx, route)
	if err != nil {
		a.report(err)
		return false
	}
	if loc != route {
		a.printer.Warning("Please log in first (type 'login').")
		return false
	}
	return true
}
