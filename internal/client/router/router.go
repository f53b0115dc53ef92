// Package router maps the shell's locations to access rules and keeps the
// current location. Protected locations require a stored credential; the
// guard sends anonymous visitors to the login location instead.
package router

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/dmitrijs2005/wepub/internal/client/credstore"
	"github.com/dmitrijs2005/wepub/internal/logging"
)

const (
	Root      = "/"
	Login     = "/login"
	Register  = "/register"
	Dashboard = "/dashboard"
	Articles  = "/articles"
	Styles    = "/styles"
	Settings  = "/settings"
)

type Route struct {
	Path     string
	Public   bool
	Redirect string
}

var routes = map[string]Route{
	Root:      {Path: Root, Redirect: Dashboard},
	Login:     {Path: Login, Public: true},
	Register:  {Path: Register, Public: true},
	Dashboard: {Path: Dashboard},
	Articles:  {Path: Articles},
	Styles:    {Path: Styles},
	Settings:  {Path: Settings},
}

// Lookup returns the route for path. Unknown paths are treated as protected.
func Lookup(path string) Route {
	path = normalize(path)
	if r, ok := routes[path]; ok {
		return r
	}
	return Route{Path: path}
}

func normalize(path string) string {
	if path == "" {
		return Root
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	if len(path) > 1 {
		path = strings.TrimRight(path, "/")
	}
	return path
}

// Guard resolves where a navigation to path ends up. Redirect routes are
// followed first. A protected target with no stored credential resolves to
// Login.
func Guard(ctx context.Context, store credstore.Store, path string) (string, error) {
	r := Lookup(path)
	for seen := 0; r.Redirect != "" && seen < len(routes); seen++ {
		r = Lookup(r.Redirect)
	}
	if r.Public {
		return r.Path, nil
	}

	_, ok, err := store.Read(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to check credential: %w", err)
	}
	if !ok {
		return Login, nil
	}
	return r.Path, nil
}

// Navigator holds the shell's current location.
type Navigator struct {
	store  credstore.Store
	logger logging.Logger

	mu       sync.Mutex
	location string
}

// NewNavigator starts at Root. Nothing is guarded until the first Navigate.
func NewNavigator(store credstore.Store, logger logging.Logger) *Navigator {
	if logger == nil {
		logger = logging.Nop()
	}
	return &Navigator{store: store, logger: logger, location: Root}
}

func (n *Navigator) Location() string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.location
}

// Navigate moves to path, or to wherever the guard redirects it, and returns
// the resulting location.
func (n *Navigator) Navigate(ctx context.Context, path string) (string, error) {
	target, err := Guard(ctx, n.store, path)
	if err != nil {
		return n.Location(), err
	}
	if target != normalize(path) {
		n.logger.Debug(ctx, "navigation redirected", "from", path, "to", target)
	}

	n.mu.Lock()
	n.location = target
	n.mu.Unlock()
	return target, nil
}

// HandleUnauthorized moves to Login unless already there. It is subscribed
// to the transport's authorization-failure event.
func (n *Navigator) HandleUnauthorized(ctx context.Context) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.location == Login {
		return
	}
	n.logger.Debug(ctx, "session ended, returning to login", "from", n.location)
	n.location = Login
}
