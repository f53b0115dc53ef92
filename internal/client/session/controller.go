package session

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"slices"
	"sync"

	"github.com/dmitrijs2005/wepub/internal/client/credstore"
	"github.com/dmitrijs2005/wepub/internal/client/models"
	"github.com/dmitrijs2005/wepub/internal/logging"
)

// Authenticator is the part of the auth resource client the controller uses.
type Authenticator interface {
	Login(ctx context.Context, username, password string) (string, error)
	Register(ctx context.Context, req models.RegisterRequest) (*models.User, error)
	CurrentUser(ctx context.Context) (*models.User, error)
}

// Listener receives the session after every state change.
type Listener func(Snapshot)

type Controller struct {
	store  credstore.Store
	auth   Authenticator
	logger logging.Logger

	// mu guards the fields below. It is never held across I/O.
	mu        sync.Mutex
	token     string
	profile   *models.User
	nextID    int
	listeners map[int]Listener
}

// New builds a controller and loads the stored credential, if any. The
// profile is not fetched; call RefreshProfile for that.
func New(ctx context.Context, store credstore.Store, auth Authenticator, logger logging.Logger) (*Controller, error) {
	if logger == nil {
		logger = logging.Nop()
	}
	c := &Controller{
		store:     store,
		auth:      auth,
		logger:    logger,
		listeners: make(map[int]Listener),
	}

	token, ok, err := store.Read(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load session: %w", err)
	}
	if ok {
		c.token = token
		logger.Debug(ctx, "restored stored credential")
	}
	return c, nil
}

// Login exchanges credentials for a token, persists it and then refreshes
// the profile. A rejected login leaves the session as it was. If the token
// is accepted but the profile cannot be fetched, the session ends up
// Anonymous and the refresh error is returned.
func (c *Controller) Login(ctx context.Context, username, password string) error {
	token, err := c.auth.Login(ctx, username, password)
	if err != nil {
		c.logger.Info(ctx, "login rejected", "username", username, "error", err)
		return fmt.Errorf("login failed: %w", err)
	}

	if err := c.store.Write(ctx, token); err != nil {
		return fmt.Errorf("failed to persist credential: %w", err)
	}
	c.set(token, nil)
	c.logger.Info(ctx, "logged in", "username", username)

	return c.RefreshProfile(ctx)
}

// RefreshProfile fetches the profile for the held credential and replaces
// the current one. It does nothing when no credential is held. On failure the
// credential and profile are both dropped and the error is returned.
func (c *Controller) RefreshProfile(ctx context.Context) error {
	token := c.Token()
	if token == "" {
		return nil
	}

	u, err := c.auth.CurrentUser(ctx)
	if err != nil {
		c.logger.Warn(ctx, "profile refresh failed, ending session", "error", err)
		if clearErr := c.clear(ctx); clearErr != nil {
			return errors.Join(fmt.Errorf("failed to load profile: %w", err), clearErr)
		}
		return fmt.Errorf("failed to load profile: %w", err)
	}

	profile := *u
	c.mu.Lock()
	// The credential may have changed while the request was in flight.
	if c.token != token {
		c.mu.Unlock()
		return nil
	}
	c.profile = &profile
	snap := c.snapshotLocked()
	c.mu.Unlock()

	c.notify(snap)
	return nil
}

// Logout ends the session locally. The backend is not contacted. The
// in-memory session is dropped even if the store cannot be cleared.
func (c *Controller) Logout(ctx context.Context) error {
	err := c.clear(ctx)
	c.logger.Info(ctx, "logged out")
	return err
}

// Register creates an account without signing in.
func (c *Controller) Register(ctx context.Context, username, email, password string) (*models.User, error) {
	u, err := c.auth.Register(ctx, models.RegisterRequest{Username: username, Email: email, Password: password})
	if err != nil {
		return nil, fmt.Errorf("registration failed: %w", err)
	}
	c.logger.Info(ctx, "registered", "username", u.Username)
	return u, nil
}

// HandleUnauthorized drops the in-memory session. It is meant to be
// subscribed to the transport's authorization-failure event, which has
// already cleared the store.
func (c *Controller) HandleUnauthorized(ctx context.Context) {
	c.logger.Info(ctx, "credential rejected by server")
	c.set("", nil)
}

// Subscribe registers fn for state changes. The returned func removes it.
func (c *Controller) Subscribe(fn Listener) (unsubscribe func()) {
	c.mu.Lock()
	id := c.nextID
	c.nextID++
	c.listeners[id] = fn
	c.mu.Unlock()

	return func() {
		c.mu.Lock()
		delete(c.listeners, id)
		c.mu.Unlock()
	}
}

func (c *Controller) State() State { return c.Snapshot().State }

func (c *Controller) IsAuthenticated() bool { return c.State() == Authenticated }

func (c *Controller) Token() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.token
}

// Profile returns a copy of the loaded profile, or nil.
func (c *Controller) Profile() *models.User { return c.Snapshot().Profile }

func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshotLocked()
}

func (c *Controller) snapshotLocked() Snapshot {
	s := Snapshot{State: Anonymous, Token: c.token}
	if c.token != "" {
		s.State = Authenticated
	}
	if c.profile != nil {
		p := *c.profile
		s.Profile = &p
	}
	return s
}

func (c *Controller) clear(ctx context.Context) error {
	err := c.store.Clear(ctx)
	c.set("", nil)
	if err != nil {
		return fmt.Errorf("failed to clear credential: %w", err)
	}
	return nil
}

func (c *Controller) set(token string, profile *models.User) {
	c.mu.Lock()
	c.token = token
	c.profile = profile
	snap := c.snapshotLocked()
	c.mu.Unlock()

	c.notify(snap)
}

func (c *Controller) notify(s Snapshot) {
	c.mu.Lock()
	ls := make([]Listener, 0, len(c.listeners))
	for _, id := range slices.Sorted(maps.Keys(c.listeners)) {
		ls = append(ls, c.listeners[id])
	}
	c.mu.Unlock()

	for _, fn := range ls {
		fn(s)
	}
}
