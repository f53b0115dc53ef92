package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/wepub/internal/client/router"
	"github.com/dmitrijs2005/wepub/internal/client/session"
)

var errPasswordMismatch = errors.New("passwords do not match")

// Register prompts for a new account, creates it and signs in with the same
// credentials.
func (a *App) Register(ctx context.Context, _ []string) error {
	username, err := a.ask("Username")
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Email (optional)", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out, "Password")
	if err != nil {
		return err
	}
	defer wipe(password)
	confirm, err := getPassword(a.out, "Repeat password")
	if err != nil {
		return err
	}
	defer wipe(confirm)
	if string(password) != string(confirm) {
		return errPasswordMismatch
	}

	if _, err := a.session.Register(ctx, username, email, string(password)); err != nil {
		return err
	}
	a.printer.Success("Account %s created", username)

	return a.signIn(ctx, username, string(password))
}

// Login prompts for credentials and starts a session.
func (a *App) Login(ctx context.Context, _ []string) error {
	username, err := a.ask("Username")
	if err != nil {
		return err
	}
	password, err := getPassword(a.out, "Password")
	if err != nil {
		return err
	}
	defer wipe(password)

	return a.signIn(ctx, username, string(password))
}

func (a *App) signIn(ctx context.Context, username, password string) error {
	if err := a.session.Login(ctx, username, password); err != nil {
		return err
	}
	if _, err := a.nav.Navigate(ctx, router.Dashboard); err != nil {
		return err
	}
	a.printer.Success("Signed in as %s", a.session.Snapshot().Username())
	return nil
}

// Logout ends the session locally and returns to the login location.
func (a *App) Logout(ctx context.Context, _ []string) error {
	if err := a.session.Logout(ctx); err != nil {
		return err
	}
	if _, err := a.nav.Navigate(ctx, router.Login); err != nil {
		return err
	}
	a.printer.Success("Signed out")
	return nil
}

// WhoAmI shows the cached profile and what the token says about itself.
func (a *App) WhoAmI(ctx context.Context, _ []string) error {
	snap := a.session.Snapshot()
	if snap.Profile == nil {
		if err := a.session.RefreshProfile(ctx); err != nil {
			return err
		}
		snap = a.session.Snapshot()
	}
	if snap.Profile == nil {
		return fmt.Errorf("no profile loaded")
	}

	p := snap.Profile
	a.printer.Header("Profile")
	a.printer.Field("ID", p.ID)
	a.printer.Field("Username", p.Username)
	a.printer.Field("Email", orDash(p.Email))
	a.printer.Field("Active", p.IsActive)
	a.printer.Field("Member since", p.CreatedAt)

	if info, err := session.InspectToken(snap.Token); err == nil && !info.ExpiresAt.IsZero() {
		expires := info.ExpiresAt.Local().Format("2006-01-02 15:04")
		if info.Expired(time.Now()) {
			expires += " (expired)"
		}
		a.printer.Field("Token expires", expires)
	}
	return nil
}
