package cli

import "context"

// Health probes the server; it needs no session.
func (a *App) Health(ctx context.Context, _ []string) error {
	h, err := a.clients.Health.Check(ctx)
	if err != nil {
		return err
	}
	a.printer.Info("%s %s (database: %s)", a.printer.StatusBadge(h.Status), a.transport.BaseURL(), h.Database)
	return nil
}
