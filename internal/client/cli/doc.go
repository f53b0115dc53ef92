// Package cli provides the interactive wepub command-line client.
//
// It wires configuration, the credential store, the HTTP transport, the
// session controller and the navigator into a REPL. Each command belongs to
// a location (/login, /dashboard, /styles, ...) and runs only after the
// navigator lets the shell enter it, so protected commands send an
// anonymous user to /login instead.
//
// A 401 from any call clears the stored credential, ends the session and
// moves the shell back to /login before the failing command reports its
// error.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
