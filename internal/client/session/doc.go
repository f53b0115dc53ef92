// Package session owns the client's in-memory session: the bearer
// credential and the profile it belongs to.
//
// A Controller is created once per process from a credstore.Store and an
// Authenticator. It loads the stored credential on construction, so a
// restarted client stays signed in until the backend rejects the token.
// The Controller moves between two states:
//
//	Anonymous     --Login ok-->                                   Authenticated
//	Authenticated --RefreshProfile error | Logout | 401 event-->  Anonymous
//
// Failures are always returned to the caller; presenting them is left to
// the shell.
package session
