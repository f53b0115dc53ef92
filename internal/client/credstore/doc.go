// Package credstore persists the single session credential of the local
// profile.
//
// A Store holds at most one opaque bearer token. It performs no validation of
// the token's content or expiry; callers decide what a token means. Reads,
// writes and clears complete before returning, so a value written by one
// component is visible to the next Read from any other component.
//
// Two implementations are provided:
//
//   - SQLiteStore keeps the token as the "token" row of the metadata table in
//     the profile database (see Open), so it survives process restarts.
//   - MemoryStore keeps it in process memory; useful for tests and for
//     throwaway sessions.
package credstore
