package credstore

import "context"

// TokenKey is the metadata key under which the bearer token is stored.
const TokenKey = "token"

// Store is the durable home of the session credential.
type Store interface {
	// Read returns the stored token and true, or "" and false when no
	// credential is stored.
	Read(ctx context.Context) (string, bool, error)
	// Write replaces the stored token.
	Write(ctx context.Context, token string) error
	// Clear removes the stored token. Clearing an empty store is not an error.
	Clear(ctx context.Context) error
}
