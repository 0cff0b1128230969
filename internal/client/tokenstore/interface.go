// Package tokenstore persists the bearer credential across runs of the
// client. Storage is a single well-known key in a local SQLite database;
// absence of the key means logged-out.
//
// The session store is the only writer. Everything else (the API gateway
// in particular) reads through the same repository.
package tokenstore

import "context"

// Repository stores and retrieves the bearer credential.
//
// Get returns an empty string, not an error, when no credential is stored.
// Delete is idempotent.
type Repository interface {
	Get(ctx context.Context) (string, error)
	Set(ctx context.Context, token string) error
	Delete(ctx context.Context) error
}
