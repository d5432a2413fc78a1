// Package metadata stores small client-side key/value pairs (the session
// token and cached user profile) in the local SQLite database.
package metadata

import (
	"context"
)

// Repository is a byte-valued key/value store.
// Get returns common.ErrorNotFound when the key is absent.
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, keys ...string) error
}
