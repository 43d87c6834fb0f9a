// Package metadata is a small key-value store for client-side state that
// must survive restarts. In production it holds exactly one key: the raw
// session token.
package metadata

import "context"

type Repository interface {
	// Get returns the value for key, or nil when the key is absent.
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}
