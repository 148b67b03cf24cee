// Package metadata stores small device-local key/value pairs, most notably
// the session token. It is the only durable state the client keeps.
package metadata

import (
	"context"
)

// Repository is a key/value store over a single sqlite table.
//
// Contract:
//   - Get returns (nil, nil) when the key is absent.
//   - Set overwrites any existing value (upsert).
//   - Delete and Clear are idempotent.
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}
