// Package storage provides pluggable persistence for discovery results
// shared across processes.
package storage

import (
	"context"
	"time"
)

// Store is a small TTL'd string cache. Get returns "" with a nil error when
// the key is absent or expired; errors are reserved for backend failures.
// Implementations must be safe for concurrent use.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value string, ttl time.Duration) error

	// Close releases backend resources.
	Close() error
}
