// Package memory provides an in-process storage.Store backed by an LRU cache
// with per-entry TTL support.
package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/ggoodman/aad-issuer-go/storage"
)

type entry struct {
	value     string
	expiresAt time.Time // zero = no expiry
}

// Store implements storage.Store in memory. Expired entries are dropped on
// read; the LRU bound keeps the cache from growing without limit.
type Store struct {
	mu    sync.Mutex
	cache *lru.Cache[string, entry]
}

// New creates a Store holding at most maxItems entries.
func New(maxItems int) (*Store, error) {
	c, err := lru.New[string, entry](maxItems)
	if err != nil {
		return nil, fmt.Errorf("create lru cache: %w", err)
	}
	return &Store{cache: c}, nil
}

// Get retrieves the value stored under key, or "" if absent or expired.
func (s *Store) Get(ctx context.Context, key string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.cache.Get(key)
	if !ok {
		return "", nil
	}
	if !e.expiresAt.IsZero() && time.Now().After(e.expiresAt) {
		s.cache.Remove(key)
		return "", nil
	}
	return e.value, nil
}

// Set stores value under key. A zero ttl stores without expiry.
func (s *Store) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	e := entry{value: value}
	if ttl > 0 {
		e.expiresAt = time.Now().Add(ttl)
	}
	s.mu.Lock()
	s.cache.Add(key, e)
	s.mu.Unlock()
	return nil
}

// Close implements storage.Store; the in-memory store holds no resources.
func (s *Store) Close() error { return nil }

var _ storage.Store = (*Store)(nil)
