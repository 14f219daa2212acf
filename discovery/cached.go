package discovery

import (
	"context"
	"log/slog"
	"time"

	"github.com/ggoodman/aad-issuer-go/storage"
)

// CachedOption configures a CachedClient.
type CachedOption func(*CachedClient)

// CachedWithLogger sets the logger used for cache diagnostics.
func CachedWithLogger(log *slog.Logger) CachedOption {
	return func(c *CachedClient) { c.log = log }
}

// CachedClient persists resolved issuers in a storage.Store so fleets of
// processes share discovery results. Cache misses and store failures fall
// through to the inner client, and only successful resolutions are written
// back; negative results are never cached.
type CachedClient struct {
	inner Client
	store storage.Store
	ttl   time.Duration
	log   *slog.Logger
}

// NewCached wraps inner with a store. A zero ttl stores without expiry.
func NewCached(inner Client, store storage.Store, ttl time.Duration, opts ...CachedOption) *CachedClient {
	c := &CachedClient{inner: inner, store: store, ttl: ttl}
	for _, o := range opts {
		o(c)
	}
	if c.log == nil {
		c.log = slog.Default()
	}
	return c
}

// IssuerFor implements Client.
func (c *CachedClient) IssuerFor(ctx context.Context, authority string) (string, error) {
	key := "issuer:" + authority
	val, err := c.store.Get(ctx, key)
	if err != nil {
		c.log.DebugContext(ctx, "discovery cache read failed",
			slog.String("authority", authority), slog.String("err", err.Error()))
	} else if val != "" {
		return val, nil
	}

	iss, err := c.inner.IssuerFor(ctx, authority)
	if err != nil {
		return "", err
	}
	if err := c.store.Set(ctx, key, iss, c.ttl); err != nil {
		c.log.DebugContext(ctx, "discovery cache write failed",
			slog.String("authority", authority), slog.String("err", err.Error()))
	}
	return iss, nil
}

var _ Client = (*CachedClient)(nil)
