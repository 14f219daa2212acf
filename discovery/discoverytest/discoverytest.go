// Package discoverytest provides a fake discovery client for tests and
// development environments where no authority is reachable.
package discoverytest

import (
	"context"
	"fmt"
	"sync"
)

// Static maps authority URLs to issuer strings. Lookups for unknown
// authorities fail, as a real discovery fetch against a missing tenant would.
type Static struct {
	mu      sync.Mutex
	issuers map[string]string
	err     error
	calls   map[string]int
}

// New creates a Static client over a copy of issuers.
func New(issuers map[string]string) *Static {
	cp := make(map[string]string, len(issuers))
	for k, v := range issuers {
		cp[k] = v
	}
	return &Static{issuers: cp, calls: map[string]int{}}
}

// FailWith makes every subsequent lookup fail with err; pass nil to restore
// normal behavior.
func (s *Static) FailWith(err error) {
	s.mu.Lock()
	s.err = err
	s.mu.Unlock()
}

// IssuerFor implements discovery.Client.
func (s *Static) IssuerFor(ctx context.Context, authority string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls[authority]++
	if s.err != nil {
		return "", s.err
	}
	iss, ok := s.issuers[authority]
	if !ok {
		return "", fmt.Errorf("no discovery document for %s", authority)
	}
	return iss, nil
}

// Calls reports how many lookups were made for authority.
func (s *Static) Calls(authority string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls[authority]
}

// TotalCalls reports how many lookups were made across all authorities.
func (s *Static) TotalCalls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, c := range s.calls {
		n += c
	}
	return n
}
