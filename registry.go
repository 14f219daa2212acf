package aadissuer

import (
	"fmt"
	"log/slog"
	"net/http"
	"sync"

	"github.com/ggoodman/aad-issuer-go/discovery"
	"github.com/ggoodman/aad-issuer-go/internal/logctx"
)

// Option configures a Registry.
type Option func(*Registry)

// WithDiscoveryClient injects the discovery client used by validators the
// registry creates. Tests typically pass a discoverytest fake so instance
// reuse can be asserted without network access.
func WithDiscoveryClient(c discovery.Client) Option {
	return func(r *Registry) { r.disc = c }
}

// WithHTTPClient overrides the transport used for discovery fetches. Ignored
// when WithDiscoveryClient is also given.
func WithHTTPClient(hc *http.Client) Option {
	return func(r *Registry) { r.hc = hc }
}

// WithLogger sets the logger handed to validators.
func WithLogger(log *slog.Logger) Option {
	return func(r *Registry) { r.log = log }
}

// Registry hands out one Validator per distinct authority string. Entries
// are never evicted; a Registry is meant to live for the life of the
// process, owned by the composition root.
type Registry struct {
	disc discovery.Client
	hc   *http.Client
	log  *slog.Logger

	mu         sync.RWMutex
	validators map[string]*Validator
}

// NewRegistry builds a Registry. Without options it resolves discovery
// documents over HTTPS with a default client and logs through slog.Default
// wrapped in the validation-context handler.
func NewRegistry(opts ...Option) *Registry {
	r := &Registry{validators: make(map[string]*Validator)}
	for _, o := range opts {
		o(r)
	}
	if r.disc == nil {
		r.disc = discovery.NewHTTP(r.hc)
	}
	if r.log == nil {
		r.log = slog.New(logctx.Handler{Handler: slog.Default().Handler()})
	}
	return r
}

// GetOrCreate returns the validator for authority, creating it on first use.
// Creation is insert-if-absent: concurrent callers for the same authority
// always observe the same instance.
func (r *Registry) GetOrCreate(authority string) (*Validator, error) {
	return r.getOrCreate(authority, r.disc)
}

func (r *Registry) getOrCreate(authority string, disc discovery.Client) (*Validator, error) {
	if authority == "" {
		return nil, fmt.Errorf("%w: authority", ErrArgumentMissing)
	}

	r.mu.RLock()
	v, ok := r.validators[authority]
	r.mu.RUnlock()
	if ok {
		return v, nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if v, ok := r.validators[authority]; ok {
		return v, nil
	}
	v = newValidator(authority, disc, r.log)
	r.validators[authority] = v
	return v, nil
}

var (
	defaultRegistryOnce sync.Once
	defaultRegistry     *Registry
)

// GetValidator returns the process-wide validator for authority, creating it
// on first use and reusing it thereafter. A non-nil transport is used for
// the discovery fetches of a validator created by this call; it has no
// effect on validators that already exist.
func GetValidator(authority string, transport *http.Client) (*Validator, error) {
	defaultRegistryOnce.Do(func() { defaultRegistry = NewRegistry() })
	if transport == nil {
		return defaultRegistry.GetOrCreate(authority)
	}
	return defaultRegistry.getOrCreate(authority, discovery.NewHTTP(transport))
}
