package aadissuer

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/ggoodman/aad-issuer-go/discovery/discoverytest"
)

// countingTransport counts the requests routed through it.
type countingTransport struct {
	mu    sync.Mutex
	calls int
	inner http.RoundTripper
}

func (t *countingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	t.mu.Lock()
	t.calls++
	t.mu.Unlock()
	return t.inner.RoundTrip(req)
}

func (t *countingTransport) Calls() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.calls
}

func TestRegistryReturnsSameInstance(t *testing.T) {
	reg := NewRegistry(WithDiscoveryClient(discoverytest.New(nil)))

	a, err := reg.GetOrCreate("https://login.microsoftonline.com/common/v2.0")
	if err != nil {
		t.Fatalf("GetOrCreate: %v", err)
	}
	b, err := reg.GetOrCreate("https://login.microsoftonline.com/common/v2.0")
	if err != nil {
		t.Fatalf("GetOrCreate: %v", err)
	}
	if a != b {
		t.Fatal("identical authority must yield the identical instance")
	}

	c, err := reg.GetOrCreate("https://login.microsoftonline.com/contoso/v2.0")
	if err != nil {
		t.Fatalf("GetOrCreate: %v", err)
	}
	if c == a {
		t.Fatal("distinct authorities must yield distinct instances")
	}
}

func TestRegistryEmptyAuthority(t *testing.T) {
	reg := NewRegistry(WithDiscoveryClient(discoverytest.New(nil)))
	if _, err := reg.GetOrCreate(""); !errors.Is(err, ErrArgumentMissing) {
		t.Fatalf("want ErrArgumentMissing, got %v", err)
	}
}

func TestRegistryConcurrentCreate(t *testing.T) {
	reg := NewRegistry(
		WithDiscoveryClient(discoverytest.New(nil)),
		WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
	)

	const workers = 32
	got := make(chan *Validator, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			v, err := reg.GetOrCreate("https://login.microsoftonline.com/common/v2.0")
			if err != nil {
				t.Errorf("GetOrCreate: %v", err)
				return
			}
			got <- v
		}()
	}
	wg.Wait()
	close(got)

	var first *Validator
	for v := range got {
		if first == nil {
			first = v
			continue
		}
		if v != first {
			t.Fatal("concurrent GetOrCreate produced more than one instance")
		}
	}
}

func TestGetValidatorPackageLevel(t *testing.T) {
	a, err := GetValidator("https://login.microsoftonline.com/registry-test-tenant/v2.0", nil)
	if err != nil {
		t.Fatalf("GetValidator: %v", err)
	}
	b, err := GetValidator("https://login.microsoftonline.com/registry-test-tenant/v2.0", nil)
	if err != nil {
		t.Fatalf("GetValidator: %v", err)
	}
	if a != b {
		t.Fatal("package-level GetValidator must be idempotent per authority")
	}
}

func TestGetValidatorTransportOverride(t *testing.T) {
	issuer := ""
	mux := http.NewServeMux()
	mux.HandleFunc("/f3-tenant/v2.0/.well-known/openid-configuration", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{"issuer": issuer})
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()
	authority := srv.URL + "/f3-tenant/v2.0"
	issuer = srv.URL + "/tid-f3/v2.0"

	first := &countingTransport{inner: http.DefaultTransport}
	a, err := GetValidator(authority, &http.Client{Transport: first})
	if err != nil {
		t.Fatalf("GetValidator: %v", err)
	}

	// A later call with a different transport still reuses the instance,
	// which keeps the discovery client it was built with.
	second := &countingTransport{inner: http.DefaultTransport}
	b, err := GetValidator(authority, &http.Client{Transport: second})
	if err != nil {
		t.Fatalf("GetValidator: %v", err)
	}
	if a != b {
		t.Fatal("transport override must not split the instance per authority")
	}

	got, err := a.Validate(context.Background(), issuer, tokenWithTenant(issuer, "tid-f3"), &Config{})
	if err != nil {
		t.Fatalf("Validate via discovery: %v", err)
	}
	if got != issuer {
		t.Fatalf("got %q, want %q", got, issuer)
	}
	if first.Calls() == 0 {
		t.Fatal("discovery fetch must use the transport supplied at creation")
	}
	if second.Calls() != 0 {
		t.Fatalf("later transport must stay unused, saw %d calls", second.Calls())
	}
}

func TestValidatorAuthorityNormalized(t *testing.T) {
	reg := NewRegistry(WithDiscoveryClient(discoverytest.New(nil)))
	v, err := reg.GetOrCreate("https://login.microsoftonline.com/common/")
	if err != nil {
		t.Fatalf("GetOrCreate: %v", err)
	}
	if v.Authority() != "https://login.microsoftonline.com/common" {
		t.Fatalf("Authority() = %q, want normalized form", v.Authority())
	}
}
