package discovery

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestOIDCClientConformingProvider(t *testing.T) {
	var issuer string
	mux := http.NewServeMux()
	mux.HandleFunc(WellKnownSuffix, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"issuer":   issuer,
			"jwks_uri": issuer + "/keys",
		})
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()
	issuer = srv.URL

	got, err := NewOIDC(nil).IssuerFor(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("IssuerFor: %v", err)
	}
	if got != issuer {
		t.Fatalf("issuer = %q, want %q", got, issuer)
	}
}

func TestOIDCClientRejectsIssuerMismatch(t *testing.T) {
	// Tenant-alias authorities publish an issuer that differs from the
	// authority URL; strict OIDC discovery must refuse them.
	mux := http.NewServeMux()
	mux.HandleFunc(WellKnownSuffix, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"issuer":   "https://login.example.com/{tenantid}/v2.0",
			"jwks_uri": "https://login.example.com/keys",
		})
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	if _, err := NewOIDC(nil).IssuerFor(context.Background(), srv.URL); err == nil {
		t.Fatal("want error for templated issuer under strict discovery")
	}
}
