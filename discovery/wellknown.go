package discovery

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// HTTPClient fetches discovery documents over plain HTTP(S). It is the
// default Client: unlike strict OIDC discovery it does not require the
// document's issuer to equal the queried authority, which tenanted and
// multi-tenant alias authorities never satisfy (their published issuers are
// templated or live on a different host than the authority URL).
type HTTPClient struct {
	hc *http.Client
}

// NewHTTP returns an HTTPClient. A nil client gets a 10 second timeout
// default.
func NewHTTP(hc *http.Client) *HTTPClient {
	if hc == nil {
		hc = &http.Client{Timeout: 10 * time.Second}
	}
	return &HTTPClient{hc: hc}
}

// Fetch retrieves and decodes the authority's discovery document.
func (c *HTTPClient) Fetch(ctx context.Context, authority string) (*Metadata, error) {
	u := strings.TrimRight(authority, "/") + WellKnownSuffix
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("build discovery request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.hc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", u, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch %s: unexpected status %s", u, resp.Status)
	}

	var meta Metadata
	if err := json.NewDecoder(resp.Body).Decode(&meta); err != nil {
		return nil, fmt.Errorf("decode discovery document from %s: %w", u, err)
	}
	if meta.Issuer == "" {
		return nil, fmt.Errorf("discovery document from %s has no issuer", u)
	}
	return &meta, nil
}

// IssuerFor implements Client.
func (c *HTTPClient) IssuerFor(ctx context.Context, authority string) (string, error) {
	meta, err := c.Fetch(ctx, authority)
	if err != nil {
		return "", err
	}
	return meta.Issuer, nil
}

var _ Client = (*HTTPClient)(nil)
