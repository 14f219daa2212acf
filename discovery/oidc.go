package discovery

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/coreos/go-oidc/v3/oidc"
)

// OIDCClient resolves issuers through strict OIDC discovery. Use it for
// conforming providers whose discovery document issuer equals the authority
// URL; tenant-alias authorities fail that check by construction, so the
// default registry wiring uses HTTPClient instead.
type OIDCClient struct {
	hc *http.Client
}

// NewOIDC returns an OIDCClient. A nil http.Client uses go-oidc's default
// transport.
func NewOIDC(hc *http.Client) *OIDCClient { return &OIDCClient{hc: hc} }

// IssuerFor implements Client.
func (c *OIDCClient) IssuerFor(ctx context.Context, authority string) (string, error) {
	if c.hc != nil {
		ctx = oidc.ClientContext(ctx, c.hc)
	}
	provider, err := oidc.NewProvider(ctx, strings.TrimRight(authority, "/"))
	if err != nil {
		return "", fmt.Errorf("oidc discovery failed: %w", err)
	}
	var meta struct {
		Issuer string `json:"issuer"`
	}
	if err := provider.Claims(&meta); err != nil {
		return "", fmt.Errorf("invalid discovery metadata: %w", err)
	}
	if meta.Issuer == "" {
		return "", fmt.Errorf("discovery document for %s has no issuer", authority)
	}
	return meta.Issuer, nil
}

var _ Client = (*OIDCClient)(nil)
