// Package discovery resolves the issuer an authority publishes in its OpenID
// Connect discovery document.
package discovery

import "context"

// WellKnownSuffix is the conventional discovery document path, appended to a
// normalized authority URL.
const WellKnownSuffix = "/.well-known/openid-configuration"

// Client resolves the issuer string an authority publishes in its discovery
// document. Implementations own all transport concerns (timeouts, retries,
// TLS); callers impose no additional policy beyond the context.
type Client interface {
	IssuerFor(ctx context.Context, authority string) (string, error)
}

// Metadata is the subset of the discovery document this module decodes.
// Fields beyond Issuer are surfaced for callers that reuse the fetched
// document (see HTTPClient.Fetch); they play no part in issuer validation.
type Metadata struct {
	Issuer                 string   `json:"issuer"`
	JwksURI                string   `json:"jwks_uri,omitempty"`
	AuthorizationEndpoint  string   `json:"authorization_endpoint,omitempty"`
	TokenEndpoint          string   `json:"token_endpoint,omitempty"`
	EndSessionEndpoint     string   `json:"end_session_endpoint,omitempty"`
	ResponseTypesSupported []string `json:"response_types_supported,omitempty"`
	ScopesSupported        []string `json:"scopes_supported,omitempty"`
	ClaimsSupported        []string `json:"claims_supported,omitempty"`
	TenantRegionScope      string   `json:"tenant_region_scope,omitempty"`
}
