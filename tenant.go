package aadissuer

import (
	"fmt"
	"net/url"
	"strings"
)

const (
	claimTID      = "tid"
	claimTenantID = "tenantId"

	// b2cUserFlowSegment marks B2C user-flow issuers, whose shape is not
	// supported by tenant extraction.
	b2cUserFlowSegment = "tfp"
)

// tenantID extracts the tenant identifier from the token: the "tid" claim,
// then the "tenantId" claim, then the token issuer's URL path. An empty
// string means no tenant id was determinable; issuers shaped like B2C user
// flows (five path segments, second segment "tfp") are rejected outright
// rather than silently yielding an empty tenant.
func tenantID(token Token) (string, error) {
	if tid, ok := token.StringClaim(claimTID); ok {
		return tid, nil
	}
	if tid, ok := token.StringClaim(claimTenantID); ok {
		return tid, nil
	}

	u, err := url.Parse(token.Issuer())
	if err != nil {
		return "", nil
	}
	// Segment counting mirrors the platform's URI semantics: the root "/"
	// counts as the first segment, so "/abc-123/v2.0" has three.
	segs := strings.Split(strings.TrimSuffix(u.Path, "/"), "/")
	switch {
	case len(segs) == 3:
		return segs[1], nil
	case len(segs) == 5 && segs[1] == b2cUserFlowSegment:
		return "", fmt.Errorf("%w: issuer %q uses an unsupported B2C user-flow format", ErrInvalidIssuer, token.Issuer())
	}
	return "", nil
}
