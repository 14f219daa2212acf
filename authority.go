package aadissuer

import "strings"

// Well-known authority segments of the identity platform.
const (
	v2Segment          = "v2.0"
	organizationsAlias = "organizations"
	commonAlias        = "common"
)

// authorityPair holds the V1 and V2 variants of one authority plus the
// normalized form of the string the pair was created from. Both variants are
// derived once at construction and never recomputed.
type authorityPair struct {
	raw string
	v1  string
	v2  string
}

// newAuthorityPair normalizes a raw authority URL (trailing slashes trimmed)
// and derives its companion version variant. A V2 authority (contains
// "v2.0") yields its V1 companion by stripping the "/v2.0" suffix, except
// for the multi-tenant "organizations" alias, whose V1-only counterpart is
// "common". A V1 authority yields its V2 companion by appending "/v2.0".
func newAuthorityPair(authority string) authorityPair {
	authority = strings.TrimRight(authority, "/")
	if !strings.Contains(authority, v2Segment) {
		return authorityPair{
			raw: authority,
			v1:  authority,
			v2:  authority + "/" + v2Segment,
		}
	}
	if strings.Contains(authority, organizationsAlias) {
		return authorityPair{
			raw: authority,
			v1:  strings.Replace(authority, organizationsAlias+"/"+v2Segment, commonAlias, 1),
			v2:  authority,
		}
	}
	return authorityPair{
		raw: authority,
		v1:  strings.TrimSuffix(authority, "/"+v2Segment),
		v2:  authority,
	}
}

// forVersion returns the variant matching the version indicated by a claimed
// issuer.
func (p authorityPair) forVersion(v2 bool) string {
	if v2 {
		return p.v2
	}
	return p.v1
}
