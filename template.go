package aadissuer

import "strings"

// tenantPlaceholder is the substitution point in configured issuer templates.
const tenantPlaceholder = "{tenantid}"

// issuerMatchesTemplate reports whether the actual issuer matches a
// configured template. Templates containing the tenant placeholder are
// expanded with the extracted tenant id before comparison; matching is exact
// and case-sensitive with no prefix or partial matching. Blank templates
// never match. Discovery-derived issuers route through this same comparison;
// they carry no placeholder, so substitution is a no-op for them.
func issuerMatchesTemplate(template, tenantID, actualIssuer string) bool {
	if strings.TrimSpace(template) == "" {
		return false
	}
	if strings.Contains(template, tenantPlaceholder) {
		return strings.ReplaceAll(template, tenantPlaceholder, tenantID) == actualIssuer
	}
	return template == actualIssuer
}
