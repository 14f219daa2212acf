// Package aadissuer validates the issuer claim of security tokens minted by
// a multi-tenant identity platform (Azure AD / Entra ID style authorities).
// It is designed to be plugged into a host token-validation pipeline as the
// issuer check: the host parses and verifies the token, then asks this
// package whether the claimed issuer belongs to a trusted, tenant-scoped
// authority.
//
// The public surface intentionally stays small: a Registry hands out one
// Validator per authority, and Validator.Validate checks a claimed issuer
// against configured templates before falling back to the authority's
// published discovery document.
//
// # Validation
//
// Validate extracts the tenant id from the token (the "tid" or "tenantId"
// claim, or the issuer URL's path), substitutes it into each configured
// issuer template, and accepts on the first exact match. When no template
// matches, the authority's OpenID Connect discovery document supplies the
// expected issuer; that value is resolved lazily, at most once per authority
// version, and reused for the life of the validator.
//
// Example:
//
//	reg := aadissuer.NewRegistry()
//	v, err := reg.GetOrCreate("https://login.microsoftonline.com/common/v2.0")
//	if err != nil { log.Fatal(err) }
//
//	// Later inside token validation (pseudocode):
//	cfg := &aadissuer.Config{ValidIssuers: []string{
//	    "https://login.microsoftonline.com/{tenantid}/v2.0",
//	}}
//	iss, err := v.Validate(ctx, claimedIssuer, aadissuer.TokenFromJWT(parsed), cfg)
//	if errors.Is(err, aadissuer.ErrInvalidIssuer) { /* reject the token */ }
//
// # Templates
//
// A template is either a literal issuer value or a pattern containing the
// {tenantid} placeholder. Matching is exact and case-sensitive; there is no
// prefix or partial matching. The only case-insensitive comparison in the
// package is the check that routes a claimed issuer to the V1 or V2
// authority variant before a discovery fetch.
//
// # Errors
//
// ErrArgumentMissing signals an absent required input. ErrInvalidIssuer
// signals rejection: no determinable tenant id, an unsupported B2C user-flow
// issuer shape, or no matching template or discovery value. A failed
// discovery fetch also surfaces as ErrInvalidIssuer with the transport or
// parse cause preserved in the error chain. The package never treats the
// absence of a match as success.
package aadissuer
