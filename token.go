package aadissuer

import "github.com/golang-jwt/jwt/v5"

// Token is the minimal capability the validator needs from an already-parsed
// security token: its issuer and string-valued claim lookup. Adapters are
// provided for the golang-jwt representations; other token libraries can
// satisfy the interface directly.
type Token interface {
	// Issuer returns the token's issuer claim, or "" if absent.
	Issuer() string
	// StringClaim returns the value of the named claim, reporting whether
	// the claim was present with a string value.
	StringClaim(name string) (string, bool)
}

// TokenFromJWT adapts a parsed *jwt.Token. Claim lookup requires the token's
// claims to be jwt.MapClaims (the golang-jwt default for jwt.Parse); other
// claim types still expose their issuer.
func TokenFromJWT(t *jwt.Token) Token { return jwtToken{t} }

type jwtToken struct {
	t *jwt.Token
}

func (a jwtToken) Issuer() string {
	iss, _ := a.t.Claims.GetIssuer()
	return iss
}

func (a jwtToken) StringClaim(name string) (string, bool) {
	mc, ok := a.t.Claims.(jwt.MapClaims)
	if !ok {
		return "", false
	}
	s, ok := mc[name].(string)
	return s, ok
}

// TokenFromMapClaims adapts a bare golang-jwt claims map.
func TokenFromMapClaims(claims jwt.MapClaims) Token { return mapClaimsToken{claims} }

type mapClaimsToken struct {
	claims jwt.MapClaims
}

func (a mapClaimsToken) Issuer() string {
	iss, _ := a.claims.GetIssuer()
	return iss
}

func (a mapClaimsToken) StringClaim(name string) (string, bool) {
	s, ok := a.claims[name].(string)
	return s, ok
}
