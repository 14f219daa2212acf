package aadissuer

import "testing"

func TestAuthorityPairFromV1(t *testing.T) {
	p := newAuthorityPair("https://login.microsoftonline.com/common/")
	if p.v1 != "https://login.microsoftonline.com/common" {
		t.Fatalf("v1 = %q, want trailing slash trimmed", p.v1)
	}
	if p.v2 != "https://login.microsoftonline.com/common/v2.0" {
		t.Fatalf("v2 = %q, want /v2.0 appended", p.v2)
	}
}

func TestAuthorityPairFromV2(t *testing.T) {
	p := newAuthorityPair("https://login.microsoftonline.com/contoso.onmicrosoft.com/v2.0")
	if p.v2 != "https://login.microsoftonline.com/contoso.onmicrosoft.com/v2.0" {
		t.Fatalf("v2 = %q", p.v2)
	}
	if p.v1 != "https://login.microsoftonline.com/contoso.onmicrosoft.com" {
		t.Fatalf("v1 = %q, want /v2.0 suffix stripped", p.v1)
	}
}

func TestAuthorityPairOrganizationsAlias(t *testing.T) {
	p := newAuthorityPair("https://login.microsoftonline.com/organizations/v2.0")
	if p.v1 != "https://login.microsoftonline.com/common" {
		t.Fatalf("v1 = %q, want organizations/v2.0 replaced with common", p.v1)
	}
	if p.v2 != "https://login.microsoftonline.com/organizations/v2.0" {
		t.Fatalf("v2 = %q, want unchanged", p.v2)
	}
}

func TestAuthorityPairForVersion(t *testing.T) {
	p := newAuthorityPair("https://login.microsoftonline.com/tenant-1")
	if got := p.forVersion(true); got != p.v2 {
		t.Fatalf("forVersion(true) = %q, want %q", got, p.v2)
	}
	if got := p.forVersion(false); got != p.v1 {
		t.Fatalf("forVersion(false) = %q, want %q", got, p.v1)
	}
}
