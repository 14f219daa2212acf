package aadissuer

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/ggoodman/aad-issuer-go/discovery"
	"github.com/ggoodman/aad-issuer-go/internal/logctx"
)

// Validator checks claimed issuers for a single authority. Instances are
// created through a Registry, are safe for concurrent use, and resolve the
// discovery-derived issuer for each authority version at most once, on
// demand.
type Validator struct {
	authorities authorityPair
	disc        discovery.Client
	log         *slog.Logger

	group    singleflight.Group
	mu       sync.RWMutex
	issuerV1 string
	issuerV2 string
}

func newValidator(authority string, disc discovery.Client, log *slog.Logger) *Validator {
	return &Validator{
		authorities: newAuthorityPair(authority),
		disc:        disc,
		log:         log,
	}
}

// Authority returns the normalized authority this validator was created for.
func (v *Validator) Authority() string { return v.authorities.raw }

// Validate checks the claimed issuer against the configured templates and,
// on miss, against the issuer the authority publishes via discovery. It
// returns the issuer unchanged on success. Failures are ErrArgumentMissing
// for absent inputs and ErrInvalidIssuer otherwise; discovery failures keep
// their cause in the error chain.
func (v *Validator) Validate(ctx context.Context, issuer string, token Token, cfg *Config) (string, error) {
	if issuer == "" {
		return "", fmt.Errorf("%w: issuer", ErrArgumentMissing)
	}
	if token == nil {
		return "", fmt.Errorf("%w: token", ErrArgumentMissing)
	}
	if cfg == nil {
		return "", fmt.Errorf("%w: config", ErrArgumentMissing)
	}

	ctx = logctx.WithValidation(ctx, v.authorities.raw, issuer)

	tid, err := tenantID(token)
	if err != nil {
		return "", err
	}
	if tid == "" {
		return "", fmt.Errorf("%w: no tenant id could be determined for issuer %q", ErrInvalidIssuer, issuer)
	}

	for _, tmpl := range cfg.ValidIssuers {
		if issuerMatchesTemplate(tmpl, tid, issuer) {
			v.log.DebugContext(ctx, "issuer matched configured template", slog.String("template", tmpl))
			return issuer, nil
		}
	}
	if issuerMatchesTemplate(cfg.ValidIssuer, tid, issuer) {
		v.log.DebugContext(ctx, "issuer matched configured template", slog.String("template", cfg.ValidIssuer))
		return issuer, nil
	}

	// Route on the version the claimed issuer itself indicates, which may
	// differ from the version of the authority this instance was created
	// with. This suffix check is the only case-insensitive comparison in
	// the package: it selects which authority variant to query, nothing
	// more.
	wantV2 := strings.HasSuffix(strings.ToLower(issuer), v2Segment)
	discovered, err := v.discoveredIssuer(ctx, wantV2)
	if err != nil {
		return "", fmt.Errorf("%w: issuer %q could not be checked against discovery: %w", ErrInvalidIssuer, issuer, err)
	}
	if issuerMatchesTemplate(discovered, tid, issuer) {
		v.log.DebugContext(ctx, "issuer matched discovery document", slog.Bool("v2", wantV2))
		return issuer, nil
	}

	return "", fmt.Errorf("%w: issuer %q did not match any configured template or the authority's discovery document", ErrInvalidIssuer, issuer)
}

// discoveredIssuer resolves and memoizes the discovery-derived issuer for
// the requested authority version. Concurrent callers share a single fetch;
// failures are never memoized, so a later call retries.
func (v *Validator) discoveredIssuer(ctx context.Context, v2 bool) (string, error) {
	if cached := v.cachedIssuer(v2); cached != "" {
		return cached, nil
	}

	key := "v1"
	if v2 {
		key = "v2"
	}
	authority := v.authorities.forVersion(v2)

	iss, err, _ := v.group.Do(key, func() (any, error) {
		// A racing caller may have populated the cell while this flight
		// was queued.
		if cached := v.cachedIssuer(v2); cached != "" {
			return cached, nil
		}
		resolved, err := v.disc.IssuerFor(ctx, authority)
		if err != nil {
			return nil, err
		}
		v.mu.Lock()
		if v2 {
			v.issuerV2 = resolved
		} else {
			v.issuerV1 = resolved
		}
		v.mu.Unlock()
		v.log.InfoContext(ctx, "resolved issuer from discovery",
			slog.String("authority", authority), slog.String("resolved", resolved))
		return resolved, nil
	})
	if err != nil {
		return "", err
	}
	return iss.(string), nil
}

func (v *Validator) cachedIssuer(v2 bool) string {
	v.mu.RLock()
	defer v.mu.RUnlock()
	if v2 {
		return v.issuerV2
	}
	return v.issuerV1
}
