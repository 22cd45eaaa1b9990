// Package token supplies bearer tokens to restkit clients.
//
// A Provider hands out a valid token on demand and supports explicit cache
// invalidation, which the request pipeline signals after an unauthorized
// response. CachingProvider wraps any fetch function with caching keyed on
// the token's own JWT expiry when one is present.
package token

import (
	"context"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/orbitalabs/restkit/errors"
)

// Provider supplies bearer tokens for outbound requests.
type Provider interface {
	// Token returns a valid token, fetching or refreshing as needed.
	Token(ctx context.Context) (string, error)

	// ForceRefresh invalidates any cached token so the next Token call
	// fetches a fresh one.
	ForceRefresh(ctx context.Context) error
}

// Static returns a Provider that always hands out the same token.
// ForceRefresh is a no-op.
func Static(token string) Provider {
	return staticProvider(token)
}

type staticProvider string

func (s staticProvider) Token(_ context.Context) (string, error) { return string(s), nil }
func (s staticProvider) ForceRefresh(_ context.Context) error    { return nil }

// FetchFunc obtains a new token from an identity provider.
type FetchFunc func(ctx context.Context) (string, error)

// CachingProvider caches tokens obtained from a FetchFunc.
//
// Expiry is taken from the token's JWT "exp" claim when the token parses as
// a JWT (signature is not verified; the provider only schedules refreshes,
// it never trusts the claims). Opaque tokens fall back to a fixed TTL.
// Concurrent callers share one fetch: the cache mutex is held across the
// fetch so refreshes are coalesced.
type CachingProvider struct {
	fetch       FetchFunc
	refreshSkew time.Duration
	fallbackTTL time.Duration
	now         func() time.Time

	mu     sync.Mutex
	token  string
	expiry time.Time
}

// CachingOption configures a CachingProvider.
type CachingOption func(*CachingProvider)

// WithRefreshSkew refreshes tokens this long before their expiry.
// Defaults to 30 seconds.
func WithRefreshSkew(d time.Duration) CachingOption {
	return func(p *CachingProvider) { p.refreshSkew = d }
}

// WithFallbackTTL sets the cache lifetime for tokens without a readable
// JWT expiry. Defaults to 5 minutes.
func WithFallbackTTL(d time.Duration) CachingOption {
	return func(p *CachingProvider) { p.fallbackTTL = d }
}

// WithClock overrides the time source. Intended for tests.
func WithClock(now func() time.Time) CachingOption {
	return func(p *CachingProvider) { p.now = now }
}

// NewCaching creates a CachingProvider around fetch.
func NewCaching(fetch FetchFunc, opts ...CachingOption) *CachingProvider {
	p := &CachingProvider{
		fetch:       fetch,
		refreshSkew: 30 * time.Second,
		fallbackTTL: 5 * time.Minute,
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Token returns the cached token, fetching a new one when missing or close
// to expiry.
func (p *CachingProvider) Token(ctx context.Context) (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.token != "" && p.now().Add(p.refreshSkew).Before(p.expiry) {
		return p.token, nil
	}

	tok, err := p.fetch(ctx)
	if err != nil {
		return "", errors.Unauthorized("Unable to obtain an access token.").WithCause(err)
	}
	if tok == "" {
		return "", errors.Unauthorized("Token provider returned an empty token.")
	}

	p.token = tok
	p.expiry = p.expiryOf(tok)
	return tok, nil
}

// ForceRefresh drops the cached token so the next Token call fetches anew.
func (p *CachingProvider) ForceRefresh(_ context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.token = ""
	p.expiry = time.Time{}
	return nil
}

// expiryOf derives an expiry for tok from its JWT exp claim, falling back
// to the configured TTL.
func (p *CachingProvider) expiryOf(tok string) time.Time {
	parser := jwt.NewParser()
	parsed, _, err := parser.ParseUnverified(tok, jwt.MapClaims{})
	if err == nil {
		if exp, err := parsed.Claims.GetExpirationTime(); err == nil && exp != nil {
			return exp.Time
		}
	}
	return p.now().Add(p.fallbackTTL)
}
