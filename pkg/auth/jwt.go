package auth

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/lestrrat-go/jwx/v2/jwk"
	"github.com/lestrrat-go/jwx/v2/jws"
	"github.com/lestrrat-go/jwx/v2/jwt"
)

const (
	// jwksRefreshInterval bounds how long a fetched key set is trusted.
	jwksRefreshInterval = time.Hour

	// payloadCacheTTL is how long a verified token's claims are reused
	// without re-verifying the signature.
	payloadCacheTTL = 5 * time.Minute

	// expectedAudience is the audience claim the provider stamps on
	// user-facing tokens.
	expectedAudience = "authenticated"
)

// Claims carries the verified identity out of a JWT.
type Claims struct {
	Subject string
	Email   string
}

type cachedClaims struct {
	claims    Claims
	expiresAt time.Time
}

// JWTValidator verifies ES256 tokens against the provider's JWKS endpoint.
// The key set is cached for an hour and refreshed once on a verification
// failure, which covers key rotation without hammering the endpoint.
// Verified payloads are cached briefly keyed on the raw token string.
type JWTValidator struct {
	jwksURL  string
	issuer   string
	cache    *jwk.Cache
	payload  map[string]cachedClaims
	payloadM sync.Mutex
}

// NewJWTValidator creates a validator for the provider at baseURL. The
// issuer is derived as <base>/auth/v1.
func NewJWTValidator(ctx context.Context, baseURL, jwksURL string) (*JWTValidator, error) {
	cache := jwk.NewCache(ctx)
	if err := cache.Register(jwksURL, jwk.WithMinRefreshInterval(jwksRefreshInterval)); err != nil {
		return nil, fmt.Errorf("failed to register JWKS URL: %w", err)
	}
	if _, err := cache.Refresh(ctx, jwksURL); err != nil {
		return nil, fmt.Errorf("failed to fetch JWKS from %s: %w", jwksURL, err)
	}
	return &JWTValidator{
		jwksURL: jwksURL,
		issuer:  baseURL + "/auth/v1",
		cache:   cache,
		payload: make(map[string]cachedClaims),
	}, nil
}

// Validate verifies the token and returns its claims.
func (v *JWTValidator) Validate(ctx context.Context, token string) (*Claims, error) {
	now := time.Now()

	v.payloadM.Lock()
	if cached, ok := v.payload[token]; ok && now.Before(cached.expiresAt) {
		v.payloadM.Unlock()
		claims := cached.claims
		return &claims, nil
	}
	v.payloadM.Unlock()

	parsed, err := v.parse(ctx, token, false)
	if err != nil {
		// One refresh retry covers a rotated signing key whose kid is
		// not in the cached set.
		parsed, err = v.parse(ctx, token, true)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidCredential, err)
		}
	}

	if parsed.Subject() == "" {
		return nil, fmt.Errorf("%w: missing sub claim", ErrInvalidCredential)
	}
	if parsed.IssuedAt().IsZero() {
		return nil, fmt.Errorf("%w: missing iat claim", ErrInvalidCredential)
	}

	claims := Claims{Subject: parsed.Subject()}
	if email, ok := parsed.Get("email"); ok {
		if s, ok := email.(string); ok {
			claims.Email = s
		}
	}

	ttl := payloadCacheTTL
	if exp := parsed.Expiration(); !exp.IsZero() && exp.Before(now.Add(ttl)) {
		ttl = exp.Sub(now)
	}
	if ttl > 0 {
		v.payloadM.Lock()
		v.payload[token] = cachedClaims{claims: claims, expiresAt: now.Add(ttl)}
		v.payloadM.Unlock()
	}
	return &claims, nil
}

func (v *JWTValidator) parse(ctx context.Context, token string, refresh bool) (jwt.Token, error) {
	var (
		keyset jwk.Set
		err    error
	)
	if refresh {
		keyset, err = v.cache.Refresh(ctx, v.jwksURL)
	} else {
		keyset, err = v.cache.Get(ctx, v.jwksURL)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get JWKS: %w", err)
	}

	return jwt.Parse(
		[]byte(token),
		jwt.WithKeySet(keyset, jws.WithRequireKid(true)),
		jwt.WithValidate(true),
		jwt.WithIssuer(v.issuer),
		jwt.WithAudience(expectedAudience),
		jwt.WithRequiredClaim("exp"),
		jwt.WithRequiredClaim("iat"),
	)
}
