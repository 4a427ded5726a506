package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/MicahParks/keyfunc/v3"
	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken is returned for any token that fails verification.
var ErrInvalidToken = errors.New("invalid token")

// Claims is the verified claim set attached to authenticated requests.
type Claims = jwt.MapClaims

// Verifier validates bearer tokens issued by the identity provider.
// Signing-key lookup is pluggable so tests can supply a fixed key instead
// of a live JWKS endpoint.
type Verifier struct {
	keys     jwt.Keyfunc
	issuer   string
	audience string
}

// NewVerifier builds a verifier with an explicit key resolver.
func NewVerifier(keys jwt.Keyfunc, issuer, audience string) *Verifier {
	return &Verifier{keys: keys, issuer: issuer, audience: audience}
}

// NewJWKSVerifier builds a verifier whose signing keys are resolved from
// the identity provider's published key set. The key set is cached and
// refreshed in the background with rate limiting.
func NewJWKSVerifier(ctx context.Context, domain, audience string) (*Verifier, error) {
	issuer := "https://" + domain + "/"
	jwksURL := issuer + ".well-known/jwks.json"
	k, err := keyfunc.NewDefaultCtx(ctx, []string{jwksURL})
	if err != nil {
		return nil, fmt.Errorf("fetch key set from %s: %w", jwksURL, err)
	}
	return NewVerifier(k.Keyfunc, issuer, audience), nil
}

// Verify parses and validates a bearer token. The token must be signed
// with RS256 by a key known to the resolver and carry the expected issuer
// and audience. Returns the verified claim set.
func (v *Verifier) Verify(tokenString string) (Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, jwt.MapClaims{}, v.keys,
		jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Alg()}),
		jwt.WithIssuer(v.issuer),
		jwt.WithAudience(v.audience),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
