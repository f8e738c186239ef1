package token

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is the subset of the upstream bearer token payload the portal needs.
type Claims struct {
	ID   int64  `json:"id"`
	Role string `json:"role,omitempty"`
	jwt.RegisteredClaims
}

// Decode extracts claims without verifying the signature. The upstream API
// signs and verifies its own tokens; the portal treats the token as opaque and
// only reads the identity, role and expiry baked into it.
func Decode(tokenString string) (*Claims, error) {
	parser := jwt.NewParser()

	parsed, _, err := parser.ParseUnverified(tokenString, &Claims{})
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok {
		return nil, fmt.Errorf("unexpected claims type %T", parsed.Claims)
	}
	return claims, nil
}

// ExpiresAtMillis returns the expiry as epoch milliseconds, 0 when the token
// carries no exp claim.
func (c *Claims) ExpiresAtMillis() int64 {
	if c.ExpiresAt == nil {
		return 0
	}
	return c.ExpiresAt.UnixMilli()
}
