package session

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenClaims are the claims of interest carried by the console's bearer
// tokens.
type TokenClaims struct {
	Subject   string
	Role      string
	ExpiresAt time.Time
}

// InspectToken decodes the claims of a bearer token without verifying its
// signature. The server is the authority on token validity; this is only
// used to display expiry and subject information locally.
func InspectToken(token string) (*TokenClaims, error) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	out := &TokenClaims{}
	if sub, err := claims.GetSubject(); err == nil {
		out.Subject = sub
	}
	if role, ok := claims["role"].(string); ok {
		out.Role = role
	}
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		out.ExpiresAt = exp.Time
	}
	return out, nil
}

// IsExpired reports whether the token's expiry has passed. Tokens without an
// exp claim never report expired.
func (c *TokenClaims) IsExpired() bool {
	return !c.ExpiresAt.IsZero() && time.Now().After(c.ExpiresAt)
}
