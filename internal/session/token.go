package session

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/LakhiniVoshadee/litshelf-storefront/internal/domain"
)

// Claims are the token claims the client cares about. The client never
// verifies the signature (it does not hold the signing key); it only
// decodes the payload to derive identity and the expiry instant. The
// server re-verifies every request, so a tampered token buys nothing.
type Claims struct {
	Username string      `json:"username"`
	Role     domain.Role `json:"role"`
	jwt.RegisteredClaims
}

var parser = jwt.NewParser()

// ParseClaims decodes the claims of a JWT without verifying its
// signature. Malformed tokens are rejected.
func ParseClaims(token string) (*Claims, error) {
	claims := &Claims{}
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidToken, err)
	}
	return claims, nil
}

// IsExpired reports whether the token's exp claim is in the past. Pure
// function, no server contact. Fails closed: a malformed token or a
// token without an expiry claim is treated as expired.
func IsExpired(token string) bool {
	claims, err := ParseClaims(token)
	if err != nil {
		return true
	}
	if claims.ExpiresAt == nil {
		return true
	}
	return !claims.ExpiresAt.After(time.Now())
}
