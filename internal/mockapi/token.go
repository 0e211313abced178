package mockapi

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/LakhiniVoshadee/litshelf-storefront/internal/domain"
	"github.com/LakhiniVoshadee/litshelf-storefront/internal/session"
)

// issueToken mints an HS256 access token carrying the username, role
// and expiry claims the storefront client decodes.
func (s *Server) issueToken(user *domain.User, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := session.Claims{
		Username: user.Username,
		Role:     user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   fmt.Sprintf("%d", user.ID),
			Issuer:    "litshelf-mockapi",
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JWTSecret))
}

// verifyToken checks the signature and expiry of an access token.
func (s *Server) verifyToken(raw string) (*session.Claims, error) {
	claims := &session.Claims{}
	token, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(s.cfg.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		return nil, domain.ErrInvalidToken
	}
	return claims, nil
}
