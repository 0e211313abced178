package session

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LakhiniVoshadee/litshelf-storefront/internal/domain"
)

func mintToken(t *testing.T, username string, role domain.Role, expiresIn time.Duration) string {
	t.Helper()
	claims := Claims{
		Username: username,
		Role:     role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "1",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(expiresIn)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return token
}

func mintTokenNoExpiry(t *testing.T) string {
	t.Helper()
	claims := Claims{Username: "alice", Role: domain.RoleCustomer}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return token
}

func TestParseClaims(t *testing.T) {
	token := mintToken(t, "alice", domain.RoleCustomer, time.Hour)

	claims, err := ParseClaims(token)
	require.NoError(t, err)
	assert.Equal(t, "alice", claims.Username)
	assert.Equal(t, domain.RoleCustomer, claims.Role)
}

func TestParseClaims_Malformed(t *testing.T) {
	_, err := ParseClaims("not-a-jwt")
	assert.ErrorIs(t, err, domain.ErrInvalidToken)
}

func TestIsExpired(t *testing.T) {
	tests := []struct {
		name  string
		token string
		want  bool
	}{
		{"valid for an hour", mintToken(t, "alice", domain.RoleCustomer, time.Hour), false},
		{"expired an hour ago", mintToken(t, "alice", domain.RoleCustomer, -time.Hour), true},
		{"malformed fails closed", "garbage", true},
		{"empty fails closed", "", true},
		{"no expiry claim fails closed", mintTokenNoExpiry(t), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsExpired(tt.token))
		})
	}
}
