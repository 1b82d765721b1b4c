package service

import (
	"testing"
	"time"

	"aniview/internal/config"

	"github.com/stretchr/testify/assert"
)

func testAuthConfig(expiry time.Duration) *config.Config {
	return &config.Config{
		JWTSecret: "0123456789abcdef0123456789abcdef",
		JWTExpiry: expiry,
	}
}

func TestToken_RoundTrip(t *testing.T) {
	svc := NewAuthService(testAuthConfig(time.Hour))

	token, err := svc.GenerateToken(42)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
}

func TestToken_Expired(t *testing.T) {
	svc := NewAuthService(testAuthConfig(-time.Minute))

	token, err := svc.GenerateToken(42)
	assert.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestToken_WrongSecret(t *testing.T) {
	issuer := NewAuthService(testAuthConfig(time.Hour))
	verifier := NewAuthService(&config.Config{
		JWTSecret: "ffffffffffffffffffffffffffffffff",
		JWTExpiry: time.Hour,
	})

	token, err := issuer.GenerateToken(42)
	assert.NoError(t, err)

	_, err = verifier.ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestToken_Garbage(t *testing.T) {
	svc := NewAuthService(testAuthConfig(time.Hour))

	_, err := svc.ValidateToken("not.a.token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
