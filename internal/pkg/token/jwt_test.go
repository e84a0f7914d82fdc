package token

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidateToken(t *testing.T) {
	svc := NewService("segredo-de-teste", time.Hour)

	tok, err := svc.GenerateToken("user-1", "admin")
	require.NoError(t, err)

	claims, err := svc.ValidateToken(tok)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "admin", claims.Role)
	assert.Equal(t, issuer, claims.Issuer)
}

func TestValidateToken_WrongSecret(t *testing.T) {
	tok, err := NewService("segredo-a", time.Hour).GenerateToken("user-1", "user")
	require.NoError(t, err)

	_, err = NewService("segredo-b", time.Hour).ValidateToken(tok)
	assert.Error(t, err)
}

func TestValidateToken_Expired(t *testing.T) {
	svc := NewService("segredo", time.Minute)
	svc.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }

	tok, err := svc.GenerateToken("user-1", "user")
	require.NoError(t, err)

	_, err = svc.ValidateToken(tok)
	assert.Error(t, err)
}

func TestValidateToken_ForeignIssuer(t *testing.T) {
	now := time.Now()
	claims := CustomClaims{
		UserID: "user-1",
		Role:   "admin",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    "outra-api",
		},
	}
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("segredo"))
	require.NoError(t, err)

	_, err = NewService("segredo", time.Hour).ValidateToken(tok)
	assert.ErrorIs(t, err, jwt.ErrTokenInvalidIssuer)
}
