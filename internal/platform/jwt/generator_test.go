package jwtmw

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateToken_Claims(t *testing.T) {
	gen := NewGenerator("test-secret", time.Hour)

	signed, err := gen.GenerateToken("scanner-01")
	require.NoError(t, err)
	require.NotEmpty(t, signed)

	token, err := jwt.Parse(signed, func(t *jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)
	require.True(t, token.Valid)

	claims, ok := token.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, "scanner-01", claims["sub"])

	exp, err := claims.GetExpirationTime()
	require.NoError(t, err)
	iat, err := claims.GetIssuedAt()
	require.NoError(t, err)
	assert.WithinDuration(t, iat.Add(time.Hour), exp.Time, 2*time.Second)
}

func TestGenerateToken_WrongSecretFailsVerification(t *testing.T) {
	gen := NewGenerator("test-secret", time.Hour)

	signed, err := gen.GenerateToken("scanner-01")
	require.NoError(t, err)

	_, err = jwt.Parse(signed, func(t *jwt.Token) (interface{}, error) {
		return []byte("other-secret"), nil
	})
	assert.Error(t, err)
}
