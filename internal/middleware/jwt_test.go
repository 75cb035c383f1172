package middleware

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signHS256(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func TestHS256Validator_ValidToken(t *testing.T) {
	v, err := NewHS256Validator("test-secret")
	require.NoError(t, err)

	now := time.Now()
	signed := signHS256(t, "test-secret", jwt.MapClaims{
		"sub":      "u-1",
		"role":     "OWNER",
		"salon_id": "s-1",
		"iat":      now.Unix(),
		"exp":      now.Add(time.Hour).Unix(),
	})

	claims, err := v.Validate(context.Background(), signed)
	require.NoError(t, err)
	assert.Equal(t, "u-1", claims.Subject)
	assert.Equal(t, "OWNER", claims.Role)
	assert.Equal(t, "s-1", claims.SalonID)
	assert.Nil(t, claims.ActingSalonID)
}

func TestHS256Validator_ActingSalonClaim(t *testing.T) {
	v, err := NewHS256Validator("test-secret")
	require.NoError(t, err)

	now := time.Now()
	signed := signHS256(t, "test-secret", jwt.MapClaims{
		"sub":             "admin-1",
		"role":            "SUPER_ADMIN",
		"acting_salon_id": "s-7",
		"iat":             now.Unix(),
		"exp":             now.Add(time.Hour).Unix(),
	})

	claims, err := v.Validate(context.Background(), signed)
	require.NoError(t, err)
	require.NotNil(t, claims.ActingSalonID)
	assert.Equal(t, "s-7", *claims.ActingSalonID)
	assert.Empty(t, claims.SalonID)
}

func TestHS256Validator_ExpiredToken(t *testing.T) {
	v, err := NewHS256Validator("test-secret")
	require.NoError(t, err)

	signed := signHS256(t, "test-secret", jwt.MapClaims{
		"sub":  "u-1",
		"role": "OWNER",
		"iat":  time.Now().Add(-2 * time.Hour).Unix(),
		"exp":  time.Now().Add(-time.Hour).Unix(),
	})

	_, err = v.Validate(context.Background(), signed)
	assert.Error(t, err)
}

func TestHS256Validator_WrongSecret(t *testing.T) {
	v, err := NewHS256Validator("right-secret")
	require.NoError(t, err)

	signed := signHS256(t, "wrong-secret", jwt.MapClaims{
		"sub": "u-1", "role": "OWNER",
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	_, err = v.Validate(context.Background(), signed)
	assert.Error(t, err)
}

func TestHS256Validator_RejectsUnsignedToken(t *testing.T) {
	v, err := NewHS256Validator("test-secret")
	require.NoError(t, err)

	token := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"sub": "u-1", "role": "OWNER",
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = v.Validate(context.Background(), signed)
	assert.Error(t, err)
}

func TestHS256Validator_GarbageToken(t *testing.T) {
	v, err := NewHS256Validator("test-secret")
	require.NoError(t, err)

	_, err = v.Validate(context.Background(), "not-a-jwt")
	assert.Error(t, err)
}

func TestNewHS256Validator_EmptySecret(t *testing.T) {
	_, err := NewHS256Validator("")
	assert.Error(t, err)
}
