// File: internal/auth/token_test.go
package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"aincome_backend/internal/config"
	"aincome_backend/internal/shared"
)

func signedToken(t *testing.T, secret string) string {
	t.Helper()
	claims := &shared.Claims{
		Email: "user@example.com",
		Role:  "authenticated",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "7f9c24e5-2f88-4a28-9d0e-6f3f7a2b1c45",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func TestValidateToken_VerifiesSignatureWithSecret(t *testing.T) {
	cfg := &config.Config{SupabaseJWTSecret: "test-secret"}
	svc := NewJWTService(cfg, zap.NewNop())

	claims, err := svc.ValidateToken(signedToken(t, "test-secret"))
	require.NoError(t, err)
	assert.Equal(t, "user@example.com", claims.Email)
	assert.Equal(t, "7f9c24e5-2f88-4a28-9d0e-6f3f7a2b1c45", claims.Subject)
}

func TestValidateToken_RejectsWrongSignature(t *testing.T) {
	cfg := &config.Config{SupabaseJWTSecret: "test-secret"}
	svc := NewJWTService(cfg, zap.NewNop())

	_, err := svc.ValidateToken(signedToken(t, "other-secret"))
	assert.Error(t, err)
}

func TestValidateToken_RejectsGarbage(t *testing.T) {
	cfg := &config.Config{SupabaseJWTSecret: "test-secret"}
	svc := NewJWTService(cfg, zap.NewNop())

	_, err := svc.ValidateToken("not-a-token")
	assert.Error(t, err)
}

func TestValidateToken_DecodesWithoutSecret(t *testing.T) {
	svc := NewJWTService(&config.Config{}, zap.NewNop())

	claims, err := svc.ValidateToken(signedToken(t, "whatever"))
	require.NoError(t, err)
	assert.Equal(t, "user@example.com", claims.Email)
}
