// File: internal/auth/token.go
package auth

import (
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	"aincome_backend/internal/config"
	"aincome_backend/internal/shared"
)

// JWTService validates access tokens minted by the auth backend. It never
// issues tokens itself.
type JWTService struct {
	cfg    *config.Config
	logger *zap.Logger
}

// NewJWTService creates a new JWT validation service.
func NewJWTService(cfg *config.Config, logger *zap.Logger) shared.TokenService {
	if cfg.SupabaseJWTSecret == "" {
		logger.Warn("SUPABASE_JWT_SECRET is not set; bearer tokens will be parsed without local signature verification. The auth backend still verifies every forwarded token.")
	}
	return &JWTService{cfg: cfg, logger: logger}
}

// ValidateToken parses a backend-issued token and returns its claims. With a
// configured secret the HS256 signature is verified locally; without one the
// claims are only decoded, since the backend remains the authority on every
// forwarded call.
func (s *JWTService) ValidateToken(tokenString string) (*shared.Claims, error) {
	claims := &shared.Claims{}

	if s.cfg.SupabaseJWTSecret == "" {
		if _, _, err := jwt.NewParser().ParseUnverified(tokenString, claims); err != nil {
			s.logger.Warn("Failed to parse token", zap.Error(err))
			return nil, fmt.Errorf("invalid token: %w", err)
		}
		return claims, nil
	}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.cfg.SupabaseJWTSecret), nil
	})
	if err != nil {
		s.logger.Warn("Failed to validate token", zap.Error(err))
		return nil, fmt.Errorf("invalid token: %w", err)
	}
	if claims, ok := token.Claims.(*shared.Claims); ok && token.Valid {
		return claims, nil
	}
	return nil, errors.New("invalid token claims")
}
