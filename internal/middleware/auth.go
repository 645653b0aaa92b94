// File: internal/middleware/auth.go
package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"aincome_backend/internal/common"
	"aincome_backend/internal/shared"
)

const (
	// AuthorizationHeader is the header name for the bearer token.
	AuthorizationHeader = "Authorization"
	// AuthorizationTypeBearer is the expected authorization scheme.
	AuthorizationTypeBearer = "bearer"
	// AccessTokenKey is the context key holding the caller's raw access token.
	AccessTokenKey = "accessToken"
	// UserClaimsKey is the context key holding the validated token claims.
	UserClaimsKey = "userClaims"
)

// AuthMiddleware extracts and validates the bearer token, then stashes the
// raw token and its claims in the Gin context. Handlers forward the raw token
// to the auth backend, which remains the authority on its validity.
func AuthMiddleware(tokenService shared.TokenService, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader(AuthorizationHeader)
		if authHeader == "" {
			logger.Debug("Authorization header missing")
			common.RespondWithError(c, common.ErrUnauthorized.WithDetails("Authorization header is required."))
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || strings.ToLower(parts[0]) != AuthorizationTypeBearer {
			logger.Debug("Authorization header format invalid")
			common.RespondWithError(c, common.ErrUnauthorized.WithDetails("Authorization header format must be 'Bearer <token>'."))
			return
		}

		tokenString := parts[1]
		claims, err := tokenService.ValidateToken(tokenString)
		if err != nil {
			logger.Warn("Token validation failed", zap.Error(err))
			common.RespondWithError(c, common.ErrUnauthorized.WithDetails("Invalid or expired access token."))
			return
		}

		c.Set(AccessTokenKey, tokenString)
		c.Set(UserClaimsKey, claims)

		logger.Debug("Caller authenticated",
			zap.String("subject", claims.Subject),
			zap.String("email", claims.Email),
		)

		c.Next()
	}
}

// AccessToken returns the raw bearer token stashed by AuthMiddleware, or an
// empty string outside an authenticated route.
func AccessToken(c *gin.Context) string {
	return c.GetString(AccessTokenKey)
}
