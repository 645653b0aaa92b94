// File: internal/auth/handler.go
package auth

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"aincome_backend/internal/common"
	"aincome_backend/internal/middleware"
)

// Handler exposes the auth facade over HTTP. Because the facade never faults,
// handlers answer 200 with a value-level error field; only malformed requests
// and missing bearer tokens produce HTTP-level errors.
type Handler struct {
	service *Service
	logger  *zap.Logger
}

// NewHandler creates a new auth handler.
func NewHandler(service *Service, logger *zap.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// RegisterRoutes sets up the routes for authentication operations.
func (h *Handler) RegisterRoutes(router *gin.RouterGroup, authMW gin.HandlerFunc) {
	authGroup := router.Group("/auth")
	{
		authGroup.POST("/signup", h.signUp)
		authGroup.POST("/signin", h.signIn)
		authGroup.POST("/reset-password", h.resetPassword)
		authGroup.POST("/session", h.getSession)

		authGroup.POST("/signout", authMW, h.signOut)
		authGroup.POST("/update-password", authMW, h.updatePassword)
		authGroup.GET("/me", authMW, h.getCurrentUser)
	}
}

func (h *Handler) signUp(c *gin.Context) {
	var req SignUpRequest
	if !h.bind(c, &req, "Sign-up") {
		return
	}

	result := h.service.SignUp(c.Request.Context(), Credentials{
		Email:    req.Email,
		Password: req.Password,
		Name:     req.Name,
	})
	common.RespondOK(c, "Sign-up processed.", result)
}

func (h *Handler) signIn(c *gin.Context) {
	var req SignInRequest
	if !h.bind(c, &req, "Sign-in") {
		return
	}

	result := h.service.SignIn(c.Request.Context(), req.Email, req.Password)
	common.RespondOK(c, "Sign-in processed.", result)
}

func (h *Handler) signOut(c *gin.Context) {
	result := h.service.SignOut(c.Request.Context(), middleware.AccessToken(c))
	common.RespondOK(c, "Sign-out processed.", result)
}

func (h *Handler) resetPassword(c *gin.Context) {
	var req ResetPasswordRequest
	if !h.bind(c, &req, "Reset password") {
		return
	}

	result := h.service.ResetPassword(c.Request.Context(), req.Email)
	common.RespondOK(c, "Password reset processed.", result)
}

func (h *Handler) updatePassword(c *gin.Context) {
	var req UpdatePasswordRequest
	if !h.bind(c, &req, "Update password") {
		return
	}

	result := h.service.UpdatePassword(c.Request.Context(), middleware.AccessToken(c), req.Password)
	common.RespondOK(c, "Password update processed.", result)
}

func (h *Handler) getSession(c *gin.Context) {
	var req SessionRequest
	if !h.bind(c, &req, "Get session") {
		return
	}

	result := h.service.GetSession(c.Request.Context(), req.RefreshToken)
	common.RespondOK(c, "Session fetch processed.", result)
}

func (h *Handler) getCurrentUser(c *gin.Context) {
	result := h.service.GetCurrentUser(c.Request.Context(), middleware.AccessToken(c))
	common.RespondOK(c, "User fetch processed.", result)
}

// bind decodes and validates a JSON request body, answering the error
// response itself when binding fails.
func (h *Handler) bind(c *gin.Context, req interface{}, op string) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		h.logger.Warn(op+": Invalid request body", zap.Error(err))
		var ve validator.ValidationErrors
		if errors.As(err, &ve) {
			common.RespondWithError(c, common.NewValidationAPIError(common.FormatValidationErrors(ve)))
			return false
		}
		common.RespondWithError(c, common.ErrBadRequest.WithDetails(err.Error()))
		return false
	}
	return true
}
