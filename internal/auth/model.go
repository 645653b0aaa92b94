// File: internal/auth/model.go
package auth

import "aincome_backend/internal/shared"

// Credentials carry what a caller submits to register or sign in. They are
// forwarded to the backend and never retained.
type Credentials struct {
	Email    string
	Password string
	Name     string
}

// Result is the outcome envelope for operations with no payload. An empty
// Error means success.
type Result struct {
	Error string `json:"error,omitempty"`
}

// SignUpResult reports a registration outcome. RequiresEmailConfirmation is
// set when the backend created the account but issued no session yet.
type SignUpResult struct {
	Data                      *shared.SignUpData `json:"data,omitempty"`
	RequiresEmailConfirmation bool               `json:"requires_email_confirmation"`
	Error                     string             `json:"error,omitempty"`
}

// SignInResult reports a sign-in outcome.
type SignInResult struct {
	Data  *shared.Session `json:"data,omitempty"`
	Error string          `json:"error,omitempty"`
}

// SessionResult reports a session fetch outcome.
type SessionResult struct {
	Data  *shared.Session `json:"data,omitempty"`
	Error string          `json:"error,omitempty"`
}

// UserResult reports a user fetch outcome.
type UserResult struct {
	User  *shared.User `json:"user,omitempty"`
	Error string       `json:"error,omitempty"`
}

// --- Request DTOs ---

// SignUpRequest is the payload for POST /auth/signup.
type SignUpRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Name     string `json:"name" binding:"omitempty,max=100"`
}

// SignInRequest is the payload for POST /auth/signin.
type SignInRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// ResetPasswordRequest is the payload for POST /auth/reset-password.
type ResetPasswordRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// UpdatePasswordRequest is the payload for POST /auth/update-password.
type UpdatePasswordRequest struct {
	Password string `json:"password" binding:"required,min=6"`
}

// SessionRequest is the payload for POST /auth/session.
type SessionRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}
