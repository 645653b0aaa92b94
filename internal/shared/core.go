// File: internal/shared/core.go
package shared

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// User is the identity record issued by the auth backend. Its fields are
// passed through to clients; nothing here is persisted locally.
type User struct {
	ID               uuid.UUID              `json:"id"`
	Aud              string                 `json:"aud,omitempty"`
	Role             string                 `json:"role,omitempty"`
	Email            string                 `json:"email"`
	EmailConfirmedAt *time.Time             `json:"email_confirmed_at,omitempty"`
	UserMetadata     map[string]interface{} `json:"user_metadata,omitempty"`
	CreatedAt        *time.Time             `json:"created_at,omitempty"`
	UpdatedAt        *time.Time             `json:"updated_at,omitempty"`
}

// Session is the backend-issued proof of authentication. The service treats
// it as opaque beyond serializing it back to the caller.
type Session struct {
	AccessToken  string `json:"access_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int    `json:"expires_in"`
	ExpiresAt    int64  `json:"expires_at,omitempty"`
	RefreshToken string `json:"refresh_token"`
	User         *User  `json:"user,omitempty"`
}

// SignUpData is what the backend reports for a new registration. A user with
// no session means the account exists but email confirmation is still pending.
type SignUpData struct {
	User    *User    `json:"user,omitempty"`
	Session *Session `json:"session,omitempty"`
}

// BackendError is the structured failure reported by the auth backend. The
// message may be empty; callers are expected to substitute their own default.
type BackendError struct {
	Status  int
	Message string
}

func (e *BackendError) Error() string {
	return e.Message
}

// AuthBackend is the contract of the external auth service. Each method is a
// single round trip; no retries or caching happen behind this interface.
type AuthBackend interface {
	SignUp(ctx context.Context, email, password, name string) (*SignUpData, error)
	SignInWithPassword(ctx context.Context, email, password string) (*Session, error)
	SignOut(ctx context.Context, accessToken string) error
	ResetPasswordForEmail(ctx context.Context, email, redirectTo string) error
	UpdateUser(ctx context.Context, accessToken, newPassword string) (*User, error)
	GetSession(ctx context.Context, refreshToken string) (*Session, error)
	GetUser(ctx context.Context, accessToken string) (*User, error)
}

// Claims are the registered claims of a backend-issued access token plus the
// fields this service reads.
type Claims struct {
	Email string `json:"email,omitempty"`
	Role  string `json:"role,omitempty"`
	jwt.RegisteredClaims
}

// TokenService validates backend-issued access tokens. This service never
// mints tokens of its own; the backend is the sole issuer.
type TokenService interface {
	ValidateToken(tokenString string) (*Claims, error)
}
