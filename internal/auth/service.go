// File: internal/auth/service.go
package auth

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	"aincome_backend/internal/config"
	"aincome_backend/internal/shared"
)

// User-facing rewrites for the sign-in failures the backend is known to report.
const (
	msgEmailNotConfirmed  = "Please confirm your email address before signing in. Check your inbox for the confirmation link."
	msgInvalidCredentials = "Invalid email or password. Please check your credentials and try again."
	msgUserNotFound       = "No account found with this email. Please sign up first."
)

// Per-operation fallbacks used when the backend fault carries no message.
const (
	defaultSignUpError         = "Failed to sign up"
	defaultSignInError         = "Failed to sign in"
	defaultSignOutError        = "Failed to sign out"
	defaultResetPasswordError  = "Failed to send password reset email"
	defaultUpdatePasswordError = "Failed to update password"
	defaultGetSessionError     = "Failed to get session"
	defaultGetUserError        = "Failed to get user"
)

// Service is a uniform, never-failing facade over the auth backend. Every
// operation is a single round trip; backend faults come back as value-level
// error strings, never as Go errors.
type Service struct {
	backend shared.AuthBackend
	cfg     *config.Config
	logger  *zap.Logger
}

// NewService creates a new auth facade service.
func NewService(backend shared.AuthBackend, cfg *config.Config, logger *zap.Logger) *Service {
	return &Service{backend: backend, cfg: cfg, logger: logger}
}

// SignUp registers a new account. When the backend creates the user but
// issues no session, email confirmation is pending; that is signalled on the
// result rather than treated as a failure.
func (s *Service) SignUp(ctx context.Context, creds Credentials) SignUpResult {
	data, err := s.backend.SignUp(ctx, creds.Email, creds.Password, creds.Name)
	if err != nil {
		s.logger.Warn("Sign-up failed", zap.String("email", creds.Email), zap.Error(err))
		return SignUpResult{Error: messageOrDefault(err, defaultSignUpError)}
	}

	requiresConfirmation := data.User != nil && data.Session == nil
	return SignUpResult{Data: data, RequiresEmailConfirmation: requiresConfirmation}
}

// SignIn exchanges credentials for a session. Known backend failure texts are
// rewritten into actionable guidance; anything else passes through unchanged.
func (s *Service) SignIn(ctx context.Context, email, password string) SignInResult {
	session, err := s.backend.SignInWithPassword(ctx, email, password)
	if err != nil {
		s.logger.Warn("Sign-in failed", zap.String("email", email), zap.Error(err))
		return SignInResult{Error: normalizeSignInError(err)}
	}
	return SignInResult{Data: session}
}

// SignOut revokes the session behind the given access token.
func (s *Service) SignOut(ctx context.Context, accessToken string) Result {
	if err := s.backend.SignOut(ctx, accessToken); err != nil {
		s.logger.Warn("Sign-out failed", zap.Error(err))
		return Result{Error: messageOrDefault(err, defaultSignOutError)}
	}
	return Result{}
}

// ResetPassword asks the backend to email a reset link that lands the user
// back on the app's reset-password deep link.
func (s *Service) ResetPassword(ctx context.Context, email string) Result {
	if err := s.backend.ResetPasswordForEmail(ctx, email, s.cfg.PasswordResetRedirectURL); err != nil {
		s.logger.Warn("Password reset request failed", zap.String("email", email), zap.Error(err))
		return Result{Error: messageOrDefault(err, defaultResetPasswordError)}
	}
	return Result{}
}

// UpdatePassword sets a new password on the account behind the access token.
func (s *Service) UpdatePassword(ctx context.Context, accessToken, newPassword string) Result {
	if _, err := s.backend.UpdateUser(ctx, accessToken, newPassword); err != nil {
		s.logger.Warn("Password update failed", zap.Error(err))
		return Result{Error: messageOrDefault(err, defaultUpdatePasswordError)}
	}
	return Result{}
}

// GetSession materializes the session behind a refresh token.
func (s *Service) GetSession(ctx context.Context, refreshToken string) SessionResult {
	session, err := s.backend.GetSession(ctx, refreshToken)
	if err != nil {
		s.logger.Warn("Session fetch failed", zap.Error(err))
		return SessionResult{Error: messageOrDefault(err, defaultGetSessionError)}
	}
	return SessionResult{Data: session}
}

// GetCurrentUser fetches the user record behind an access token.
func (s *Service) GetCurrentUser(ctx context.Context, accessToken string) UserResult {
	user, err := s.backend.GetUser(ctx, accessToken)
	if err != nil {
		s.logger.Warn("User fetch failed", zap.Error(err))
		return UserResult{Error: messageOrDefault(err, defaultGetUserError)}
	}
	return UserResult{User: user}
}

// backendMessage extracts the human-readable text of a backend fault. It may
// be empty when the backend reported a fault with no message.
func backendMessage(err error) string {
	var be *shared.BackendError
	if errors.As(err, &be) {
		return be.Message
	}
	return err.Error()
}

func messageOrDefault(err error, fallback string) string {
	if msg := backendMessage(err); msg != "" {
		return msg
	}
	return fallback
}

// normalizeSignInError rewrites the three backend failure texts users run
// into most, matched case-insensitively on substrings.
func normalizeSignInError(err error) string {
	msg := backendMessage(err)
	lower := strings.ToLower(msg)

	switch {
	case strings.Contains(lower, "email not confirmed"):
		return msgEmailNotConfirmed
	case strings.Contains(lower, "invalid login credentials"):
		return msgInvalidCredentials
	case strings.Contains(lower, "user not found"):
		return msgUserNotFound
	case msg == "":
		return defaultSignInError
	}
	return msg
}
