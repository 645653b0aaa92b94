// File: internal/supabase/client.go
package supabase

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"go.uber.org/zap"

	"aincome_backend/internal/config"
	"aincome_backend/internal/shared"
)

// Client talks to a Supabase (GoTrue) auth service over its REST API.
// It implements shared.AuthBackend.
type Client struct {
	baseURL    string
	anonKey    string
	httpClient *http.Client
	logger     *zap.Logger
}

// NewClient creates a new Supabase auth client from the application config.
func NewClient(cfg *config.Config, logger *zap.Logger) (*Client, error) {
	if cfg.SupabaseURL == "" {
		logger.Error("Supabase URL is not configured.")
		return nil, fmt.Errorf("supabase URL is required")
	}
	if cfg.SupabaseAnonKey == "" {
		logger.Error("Supabase anon key is not configured.")
		return nil, fmt.Errorf("supabase anon key is required")
	}

	return &Client{
		baseURL:    strings.TrimRight(cfg.SupabaseURL, "/"),
		anonKey:    cfg.SupabaseAnonKey,
		httpClient: &http.Client{Timeout: cfg.AuthRequestTimeout},
		logger:     logger,
	}, nil
}

var _ shared.AuthBackend = (*Client)(nil)

// SignUp registers a new account. No email redirect is sent with the request;
// the confirmation flow is configured entirely on the backend side.
func (c *Client) SignUp(ctx context.Context, email, password, name string) (*shared.SignUpData, error) {
	body := map[string]interface{}{
		"email":    email,
		"password": password,
	}
	if name != "" {
		body["data"] = map[string]interface{}{"name": name}
	}

	var raw json.RawMessage
	if err := c.do(ctx, http.MethodPost, "/auth/v1/signup", nil, "", body, &raw); err != nil {
		return nil, err
	}

	// When auto-confirm is on the backend answers with a full session; when
	// confirmation is pending it answers with the bare user record.
	if bytes.Contains(raw, []byte(`"access_token"`)) {
		var session shared.Session
		if err := json.Unmarshal(raw, &session); err != nil {
			return nil, fmt.Errorf("could not decode sign-up session: %w", err)
		}
		return &shared.SignUpData{User: session.User, Session: &session}, nil
	}

	var user shared.User
	if err := json.Unmarshal(raw, &user); err != nil {
		return nil, fmt.Errorf("could not decode sign-up user: %w", err)
	}
	return &shared.SignUpData{User: &user}, nil
}

// SignInWithPassword exchanges email/password credentials for a session.
func (c *Client) SignInWithPassword(ctx context.Context, email, password string) (*shared.Session, error) {
	body := map[string]string{
		"email":    email,
		"password": password,
	}
	query := url.Values{"grant_type": {"password"}}

	var session shared.Session
	if err := c.do(ctx, http.MethodPost, "/auth/v1/token", query, "", body, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

// SignOut revokes the session behind the given access token.
func (c *Client) SignOut(ctx context.Context, accessToken string) error {
	return c.do(ctx, http.MethodPost, "/auth/v1/logout", nil, accessToken, nil, nil)
}

// ResetPasswordForEmail asks the backend to send a reset link. The redirect
// is the deep link the mobile app registers for landing the user back in-app.
func (c *Client) ResetPasswordForEmail(ctx context.Context, email, redirectTo string) error {
	body := map[string]string{"email": email}
	var query url.Values
	if redirectTo != "" {
		query = url.Values{"redirect_to": {redirectTo}}
	}
	return c.do(ctx, http.MethodPost, "/auth/v1/recover", query, "", body, nil)
}

// UpdateUser sets a new password on the account behind the access token.
func (c *Client) UpdateUser(ctx context.Context, accessToken, newPassword string) (*shared.User, error) {
	body := map[string]string{"password": newPassword}

	var user shared.User
	if err := c.do(ctx, http.MethodPut, "/auth/v1/user", nil, accessToken, body, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// GetSession materializes a fresh session from a refresh token. Nothing is
// cached here; every call is a round trip.
func (c *Client) GetSession(ctx context.Context, refreshToken string) (*shared.Session, error) {
	body := map[string]string{"refresh_token": refreshToken}
	query := url.Values{"grant_type": {"refresh_token"}}

	var session shared.Session
	if err := c.do(ctx, http.MethodPost, "/auth/v1/token", query, "", body, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

// GetUser fetches the user record behind the given access token.
func (c *Client) GetUser(ctx context.Context, accessToken string) (*shared.User, error) {
	var user shared.User
	if err := c.do(ctx, http.MethodGet, "/auth/v1/user", nil, accessToken, nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// errorBody covers the error shapes GoTrue responds with across versions.
type errorBody struct {
	Msg              string `json:"msg"`
	Message          string `json:"message"`
	ErrorDescription string `json:"error_description"`
	ErrorField       string `json:"error"`
}

func (b errorBody) text() string {
	switch {
	case b.Msg != "":
		return b.Msg
	case b.Message != "":
		return b.Message
	case b.ErrorDescription != "":
		return b.ErrorDescription
	default:
		return b.ErrorField
	}
}

// do performs a single request against the auth service. A token argument
// overrides the anon key as the bearer credential.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, token string, body, out interface{}) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("could not encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return fmt.Errorf("could not build request: %w", err)
	}
	req.Header.Set("apikey", c.anonKey)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	} else {
		req.Header.Set("Authorization", "Bearer "+c.anonKey)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("Auth backend request failed", zap.String("path", path), zap.Error(err))
		return err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("could not read response body: %w", err)
	}

	if resp.StatusCode >= http.StatusBadRequest {
		var eb errorBody
		_ = json.Unmarshal(data, &eb)
		c.logger.Debug("Auth backend reported an error",
			zap.String("path", path),
			zap.Int("status", resp.StatusCode),
			zap.String("message", eb.text()),
		)
		return &shared.BackendError{Status: resp.StatusCode, Message: eb.text()}
	}

	if out != nil && len(data) > 0 {
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("could not decode response body: %w", err)
		}
	}
	return nil
}
