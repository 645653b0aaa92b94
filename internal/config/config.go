// File: internal/config/config.go
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
type Config struct {
	// Server Configuration
	GinMode       string        `mapstructure:"GIN_MODE"`
	ServerHost    string        `mapstructure:"SERVER_HOST"`
	ServerPort    string        `mapstructure:"SERVER_PORT"`
	ServerTimeout time.Duration `mapstructure:"SERVER_TIMEOUT_SECONDS"`

	// Logging Configuration
	LogLevel  string `mapstructure:"LOG_LEVEL"`
	LogFormat string `mapstructure:"LOG_FORMAT"`

	// Supabase (GoTrue) Auth Backend Configuration
	SupabaseURL        string        `mapstructure:"SUPABASE_URL"`
	SupabaseAnonKey    string        `mapstructure:"SUPABASE_ANON_KEY"`
	SupabaseJWTSecret  string        `mapstructure:"SUPABASE_JWT_SECRET"`
	AuthRequestTimeout time.Duration `mapstructure:"AUTH_REQUEST_TIMEOUT_SECONDS"`

	// Deep link the reset-password email should land on inside the mobile app.
	PasswordResetRedirectURL string `mapstructure:"PASSWORD_RESET_REDIRECT_URL"`
}

// Load attempts to load configuration from a .env file (if present) and environment variables.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("error loading .env file: %w", err)
		}
	}

	v := viper.New()

	// Set default values
	v.SetDefault("GIN_MODE", "debug")
	v.SetDefault("SERVER_HOST", "0.0.0.0")
	v.SetDefault("SERVER_PORT", "8080")
	v.SetDefault("SERVER_TIMEOUT_SECONDS", 30)

	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "console")

	// Supabase
	v.SetDefault("SUPABASE_URL", "")
	v.SetDefault("SUPABASE_ANON_KEY", "")
	v.SetDefault("SUPABASE_JWT_SECRET", "") // Optional; bearer tokens pass through unverified if unset
	v.SetDefault("AUTH_REQUEST_TIMEOUT_SECONDS", 15)
	v.SetDefault("PASSWORD_RESET_REDIRECT_URL", "aincome://reset-password")

	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling configuration: %w", err)
	}

	// Convert duration fields
	cfg.ServerTimeout = time.Duration(v.GetInt("SERVER_TIMEOUT_SECONDS")) * time.Second
	cfg.AuthRequestTimeout = time.Duration(v.GetInt("AUTH_REQUEST_TIMEOUT_SECONDS")) * time.Second

	if cfg.SupabaseURL == "" {
		return nil, fmt.Errorf("SUPABASE_URL is required")
	}
	if cfg.SupabaseAnonKey == "" {
		return nil, fmt.Errorf("SUPABASE_ANON_KEY is required")
	}

	return &cfg, nil
}
