package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"
)

// AppConfig is the main application configuration struct that composes
// domain-specific configuration from separate files.
//
// Configuration is loaded from environment variables using the
// github.com/caarlos0/env library. See individual domain config
// files for details on available environment variables:
//   - api.go: Backend API configuration
//   - storage.go: Local token storage configuration
type AppConfig struct {
	// IsDev controls development mode behavior (verbose logging, .env loading).
	// Set DEV=true or NODE_ENV=development for development mode.
	IsDev bool `env:"DEV" envDefault:"false"`

	// API is the backend API configuration.
	API APIConfig `envPrefix:"RESREL_"`

	// Storage is the local token storage configuration.
	Storage StorageConfig `envPrefix:"RESREL_"`
}

// Sanitize applies guardrails to configuration values loaded from env.
// This should be called after loading configuration from environment variables.
func (c *AppConfig) Sanitize() {
	c.API.Sanitize()
	c.Storage.Sanitize()

	// Check NODE_ENV for dev mode
	c.detectDevMode()
}

// detectDevMode checks both DEV and NODE_ENV environment variables.
// NODE_ENV is checked as a fallback (common in frontend tooling).
func (c *AppConfig) detectDevMode() {
	if !c.IsDev {
		nodeEnv := strings.ToLower(os.Getenv("NODE_ENV"))
		c.IsDev = nodeEnv == "development" || nodeEnv == "dev"
	}
}

// StorageConfig controls where the session token is persisted between runs.
type StorageConfig struct {
	// TokenPath is the file that holds the bearer token. Empty means
	// "$HOME/.resrel/token".
	TokenPath string `env:"TOKEN_PATH"`
}

// Sanitize fills in the default token path when none is configured.
func (s *StorageConfig) Sanitize() {
	if strings.TrimSpace(s.TokenPath) != "" {
		return
	}
	home, err := os.UserHomeDir()
	if err != nil {
		// Fall back to a relative path; the token store creates the directory.
		s.TokenPath = filepath.Join(".resrel", "token")
		return
	}
	s.TokenPath = filepath.Join(home, ".resrel", "token")
}

// DefaultHTTPTimeout is the floor applied to the configured request timeout.
const DefaultHTTPTimeout = 30 * time.Second
