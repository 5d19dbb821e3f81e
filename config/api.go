package config

import (
	"strings"
	"time"
)

// APIConfig contains backend API configuration.
type APIConfig struct {
	// BaseURL is the base URL of the backend (e.g., "https://api.example.gouv.fr").
	// All endpoint paths are resolved relative to it.
	BaseURL string `env:"API_BASE_URL" envDefault:"http://localhost:8000"`

	// Timeout bounds every outgoing HTTP request. The transport applies it
	// as a whole-request deadline; there is no per-phase timeout.
	Timeout time.Duration `env:"HTTP_TIMEOUT" envDefault:"30s"`

	// UserAgent is sent on every request.
	UserAgent string `env:"USER_AGENT" envDefault:"resrel-go"`
}

// Sanitize applies guardrails to API configuration values.
func (a *APIConfig) Sanitize() {
	a.BaseURL = strings.TrimRight(strings.TrimSpace(a.BaseURL), "/")

	// Clamp the timeout to a sane floor so a typo'd "30" (nanoseconds)
	// does not kill every request.
	if a.Timeout < time.Second {
		a.Timeout = DefaultHTTPTimeout
	}

	if strings.TrimSpace(a.UserAgent) == "" {
		a.UserAgent = "resrel-go"
	}
}
