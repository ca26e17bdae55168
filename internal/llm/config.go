package llm

import (
	"errors"
	"os"
	"strconv"
	"time"
)

// Config holds all LLM provider configuration.
type Config struct {
	// Provider selects which LLM provider to use.
	// Values: "openai", "azure", "anthropic", "gemini", "mock"
	Provider string

	// APIKey authenticates against the selected provider.
	APIKey string

	// BaseURL overrides the provider endpoint. Required for azure
	// (the resource endpoint), optional for openai-compatible APIs.
	BaseURL string

	// Model is the model identifier, or a friendly alias resolved per
	// provider ("gpt-4o-mini", "claude-haiku", "gemini-flash").
	Model string

	// Timeout is the per-call deadline applied to every Generate.
	// Default: 60s.
	Timeout time.Duration

	// Temperature is the default sampling temperature. Default: 0.2.
	Temperature float64

	Retry RetryConfig
}

// RetryConfig configures retry behavior for transient transport failures.
type RetryConfig struct {
	MaxAttempts int
	InitialWait time.Duration
	MaxWait     time.Duration
	Multiplier  float64
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Provider:    "mock",
		Model:       "gpt-4o-mini",
		Timeout:     60 * time.Second,
		Temperature: 0.2,
		Retry: RetryConfig{
			MaxAttempts: 3,
			InitialWait: 1 * time.Second,
			MaxWait:     10 * time.Second,
			Multiplier:  2.0,
		},
	}
}

// ConfigFromEnv builds a Config from PREPCORE_LLM_* environment variables,
// falling back to defaults for unset values.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()

	if p := os.Getenv("PREPCORE_LLM_PROVIDER"); p != "" {
		cfg.Provider = p
	}
	if k := os.Getenv("PREPCORE_LLM_API_KEY"); k != "" {
		cfg.APIKey = k
	}
	if u := os.Getenv("PREPCORE_LLM_BASE_URL"); u != "" {
		cfg.BaseURL = u
	}
	if m := os.Getenv("PREPCORE_LLM_MODEL"); m != "" {
		cfg.Model = m
	}
	if t := os.Getenv("PREPCORE_LLM_TIMEOUT"); t != "" {
		if d, err := time.ParseDuration(t); err == nil && d > 0 {
			cfg.Timeout = d
		}
	}
	if t := os.Getenv("PREPCORE_LLM_TEMPERATURE"); t != "" {
		if f, err := strconv.ParseFloat(t, 64); err == nil {
			cfg.Temperature = f
		}
	}

	return cfg
}

// Validate checks that the selected provider has its required settings.
// Returns a *ConfigError on failure.
func (c Config) Validate() error {
	switch c.Provider {
	case "openai", "anthropic", "gemini":
		if c.APIKey == "" {
			return &ConfigError{Provider: c.Provider, Err: errors.New("PREPCORE_LLM_API_KEY is required")}
		}
	case "azure":
		if c.APIKey == "" {
			return &ConfigError{Provider: c.Provider, Err: errors.New("PREPCORE_LLM_API_KEY is required")}
		}
		if c.BaseURL == "" {
			return &ConfigError{Provider: c.Provider, Err: errors.New("PREPCORE_LLM_BASE_URL (Azure resource endpoint) is required")}
		}
	case "mock":
		// No credentials needed.
	default:
		return &ConfigError{Provider: c.Provider, Err: errors.New("unknown provider")}
	}
	return nil
}
