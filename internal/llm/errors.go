package llm

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// ConfigError indicates missing or invalid provider configuration
// (unknown provider, missing credentials).
type ConfigError struct {
	Provider string
	Err      error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("llm config (%s): %v", e.Provider, e.Err)
}

func (e *ConfigError) Unwrap() error { return e.Err }

// TransportError indicates a network failure or an HTTP status >= 400 from
// the provider. StatusCode is 0 for pure network errors. RetryAfter is set
// when the provider returned a rate-limit hint.
type TransportError struct {
	StatusCode int
	RetryAfter time.Duration
	Err        error
}

func (e *TransportError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("llm transport (HTTP %d): %v", e.StatusCode, e.Err)
	}
	return fmt.Sprintf("llm transport: %v", e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// Transient reports whether a retry is worthwhile: rate limits, server
// errors and plain network failures qualify; 4xx client errors do not.
func (e *TransportError) Transient() bool {
	return e.StatusCode == 0 || e.StatusCode == 429 || e.StatusCode >= 500
}

// FormatError indicates the LLM returned content with an unexpected shape:
// an empty choice list, non-JSON output where a schema was requested, or
// JSON that fails schema validation.
type FormatError struct {
	Content json.RawMessage
	Err     error
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("llm response format: %v", e.Err)
}

func (e *FormatError) Unwrap() error { return e.Err }

// MaxTokensError indicates the response was truncated because it hit the
// MaxTokens limit. Not transient: the request needs a larger budget.
type MaxTokensError struct {
	Content json.RawMessage
}

func (e *MaxTokensError) Error() string {
	return "llm response truncated: max tokens exceeded"
}

// IsTransient reports whether err is worth retrying against the same
// provider.
func IsTransient(err error) bool {
	var te *TransportError
	if errors.As(err, &te) {
		return te.Transient()
	}
	return false
}
