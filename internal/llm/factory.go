package llm

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
)

// timeoutProvider enforces a per-call deadline on Generate.
type timeoutProvider struct {
	inner   Provider
	timeout time.Duration
}

func withTimeout(p Provider, timeout time.Duration) Provider {
	if timeout <= 0 {
		return p
	}
	return &timeoutProvider{inner: p, timeout: timeout}
}

func (t *timeoutProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	ctx, cancel := context.WithTimeout(ctx, t.timeout)
	defer cancel()
	return t.inner.Generate(ctx, req)
}

func (t *timeoutProvider) ModelID() string {
	return t.inner.ModelID()
}

// defaultsProvider fills request fields left at their zero value from the
// configured defaults.
type defaultsProvider struct {
	inner       Provider
	temperature float64
}

func withDefaults(p Provider, cfg Config) Provider {
	if cfg.Temperature <= 0 {
		return p
	}
	return &defaultsProvider{inner: p, temperature: cfg.Temperature}
}

func (d *defaultsProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	if req.Temperature == 0 {
		req.Temperature = d.temperature
	}
	return d.inner.Generate(ctx, req)
}

func (d *defaultsProvider) ModelID() string {
	return d.inner.ModelID()
}

// NewProvider creates a Provider from configuration.
// It returns the provider wrapped with retry and logging middleware.
func NewProvider(ctx context.Context, cfg Config, logger *zap.Logger) (Provider, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var base Provider
	var err error

	switch cfg.Provider {
	case "openai":
		base, err = NewOpenAIProvider(cfg)
	case "azure":
		base, err = NewAzureProvider(cfg)
	case "anthropic":
		base, err = NewAnthropicProvider(cfg)
	case "gemini":
		base, err = NewGeminiProvider(ctx, cfg)
	case "mock":
		return WithLogging(NewOfflineProvider(), logger), nil
	default:
		return nil, fmt.Errorf("unknown LLM provider: %q", cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}

	// Wrap with middleware: caller → retry → logging → timeout → defaults → base
	timed := withTimeout(withDefaults(base, cfg), cfg.Timeout)
	logged := WithLogging(timed, logger)
	retried := WithRetry(logged, cfg.Retry)

	return retried, nil
}
