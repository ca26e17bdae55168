package llm

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// LoggingProvider is a decorator that records every LLM request.
type LoggingProvider struct {
	inner  Provider
	logger *zap.Logger
}

// WithLogging wraps a Provider with structured request logging.
func WithLogging(p Provider, logger *zap.Logger) Provider {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LoggingProvider{inner: p, logger: logger}
}

func (l *LoggingProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()

	resp, err := l.inner.Generate(ctx, req)

	fields := []zap.Field{
		zap.String("provider", l.inner.ModelID()),
		zap.String("purpose", PurposeFrom(ctx)),
		zap.Int64("latency_ms", time.Since(start).Milliseconds()),
		zap.Bool("success", err == nil),
	}

	if resp != nil {
		fields = append(fields,
			zap.String("model", resp.Model),
			zap.Int("input_tokens", resp.Usage.InputTokens),
			zap.Int("output_tokens", resp.Usage.OutputTokens),
		)
	}

	if err != nil {
		fields = append(fields, zap.Error(err))
		l.logger.Warn("llm request failed", fields...)
		return nil, err
	}

	l.logger.Info("llm request", fields...)
	return resp, nil
}

func (l *LoggingProvider) ModelID() string {
	return l.inner.ModelID()
}
