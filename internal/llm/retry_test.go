package llm

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"
)

func fastRetryConfig() RetryConfig {
	return RetryConfig{
		MaxAttempts: 3,
		InitialWait: time.Millisecond,
		MaxWait:     5 * time.Millisecond,
		Multiplier:  2.0,
	}
}

func TestRetrySucceedsAfterTransientError(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Err: &TransportError{StatusCode: 503, Err: errors.New("unavailable")}},
		MockResponse{Content: json.RawMessage(`{"ok":true}`)},
	)

	p := WithRetry(mock, fastRetryConfig())

	resp, err := p.Generate(context.Background(), Request{})
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if string(resp.Content) != `{"ok":true}` {
		t.Errorf("Content = %s, want {\"ok\":true}", resp.Content)
	}
	if mock.CallCount() != 2 {
		t.Errorf("CallCount = %d, want 2", mock.CallCount())
	}
}

func TestRetryDoesNotRetryClientErrors(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Err: &TransportError{StatusCode: 401, Err: errors.New("unauthorized")}},
	)

	p := WithRetry(mock, fastRetryConfig())

	_, err := p.Generate(context.Background(), Request{})
	if err == nil {
		t.Fatal("Generate() error = nil, want transport error")
	}
	if mock.CallCount() != 1 {
		t.Errorf("CallCount = %d, want 1", mock.CallCount())
	}
}

func TestRetryDoesNotRetryMaxTokens(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Err: &MaxTokensError{}},
	)

	p := WithRetry(mock, fastRetryConfig())

	_, err := p.Generate(context.Background(), Request{})
	var maxTok *MaxTokensError
	if !errors.As(err, &maxTok) {
		t.Fatalf("Generate() error = %v, want *MaxTokensError", err)
	}
	if mock.CallCount() != 1 {
		t.Errorf("CallCount = %d, want 1", mock.CallCount())
	}
}

func TestRetryFormatErrorGetsOneRetry(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Err: &FormatError{Err: errors.New("not json")}},
		MockResponse{Err: &FormatError{Err: errors.New("still not json")}},
		MockResponse{Content: json.RawMessage(`{}`)},
	)

	p := WithRetry(mock, fastRetryConfig())

	_, err := p.Generate(context.Background(), Request{})
	var format *FormatError
	if !errors.As(err, &format) {
		t.Fatalf("Generate() error = %v, want *FormatError", err)
	}
	// First call plus exactly one retry.
	if mock.CallCount() != 2 {
		t.Errorf("CallCount = %d, want 2", mock.CallCount())
	}
}

func TestRetryExhaustsAttempts(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Err: &TransportError{StatusCode: 500, Err: errors.New("boom")}},
		MockResponse{Err: &TransportError{StatusCode: 500, Err: errors.New("boom")}},
		MockResponse{Err: &TransportError{StatusCode: 500, Err: errors.New("boom")}},
	)

	p := WithRetry(mock, fastRetryConfig())

	_, err := p.Generate(context.Background(), Request{})
	if err == nil {
		t.Fatal("Generate() error = nil, want transport error")
	}
	if mock.CallCount() != 3 {
		t.Errorf("CallCount = %d, want 3", mock.CallCount())
	}
}

func TestRetryRespectsRetryAfter(t *testing.T) {
	r := &RetryProvider{config: fastRetryConfig()}

	err := &TransportError{StatusCode: 429, RetryAfter: 42 * time.Millisecond}
	if got := r.backoff(0, err); got != 42*time.Millisecond {
		t.Errorf("backoff = %v, want 42ms", got)
	}
}

func TestRetryDoesNotRetryCanceledContext(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Err: context.Canceled},
	)

	p := WithRetry(mock, fastRetryConfig())

	_, err := p.Generate(context.Background(), Request{})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("Generate() error = %v, want context.Canceled", err)
	}
	if mock.CallCount() != 1 {
		t.Errorf("CallCount = %d, want 1", mock.CallCount())
	}
}
