package llm

import (
	"context"
	"encoding/json"
	"testing"
)

func TestDefaultTemperatureApplied(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Content: json.RawMessage(`"ok"`)},
		MockResponse{Content: json.RawMessage(`"ok"`)},
	)
	p := withDefaults(mock, Config{Temperature: 0.2})

	if _, err := p.Generate(context.Background(), Request{}); err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if got := mock.Calls[0].Temperature; got != 0.2 {
		t.Errorf("Temperature = %v, want configured default 0.2", got)
	}

	// An explicit per-request temperature is left alone.
	if _, err := p.Generate(context.Background(), Request{Temperature: 0.9}); err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if got := mock.Calls[1].Temperature; got != 0.9 {
		t.Errorf("Temperature = %v, want explicit 0.9", got)
	}
}

func TestWithDefaultsNoopWhenUnset(t *testing.T) {
	mock := NewMockProvider()
	if p := withDefaults(mock, Config{}); p != Provider(mock) {
		t.Error("zero temperature should not wrap the provider")
	}
}
