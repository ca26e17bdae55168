package llm

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
)

func TestCompleteReturnsText(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Content: json.RawMessage("Bonjour, comment allez-vous ?")},
	)

	got, err := Complete(context.Background(), mock, "You are a tutor.", "Say hello in French.")
	if err != nil {
		t.Fatalf("Complete() error = %v", err)
	}
	if got != "Bonjour, comment allez-vous ?" {
		t.Errorf("Complete() = %q", got)
	}

	if len(mock.Calls) != 1 {
		t.Fatalf("Calls = %d, want 1", len(mock.Calls))
	}
	req := mock.Calls[0]
	if req.System != "You are a tutor." {
		t.Errorf("System = %q", req.System)
	}
	if len(req.Messages) != 1 || req.Messages[0].Role != RoleUser {
		t.Errorf("Messages = %+v, want one user message", req.Messages)
	}
	if req.Schema != nil {
		t.Error("Schema should be nil for plain completion")
	}
}

func TestCompletePropagatesError(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Err: &TransportError{StatusCode: 500, Err: errors.New("boom")}},
	)

	_, err := Complete(context.Background(), mock, "", "hi")
	var te *TransportError
	if !errors.As(err, &te) {
		t.Fatalf("Complete() error = %v, want *TransportError", err)
	}
}

func TestMockProviderFIFO(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Content: json.RawMessage(`"first"`)},
		MockResponse{Content: json.RawMessage(`"second"`)},
	)

	r1, err := mock.Generate(context.Background(), Request{})
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	r2, err := mock.Generate(context.Background(), Request{})
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if string(r1.Content) != `"first"` || string(r2.Content) != `"second"` {
		t.Errorf("responses out of order: %s, %s", r1.Content, r2.Content)
	}

	_, err = mock.Generate(context.Background(), Request{})
	var te *TransportError
	if !errors.As(err, &te) {
		t.Fatalf("exhausted mock error = %v, want *TransportError", err)
	}
}

func TestTransportErrorTransient(t *testing.T) {
	cases := []struct {
		status int
		want   bool
	}{
		{0, true},
		{429, true},
		{500, true},
		{503, true},
		{400, false},
		{401, false},
		{404, false},
	}
	for _, tc := range cases {
		e := &TransportError{StatusCode: tc.status, Err: errors.New("x")}
		if got := e.Transient(); got != tc.want {
			t.Errorf("Transient(%d) = %v, want %v", tc.status, got, tc.want)
		}
	}
}

func TestIsTransient(t *testing.T) {
	if !IsTransient(&TransportError{StatusCode: 429}) {
		t.Error("429 should be transient")
	}
	if IsTransient(&FormatError{Err: errors.New("bad")}) {
		t.Error("format errors are not transient")
	}
	if IsTransient(errors.New("plain")) {
		t.Error("plain errors are not transient")
	}
}
