package content

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/visaetude/prepcore/internal/cefr"
	"github.com/visaetude/prepcore/internal/llm"
)

const validCE = `{"reading_text": "Un texte riche.", "questions": [{"question": "Q1"}]}`

func TestAgentGenerate(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(validCE)},
	)

	payload, err := NewAgent(mock).Generate(context.Background(), cefr.SkillCE, "fr", cefr.B1)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if payload["reading_text"] != "Un texte riche." {
		t.Errorf("reading_text = %v", payload["reading_text"])
	}

	req := mock.Calls[0]
	if !strings.Contains(req.Messages[0].Content, "CE") {
		t.Errorf("user prompt %q missing skill", req.Messages[0].Content)
	}
	if !strings.Contains(req.Messages[0].Content, "B1") {
		t.Errorf("user prompt %q missing level", req.Messages[0].Content)
	}
}

func TestAgentStripsFences(t *testing.T) {
	fenced := "Voici la leçon :\n```json\n" + validCE + "\n```"
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(fenced)},
	)

	if _, err := NewAgent(mock).Generate(context.Background(), cefr.SkillCE, "fr", cefr.A2); err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
}

func TestAgentRetriesOnBadPayload(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(`not json at all`)},
		llm.MockResponse{Content: json.RawMessage(`{"questions": []}`)},
		llm.MockResponse{Content: json.RawMessage(validCE)},
	)

	payload, err := NewAgent(mock).Generate(context.Background(), cefr.SkillCE, "fr", cefr.B2)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if payload == nil {
		t.Fatal("payload is nil")
	}
	if mock.CallCount() != 3 {
		t.Errorf("CallCount = %d, want 3", mock.CallCount())
	}
}

func TestAgentExhaustsRetries(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(`nope`)},
		llm.MockResponse{Content: json.RawMessage(`nope`)},
		llm.MockResponse{Content: json.RawMessage(`nope`)},
	)

	_, err := NewAgent(mock).Generate(context.Background(), cefr.SkillCE, "fr", cefr.B1)
	var ge *GenerationError
	if !errors.As(err, &ge) {
		t.Fatalf("Generate() error = %v, want *GenerationError", err)
	}
	if ge.Attempts != 3 {
		t.Errorf("Attempts = %d, want 3", ge.Attempts)
	}
	if mock.CallCount() != 3 {
		t.Errorf("CallCount = %d, want 3", mock.CallCount())
	}
}

func TestAgentDoesNotRetryProviderErrors(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Err: &llm.TransportError{StatusCode: 500, Err: errors.New("down")}},
	)

	_, err := NewAgent(mock).Generate(context.Background(), cefr.SkillCO, "fr", cefr.B1)
	var ge *GenerationError
	if !errors.As(err, &ge) {
		t.Fatalf("Generate() error = %v, want *GenerationError", err)
	}
	var te *llm.TransportError
	if !errors.As(err, &te) {
		t.Error("GenerationError should wrap the transport error")
	}
	if mock.CallCount() != 1 {
		t.Errorf("CallCount = %d, want 1", mock.CallCount())
	}
}

func TestAgentWorksWithOfflineProvider(t *testing.T) {
	offline := llm.NewOfflineProvider()

	for _, skill := range cefr.Skills {
		if _, err := NewAgent(offline).Generate(context.Background(), skill, "fr", cefr.B1); err != nil {
			t.Errorf("Generate(%s) with offline provider error = %v", skill, err)
		}
	}
}
