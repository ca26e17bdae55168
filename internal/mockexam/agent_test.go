package mockexam

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/visaetude/prepcore/internal/cefr"
	"github.com/visaetude/prepcore/internal/content"
	"github.com/visaetude/prepcore/internal/llm"
)

const validBatch = `{
  "passage": "Annonce en gare.",
  "questions": [
    {"stem": "Q1", "difficulty": "easy", "choices": [{"text": "a", "is_correct": true}, {"text": "b", "is_correct": false}], "explanation": "e1"},
    {"stem": "Q2", "difficulty": "weird", "choices": [{"text": "a", "is_correct": false}, {"text": "b", "is_correct": true}]}
  ]
}`

func TestGenerateBatch(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(validBatch)},
	)

	batch, err := NewAgent(mock).Generate(context.Background(), cefr.SkillCO, cefr.B1, "fr")
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if batch.Passage != "Annonce en gare." {
		t.Errorf("Passage = %q", batch.Passage)
	}
	if len(batch.Questions) != 2 {
		t.Fatalf("Questions = %d, want 2", len(batch.Questions))
	}
	if batch.Questions[1].Difficulty != "medium" {
		t.Errorf("unknown difficulty should normalise to medium, got %q", batch.Questions[1].Difficulty)
	}
}

func TestGenerateRejectsInvalidSection(t *testing.T) {
	agent := NewAgent(llm.NewOfflineProvider())
	if _, err := agent.Generate(context.Background(), cefr.Skill("xy"), cefr.B1, "fr"); err == nil {
		t.Error("Generate() should reject unknown section")
	}
}

func TestGenerateDiscardsBrokenItems(t *testing.T) {
	raw := `{
  "questions": [
    {"stem": "", "choices": [{"text": "a"}, {"text": "b"}]},
    {"stem": "only one choice", "choices": [{"text": "a"}]},
    {"stem": "keeper", "choices": [{"text": "a", "is_correct": true}, {"text": "b"}]}
  ]
}`
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(raw)},
	)

	batch, err := NewAgent(mock).Generate(context.Background(), cefr.SkillCE, cefr.B2, "fr")
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if len(batch.Questions) != 1 || batch.Questions[0].Stem != "keeper" {
		t.Errorf("Questions = %+v, want only the keeper", batch.Questions)
	}
}

func TestGenerateFailsWhenNothingSurvives(t *testing.T) {
	raw := `{"questions": [{"stem": "", "choices": []}]}`
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(raw)},
		llm.MockResponse{Content: json.RawMessage(raw)},
		llm.MockResponse{Content: json.RawMessage(raw)},
	)

	_, err := NewAgent(mock).Generate(context.Background(), cefr.SkillCO, cefr.B1, "fr")
	var ge *content.GenerationError
	if !errors.As(err, &ge) {
		t.Fatalf("Generate() error = %v, want *content.GenerationError", err)
	}
	var nve *NoValidItemsError
	if !errors.As(err, &nve) {
		t.Error("GenerationError should wrap *NoValidItemsError")
	}
}

func TestGenerateRetriesThenSucceeds(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(`not json`)},
		llm.MockResponse{Content: json.RawMessage(validBatch)},
	)

	if _, err := NewAgent(mock).Generate(context.Background(), cefr.SkillCE, cefr.B1, "fr"); err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if mock.CallCount() != 2 {
		t.Errorf("CallCount = %d, want 2", mock.CallCount())
	}
}

func TestGenerateWithOfflineProvider(t *testing.T) {
	agent := NewAgent(llm.NewOfflineProvider())

	batch, err := agent.Generate(context.Background(), cefr.SkillCO, cefr.B1, "fr")
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if len(batch.Questions) != 5 {
		t.Errorf("Questions = %d, want 5", len(batch.Questions))
	}
	for _, q := range batch.Questions {
		correct := 0
		for _, c := range q.Choices {
			if c.IsCorrect {
				correct++
			}
		}
		if correct != 1 {
			t.Errorf("item %q has %d correct choices, want 1", q.Stem, correct)
		}
	}
}

func TestNormalizeLetterMapChoices(t *testing.T) {
	choices := normalizeChoices(map[string]any{
		"A":       "premier",
		"B":       "deuxième",
		"C":       "troisième",
		"correct": "b",
	})
	if len(choices) != 3 {
		t.Fatalf("choices = %d, want 3", len(choices))
	}
	if !choices[1].IsCorrect || choices[0].IsCorrect || choices[2].IsCorrect {
		t.Errorf("correct flag misplaced: %+v", choices)
	}
}

func TestNormalizeStringListChoices(t *testing.T) {
	choices := normalizeChoices([]any{"un", "deux"})
	if len(choices) != 2 {
		t.Fatalf("choices = %d, want 2", len(choices))
	}
	for _, c := range choices {
		if c.IsCorrect {
			t.Error("string list choices carry no correctness information")
		}
	}
}
