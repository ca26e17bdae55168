package content

import (
	"errors"
	"testing"

	"github.com/visaetude/prepcore/internal/cefr"
)

func TestValidateAcceptsListeningPayload(t *testing.T) {
	payload := map[string]any{
		"audio_script": "Bonjour à tous.",
		"questions":    []any{map[string]any{"question": "Qui parle ?"}},
	}
	if err := Validate(cefr.SkillCO, payload); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
}

func TestValidateRejectsMissingField(t *testing.T) {
	payload := map[string]any{
		"questions": []any{map[string]any{"question": "Q"}},
	}
	err := Validate(cefr.SkillCO, payload)
	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("Validate() error = %v, want *ValidationError", err)
	}
	if ve.Field != "audio_script" {
		t.Errorf("Field = %q, want audio_script", ve.Field)
	}
}

func TestValidateRejectsBlankText(t *testing.T) {
	payload := map[string]any{
		"reading_text": "   ",
		"questions":    []any{map[string]any{"question": "Q"}},
	}
	err := Validate(cefr.SkillCE, payload)
	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("Validate() error = %v, want *ValidationError", err)
	}
}

func TestValidateRejectsEmptyQuestions(t *testing.T) {
	payload := map[string]any{
		"reading_text": "Un texte.",
		"questions":    []any{},
	}
	if err := Validate(cefr.SkillCE, payload); err == nil {
		t.Error("Validate() should reject empty questions")
	}
}

func TestValidateSpeakingPayload(t *testing.T) {
	payload := map[string]any{
		"topic":           "Les transports",
		"instructions":    "Parlez pendant deux minutes.",
		"expected_points": []any{"avantages", "inconvénients"},
	}
	if err := Validate(cefr.SkillEO, payload); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
}

func TestValidateWritingRequiresPositiveMinWords(t *testing.T) {
	payload := map[string]any{
		"topic":         "Une lettre",
		"instructions":  "Écrivez une lettre formelle.",
		"min_words":     0,
		"sample_answer": "Madame, Monsieur, ...",
	}
	err := Validate(cefr.SkillEE, payload)
	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("Validate() error = %v, want *ValidationError", err)
	}
	if ve.Field != "min_words" {
		t.Errorf("Field = %q, want min_words", ve.Field)
	}
}

func TestValidateUnknownSkill(t *testing.T) {
	if err := Validate(cefr.Skill("xx"), map[string]any{}); err == nil {
		t.Error("Validate(xx) should fail")
	}
}
