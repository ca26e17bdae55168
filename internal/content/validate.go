package content

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"github.com/santhosh-tekuri/jsonschema/v6/kind"

	"github.com/visaetude/prepcore/internal/cefr"
	"github.com/visaetude/prepcore/internal/llm"
)

// nonBlank matches strings with at least one non-whitespace character.
const nonBlank = `\S`

var lessonSchemas = map[cefr.Skill]*llm.Schema{
	cefr.SkillCO: {
		Name: "lesson-co",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"audio_script": map[string]any{"type": "string", "pattern": nonBlank},
				"questions":    map[string]any{"type": "array", "minItems": 1},
			},
			"required": []any{"audio_script", "questions"},
		},
	},
	cefr.SkillCE: {
		Name: "lesson-ce",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"reading_text": map[string]any{"type": "string", "pattern": nonBlank},
				"questions":    map[string]any{"type": "array", "minItems": 1},
			},
			"required": []any{"reading_text", "questions"},
		},
	},
	cefr.SkillEO: {
		Name: "lesson-eo",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"topic":           map[string]any{"type": "string", "pattern": nonBlank},
				"instructions":    map[string]any{"type": "string", "pattern": nonBlank},
				"expected_points": map[string]any{"type": "array", "minItems": 1},
			},
			"required": []any{"topic", "instructions", "expected_points"},
		},
	},
	cefr.SkillEE: {
		Name: "lesson-ee",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"topic":         map[string]any{"type": "string", "pattern": nonBlank},
				"instructions":  map[string]any{"type": "string", "pattern": nonBlank},
				"min_words":     map[string]any{"type": "integer", "minimum": 1},
				"sample_answer": map[string]any{"type": "string", "pattern": nonBlank},
			},
			"required": []any{"topic", "instructions", "min_words", "sample_answer"},
		},
	},
}

// Validate checks a parsed lesson payload against the skill's schema.
// Returns a *ValidationError naming the first offending field.
func Validate(skill cefr.Skill, payload map[string]any) error {
	schema, ok := lessonSchemas[skill]
	if !ok {
		return fmt.Errorf("no validator for skill %q", skill)
	}

	compiled, err := llm.CompileSchema(schema)
	if err != nil {
		return fmt.Errorf("compile %s schema: %w", skill, err)
	}

	// Round-trip so numbers use the json.Number representation the
	// validator expects regardless of how the payload was produced.
	raw, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal %s payload: %w", skill, err)
	}
	parsed, err := jsonschema.UnmarshalJSON(strings.NewReader(string(raw)))
	if err != nil {
		return &ValidationError{Skill: skill, Field: "payload", Err: err}
	}

	if err := compiled.Validate(parsed); err != nil {
		return &ValidationError{
			Skill: skill,
			Field: firstOffendingField(err),
			Err:   err,
		}
	}
	return nil
}

// firstOffendingField walks a validation error tree to the deepest cause
// and returns its instance location as a field path.
func firstOffendingField(err error) string {
	var ve *jsonschema.ValidationError
	if !errors.As(err, &ve) {
		return "payload"
	}
	for len(ve.Causes) > 0 {
		ve = ve.Causes[0]
	}
	if req, ok := ve.ErrorKind.(*kind.Required); ok && len(req.Missing) > 0 {
		return req.Missing[0]
	}
	if len(ve.InstanceLocation) == 0 {
		return "payload"
	}
	return strings.Join(ve.InstanceLocation, ".")
}
