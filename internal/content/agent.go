// Package content generates practice lessons per skill: it prompts the
// LLM, extracts the JSON object from the completion, and validates the
// payload shape before handing it to the insertion service.
package content

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/visaetude/prepcore/internal/cefr"
	"github.com/visaetude/prepcore/internal/llm"
	"github.com/visaetude/prepcore/internal/prompts"
)

// DefaultMaxRetries is the number of additional attempts after the first
// failed parse or validation.
const DefaultMaxRetries = 2

// Agent generates lesson payloads for one skill at a time.
type Agent struct {
	provider   llm.Provider
	maxRetries int
}

// NewAgent creates a content agent backed by the given provider.
func NewAgent(provider llm.Provider) *Agent {
	return &Agent{provider: provider, maxRetries: DefaultMaxRetries}
}

// WithMaxRetries overrides the retry budget for parse/validation failures.
func (a *Agent) WithMaxRetries(n int) *Agent {
	a.maxRetries = n
	return a
}

// Generate produces a validated lesson payload for the skill at the given
// level and language. Parse and validation failures are retried; LLM
// errors are not (the gateway already retried transient ones). After
// exhaustion the last cause is wrapped in a *GenerationError.
func (a *Agent) Generate(ctx context.Context, skill cefr.Skill, language string, level cefr.Level) (map[string]any, error) {
	system, err := prompts.Lesson(skill)
	if err != nil {
		return nil, err
	}
	user := prompts.LessonUser(skill, language, level)

	ctx = llm.WithPurpose(ctx, "lesson_"+string(skill))

	var lastErr error
	for attempt := 0; attempt <= a.maxRetries; attempt++ {
		raw, err := llm.Complete(ctx, a.provider, system, user)
		if err != nil {
			return nil, &GenerationError{Skill: skill, Attempts: attempt + 1, Err: err}
		}

		payload, err := parseAndValidate(skill, raw)
		if err != nil {
			lastErr = err
			continue
		}
		return payload, nil
	}

	return nil, &GenerationError{Skill: skill, Attempts: a.maxRetries + 1, Err: lastErr}
}

func parseAndValidate(skill cefr.Skill, raw string) (map[string]any, error) {
	text, err := ExtractJSON(raw)
	if err != nil {
		return nil, fmt.Errorf("extract JSON: %w", err)
	}

	var payload map[string]any
	if err := json.Unmarshal([]byte(text), &payload); err != nil {
		return nil, fmt.Errorf("parse JSON: %w", err)
	}

	if err := Validate(skill, payload); err != nil {
		return nil, err
	}
	return payload, nil
}
