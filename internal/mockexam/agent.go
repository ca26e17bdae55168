// Package mockexam generates TEF-style question batches per exam section.
// Model output is normalised aggressively: LLMs drift between choice
// formats, so every known shape is coerced into {text, is_correct} pairs
// and items that cannot be repaired are dropped.
package mockexam

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/visaetude/prepcore/internal/cefr"
	"github.com/visaetude/prepcore/internal/content"
	"github.com/visaetude/prepcore/internal/llm"
	"github.com/visaetude/prepcore/internal/prompts"
)

// DefaultMaxRetries mirrors the content agent's retry budget.
const DefaultMaxRetries = 2

// Choice is one answer option of a generated item.
type Choice struct {
	Text      string `json:"text"`
	IsCorrect bool   `json:"is_correct"`
}

// Item is one normalised question.
type Item struct {
	Stem        string   `json:"stem"`
	Difficulty  string   `json:"difficulty"`
	Passage     string   `json:"passage,omitempty"`
	Choices     []Choice `json:"choices"`
	Explanation string   `json:"explanation,omitempty"`
}

// Batch is the result of one generation call: an optional shared passage
// (CO and CE) plus the surviving items.
type Batch struct {
	Passage   string `json:"passage,omitempty"`
	Questions []Item `json:"questions"`
}

// NoValidItemsError indicates every generated item was discarded during
// normalisation.
type NoValidItemsError struct {
	Section cefr.Skill
}

func (e *NoValidItemsError) Error() string {
	return fmt.Sprintf("mock exam %s: no valid questions after normalisation", strings.ToUpper(string(e.Section)))
}

// Agent generates question batches via the LLM gateway.
type Agent struct {
	provider   llm.Provider
	maxRetries int
}

// NewAgent creates a mock-exam agent backed by the given provider.
func NewAgent(provider llm.Provider) *Agent {
	return &Agent{provider: provider, maxRetries: DefaultMaxRetries}
}

// WithMaxRetries overrides the retry budget.
func (a *Agent) WithMaxRetries(n int) *Agent {
	a.maxRetries = n
	return a
}

// Generate produces one batch of five questions for the section. Parse,
// shape and normalisation failures are retried; after exhaustion the last
// cause is wrapped in a *content.GenerationError.
func (a *Agent) Generate(ctx context.Context, section cefr.Skill, level cefr.Level, language string) (*Batch, error) {
	if !cefr.ValidSkill(section) {
		return nil, fmt.Errorf("invalid section %q: choose one of co, ce, eo, ee", section)
	}
	if !cefr.Valid(level) {
		return nil, fmt.Errorf("invalid level %q", level)
	}
	if language == "" {
		language = "fr"
	}

	system, err := prompts.Exam(section)
	if err != nil {
		return nil, err
	}
	user := prompts.ExamUser(section, language, level)

	ctx = llm.WithPurpose(ctx, "mock_exam_"+string(section))

	var lastErr error
	for attempt := 0; attempt <= a.maxRetries; attempt++ {
		raw, err := llm.Complete(ctx, a.provider, system, user)
		if err != nil {
			return nil, &content.GenerationError{Skill: section, Attempts: attempt + 1, Err: err}
		}

		batch, err := parseBatch(section, raw)
		if err != nil {
			lastErr = err
			continue
		}
		return batch, nil
	}

	return nil, &content.GenerationError{Skill: section, Attempts: a.maxRetries + 1, Err: lastErr}
}

func parseBatch(section cefr.Skill, raw string) (*Batch, error) {
	text, err := content.ExtractJSON(raw)
	if err != nil {
		return nil, err
	}

	var data struct {
		Passage   string            `json:"passage"`
		Questions []json.RawMessage `json:"questions"`
	}
	if err := json.Unmarshal([]byte(text), &data); err != nil {
		return nil, fmt.Errorf("parse JSON: %w", err)
	}
	if len(data.Questions) == 0 {
		return nil, fmt.Errorf("no questions in response")
	}

	items := normalizeItems(data.Questions)
	if len(items) == 0 {
		return nil, &NoValidItemsError{Section: section}
	}

	return &Batch{Passage: data.Passage, Questions: items}, nil
}
