// Package evaluator marks productive work: speaking transcripts and
// written productions are scored out of 100 by an LLM examiner, with
// per-criterion breakdowns, corrections and suggestions. When the model
// is unreachable the evaluator degrades to a neutral score rather than
// failing the learner's session.
package evaluator

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/visaetude/prepcore/internal/content"
	"github.com/visaetude/prepcore/internal/llm"
)

// DegradedScore is the neutral score returned when evaluation fails.
const DegradedScore = 50

const degradedFeedback = "Évaluation non disponible. Réessaie dans quelques instants."

// SpeakingInput is one speaking production to evaluate.
type SpeakingInput struct {
	Transcript     string
	Topic          string
	Instructions   string
	Level          string
	ExpectedPoints []string
}

// SpeakingResult is the examiner's verdict on a speaking production.
type SpeakingResult struct {
	Score         int            `json:"score"`
	Feedback      string         `json:"feedback"`
	PointsCovered []string       `json:"points_covered"`
	Suggestions   []string       `json:"suggestions"`
	Criteria      map[string]int `json:"criteria"`

	// Degraded is true when the score is the neutral fallback rather
	// than a real evaluation.
	Degraded bool `json:"-"`
}

// WritingInput is one written production to evaluate.
type WritingInput struct {
	Text         string
	Topic        string
	Instructions string
	Level        string
}

// Correction is one identified error with its fix.
type Correction struct {
	Original   string `json:"original"`
	Correction string `json:"correction"`
	Rule       string `json:"rule"`
}

// WritingResult is the examiner's verdict on a written production.
type WritingResult struct {
	Score            int            `json:"score"`
	Feedback         string         `json:"feedback"`
	Errors           []Correction   `json:"errors"`
	CorrectedVersion string         `json:"corrected_version"`
	Criteria         map[string]int `json:"criteria"`

	Degraded bool `json:"-"`
}

// Evaluator scores speaking and writing productions.
type Evaluator struct {
	provider llm.Provider
	logger   *zap.Logger
	mock     bool
}

// New creates an evaluator backed by the given provider.
func New(provider llm.Provider, logger *zap.Logger) *Evaluator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Evaluator{provider: provider, logger: logger}
}

// WithMockMode makes the evaluator return fixed verdicts without calling
// the model. Intended for offline runs and demos.
func (e *Evaluator) WithMockMode(on bool) *Evaluator {
	e.mock = on
	return e
}

// EvaluateSpeaking scores a speaking transcript. A provider or parse
// failure degrades to a neutral result instead of returning an error;
// the Degraded flag marks it.
func (e *Evaluator) EvaluateSpeaking(ctx context.Context, in SpeakingInput) (*SpeakingResult, error) {
	if e.mock {
		return mockSpeakingResult(), nil
	}

	points := "(non spécifiés)"
	if len(in.ExpectedPoints) > 0 {
		var b strings.Builder
		for _, p := range in.ExpectedPoints {
			fmt.Fprintf(&b, "- %s\n", p)
		}
		points = strings.TrimRight(b.String(), "\n")
	}

	user := fmt.Sprintf(
		"Sujet : %s\nConsigne : %s\nNiveau CECR attendu : %s\nPoints attendus :\n%s\n\nTranscription de l'étudiant :\n%s\n\nÉvalue cette prise de parole selon les critères définis.",
		in.Topic, in.Instructions, in.Level, points, in.Transcript,
	)

	ctx = llm.WithPurpose(ctx, "evaluate_eo")
	raw, err := llm.Complete(ctx, e.provider, speakingSystem, user)
	if err != nil {
		e.logger.Warn("speaking evaluation degraded", zap.Error(err))
		return &SpeakingResult{
			Score:    DegradedScore,
			Feedback: degradedFeedback,
			Degraded: true,
		}, nil
	}

	var result SpeakingResult
	if err := decodeResult(raw, &result); err != nil {
		e.logger.Warn("speaking evaluation unparseable", zap.Error(err))
		return &SpeakingResult{
			Score:    DegradedScore,
			Feedback: degradedFeedback,
			Degraded: true,
		}, nil
	}
	clampScore(&result.Score)
	return &result, nil
}

// EvaluateWriting scores and corrects a written production. On failure
// the degraded result carries the learner's original text as the
// corrected version.
func (e *Evaluator) EvaluateWriting(ctx context.Context, in WritingInput) (*WritingResult, error) {
	if e.mock {
		return mockWritingResult(), nil
	}

	user := fmt.Sprintf(
		"Sujet : %s\nConsigne : %s\nNiveau CECR attendu : %s\n\nTexte de l'étudiant :\n%s\n\nÉvalue et corrige cette production écrite selon les critères définis.",
		in.Topic, in.Instructions, in.Level, in.Text,
	)

	ctx = llm.WithPurpose(ctx, "evaluate_ee")
	raw, err := llm.Complete(ctx, e.provider, writingSystem, user)
	if err != nil {
		e.logger.Warn("writing evaluation degraded", zap.Error(err))
		return degradedWriting(in.Text), nil
	}

	var result WritingResult
	if err := decodeResult(raw, &result); err != nil {
		e.logger.Warn("writing evaluation unparseable", zap.Error(err))
		return degradedWriting(in.Text), nil
	}
	clampScore(&result.Score)
	return &result, nil
}

func degradedWriting(original string) *WritingResult {
	return &WritingResult{
		Score:            DegradedScore,
		Feedback:         degradedFeedback,
		CorrectedVersion: original,
		Degraded:         true,
	}
}

// decodeResult parses a verdict. Payloads without the score and feedback
// fields are rejected so unrelated JSON degrades instead of silently
// scoring zero.
func decodeResult(raw string, out any) error {
	payload, err := content.ExtractJSON(raw)
	if err != nil {
		return err
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal([]byte(payload), &fields); err != nil {
		return err
	}
	for _, key := range []string{"score", "feedback"} {
		if _, ok := fields[key]; !ok {
			return fmt.Errorf("verdict missing %q", key)
		}
	}
	return json.Unmarshal([]byte(payload), out)
}

func clampScore(score *int) {
	if *score < 0 {
		*score = 0
	}
	if *score > 100 {
		*score = 100
	}
}
