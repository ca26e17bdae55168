package scoring

import (
	"context"
	"fmt"

	"github.com/visaetude/prepcore/ent"
	"github.com/visaetude/prepcore/ent/examformatresult"

	"github.com/visaetude/prepcore/internal/cefr"
	"github.com/visaetude/prepcore/internal/store"
)

// Record freezes a scored exam as an ExamFormatResult row. The
// per-section breakdown is stored as JSON so the history survives
// future scale changes.
func Record(ctx context.Context, st *store.Store, userID string, level cefr.Level, result *ExamResult) (*ent.ExamFormatResult, error) {
	if result == nil {
		return nil, fmt.Errorf("nil exam result")
	}
	if !cefr.Valid(level) {
		return nil, fmt.Errorf("invalid level %q", level)
	}

	sections := make(map[string]any, len(result.Sections))
	for skill, s := range result.Sections {
		sections[string(skill)] = map[string]any{
			"raw":     s.Raw,
			"total":   s.Total,
			"percent": s.Percent,
			"score":   s.Score,
			"max":     s.Max,
			"cefr":    s.Band,
		}
	}

	row, err := st.Client().ExamFormatResult.Create().
		SetUserID(userID).
		SetExamCode(result.ExamCode).
		SetLevel(examformatresult.Level(level)).
		SetSectionResults(sections).
		SetGlobalScore(result.GlobalScore).
		SetScoreMax(result.GlobalMax).
		SetGlobalCefr(result.GlobalBand).
		SetPassed(result.Passed).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("record exam result: %w", err)
	}
	return row, nil
}

// History returns a user's recorded results for one exam, newest first.
func History(ctx context.Context, st *store.Store, userID, examCode string) ([]*ent.ExamFormatResult, error) {
	rows, err := st.Client().ExamFormatResult.Query().
		Where(
			examformatresult.UserID(userID),
			examformatresult.ExamCode(normalizeExamCode(examCode)),
		).
		Order(ent.Desc(examformatresult.FieldTakenAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("load exam history: %w", err)
	}
	return rows, nil
}
