package examdef

import (
	"context"
	"fmt"

	"github.com/visaetude/prepcore/ent"
	"github.com/visaetude/prepcore/ent/exam"
	"github.com/visaetude/prepcore/ent/examsection"

	"github.com/visaetude/prepcore/internal/cefr"
	"github.com/visaetude/prepcore/internal/store"
)

// Seed writes the formats into the store as Exam and ExamSection rows.
// Existing exams are left untouched, so seeding is idempotent. Returns
// the number of exams created.
func Seed(ctx context.Context, st *store.Store, formats []Format) (int, error) {
	created := 0
	for i := range formats {
		f := &formats[i]
		if err := f.Validate(); err != nil {
			return created, err
		}

		err := st.WithTx(ctx, func(tx *ent.Client) error {
			exists, err := tx.Exam.Query().Where(exam.Code(f.Code)).Exist(ctx)
			if err != nil {
				return fmt.Errorf("check exam %s: %w", f.Code, err)
			}
			if exists {
				return nil
			}

			ex, err := tx.Exam.Create().
				SetCode(f.Code).
				SetName(f.Name).
				SetLanguage(f.Language).
				Save(ctx)
			if err != nil {
				return fmt.Errorf("create exam %s: %w", f.Code, err)
			}

			for order, skill := range cefr.Skills {
				plan, ok := f.Sections[string(skill)]
				if !ok {
					continue
				}
				if _, err := tx.ExamSection.Create().
					SetExam(ex).
					SetSectionCode(examsection.SectionCode(skill)).
					SetOrder(order + 1).
					SetDurationSeconds(plan.DurationMinutes * 60).
					Save(ctx); err != nil {
					return fmt.Errorf("create section %s of %s: %w", skill, f.Code, err)
				}
			}
			created++
			return nil
		})
		if err != nil {
			return created, err
		}
	}
	return created, nil
}
