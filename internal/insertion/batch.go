package insertion

import (
	"context"
	"fmt"

	"github.com/visaetude/prepcore/ent"
	"github.com/visaetude/prepcore/ent/exam"
	"github.com/visaetude/prepcore/ent/examsection"
	"github.com/visaetude/prepcore/ent/question"

	"github.com/visaetude/prepcore/internal/cefr"
	"github.com/visaetude/prepcore/internal/mockexam"
)

// InsertExamBatch persists a generated question batch under the exam's
// section, creating the section and a shared passage as needed. Returns
// the number of questions inserted.
func (s *Service) InsertExamBatch(ctx context.Context, examCode string, section cefr.Skill, batch *mockexam.Batch) (int, error) {
	if !cefr.ValidSkill(section) {
		return 0, fmt.Errorf("invalid section %q", section)
	}
	if batch == nil || len(batch.Questions) == 0 {
		return 0, fmt.Errorf("empty batch for %s", section)
	}

	inserted := 0
	err := s.store.WithTx(ctx, func(tx *ent.Client) error {
		ex, err := tx.Exam.Query().Where(exam.Code(examCode)).Only(ctx)
		if err != nil {
			if ent.IsNotFound(err) {
				return &UnknownExamError{Code: examCode}
			}
			return fmt.Errorf("load exam: %w", err)
		}

		sec, err := ensureSection(ctx, tx, ex, section)
		if err != nil {
			return err
		}

		var passage *ent.Passage
		if batch.Passage != "" {
			passage, err = tx.Passage.Create().
				SetText(batch.Passage).
				Save(ctx)
			if err != nil {
				return fmt.Errorf("create passage: %w", err)
			}
		}

		subtype := question.SubtypeMcq
		if section == cefr.SkillEO || section == cefr.SkillEE {
			subtype = question.SubtypeText
		}

		for i, item := range batch.Questions {
			create := tx.Question.Create().
				SetSection(sec).
				SetStem(item.Stem).
				SetSubtype(subtype).
				SetDifficulty(question.Difficulty(normalizeDifficulty(item.Difficulty)))
			if item.Explanation != "" {
				create.SetExplanation(item.Explanation)
			}
			if passage != nil {
				create.SetPassage(passage)
			}
			q, err := create.Save(ctx)
			if err != nil {
				return fmt.Errorf("create question %d: %w", i+1, err)
			}

			for j, choice := range item.Choices {
				if _, err := tx.Choice.Create().
					SetQuestion(q).
					SetText(choice.Text).
					SetIsCorrect(choice.IsCorrect).
					Save(ctx); err != nil {
					return fmt.Errorf("create choice %d of question %d: %w", j+1, i+1, err)
				}
			}
			inserted++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return inserted, nil
}

// ensureSection finds or creates the exam's section for the skill; the
// order follows the fixed co, ce, eo, ee sequence.
func ensureSection(ctx context.Context, tx *ent.Client, ex *ent.Exam, section cefr.Skill) (*ent.ExamSection, error) {
	sec, err := tx.ExamSection.Query().
		Where(
			examsection.SectionCodeEQ(examsection.SectionCode(section)),
			examsection.HasExamWith(exam.ID(ex.ID)),
		).
		Only(ctx)
	if err == nil {
		return sec, nil
	}
	if !ent.IsNotFound(err) {
		return nil, fmt.Errorf("load section: %w", err)
	}

	order := 1
	for i, skill := range cefr.Skills {
		if skill == section {
			order = i + 1
		}
	}
	sec, err = tx.ExamSection.Create().
		SetExam(ex).
		SetSectionCode(examsection.SectionCode(section)).
		SetOrder(order).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create section: %w", err)
	}
	return sec, nil
}

func normalizeDifficulty(d string) string {
	switch d {
	case "easy", "medium", "hard":
		return d
	}
	return "medium"
}
