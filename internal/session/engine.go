// Package session runs learner sessions: one Session per exam run, one
// Attempt per section, one Answer per question. Answers are idempotent
// per (attempt, question); finishing is deterministic and re-runnable.
package session

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/visaetude/prepcore/ent"
	"github.com/visaetude/prepcore/ent/answer"
	"github.com/visaetude/prepcore/ent/attempt"
	"github.com/visaetude/prepcore/ent/choice"
	"github.com/visaetude/prepcore/ent/exam"
	"github.com/visaetude/prepcore/ent/examsection"
	"github.com/visaetude/prepcore/ent/question"
	"github.com/visaetude/prepcore/ent/session"

	"github.com/visaetude/prepcore/internal/cefr"
	"github.com/visaetude/prepcore/internal/scoring"
	"github.com/visaetude/prepcore/internal/store"
)

// Engine drives the session/attempt/answer lifecycle.
type Engine struct {
	store *store.Store
}

// NewEngine creates an Engine on top of the store.
func NewEngine(st *store.Store) *Engine {
	return &Engine{store: st}
}

// ChoiceMismatchError indicates the submitted choice does not belong to
// the answered question.
type ChoiceMismatchError struct {
	QuestionID int
	ChoiceID   int
}

func (e *ChoiceMismatchError) Error() string {
	return fmt.Sprintf("choice %d does not belong to question %d", e.ChoiceID, e.QuestionID)
}

// QuestionMismatchError indicates the answered question does not belong
// to the attempt's section.
type QuestionMismatchError struct {
	AttemptID  int
	QuestionID int
}

func (e *QuestionMismatchError) Error() string {
	return fmt.Sprintf("question %d does not belong to the section of attempt %d", e.QuestionID, e.AttemptID)
}

// AnswerResult reports the correctness of a recorded answer.
type AnswerResult struct {
	Correct bool
}

// AttemptResult is the outcome of finishing one attempt.
type AttemptResult struct {
	RawScore     int
	TotalItems   int
	ScorePercent float64
}

// StartSession creates a Session for the user over the exam. When a
// section is given, one Attempt bound to that section is pre-created.
func (e *Engine) StartSession(ctx context.Context, userID, examCode string, section cefr.Skill) (*ent.Session, error) {
	exists, err := e.store.Client().Exam.Query().
		Where(exam.Code(examCode)).
		Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("look up exam %s: %w", examCode, err)
	}
	if !exists {
		return nil, fmt.Errorf("unknown exam %q", examCode)
	}

	create := e.store.Client().Session.Create().
		SetUserID(userID).
		SetExamCode(examCode)
	if section != "" {
		if !cefr.ValidSkill(section) {
			return nil, fmt.Errorf("invalid section %q", section)
		}
		create.SetSection(string(section))
	}

	sess, err := create.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}

	if section != "" {
		if _, err := e.StartAttempt(ctx, sess.ID, section); err != nil {
			return nil, err
		}
	}
	return sess, nil
}

// StartAttempt creates a new Attempt for one section of the session's
// exam, sized to the section's current question count.
func (e *Engine) StartAttempt(ctx context.Context, sessionID int, section cefr.Skill) (*ent.Attempt, error) {
	sess, err := e.store.Client().Session.Get(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("load session %d: %w", sessionID, err)
	}

	count, err := e.store.Client().Question.Query().
		Where(question.HasSectionWith(
			examsection.SectionCodeEQ(examsection.SectionCode(section)),
			examsection.HasExamWith(exam.Code(sess.ExamCode)),
		)).
		Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count section questions: %w", err)
	}

	att, err := e.store.Client().Attempt.Create().
		SetSessionID(sessionID).
		SetSectionCode(attempt.SectionCode(section)).
		SetTotalItems(count).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create attempt: %w", err)
	}
	return att, nil
}

// RecordAnswer stores the learner's response for one question. A repeat
// submission for the same (attempt, question) overwrites the previous
// answer. For MCQ answers, correctness comes from the choice's flag;
// free-text answers are stored uncorrected.
func (e *Engine) RecordAnswer(ctx context.Context, attemptID, questionID int, choiceID *int, text string) (*AnswerResult, error) {
	att, err := e.store.Client().Attempt.Get(ctx, attemptID)
	if err != nil {
		return nil, fmt.Errorf("load attempt %d: %w", attemptID, err)
	}
	sess, err := att.QuerySession().Only(ctx)
	if err != nil {
		return nil, fmt.Errorf("load attempt session: %w", err)
	}

	// The question must sit in the attempt's section of the session's
	// exam, otherwise raw_score could outgrow total_items.
	ok, err := e.store.Client().Question.Query().
		Where(
			question.ID(questionID),
			question.HasSectionWith(
				examsection.SectionCodeEQ(examsection.SectionCode(att.SectionCode)),
				examsection.HasExamWith(exam.Code(sess.ExamCode)),
			),
		).
		Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("look up question %d: %w", questionID, err)
	}
	if !ok {
		return nil, &QuestionMismatchError{AttemptID: attemptID, QuestionID: questionID}
	}

	correct := false

	if choiceID != nil {
		ch, err := e.store.Client().Choice.Query().
			Where(
				choice.ID(*choiceID),
				choice.HasQuestionWith(question.ID(questionID)),
			).
			Only(ctx)
		if err != nil {
			if ent.IsNotFound(err) {
				return nil, &ChoiceMismatchError{QuestionID: questionID, ChoiceID: *choiceID}
			}
			return nil, fmt.Errorf("load choice %d: %w", *choiceID, err)
		}
		correct = ch.IsCorrect
	}

	err = e.store.WithTx(ctx, func(tx *ent.Client) error {
		existing, err := tx.Answer.Query().
			Where(
				answer.HasAttemptWith(attempt.ID(attemptID)),
				answer.HasQuestionWith(question.ID(questionID)),
			).
			Only(ctx)
		switch {
		case err == nil:
			update := tx.Answer.UpdateOne(existing).
				SetCorrect(correct).
				SetTextAnswer(text).
				SetCreatedAt(time.Now())
			if choiceID != nil {
				update.SetChoiceID(*choiceID)
			} else {
				update.ClearChoice()
			}
			_, err = update.Save(ctx)
			return err
		case ent.IsNotFound(err):
			create := tx.Answer.Create().
				SetAttemptID(attemptID).
				SetQuestionID(questionID).
				SetCorrect(correct).
				SetTextAnswer(text)
			if choiceID != nil {
				create.SetChoiceID(*choiceID)
			}
			_, err = create.Save(ctx)
			return err
		default:
			return fmt.Errorf("look up existing answer: %w", err)
		}
	})
	if err != nil {
		return nil, err
	}

	return &AnswerResult{Correct: correct}, nil
}

// FinishAttempt computes the attempt's raw score and percentage and
// stamps finished_at. Re-finishing recomputes the same result.
func (e *Engine) FinishAttempt(ctx context.Context, attemptID int) (*AttemptResult, error) {
	att, err := e.store.Client().Attempt.Get(ctx, attemptID)
	if err != nil {
		return nil, fmt.Errorf("load attempt %d: %w", attemptID, err)
	}

	raw, err := e.store.Client().Answer.Query().
		Where(
			answer.HasAttemptWith(attempt.ID(attemptID)),
			answer.Correct(true),
		).
		Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count correct answers: %w", err)
	}

	percent := 0.0
	if att.TotalItems > 0 {
		percent = math.Round(float64(raw) / float64(att.TotalItems) * 100)
	}

	update := e.store.Client().Attempt.UpdateOne(att).
		SetRawScore(raw).
		SetScorePercent(percent)
	if att.FinishedAt == nil {
		update.SetFinishedAt(time.Now())
	}
	if _, err := update.Save(ctx); err != nil {
		return nil, fmt.Errorf("finish attempt: %w", err)
	}

	return &AttemptResult{
		RawScore:     raw,
		TotalItems:   att.TotalItems,
		ScorePercent: percent,
	}, nil
}

// FinishSession finalises every attempt and freezes the session with
// total_score = mean of attempt percentages.
func (e *Engine) FinishSession(ctx context.Context, sessionID int) (*ent.Session, error) {
	sess, err := e.store.Client().Session.Get(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("load session %d: %w", sessionID, err)
	}

	attempts, err := e.store.Client().Attempt.Query().
		Where(attempt.HasSessionWith(session.ID(sessionID))).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("load attempts: %w", err)
	}

	sections := map[string]any{}
	var sum float64
	for _, att := range attempts {
		res, err := e.FinishAttempt(ctx, att.ID)
		if err != nil {
			return nil, err
		}
		sum += res.ScorePercent
		sections[string(att.SectionCode)] = map[string]any{
			"raw_score":     res.RawScore,
			"total_items":   res.TotalItems,
			"score_percent": res.ScorePercent,
		}
	}

	total := 0.0
	if len(attempts) > 0 {
		total = math.Round(sum / float64(len(attempts)))
	}

	updated, err := e.store.Client().Session.UpdateOne(sess).
		SetStatus(session.StatusFinished).
		SetTotalScore(total).
		SetDurationSeconds(int(time.Since(sess.CreatedAt).Seconds())).
		SetResultData(sections).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("finish session: %w", err)
	}
	return updated, nil
}

// RecordFormatResult maps a finished session onto the exam's official
// scale and freezes it as an ExamFormatResult row.
func (e *Engine) RecordFormatResult(ctx context.Context, sessionID int, level cefr.Level) (*ent.ExamFormatResult, error) {
	sess, err := e.store.Client().Session.Get(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("load session %d: %w", sessionID, err)
	}
	if sess.Status != session.StatusFinished {
		return nil, fmt.Errorf("session %d is not finished", sessionID)
	}

	attempts, err := e.store.Client().Attempt.Query().
		Where(attempt.HasSessionWith(session.ID(sessionID))).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("load attempts: %w", err)
	}

	inputs := make([]scoring.SectionInput, 0, len(attempts))
	for _, att := range attempts {
		inputs = append(inputs, scoring.SectionInput{
			Section: cefr.Skill(att.SectionCode),
			Raw:     att.RawScore,
			Total:   att.TotalItems,
		})
	}

	result, err := scoring.ScoreExam(sess.ExamCode, inputs)
	if err != nil {
		return nil, err
	}
	return scoring.Record(ctx, e.store, sess.UserID, level, result)
}
