package session

import (
	"context"
	"errors"
	"testing"

	"github.com/visaetude/prepcore/ent"
	"github.com/visaetude/prepcore/internal/cefr"
	"github.com/visaetude/prepcore/internal/store"
)

type fixture struct {
	store   *store.Store
	engine  *Engine
	exam    *ent.Exam
	section *ent.ExamSection
	// questions[i] owns choices[i][0] (correct) and choices[i][1] (wrong)
	questions []*ent.Question
	choices   [][]*ent.Choice
}

func newFixture(t *testing.T, questionCount int) *fixture {
	t.Helper()
	ctx := context.Background()

	st, err := store.Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { st.Close() })

	f := &fixture{store: st, engine: NewEngine(st)}

	f.exam, err = st.Client().Exam.Create().
		SetCode("TEF").
		SetName("TEF Canada").
		Save(ctx)
	if err != nil {
		t.Fatalf("create exam: %v", err)
	}

	f.section, err = st.Client().ExamSection.Create().
		SetExam(f.exam).
		SetSectionCode("co").
		SetOrder(1).
		SetDurationSeconds(2400).
		Save(ctx)
	if err != nil {
		t.Fatalf("create section: %v", err)
	}

	for i := 0; i < questionCount; i++ {
		q, err := st.Client().Question.Create().
			SetSection(f.section).
			SetStem("Question").
			Save(ctx)
		if err != nil {
			t.Fatalf("create question: %v", err)
		}
		right, err := st.Client().Choice.Create().
			SetQuestion(q).
			SetText("right").
			SetIsCorrect(true).
			Save(ctx)
		if err != nil {
			t.Fatalf("create choice: %v", err)
		}
		wrong, err := st.Client().Choice.Create().
			SetQuestion(q).
			SetText("wrong").
			Save(ctx)
		if err != nil {
			t.Fatalf("create choice: %v", err)
		}
		f.questions = append(f.questions, q)
		f.choices = append(f.choices, []*ent.Choice{right, wrong})
	}

	return f
}

func TestStartSessionWithSectionPreCreatesAttempt(t *testing.T) {
	f := newFixture(t, 2)
	ctx := context.Background()

	sess, err := f.engine.StartSession(ctx, "user-1", "TEF", cefr.SkillCO)
	if err != nil {
		t.Fatalf("StartSession() error = %v", err)
	}
	if sess.Section != "co" {
		t.Errorf("Section = %q, want co", sess.Section)
	}

	attempts, err := sess.QueryAttempts().All(ctx)
	if err != nil {
		t.Fatalf("query attempts: %v", err)
	}
	if len(attempts) != 1 {
		t.Fatalf("attempts = %d, want 1", len(attempts))
	}
	if attempts[0].TotalItems != 2 {
		t.Errorf("TotalItems = %d, want 2", attempts[0].TotalItems)
	}
}

func TestStartSessionUnknownExam(t *testing.T) {
	f := newFixture(t, 0)

	if _, err := f.engine.StartSession(context.Background(), "user-1", "IELTS", ""); err == nil {
		t.Error("StartSession(IELTS) should fail")
	}
}

func TestRecordAnswerCorrectness(t *testing.T) {
	f := newFixture(t, 2)
	ctx := context.Background()

	sess, err := f.engine.StartSession(ctx, "user-1", "TEF", "")
	if err != nil {
		t.Fatalf("StartSession() error = %v", err)
	}
	att, err := f.engine.StartAttempt(ctx, sess.ID, cefr.SkillCO)
	if err != nil {
		t.Fatalf("StartAttempt() error = %v", err)
	}

	right := f.choices[0][0].ID
	res, err := f.engine.RecordAnswer(ctx, att.ID, f.questions[0].ID, &right, "")
	if err != nil {
		t.Fatalf("RecordAnswer() error = %v", err)
	}
	if !res.Correct {
		t.Error("correct choice should be scored correct")
	}

	wrong := f.choices[1][1].ID
	res, err = f.engine.RecordAnswer(ctx, att.ID, f.questions[1].ID, &wrong, "")
	if err != nil {
		t.Fatalf("RecordAnswer() error = %v", err)
	}
	if res.Correct {
		t.Error("wrong choice should be scored incorrect")
	}
}

func TestRecordAnswerOverwrites(t *testing.T) {
	f := newFixture(t, 1)
	ctx := context.Background()

	sess, _ := f.engine.StartSession(ctx, "user-1", "TEF", "")
	att, err := f.engine.StartAttempt(ctx, sess.ID, cefr.SkillCO)
	if err != nil {
		t.Fatalf("StartAttempt() error = %v", err)
	}

	wrong := f.choices[0][1].ID
	if _, err := f.engine.RecordAnswer(ctx, att.ID, f.questions[0].ID, &wrong, ""); err != nil {
		t.Fatalf("RecordAnswer() error = %v", err)
	}

	right := f.choices[0][0].ID
	if _, err := f.engine.RecordAnswer(ctx, att.ID, f.questions[0].ID, &right, ""); err != nil {
		t.Fatalf("RecordAnswer() overwrite error = %v", err)
	}

	n, err := f.store.Client().Answer.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count answers: %v", err)
	}
	if n != 1 {
		t.Errorf("answers = %d, want 1 after overwrite", n)
	}

	res, err := f.engine.FinishAttempt(ctx, att.ID)
	if err != nil {
		t.Fatalf("FinishAttempt() error = %v", err)
	}
	if res.RawScore != 1 {
		t.Errorf("RawScore = %d, want 1 (latest answer wins)", res.RawScore)
	}
}

func TestRecordAnswerRejectsForeignChoice(t *testing.T) {
	f := newFixture(t, 2)
	ctx := context.Background()

	sess, _ := f.engine.StartSession(ctx, "user-1", "TEF", "")
	att, err := f.engine.StartAttempt(ctx, sess.ID, cefr.SkillCO)
	if err != nil {
		t.Fatalf("StartAttempt() error = %v", err)
	}

	// Choice of question 1 submitted for question 0.
	foreign := f.choices[1][0].ID
	_, err = f.engine.RecordAnswer(ctx, att.ID, f.questions[0].ID, &foreign, "")
	var mismatch *ChoiceMismatchError
	if !errors.As(err, &mismatch) {
		t.Fatalf("RecordAnswer() error = %v, want *ChoiceMismatchError", err)
	}
}

func TestRecordAnswerRejectsForeignQuestion(t *testing.T) {
	f := newFixture(t, 1)
	ctx := context.Background()

	// A question in another section of the same exam.
	ceSection, err := f.store.Client().ExamSection.Create().
		SetExam(f.exam).
		SetSectionCode("ce").
		SetOrder(2).
		Save(ctx)
	if err != nil {
		t.Fatalf("create section: %v", err)
	}
	ceQuestion, err := f.store.Client().Question.Create().
		SetSection(ceSection).
		SetStem("Question CE").
		Save(ctx)
	if err != nil {
		t.Fatalf("create question: %v", err)
	}
	ceChoice, err := f.store.Client().Choice.Create().
		SetQuestion(ceQuestion).
		SetText("right").
		SetIsCorrect(true).
		Save(ctx)
	if err != nil {
		t.Fatalf("create choice: %v", err)
	}

	sess, _ := f.engine.StartSession(ctx, "user-1", "TEF", "")
	att, err := f.engine.StartAttempt(ctx, sess.ID, cefr.SkillCO)
	if err != nil {
		t.Fatalf("StartAttempt() error = %v", err)
	}

	id := ceChoice.ID
	_, err = f.engine.RecordAnswer(ctx, att.ID, ceQuestion.ID, &id, "")
	var mismatch *QuestionMismatchError
	if !errors.As(err, &mismatch) {
		t.Fatalf("RecordAnswer() error = %v, want *QuestionMismatchError", err)
	}

	// The rejected answer must not leak into the score.
	right := f.choices[0][0].ID
	if _, err := f.engine.RecordAnswer(ctx, att.ID, f.questions[0].ID, &right, ""); err != nil {
		t.Fatalf("RecordAnswer() error = %v", err)
	}
	res, err := f.engine.FinishAttempt(ctx, att.ID)
	if err != nil {
		t.Fatalf("FinishAttempt() error = %v", err)
	}
	if res.RawScore > res.TotalItems {
		t.Errorf("RawScore %d exceeds TotalItems %d", res.RawScore, res.TotalItems)
	}
	if res.RawScore != 1 || res.ScorePercent != 100 {
		t.Errorf("result = %+v, want 1/1", res)
	}
}

func TestFinishAttemptScores(t *testing.T) {
	f := newFixture(t, 4)
	ctx := context.Background()

	sess, _ := f.engine.StartSession(ctx, "user-1", "TEF", "")
	att, err := f.engine.StartAttempt(ctx, sess.ID, cefr.SkillCO)
	if err != nil {
		t.Fatalf("StartAttempt() error = %v", err)
	}

	// 3 of 4 correct.
	for i := 0; i < 3; i++ {
		id := f.choices[i][0].ID
		if _, err := f.engine.RecordAnswer(ctx, att.ID, f.questions[i].ID, &id, ""); err != nil {
			t.Fatalf("RecordAnswer() error = %v", err)
		}
	}
	id := f.choices[3][1].ID
	if _, err := f.engine.RecordAnswer(ctx, att.ID, f.questions[3].ID, &id, ""); err != nil {
		t.Fatalf("RecordAnswer() error = %v", err)
	}

	res, err := f.engine.FinishAttempt(ctx, att.ID)
	if err != nil {
		t.Fatalf("FinishAttempt() error = %v", err)
	}
	if res.RawScore != 3 || res.TotalItems != 4 {
		t.Errorf("result = %+v, want 3/4", res)
	}
	if res.ScorePercent != 75 {
		t.Errorf("ScorePercent = %v, want 75", res.ScorePercent)
	}

	// Finishing again recomputes the same numbers.
	again, err := f.engine.FinishAttempt(ctx, att.ID)
	if err != nil {
		t.Fatalf("FinishAttempt() second call error = %v", err)
	}
	if *again != *res {
		t.Errorf("re-finish result = %+v, want %+v", again, res)
	}
}

func TestFinishSessionAveragesAttempts(t *testing.T) {
	f := newFixture(t, 2)
	ctx := context.Background()

	sess, _ := f.engine.StartSession(ctx, "user-1", "TEF", "")

	// Attempt 1: 2/2 = 100%.
	att1, _ := f.engine.StartAttempt(ctx, sess.ID, cefr.SkillCO)
	for i := 0; i < 2; i++ {
		id := f.choices[i][0].ID
		if _, err := f.engine.RecordAnswer(ctx, att1.ID, f.questions[i].ID, &id, ""); err != nil {
			t.Fatalf("RecordAnswer() error = %v", err)
		}
	}

	// Attempt 2: 1/2 = 50%.
	att2, _ := f.engine.StartAttempt(ctx, sess.ID, cefr.SkillCO)
	id := f.choices[0][0].ID
	if _, err := f.engine.RecordAnswer(ctx, att2.ID, f.questions[0].ID, &id, ""); err != nil {
		t.Fatalf("RecordAnswer() error = %v", err)
	}

	finished, err := f.engine.FinishSession(ctx, sess.ID)
	if err != nil {
		t.Fatalf("FinishSession() error = %v", err)
	}
	if finished.TotalScore != 75 {
		t.Errorf("TotalScore = %v, want 75", finished.TotalScore)
	}
	if finished.Status != "finished" {
		t.Errorf("Status = %q, want finished", finished.Status)
	}
	if len(finished.ResultData) == 0 {
		t.Error("ResultData should carry the per-section summary")
	}
}

func TestRecordFormatResult(t *testing.T) {
	f := newFixture(t, 4)
	ctx := context.Background()

	sess, _ := f.engine.StartSession(ctx, "user-1", "TEF", "")
	att, err := f.engine.StartAttempt(ctx, sess.ID, cefr.SkillCO)
	if err != nil {
		t.Fatalf("StartAttempt() error = %v", err)
	}

	// 3/4 correct.
	for i := 0; i < 3; i++ {
		id := f.choices[i][0].ID
		if _, err := f.engine.RecordAnswer(ctx, att.ID, f.questions[i].ID, &id, ""); err != nil {
			t.Fatalf("RecordAnswer() error = %v", err)
		}
	}

	// Recording before the session is finished must fail.
	if _, err := f.engine.RecordFormatResult(ctx, sess.ID, cefr.B1); err == nil {
		t.Error("RecordFormatResult() on an active session should fail")
	}

	if _, err := f.engine.FinishSession(ctx, sess.ID); err != nil {
		t.Fatalf("FinishSession() error = %v", err)
	}

	row, err := f.engine.RecordFormatResult(ctx, sess.ID, cefr.B1)
	if err != nil {
		t.Fatalf("RecordFormatResult() error = %v", err)
	}
	if row.ExamCode != "TEF" || row.UserID != "user-1" {
		t.Errorf("row = %+v", row)
	}
	// 3/4 = 75% on the TEF scale: 338/450, B2.
	if row.GlobalScore != 338 || row.GlobalCefr != "B2" {
		t.Errorf("global = %v %s, want 338 B2", row.GlobalScore, row.GlobalCefr)
	}
	if _, ok := row.SectionResults["co"]; !ok {
		t.Error("SectionResults missing co breakdown")
	}
}

func TestRecordTextAnswer(t *testing.T) {
	f := newFixture(t, 1)
	ctx := context.Background()

	sess, _ := f.engine.StartSession(ctx, "user-1", "TEF", "")
	att, err := f.engine.StartAttempt(ctx, sess.ID, cefr.SkillCO)
	if err != nil {
		t.Fatalf("StartAttempt() error = %v", err)
	}

	res, err := f.engine.RecordAnswer(ctx, att.ID, f.questions[0].ID, nil, "Ma réponse rédigée.")
	if err != nil {
		t.Fatalf("RecordAnswer() error = %v", err)
	}
	if res.Correct {
		t.Error("free-text answers are stored uncorrected")
	}
}
