package insertion

import (
	"context"
	"encoding/json"
	"errors"
	"regexp"
	"testing"

	"github.com/visaetude/prepcore/ent/courseexercise"
	"github.com/visaetude/prepcore/ent/question"

	"github.com/visaetude/prepcore/internal/cefr"
	"github.com/visaetude/prepcore/internal/mockexam"
	"github.com/visaetude/prepcore/internal/store"
)

func newService(t *testing.T) (*Service, *store.Store) {
	t.Helper()
	st, err := store.Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { st.Close() })

	_, err = st.Client().Exam.Create().
		SetCode("TEF").
		SetName("Test d'évaluation de français").
		SetLanguage("fr").
		Save(context.Background())
	if err != nil {
		t.Fatalf("create exam: %v", err)
	}
	return NewService(st), st
}

const listeningPayload = `{
  "title": "Au bureau",
  "audio_script": "Bonjour. Aujourd'hui, nous parlons du travail.",
  "questions": [
    {"question": "Quel est le sujet principal ?", "choices": ["Le sport", "Le travail", "La cuisine", "Le voyage"], "correct_answer": "B"},
    {"question": "Qui parle ?", "choices": ["Marie", "Paul", "Lina", "Omar"], "correct_answer": "A"}
  ]
}`

func TestInsertListeningLesson(t *testing.T) {
	svc, st := newService(t)
	ctx := context.Background()

	lesson, err := svc.InsertLesson(ctx, LessonInput{
		ExamCode: "TEF",
		Skill:    cefr.SkillCO,
		Level:    cefr.A1,
		Language: "fr",
		Payload:  json.RawMessage(listeningPayload),
		AudioRef: "audio/co_abc123.mp3",
	})
	if err != nil {
		t.Fatalf("InsertLesson() error = %v", err)
	}

	if lesson.Title != "Au bureau" || !lesson.Published {
		t.Errorf("lesson = %+v, want published 'Au bureau'", lesson)
	}
	if lesson.Content != "Bonjour. Aujourd'hui, nous parlons du travail." {
		t.Errorf("Content = %q, want the audio script", lesson.Content)
	}
	if ok, _ := regexp.MatchString(`^a1-co-au-bureau-[0-9a-f-]{8}$`, lesson.Slug); !ok {
		t.Errorf("Slug = %q, want a1-co-au-bureau-<suffix>", lesson.Slug)
	}

	exercises, err := st.Client().CourseExercise.Query().
		Order(courseexercise.ByOrder()).
		All(ctx)
	if err != nil {
		t.Fatalf("query exercises: %v", err)
	}
	if len(exercises) != 2 {
		t.Fatalf("exercises = %d, want 2", len(exercises))
	}
	first := exercises[0]
	if first.Stem != "Quel est le sujet principal ?" || first.OptionB != "Le travail" || first.CorrectOption != "B" {
		t.Errorf("exercise = %+v", first)
	}
	if first.Kind != courseexercise.KindObjective {
		t.Errorf("Kind = %s, want objective", first.Kind)
	}

	n, err := st.Client().Asset.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count assets: %v", err)
	}
	if n != 1 {
		t.Errorf("assets = %d, want 1 audio asset", n)
	}
}

func TestInsertLessonOrderIncrements(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	for want := 1; want <= 2; want++ {
		lesson, err := svc.InsertLesson(ctx, LessonInput{
			ExamCode: "TEF",
			Skill:    cefr.SkillCO,
			Level:    cefr.A1,
			Payload:  json.RawMessage(listeningPayload),
		})
		if err != nil {
			t.Fatalf("InsertLesson() error = %v", err)
		}
		if lesson.Order != want {
			t.Errorf("Order = %d, want %d", lesson.Order, want)
		}
	}
}

func TestInsertLessonUnknownExamRollsBack(t *testing.T) {
	svc, st := newService(t)
	ctx := context.Background()

	_, err := svc.InsertLesson(ctx, LessonInput{
		ExamCode: "NOPE",
		Skill:    cefr.SkillCO,
		Level:    cefr.A1,
		Payload:  json.RawMessage(listeningPayload),
	})
	var unknownErr *UnknownExamError
	if !errors.As(err, &unknownErr) || unknownErr.Code != "NOPE" {
		t.Fatalf("error = %v, want UnknownExamError for NOPE", err)
	}

	n, _ := st.Client().CourseLesson.Query().Count(ctx)
	if n != 0 {
		t.Errorf("lessons = %d, want 0 after rollback", n)
	}
}

func TestInsertWritingLesson(t *testing.T) {
	svc, st := newService(t)
	ctx := context.Background()

	payload := `{
	  "topic": "Mon projet professionnel",
	  "instructions": "Rédigez un texte structuré.",
	  "min_words": 120,
	  "sample_answer": "Je souhaite évoluer dans un environnement international."
	}`
	lesson, err := svc.InsertLesson(ctx, LessonInput{
		ExamCode: "TEF",
		Skill:    cefr.SkillEE,
		Level:    cefr.B1,
		Payload:  json.RawMessage(payload),
	})
	if err != nil {
		t.Fatalf("InsertLesson() error = %v", err)
	}
	if lesson.Title != "Mon projet professionnel" {
		t.Errorf("Title = %q", lesson.Title)
	}

	ex, err := st.Client().CourseExercise.Query().Only(ctx)
	if err != nil {
		t.Fatalf("query exercise: %v", err)
	}
	if ex.Kind != courseexercise.KindProductive {
		t.Errorf("Kind = %s, want productive", ex.Kind)
	}
	if ex.Prompt != "Rédigez un texte structuré." || ex.MinWords != 120 || ex.SampleAnswer == "" {
		t.Errorf("exercise = %+v", ex)
	}
}

func TestInsertSpeakingLessonCriteria(t *testing.T) {
	svc, st := newService(t)
	ctx := context.Background()

	payload := `{
	  "topic": "Se présenter",
	  "instructions": "Parlez de vous pendant 2 minutes.",
	  "expected_points": ["identité", "profession", "objectifs"]
	}`
	if _, err := svc.InsertLesson(ctx, LessonInput{
		ExamCode: "TEF",
		Skill:    cefr.SkillEO,
		Level:    cefr.A2,
		Payload:  json.RawMessage(payload),
	}); err != nil {
		t.Fatalf("InsertLesson() error = %v", err)
	}

	ex, err := st.Client().CourseExercise.Query().Only(ctx)
	if err != nil {
		t.Fatalf("query exercise: %v", err)
	}
	if ex.Criteria != "identité\nprofession\nobjectifs" {
		t.Errorf("Criteria = %q", ex.Criteria)
	}
}

func TestInsertExamBatch(t *testing.T) {
	svc, st := newService(t)
	ctx := context.Background()

	batch := &mockexam.Batch{
		Passage: "Annonce en gare.",
		Questions: []mockexam.Item{
			{
				Stem:       "Quelle est la destination ?",
				Difficulty: "easy",
				Choices: []mockexam.Choice{
					{Text: "Québec"},
					{Text: "Montréal", IsCorrect: true},
				},
				Explanation: "L'annonce indique Montréal.",
			},
			{
				Stem:       "De quelle voie part le train ?",
				Difficulty: "weird", // coerced to medium
				Choices: []mockexam.Choice{
					{Text: "Voie 5"},
					{Text: "Voie 7", IsCorrect: true},
				},
			},
		},
	}

	n, err := svc.InsertExamBatch(ctx, "TEF", cefr.SkillCO, batch)
	if err != nil {
		t.Fatalf("InsertExamBatch() error = %v", err)
	}
	if n != 2 {
		t.Errorf("inserted = %d, want 2", n)
	}

	questions, err := st.Client().Question.Query().All(ctx)
	if err != nil {
		t.Fatalf("query questions: %v", err)
	}
	if len(questions) != 2 {
		t.Fatalf("questions = %d, want 2", len(questions))
	}
	if questions[1].Difficulty != "medium" {
		t.Errorf("Difficulty = %s, want medium fallback", questions[1].Difficulty)
	}

	choices, _ := st.Client().Choice.Query().Count(ctx)
	if choices != 4 {
		t.Errorf("choices = %d, want 4", choices)
	}
	passages, _ := st.Client().Passage.Query().Count(ctx)
	if passages != 1 {
		t.Errorf("passages = %d, want 1", passages)
	}

	// A second batch reuses the section.
	if _, err := svc.InsertExamBatch(ctx, "TEF", cefr.SkillCO, batch); err != nil {
		t.Fatalf("second InsertExamBatch() error = %v", err)
	}
	sections, _ := st.Client().ExamSection.Query().Count(ctx)
	if sections != 1 {
		t.Errorf("sections = %d, want 1", sections)
	}
}

func TestInsertExamBatchProductiveSubtype(t *testing.T) {
	svc, st := newService(t)
	ctx := context.Background()

	batch := &mockexam.Batch{
		Questions: []mockexam.Item{
			{Stem: "Racontez votre dernier voyage.", Difficulty: "medium"},
		},
	}
	if _, err := svc.InsertExamBatch(ctx, "TEF", cefr.SkillEE, batch); err != nil {
		t.Fatalf("InsertExamBatch() error = %v", err)
	}

	q, err := st.Client().Question.Query().Only(ctx)
	if err != nil {
		t.Fatalf("query question: %v", err)
	}
	if q.Subtype != question.SubtypeText {
		t.Errorf("Subtype = %s, want text for a productive section", q.Subtype)
	}
}

func TestInsertExamBatchUnknownExam(t *testing.T) {
	svc, _ := newService(t)
	batch := &mockexam.Batch{Questions: []mockexam.Item{{Stem: "x", Choices: []mockexam.Choice{{Text: "a"}, {Text: "b", IsCorrect: true}}}}}

	var unknownErr *UnknownExamError
	_, err := svc.InsertExamBatch(context.Background(), "NOPE", cefr.SkillCE, batch)
	if !errors.As(err, &unknownErr) {
		t.Errorf("error = %v, want UnknownExamError", err)
	}
}
