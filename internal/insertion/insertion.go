// Package insertion persists generated content: lesson payloads become
// CourseLesson rows with their exercises, mock-exam batches become
// Question/Choice rows under the exam's sections. Each insert runs in a
// single transaction so a malformed payload never leaves partial rows.
package insertion

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/visaetude/prepcore/ent"
	"github.com/visaetude/prepcore/ent/asset"
	"github.com/visaetude/prepcore/ent/courseexercise"
	"github.com/visaetude/prepcore/ent/courselesson"
	"github.com/visaetude/prepcore/ent/exam"

	"github.com/visaetude/prepcore/internal/cefr"
	"github.com/visaetude/prepcore/internal/store"
)

// UnknownExamError indicates the target exam does not exist.
type UnknownExamError struct {
	Code string
}

func (e *UnknownExamError) Error() string {
	return fmt.Sprintf("exam %q not found", e.Code)
}

// LessonInput is one generated lesson payload to persist.
type LessonInput struct {
	ExamCode string
	Skill    cefr.Skill
	Level    cefr.Level
	Language string

	// Payload is the validated agent output.
	Payload json.RawMessage

	// AudioRef is the media-relative path of a synthesised audio file,
	// empty when the lesson has none.
	AudioRef string
}

// Service writes generated content to the store.
type Service struct {
	store *store.Store
}

// NewService creates an insertion service.
func NewService(st *store.Store) *Service {
	return &Service{store: st}
}

// InsertLesson persists one lesson with its exercises. CO and CE
// payloads produce objective exercises from the questions list; EO and
// EE payloads produce a single productive exercise. The lesson is
// published immediately and linked to the exam.
func (s *Service) InsertLesson(ctx context.Context, in LessonInput) (*ent.CourseLesson, error) {
	if !cefr.ValidSkill(in.Skill) {
		return nil, fmt.Errorf("invalid skill %q", in.Skill)
	}
	if !cefr.Valid(in.Level) {
		return nil, fmt.Errorf("invalid level %q", in.Level)
	}
	if in.Language == "" {
		in.Language = "fr"
	}

	var payload map[string]any
	if err := json.Unmarshal(in.Payload, &payload); err != nil {
		return nil, fmt.Errorf("parse lesson payload: %w", err)
	}

	var lesson *ent.CourseLesson
	err := s.store.WithTx(ctx, func(tx *ent.Client) error {
		ex, err := tx.Exam.Query().Where(exam.Code(in.ExamCode)).Only(ctx)
		if err != nil {
			if ent.IsNotFound(err) {
				return &UnknownExamError{Code: in.ExamCode}
			}
			return fmt.Errorf("load exam: %w", err)
		}

		title := firstString(payload, "title", "topic")
		if title == "" {
			title = fmt.Sprintf("%s %s - Leçon", strings.ToUpper(string(in.Skill)), in.Level)
		}

		order, err := tx.CourseLesson.Query().
			Where(
				courselesson.SectionEQ(courselesson.Section(in.Skill)),
				courselesson.LevelEQ(courselesson.Level(in.Level)),
			).
			Count(ctx)
		if err != nil {
			return fmt.Errorf("count lessons: %w", err)
		}

		create := tx.CourseLesson.Create().
			SetTitle(title).
			SetSlug(slugWithSuffix(fmt.Sprintf("%s-%s-%s", in.Level, in.Skill, truncate(title, 30)))).
			SetSection(courselesson.Section(in.Skill)).
			SetLevel(courselesson.Level(in.Level)).
			SetLocale(in.Language).
			SetContent(lessonBody(in.Skill, payload)).
			SetOrder(order + 1).
			SetPublished(true).
			AddExams(ex)

		var audio *ent.Asset
		if in.AudioRef != "" {
			audio, err = tx.Asset.Create().
				SetPath(in.AudioRef).
				SetKind(asset.KindAudio).
				SetLanguage(in.Language).
				Save(ctx)
			if err != nil {
				return fmt.Errorf("create audio asset: %w", err)
			}
			create.SetAsset(audio)
		}

		lesson, err = create.Save(ctx)
		if err != nil {
			return fmt.Errorf("create lesson: %w", err)
		}

		switch in.Skill {
		case cefr.SkillCO, cefr.SkillCE:
			return insertObjectiveExercises(ctx, tx, lesson, audio, payload)
		default:
			return insertProductiveExercise(ctx, tx, lesson, payload)
		}
	})
	if err != nil {
		return nil, err
	}
	return lesson, nil
}

func insertObjectiveExercises(ctx context.Context, tx *ent.Client, lesson *ent.CourseLesson, audio *ent.Asset, payload map[string]any) error {
	items := normalizeObjective(payload)
	for i, item := range items {
		create := tx.CourseExercise.Create().
			SetLesson(lesson).
			SetKind(courseexercise.KindObjective).
			SetStem(item.Stem).
			SetOptionA(item.OptionA).
			SetOptionB(item.OptionB).
			SetOptionC(item.OptionC).
			SetOptionD(item.OptionD).
			SetCorrectOption(item.Correct).
			SetOrder(i + 1)
		if audio != nil {
			create.SetAsset(audio)
		}
		if _, err := create.Save(ctx); err != nil {
			return fmt.Errorf("create exercise %d: %w", i+1, err)
		}
	}
	return nil
}

func insertProductiveExercise(ctx context.Context, tx *ent.Client, lesson *ent.CourseLesson, payload map[string]any) error {
	create := tx.CourseExercise.Create().
		SetLesson(lesson).
		SetKind(courseexercise.KindProductive).
		SetPrompt(firstString(payload, "instructions", "instruction", "prompt")).
		SetSampleAnswer(firstString(payload, "sample_answer")).
		SetCriteria(joinLines(payload, "expected_points", "criteria")).
		SetOrder(1)
	if n, ok := asInt(payload["min_words"]); ok {
		create.SetMinWords(n)
	}
	if n, ok := asInt(payload["max_words"]); ok {
		create.SetMaxWords(n)
	}
	if _, err := create.Save(ctx); err != nil {
		return fmt.Errorf("create productive exercise: %w", err)
	}
	return nil
}

// lessonBody picks the lesson text per skill: the listening script for
// CO, the reading text for CE, the task statement otherwise.
func lessonBody(skill cefr.Skill, payload map[string]any) string {
	switch skill {
	case cefr.SkillCO:
		return firstString(payload, "audio_script", "content", "content_html")
	case cefr.SkillCE:
		return firstString(payload, "reading_text", "content", "content_html")
	}
	topic := firstString(payload, "topic")
	instructions := firstString(payload, "instructions", "instruction")
	if topic == "" {
		return instructions
	}
	if instructions == "" {
		return topic
	}
	return topic + "\n\n" + instructions
}

func slugWithSuffix(s string) string {
	return Slugify(s) + "-" + uuid.New().String()[:8]
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
