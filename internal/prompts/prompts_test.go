package prompts

import (
	"strings"
	"testing"

	"github.com/visaetude/prepcore/internal/cefr"
)

func TestLessonPromptExistsForEverySkill(t *testing.T) {
	for _, skill := range cefr.Skills {
		p, err := Lesson(skill)
		if err != nil {
			t.Errorf("Lesson(%s) error = %v", skill, err)
			continue
		}
		if !strings.Contains(p, "JSON") {
			t.Errorf("Lesson(%s) prompt does not demand JSON output", skill)
		}
	}
}

func TestExamPromptExistsForEverySkill(t *testing.T) {
	for _, skill := range cefr.Skills {
		p, err := Exam(skill)
		if err != nil {
			t.Errorf("Exam(%s) error = %v", skill, err)
			continue
		}
		if !strings.Contains(p, "TEF") {
			t.Errorf("Exam(%s) prompt does not mention the exam format", skill)
		}
	}
}

func TestLessonRejectsUnknownSkill(t *testing.T) {
	if _, err := Lesson(cefr.Skill("xx")); err == nil {
		t.Error("Lesson(xx) should fail")
	}
}

func TestLessonUser(t *testing.T) {
	got := LessonUser(cefr.SkillCE, "fr", cefr.B1)
	if !strings.Contains(got, "CE") || !strings.Contains(got, "B1") || !strings.Contains(got, "fr") {
		t.Errorf("LessonUser = %q, missing skill, level or language", got)
	}
}

func TestExamUserMentionsSectionAndCount(t *testing.T) {
	got := ExamUser(cefr.SkillCO, "fr", cefr.B2)
	if !strings.Contains(got, "5") || !strings.Contains(got, "CO") {
		t.Errorf("ExamUser = %q, missing question count or section", got)
	}
}
