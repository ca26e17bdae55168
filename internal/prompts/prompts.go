// Package prompts holds the frozen system prompts used for content and
// exam generation. Prompts are versioned as a set: any wording change
// bumps Version so generated content can be traced back to the prompt
// that produced it.
package prompts

import (
	"fmt"
	"strings"

	"github.com/visaetude/prepcore/internal/cefr"
)

// Version identifies the current prompt set.
const Version = "v1"

// Lesson returns the system prompt for generating a practice lesson for
// the given skill.
func Lesson(skill cefr.Skill) (string, error) {
	switch skill {
	case cefr.SkillCO:
		return lessonCO, nil
	case cefr.SkillCE:
		return lessonCE, nil
	case cefr.SkillEO:
		return lessonEO, nil
	case cefr.SkillEE:
		return lessonEE, nil
	}
	return "", fmt.Errorf("no lesson prompt for skill %q", skill)
}

// Exam returns the system prompt for generating a TEF-style mock exam
// section for the given skill.
func Exam(skill cefr.Skill) (string, error) {
	switch skill {
	case cefr.SkillCO:
		return examCO, nil
	case cefr.SkillCE:
		return examCE, nil
	case cefr.SkillEO:
		return examEO, nil
	case cefr.SkillEE:
		return examEE, nil
	}
	return "", fmt.Errorf("no exam prompt for skill %q", skill)
}

// LessonUser builds the user prompt for a lesson generation request.
func LessonUser(skill cefr.Skill, language string, level cefr.Level) string {
	return fmt.Sprintf("Generate a %s lesson at level %s in %s. Reply with JSON only.",
		strings.ToUpper(string(skill)), level, language)
}

// ExamUser builds the user prompt for a mock exam section request.
func ExamUser(skill cefr.Skill, language string, level cefr.Level) string {
	return fmt.Sprintf("Generate 5 exam-style multiple-choice questions for section %s at level %s in %s. Reply with JSON only.",
		strings.ToUpper(string(skill)), level, language)
}
