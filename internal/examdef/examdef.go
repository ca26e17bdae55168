// Package examdef describes the official formats of the supported
// French proficiency exams: section sizes, durations and scoring type
// per exam, with per-level overrides where the real exam varies (DELF
// and DALF). Formats can be loaded from YAML or taken from the built-in
// defaults, and seeded into the store.
package examdef

import (
	"fmt"

	"github.com/visaetude/prepcore/internal/cefr"
)

// SectionPlan sizes one skill section of an exam format.
type SectionPlan struct {
	// Count is how many items the training version of the section has;
	// productive sections always have 1 or 2 tasks.
	Count int `yaml:"count"`

	// DurationMinutes is the nominal section duration.
	DurationMinutes int `yaml:"duration_minutes"`

	// TimerSeconds is the simulated per-question timer for objective
	// sections, zero when untimed per question.
	TimerSeconds int `yaml:"timer_seconds,omitempty"`
}

// Format is one exam definition.
type Format struct {
	Code      string   `yaml:"code"`
	Name      string   `yaml:"name"`
	FullName  string   `yaml:"full_name"`
	Language  string   `yaml:"language"`
	Levels    []string `yaml:"levels"`
	ScoreType string   `yaml:"score_type"`
	Note      string   `yaml:"note,omitempty"`

	Sections map[string]SectionPlan `yaml:"sections"`

	// LevelOverrides replaces section plans for specific levels.
	LevelOverrides map[string]map[string]SectionPlan `yaml:"level_overrides,omitempty"`
}

// Validate checks the format is internally consistent.
func (f *Format) Validate() error {
	if f.Code == "" {
		return fmt.Errorf("exam format: code is required")
	}
	if f.Name == "" {
		return fmt.Errorf("exam format %s: name is required", f.Code)
	}
	if len(f.Levels) == 0 {
		return fmt.Errorf("exam format %s: at least one level is required", f.Code)
	}
	for _, l := range f.Levels {
		if !cefr.Valid(cefr.Level(l)) {
			return fmt.Errorf("exam format %s: invalid level %q", f.Code, l)
		}
	}
	if len(f.Sections) == 0 {
		return fmt.Errorf("exam format %s: sections are required", f.Code)
	}
	for code := range f.Sections {
		if !cefr.ValidSkill(cefr.Skill(code)) {
			return fmt.Errorf("exam format %s: unknown section %q", f.Code, code)
		}
	}
	for level, overrides := range f.LevelOverrides {
		if !cefr.Valid(cefr.Level(level)) {
			return fmt.Errorf("exam format %s: override for invalid level %q", f.Code, level)
		}
		for code := range overrides {
			if !cefr.ValidSkill(cefr.Skill(code)) {
				return fmt.Errorf("exam format %s: override for unknown section %q", f.Code, code)
			}
		}
	}
	return nil
}

// SupportsLevel reports whether the exam is offered at the level.
func (f *Format) SupportsLevel(level cefr.Level) bool {
	for _, l := range f.Levels {
		if cefr.Level(l) == level {
			return true
		}
	}
	return false
}

// PlanForLevel returns the section plans with any level overrides
// applied.
func (f *Format) PlanForLevel(level cefr.Level) map[string]SectionPlan {
	merged := make(map[string]SectionPlan, len(f.Sections))
	for code, plan := range f.Sections {
		merged[code] = plan
	}
	for code, plan := range f.LevelOverrides[string(level)] {
		merged[code] = plan
	}
	return merged
}

// Defaults returns the built-in formats: TEF Canada, TCF Canada, DELF
// and DALF. Objective section counts are the training sizes, not the
// full official counts.
func Defaults() []Format {
	return []Format{
		{
			Code:      "TEF",
			Name:      "TEF Canada",
			FullName:  "Test d'Évaluation de Français — Canada",
			Language:  "fr",
			Levels:    []string{"A1", "A2", "B1", "B2", "C1", "C2"},
			ScoreType: "tef",
			Note:      "Format entraînement (TEF réel : 60 CO / 50 CE). Score 0-450 par section.",
			Sections: map[string]SectionPlan{
				"co": {Count: 20, DurationMinutes: 20, TimerSeconds: 40},
				"ce": {Count: 15, DurationMinutes: 20, TimerSeconds: 90},
				"eo": {Count: 1, DurationMinutes: 15},
				"ee": {Count: 1, DurationMinutes: 60},
			},
		},
		{
			Code:      "TCF",
			Name:      "TCF Canada",
			FullName:  "Test de Connaissance du Français — Canada",
			Language:  "fr",
			Levels:    []string{"A1", "A2", "B1", "B2", "C1", "C2"},
			ScoreType: "tcf",
			Note:      "Format réel TCF Canada (29 CO + 29 CE, adaptatif simulé). Score 0-699 par section.",
			Sections: map[string]SectionPlan{
				"co": {Count: 29, DurationMinutes: 25, TimerSeconds: 52},
				"ce": {Count: 29, DurationMinutes: 45, TimerSeconds: 93},
				"eo": {Count: 1, DurationMinutes: 12},
				"ee": {Count: 2, DurationMinutes: 60},
			},
		},
		{
			Code:      "DELF",
			Name:      "DELF",
			FullName:  "Diplôme d'Études en Langue Française",
			Language:  "fr",
			Levels:    []string{"A1", "A2", "B1", "B2"},
			ScoreType: "delf",
			Note:      "Score /25 par épreuve (100 total). Seuil : 50/100 + min 5/25 par épreuve.",
			Sections: map[string]SectionPlan{
				"co": {Count: 10, DurationMinutes: 20, TimerSeconds: 120},
				"ce": {Count: 10, DurationMinutes: 35, TimerSeconds: 180},
				"eo": {Count: 1, DurationMinutes: 10},
				"ee": {Count: 1, DurationMinutes: 45},
			},
			LevelOverrides: map[string]map[string]SectionPlan{
				"A2": {
					"co": {Count: 10, DurationMinutes: 25, TimerSeconds: 120},
					"ce": {Count: 15, DurationMinutes: 45, TimerSeconds: 180},
				},
				"B1": {
					"co": {Count: 15, DurationMinutes: 25, TimerSeconds: 120},
					"ce": {Count: 20, DurationMinutes: 45, TimerSeconds: 180},
				},
				"B2": {
					"co": {Count: 20, DurationMinutes: 30, TimerSeconds: 120},
					"ce": {Count: 25, DurationMinutes: 60, TimerSeconds: 180},
				},
			},
		},
		{
			Code:      "DALF",
			Name:      "DALF",
			FullName:  "Diplôme Approfondi de Langue Française",
			Language:  "fr",
			Levels:    []string{"C1", "C2"},
			ScoreType: "dalf",
			Note:      "Score /25 par épreuve (100 total). Seuil : 50/100 + min 5/25 par épreuve.",
			Sections: map[string]SectionPlan{
				"co": {Count: 20, DurationMinutes: 40, TimerSeconds: 120},
				"ce": {Count: 20, DurationMinutes: 60, TimerSeconds: 180},
				"eo": {Count: 1, DurationMinutes: 30},
				"ee": {Count: 1, DurationMinutes: 150},
			},
		},
	}
}

// ByCode finds a format in the list, case-sensitive on the canonical
// uppercase code.
func ByCode(formats []Format, code string) (*Format, bool) {
	for i := range formats {
		if formats[i].Code == code {
			return &formats[i], true
		}
	}
	return nil, false
}
