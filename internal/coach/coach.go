// Package coach produces deterministic feedback from numeric attempt
// results: a per-skill report (band, strengths, weaknesses, advice) and
// a global aggregate that ranks sections from weakest to strongest. No
// LLM involved; productive free-text marking lives in the evaluator.
package coach

import (
	"math"
	"sort"
	"strings"

	"github.com/visaetude/prepcore/internal/cefr"
)

// AttemptStats is the numeric input for one section attempt.
type AttemptStats struct {
	Section cefr.Skill
	Raw     int
	Total   int
}

// Report is the per-skill analysis.
type Report struct {
	Section    string   `json:"section"`
	ScorePct   int      `json:"score_pct"`
	Level      string   `json:"level"`
	Strengths  []string `json:"strengths"`
	Weaknesses []string `json:"weaknesses"`
	Advice     []string `json:"advice"`
}

// GlobalReport aggregates all section reports of one session.
type GlobalReport struct {
	AvgScore   int                `json:"avg_score"`
	Level      string             `json:"level"`
	Sections   map[string]*Report `json:"sections"`
	Priorities []Priority         `json:"priorities"`
	Advice     []string           `json:"advice"`
}

// Priority ranks one section, weakest first.
type Priority struct {
	Section  string `json:"section"`
	ScorePct int    `json:"score_pct"`
	Level    string `json:"level"`
}

// BandFromPct maps a percentage to the coach's CEFR estimate.
func BandFromPct(pct int) string {
	switch {
	case pct >= 90:
		return "C2"
	case pct >= 80:
		return "C1"
	case pct >= 70:
		return "B2"
	case pct >= 55:
		return "B1"
	case pct >= 40:
		return "A2"
	}
	return "<A2"
}

// AnalyzeAttempt builds the per-skill report for one attempt.
func AnalyzeAttempt(stats AttemptStats) *Report {
	pct := 0
	if stats.Total > 0 {
		pct = int(math.Round(float64(stats.Raw) / float64(stats.Total) * 100))
	}

	rules := rulesFor(stats.Section)
	return &Report{
		Section:    strings.ToUpper(string(stats.Section)),
		ScorePct:   pct,
		Level:      BandFromPct(pct),
		Strengths:  rules.strengths(pct),
		Weaknesses: rules.weaknesses(pct),
		Advice:     rules.advice(pct),
	}
}

// AnalyzeSession aggregates section reports: average score, global band,
// priorities ordered weakest to strongest, tiered advice. Returns nil
// when there is nothing to analyse.
func AnalyzeSession(attempts []AttemptStats) *GlobalReport {
	if len(attempts) == 0 {
		return nil
	}

	sections := make(map[string]*Report, len(attempts))
	for _, a := range attempts {
		r := AnalyzeAttempt(a)
		sections[strings.ToLower(r.Section)] = r
	}

	sum := 0
	for _, r := range sections {
		sum += r.ScorePct
	}
	avg := int(math.Round(float64(sum) / float64(len(sections))))

	priorities := make([]Priority, 0, len(sections))
	for _, r := range sections {
		priorities = append(priorities, Priority{
			Section:  r.Section,
			ScorePct: r.ScorePct,
			Level:    r.Level,
		})
	}
	sort.Slice(priorities, func(i, j int) bool {
		if priorities[i].ScorePct != priorities[j].ScorePct {
			return priorities[i].ScorePct < priorities[j].ScorePct
		}
		return priorities[i].Section < priorities[j].Section
	})

	return &GlobalReport{
		AvgScore:   avg,
		Level:      BandFromPct(avg),
		Sections:   sections,
		Priorities: priorities,
		Advice:     globalAdvice(avg),
	}
}

func globalAdvice(avg int) []string {
	switch {
	case avg < 65:
		return []string{
			"Renforcer les bases grammaticales",
			"Travailler la compréhension avant la production",
			"Suivre un plan d'étude structuré",
		}
	case avg < 80:
		return []string{
			"Accent sur les stratégies d'examen",
			"Simuler des examens complets",
			"Corriger systématiquement les erreurs",
		}
	}
	return []string{
		"Maintenir le niveau",
		"S'entraîner en conditions réelles",
		"Optimiser la gestion du temps",
	}
}
