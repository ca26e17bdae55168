// Package scoring maps raw section results onto the official scales of
// each exam format and derives CEFR band estimates. Everything here is a
// pure function of its inputs.
package scoring

import (
	"fmt"
	"math"
	"strings"

	"github.com/visaetude/prepcore/internal/cefr"
)

// SectionScore is the result of mapping one section's raw score.
type SectionScore struct {
	Raw     int
	Total   int
	Percent float64

	// Score is the section score on the exam's official scale.
	Score float64

	// Max is the maximum section score for this exam format.
	Max float64

	// Band is the CEFR estimate. DELF/DALF bands are informal ranges
	// ("B1–B2", en dash); TEF and TCF bands are single levels.
	Band string
}

// DomainError indicates raw/total values outside the valid domain.
type DomainError struct {
	Raw   int
	Total int
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("invalid score domain: raw=%d total=%d", e.Raw, e.Total)
}

// scale holds one exam family's official scale and band thresholds.
type scale struct {
	max   float64
	bands []band
}

type band struct {
	min  float64
	name string
}

var (
	tefScale = scale{max: 450, bands: []band{
		{417, "C2"}, {366, "C1"}, {304, "B2"}, {242, "B1"}, {181, "A2"},
	}}
	tcfScale = scale{max: 699, bands: []band{
		{589, "C2"}, {500, "C1"}, {400, "B2"}, {300, "B1"}, {226, "A2"},
	}}
)

// delfBands maps a section percentage to an informal CEFR range.
var delfBands = []struct {
	minPct float64
	name   string
}{
	{90, "C1–C2"}, {75, "B2–C1"}, {60, "B1–B2"}, {40, "A2–B1"},
}

const delfSectionMax = 25

// MapScore maps one section's raw result onto the exam's official scale.
// total=0 yields score 0 and band A1. Ties break toward the lower band
// because thresholds are inclusive lower bounds.
func MapScore(examCode string, section cefr.Skill, raw, total int) (SectionScore, error) {
	if total < 0 || raw < 0 || (total > 0 && raw > total) {
		return SectionScore{}, &DomainError{Raw: raw, Total: total}
	}

	s := SectionScore{Raw: raw, Total: total}

	switch normalizeExamCode(examCode) {
	case "TEF":
		s.Max = tefScale.max
	case "TCF":
		s.Max = tcfScale.max
	case "DELF", "DALF":
		s.Max = delfSectionMax
	default:
		return SectionScore{}, fmt.Errorf("unknown exam code %q", examCode)
	}

	if total == 0 {
		s.Band = string(cefr.A1)
		return s, nil
	}

	ratio := float64(raw) / float64(total)
	s.Percent = math.Round(ratio * 100)
	s.Score = math.Round(ratio * s.Max)

	switch normalizeExamCode(examCode) {
	case "TEF":
		s.Band = tefScale.band(s.Score)
	case "TCF":
		s.Band = tcfScale.band(s.Score)
	case "DELF", "DALF":
		s.Band = delfBand(s.Percent)
	}

	return s, nil
}

func (sc scale) band(score float64) string {
	for _, b := range sc.bands {
		if score >= b.min {
			return b.name
		}
	}
	return string(cefr.A1)
}

func delfBand(percent float64) string {
	for _, b := range delfBands {
		if percent >= b.minPct {
			return b.name
		}
	}
	return "A1–A2"
}

func normalizeExamCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
