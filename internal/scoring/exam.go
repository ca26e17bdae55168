package scoring

import (
	"math"

	"github.com/visaetude/prepcore/internal/cefr"
)

// SectionInput is one section's raw result going into ScoreExam.
type SectionInput struct {
	Section cefr.Skill
	Raw     int
	Total   int
}

// ExamResult is the complete outcome of one mock exam on the format's
// official scale.
type ExamResult struct {
	ExamCode string
	Sections map[cefr.Skill]SectionScore

	// GlobalScore is the sum of section scores; GlobalMax the sum of
	// section maxima.
	GlobalScore float64
	GlobalMax   float64

	// GlobalPercent is the overall raw percentage across sections.
	GlobalPercent float64

	// GlobalBand is the overall CEFR estimate, derived from the global
	// percentage on the same scale as the sections.
	GlobalBand string

	// Passed is only meaningful for DELF/DALF: co≥5 ∧ ce≥5 ∧ co+ce≥25.
	// TEF and TCF report scores, not pass/fail.
	Passed bool
}

// ScoreExam maps every section and aggregates the global result.
func ScoreExam(examCode string, inputs []SectionInput) (*ExamResult, error) {
	result := &ExamResult{
		ExamCode: normalizeExamCode(examCode),
		Sections: make(map[cefr.Skill]SectionScore, len(inputs)),
	}

	var rawSum, totalSum int
	for _, in := range inputs {
		s, err := MapScore(examCode, in.Section, in.Raw, in.Total)
		if err != nil {
			return nil, err
		}
		result.Sections[in.Section] = s
		result.GlobalScore += s.Score
		result.GlobalMax += s.Max
		rawSum += in.Raw
		totalSum += in.Total
	}

	if totalSum > 0 {
		result.GlobalPercent = math.Round(float64(rawSum) / float64(totalSum) * 100)
	}

	switch result.ExamCode {
	case "TEF":
		result.GlobalBand = tefScale.band(math.Round(result.GlobalPercent / 100 * tefScale.max))
	case "TCF":
		result.GlobalBand = tcfScale.band(math.Round(result.GlobalPercent / 100 * tcfScale.max))
	case "DELF", "DALF":
		result.GlobalBand = delfBand(result.GlobalPercent)
		co, okCO := result.Sections[cefr.SkillCO]
		ce, okCE := result.Sections[cefr.SkillCE]
		if okCO && okCE {
			result.Passed = co.Score >= 5 && ce.Score >= 5 && co.Score+ce.Score >= 25
		}
	}

	if totalSum == 0 {
		result.GlobalBand = bandForEmpty(result.ExamCode)
	}

	return result, nil
}

func bandForEmpty(examCode string) string {
	switch examCode {
	case "DELF", "DALF":
		return "A1–A2"
	}
	return string(cefr.A1)
}
