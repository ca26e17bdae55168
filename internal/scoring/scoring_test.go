package scoring

import (
	"errors"
	"testing"

	"github.com/visaetude/prepcore/internal/cefr"
)

func TestMapScoreTEF(t *testing.T) {
	cases := []struct {
		raw, total int
		wantScore  float64
		wantBand   string
	}{
		{45, 60, 338, "B2"}, // 75% of 450 = 337.5 → 338
		{60, 60, 450, "C2"},
		{0, 60, 0, "A1"},
		{30, 60, 225, "A2"},
		{49, 60, 368, "C1"},
		{33, 60, 248, "B1"},
	}

	for _, tc := range cases {
		got, err := MapScore("TEF", cefr.SkillCO, tc.raw, tc.total)
		if err != nil {
			t.Fatalf("MapScore(TEF, %d/%d) error = %v", tc.raw, tc.total, err)
		}
		if got.Score != tc.wantScore {
			t.Errorf("MapScore(TEF, %d/%d).Score = %v, want %v", tc.raw, tc.total, got.Score, tc.wantScore)
		}
		if got.Band != tc.wantBand {
			t.Errorf("MapScore(TEF, %d/%d).Band = %q, want %q", tc.raw, tc.total, got.Band, tc.wantBand)
		}
		if got.Max != 450 {
			t.Errorf("Max = %v, want 450", got.Max)
		}
	}
}

func TestMapScoreTCF(t *testing.T) {
	got, err := MapScore("TCF", cefr.SkillCE, 20, 29)
	if err != nil {
		t.Fatalf("MapScore() error = %v", err)
	}
	// 20/29 · 699 = 482.07 → 482 → B2
	if got.Score != 482 {
		t.Errorf("Score = %v, want 482", got.Score)
	}
	if got.Band != "B2" {
		t.Errorf("Band = %q, want B2", got.Band)
	}
}

func TestMapScoreDELF(t *testing.T) {
	got, err := MapScore("DELF", cefr.SkillCO, 12, 20)
	if err != nil {
		t.Fatalf("MapScore() error = %v", err)
	}
	// 60% of 25 = 15; 60% → B1–B2 (en dash, as printed on DELF reports)
	if got.Score != 15 {
		t.Errorf("Score = %v, want 15", got.Score)
	}
	if got.Band != "B1–B2" {
		t.Errorf("Band = %q, want B1–B2", got.Band)
	}
}

func TestMapScoreZeroTotal(t *testing.T) {
	got, err := MapScore("TEF", cefr.SkillCO, 0, 0)
	if err != nil {
		t.Fatalf("MapScore() error = %v", err)
	}
	if got.Score != 0 || got.Band != "A1" {
		t.Errorf("zero total: Score = %v Band = %q, want 0 and A1", got.Score, got.Band)
	}
}

func TestMapScoreDomainErrors(t *testing.T) {
	cases := []struct{ raw, total int }{
		{5, 4},
		{-1, 10},
		{3, -2},
	}
	for _, tc := range cases {
		_, err := MapScore("TEF", cefr.SkillCO, tc.raw, tc.total)
		var de *DomainError
		if !errors.As(err, &de) {
			t.Errorf("MapScore(%d/%d) error = %v, want *DomainError", tc.raw, tc.total, err)
		}
	}
}

func TestMapScoreUnknownExam(t *testing.T) {
	if _, err := MapScore("IELTS", cefr.SkillCO, 1, 2); err == nil {
		t.Error("MapScore(IELTS) should fail")
	}
}

func TestMapScoreNormalizesCode(t *testing.T) {
	got, err := MapScore(" tef ", cefr.SkillCO, 30, 60)
	if err != nil {
		t.Fatalf("MapScore() error = %v", err)
	}
	if got.Max != 450 {
		t.Errorf("Max = %v, want 450", got.Max)
	}
}

func TestScoreExamTEF(t *testing.T) {
	result, err := ScoreExam("TEF", []SectionInput{
		{Section: cefr.SkillCO, Raw: 45, Total: 60},
		{Section: cefr.SkillCE, Raw: 40, Total: 50},
	})
	if err != nil {
		t.Fatalf("ScoreExam() error = %v", err)
	}

	co := result.Sections[cefr.SkillCO]
	if co.Score != 338 || co.Band != "B2" {
		t.Errorf("CO = %+v, want score 338 band B2", co)
	}
	ce := result.Sections[cefr.SkillCE]
	if ce.Score != 360 || ce.Band != "B2" {
		t.Errorf("CE = %+v, want score 360 band B2", ce)
	}
	if result.GlobalScore != 698 {
		t.Errorf("GlobalScore = %v, want 698", result.GlobalScore)
	}
	if result.GlobalMax != 900 {
		t.Errorf("GlobalMax = %v, want 900", result.GlobalMax)
	}
	// 85/110 = 77.27% → 77 → 347 on the TEF scale → B2
	if result.GlobalBand != "B2" {
		t.Errorf("GlobalBand = %q, want B2", result.GlobalBand)
	}
	if result.Passed {
		t.Error("TEF results do not carry a pass flag")
	}
}

func TestScoreExamDELFPass(t *testing.T) {
	result, err := ScoreExam("DELF", []SectionInput{
		{Section: cefr.SkillCO, Raw: 12, Total: 20}, // 15/25
		{Section: cefr.SkillCE, Raw: 18, Total: 25}, // 18/25
	})
	if err != nil {
		t.Fatalf("ScoreExam() error = %v", err)
	}
	if !result.Passed {
		t.Error("15 + 18 = 33 ≥ 25 with both ≥ 5 should pass")
	}
}

func TestScoreExamDELFFail(t *testing.T) {
	result, err := ScoreExam("DELF", []SectionInput{
		{Section: cefr.SkillCO, Raw: 3, Total: 20}, // 4/25 < 5
		{Section: cefr.SkillCE, Raw: 25, Total: 25},
	})
	if err != nil {
		t.Fatalf("ScoreExam() error = %v", err)
	}
	if result.Passed {
		t.Error("a section below 5 fails regardless of the sum")
	}
}

func TestScoreExamEmpty(t *testing.T) {
	result, err := ScoreExam("TEF", nil)
	if err != nil {
		t.Fatalf("ScoreExam() error = %v", err)
	}
	if result.GlobalScore != 0 || result.GlobalBand != "A1" {
		t.Errorf("empty exam: %+v, want score 0 band A1", result)
	}
}
