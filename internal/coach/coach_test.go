package coach

import (
	"testing"

	"github.com/visaetude/prepcore/internal/cefr"
)

func TestBandFromPct(t *testing.T) {
	cases := []struct {
		pct  int
		want string
	}{
		{95, "C2"},
		{90, "C2"},
		{85, "C1"},
		{80, "C1"},
		{75, "B2"},
		{70, "B2"},
		{60, "B1"},
		{55, "B1"},
		{45, "A2"},
		{40, "A2"},
		{20, "<A2"},
		{0, "<A2"},
	}
	for _, tc := range cases {
		if got := BandFromPct(tc.pct); got != tc.want {
			t.Errorf("BandFromPct(%d) = %q, want %q", tc.pct, got, tc.want)
		}
	}
}

func TestAnalyzeAttemptListening(t *testing.T) {
	r := AnalyzeAttempt(AttemptStats{Section: cefr.SkillCO, Raw: 11, Total: 20})

	if r.Section != "CO" {
		t.Errorf("Section = %q, want CO", r.Section)
	}
	if r.ScorePct != 55 {
		t.Errorf("ScorePct = %d, want 55", r.ScorePct)
	}
	if r.Level != "B1" {
		t.Errorf("Level = %q, want B1", r.Level)
	}
	if len(r.Weaknesses) == 0 {
		t.Error("a 55% listening attempt should list weaknesses")
	}
	if len(r.Advice) == 0 {
		t.Error("advice should never be empty for a known skill")
	}
}

func TestAnalyzeAttemptHighScoreHasNoWeaknesses(t *testing.T) {
	r := AnalyzeAttempt(AttemptStats{Section: cefr.SkillCE, Raw: 19, Total: 20})

	if len(r.Weaknesses) != 0 {
		t.Errorf("95%% reading attempt should have no weaknesses, got %v", r.Weaknesses)
	}
	if len(r.Strengths) == 0 {
		t.Error("95% reading attempt should list strengths")
	}
}

func TestAnalyzeAttemptZeroTotal(t *testing.T) {
	r := AnalyzeAttempt(AttemptStats{Section: cefr.SkillEE, Raw: 0, Total: 0})
	if r.ScorePct != 0 || r.Level != "<A2" {
		t.Errorf("empty attempt: pct=%d level=%q, want 0 and <A2", r.ScorePct, r.Level)
	}
}

func TestAnalyzeSessionPriorities(t *testing.T) {
	report := AnalyzeSession([]AttemptStats{
		{Section: cefr.SkillCO, Raw: 18, Total: 20}, // 90
		{Section: cefr.SkillCE, Raw: 10, Total: 20}, // 50
		{Section: cefr.SkillEE, Raw: 14, Total: 20}, // 70
	})
	if report == nil {
		t.Fatal("AnalyzeSession() = nil")
	}

	if report.AvgScore != 70 {
		t.Errorf("AvgScore = %d, want 70", report.AvgScore)
	}
	if report.Level != "B2" {
		t.Errorf("Level = %q, want B2", report.Level)
	}

	want := []string{"CE", "EE", "CO"}
	if len(report.Priorities) != 3 {
		t.Fatalf("priorities = %d, want 3", len(report.Priorities))
	}
	for i, p := range report.Priorities {
		if p.Section != want[i] {
			t.Errorf("priority[%d] = %s, want %s", i, p.Section, want[i])
		}
	}
}

func TestAnalyzeSessionEmpty(t *testing.T) {
	if got := AnalyzeSession(nil); got != nil {
		t.Errorf("AnalyzeSession(nil) = %+v, want nil", got)
	}
}

func TestAnalyzeSessionAdviceTiers(t *testing.T) {
	low := AnalyzeSession([]AttemptStats{{Section: cefr.SkillCO, Raw: 5, Total: 20}})
	high := AnalyzeSession([]AttemptStats{{Section: cefr.SkillCO, Raw: 19, Total: 20}})

	if len(low.Advice) == 0 || len(high.Advice) == 0 {
		t.Fatal("advice should never be empty")
	}
	if low.Advice[0] == high.Advice[0] {
		t.Error("advice should differ between tiers")
	}
}
