package progression

import (
	"context"
	"testing"

	"github.com/visaetude/prepcore/internal/cefr"
	"github.com/visaetude/prepcore/internal/certs"
	"github.com/visaetude/prepcore/internal/store"
)

func newEngine(t *testing.T) (*Engine, *store.Store) {
	t.Helper()
	st, err := store.Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { st.Close() })

	certifier := certs.NewService(certs.Config{
		MediaRoot:     t.TempDir(),
		VerifyBaseURL: "https://example.org",
	})
	return NewEngine(st, certifier), st
}

func TestUnlockAdvancesOneStep(t *testing.T) {
	e, _ := newEngine(t)
	ctx := context.Background()

	res, err := e.TryUnlock(ctx, "marie", "TEF", cefr.SkillCO, 72)
	if err != nil {
		t.Fatalf("TryUnlock() error = %v", err)
	}
	if !res.Unlocked {
		t.Fatalf("72%% from A1 (threshold 65) should unlock, got %+v", res)
	}
	if res.OldLevel != cefr.A1 || res.NewLevel != cefr.A2 {
		t.Errorf("advance = %s→%s, want A1→A2", res.OldLevel, res.NewLevel)
	}
	if !res.CertificateGenerated || res.CertificatePublicID == "" {
		t.Errorf("certificate not issued: %+v", res)
	}
}

func TestUnlockScoreTooLow(t *testing.T) {
	e, _ := newEngine(t)
	ctx := context.Background()

	res, err := e.TryUnlock(ctx, "marie", "TEF", cefr.SkillCO, 60)
	if err != nil {
		t.Fatalf("TryUnlock() error = %v", err)
	}
	if res.Unlocked {
		t.Fatal("60% from A1 should not unlock")
	}
	if res.Reason != ReasonScoreTooLow {
		t.Errorf("Reason = %q, want %q", res.Reason, ReasonScoreTooLow)
	}

	level, err := e.Progress(ctx, "marie", "TEF", cefr.SkillCO)
	if err != nil {
		t.Fatalf("Progress() error = %v", err)
	}
	if level != cefr.A1 {
		t.Errorf("level = %s, want A1 unchanged", level)
	}
}

func TestUnlockFromHigherLevelUsesItsThreshold(t *testing.T) {
	e, _ := newEngine(t)
	ctx := context.Background()

	// Advance A1→A2 first.
	if _, err := e.TryUnlock(ctx, "marie", "TEF", cefr.SkillCE, 70); err != nil {
		t.Fatalf("TryUnlock() error = %v", err)
	}

	// 68% clears A1's threshold but not A2's (70).
	res, err := e.TryUnlock(ctx, "marie", "TEF", cefr.SkillCE, 68)
	if err != nil {
		t.Fatalf("TryUnlock() error = %v", err)
	}
	if res.Unlocked {
		t.Error("68% from A2 should not unlock")
	}

	// 72% does: A2→B1 with a fresh certificate.
	res, err = e.TryUnlock(ctx, "marie", "TEF", cefr.SkillCE, 72)
	if err != nil {
		t.Fatalf("TryUnlock() error = %v", err)
	}
	if !res.Unlocked || res.NewLevel != cefr.B1 {
		t.Errorf("result = %+v, want unlock to B1", res)
	}
}

func TestUnlockTerminalAtC2(t *testing.T) {
	e, st := newEngine(t)
	ctx := context.Background()

	// Climb to C2.
	for i := 0; i < 5; i++ {
		if _, err := e.TryUnlock(ctx, "pro", "TEF", cefr.SkillEO, 100); err != nil {
			t.Fatalf("TryUnlock() climb error = %v", err)
		}
	}

	level, _ := e.Progress(ctx, "pro", "TEF", cefr.SkillEO)
	if level != cefr.C2 {
		t.Fatalf("level = %s, want C2 after five unlocks", level)
	}

	res, err := e.TryUnlock(ctx, "pro", "TEF", cefr.SkillEO, 100)
	if err != nil {
		t.Fatalf("TryUnlock() error = %v", err)
	}
	if res.Unlocked || res.Reason != ReasonAlreadyMax {
		t.Errorf("result = %+v, want already_max", res)
	}

	// Five unlocks, five certificates (A2..C2), none duplicated.
	n, err := st.Client().CEFRCertificate.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count certificates: %v", err)
	}
	if n != 5 {
		t.Errorf("certificates = %d, want 5", n)
	}
}

func TestUnlockTracksAttempts(t *testing.T) {
	e, st := newEngine(t)
	ctx := context.Background()

	for _, pct := range []float64{30, 40, 90} {
		if _, err := e.TryUnlock(ctx, "sam", "TCF", cefr.SkillEE, pct); err != nil {
			t.Fatalf("TryUnlock() error = %v", err)
		}
	}

	progress, err := st.Client().UserSkillProgress.Query().Only(ctx)
	if err != nil {
		t.Fatalf("load progress: %v", err)
	}
	if progress.TotalAttempts != 3 {
		t.Errorf("TotalAttempts = %d, want 3", progress.TotalAttempts)
	}
	if progress.LastScorePercent != 90 {
		t.Errorf("LastScorePercent = %v, want 90", progress.LastScorePercent)
	}
}

func TestGlobalLevelIsLowestSkill(t *testing.T) {
	e, _ := newEngine(t)
	ctx := context.Background()

	// CO reaches A2, everything else stays A1.
	if _, err := e.TryUnlock(ctx, "kim", "TEF", cefr.SkillCO, 80); err != nil {
		t.Fatalf("TryUnlock() error = %v", err)
	}

	global, err := e.GlobalLevel(ctx, "kim", "TEF")
	if err != nil {
		t.Fatalf("GlobalLevel() error = %v", err)
	}
	if global != cefr.A1 {
		t.Errorf("GlobalLevel = %s, want A1", global)
	}
}

func TestUnlockRejectsInvalidSkill(t *testing.T) {
	e, _ := newEngine(t)
	if _, err := e.TryUnlock(context.Background(), "x", "TEF", cefr.Skill("zz"), 90); err == nil {
		t.Error("TryUnlock(zz) should fail")
	}
}
