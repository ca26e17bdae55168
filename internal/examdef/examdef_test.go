package examdef

import (
	"context"
	"testing"

	"github.com/visaetude/prepcore/ent/exam"
	"github.com/visaetude/prepcore/ent/examsection"

	"github.com/visaetude/prepcore/internal/cefr"
	"github.com/visaetude/prepcore/internal/store"
)

func TestDefaultsAreValid(t *testing.T) {
	formats := Defaults()
	if len(formats) != 4 {
		t.Fatalf("formats = %d, want 4", len(formats))
	}
	for i := range formats {
		if err := formats[i].Validate(); err != nil {
			t.Errorf("format %s invalid: %v", formats[i].Code, err)
		}
	}
}

func TestByCode(t *testing.T) {
	formats := Defaults()
	f, ok := ByCode(formats, "TCF")
	if !ok || f.ScoreType != "tcf" {
		t.Fatalf("ByCode(TCF) = %+v, %v", f, ok)
	}
	if _, ok := ByCode(formats, "IELTS"); ok {
		t.Error("ByCode(IELTS) should miss")
	}
}

func TestDELFLevelOverrides(t *testing.T) {
	f, _ := ByCode(Defaults(), "DELF")

	a1 := f.PlanForLevel(cefr.A1)
	if a1["co"].Count != 10 || a1["ce"].Count != 10 {
		t.Errorf("A1 plan = %+v, want 10 CO / 10 CE", a1)
	}

	b2 := f.PlanForLevel(cefr.B2)
	if b2["co"].Count != 20 || b2["ce"].Count != 25 {
		t.Errorf("B2 plan = %+v, want 20 CO / 25 CE", b2)
	}
	// Productive sections are not overridden.
	if b2["ee"].DurationMinutes != 45 {
		t.Errorf("B2 EE duration = %d, want base 45", b2["ee"].DurationMinutes)
	}
}

func TestDALFLevels(t *testing.T) {
	f, _ := ByCode(Defaults(), "DALF")
	if f.SupportsLevel(cefr.B2) {
		t.Error("DALF should not offer B2")
	}
	if !f.SupportsLevel(cefr.C1) || !f.SupportsLevel(cefr.C2) {
		t.Error("DALF should offer C1 and C2")
	}
}

func TestParseYAML(t *testing.T) {
	doc := []byte(`
formats:
  - code: TEF
    name: TEF Canada
    levels: [A1, A2, B1]
    score_type: tef
    sections:
      co: {count: 20, duration_minutes: 20, timer_seconds: 40}
      ee: {count: 1, duration_minutes: 60}
`)
	formats, err := Parse(doc)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if len(formats) != 1 || formats[0].Language != "fr" {
		t.Errorf("formats = %+v, want one with default language fr", formats)
	}
	if formats[0].Sections["co"].TimerSeconds != 40 {
		t.Errorf("co timer = %d, want 40", formats[0].Sections["co"].TimerSeconds)
	}
}

func TestParseRejectsBadFormats(t *testing.T) {
	cases := map[string]string{
		"no formats":    `formats: []`,
		"bad level":     "formats:\n  - code: X\n    name: X\n    levels: [Z9]\n    sections:\n      co: {count: 1}",
		"bad section":   "formats:\n  - code: X\n    name: X\n    levels: [A1]\n    sections:\n      xx: {count: 1}",
		"duplicate":     "formats:\n  - code: X\n    name: X\n    levels: [A1]\n    sections:\n      co: {count: 1}\n  - code: X\n    name: X\n    levels: [A1]\n    sections:\n      co: {count: 1}",
		"missing name":  "formats:\n  - code: X\n    levels: [A1]\n    sections:\n      co: {count: 1}",
		"not yaml":      `{{{{`,
	}
	for name, doc := range cases {
		if _, err := Parse([]byte(doc)); err == nil {
			t.Errorf("Parse(%s) should fail", name)
		}
	}
}

func TestSeedIsIdempotent(t *testing.T) {
	st, err := store.Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { st.Close() })
	ctx := context.Background()

	created, err := Seed(ctx, st, Defaults())
	if err != nil {
		t.Fatalf("Seed() error = %v", err)
	}
	if created != 4 {
		t.Errorf("created = %d, want 4", created)
	}

	// Second run creates nothing.
	created, err = Seed(ctx, st, Defaults())
	if err != nil {
		t.Fatalf("second Seed() error = %v", err)
	}
	if created != 0 {
		t.Errorf("created = %d, want 0 on rerun", created)
	}

	exams, _ := st.Client().Exam.Query().Count(ctx)
	if exams != 4 {
		t.Errorf("exams = %d, want 4", exams)
	}

	// TEF carries four ordered sections with durations in seconds.
	sections, err := st.Client().ExamSection.Query().
		Where(examsection.HasExamWith(exam.Code("TEF"))).
		Order(examsection.ByOrder()).
		All(ctx)
	if err != nil {
		t.Fatalf("query sections: %v", err)
	}
	if len(sections) != 4 {
		t.Fatalf("TEF sections = %d, want 4", len(sections))
	}
	if sections[0].SectionCode != examsection.SectionCodeCo || sections[0].DurationSeconds != 1200 {
		t.Errorf("first section = %+v, want co at 1200s", sections[0])
	}
	if sections[3].SectionCode != examsection.SectionCodeEe || sections[3].DurationSeconds != 3600 {
		t.Errorf("last section = %+v, want ee at 3600s", sections[3])
	}
}
