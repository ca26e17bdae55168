package recommend

import (
	"context"
	"fmt"
	"testing"

	"github.com/visaetude/prepcore/ent"
	"github.com/visaetude/prepcore/ent/courselesson"

	"github.com/visaetude/prepcore/internal/cefr"
	"github.com/visaetude/prepcore/internal/store"
)

type fixedLevel cefr.Level

func (f fixedLevel) GlobalLevel(context.Context, string, string) (cefr.Level, error) {
	return cefr.Level(f), nil
}

func seedCatalogue(t *testing.T) (*store.Store, *ent.Exam) {
	t.Helper()
	st, err := store.Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { st.Close() })

	ctx := context.Background()
	ex, err := st.Client().Exam.Create().
		SetCode("TEF").
		SetName("Test d'évaluation de français").
		SetLanguage("fr").
		Save(ctx)
	if err != nil {
		t.Fatalf("create exam: %v", err)
	}

	lessons := []struct {
		section courselesson.Section
		level   courselesson.Level
		order   int
		pub     bool
	}{
		{courselesson.SectionCo, courselesson.LevelA1, 2, true},
		{courselesson.SectionCo, courselesson.LevelA1, 1, true},
		{courselesson.SectionCo, courselesson.LevelA2, 1, true},
		{courselesson.SectionCo, courselesson.LevelB1, 1, true}, // above ceiling in most tests
		{courselesson.SectionCo, courselesson.LevelA1, 3, false},
		{courselesson.SectionCe, courselesson.LevelA1, 1, true},
		{courselesson.SectionCe, courselesson.LevelA2, 1, true},
		{courselesson.SectionEe, courselesson.LevelA1, 1, true},
	}
	for i, l := range lessons {
		_, err := st.Client().CourseLesson.Create().
			SetTitle(fmt.Sprintf("Leçon %d", i)).
			SetSlug(fmt.Sprintf("lecon-%d", i)).
			SetSection(l.section).
			SetLevel(l.level).
			SetOrder(l.order).
			SetPublished(l.pub).
			AddExams(ex).
			Save(ctx)
		if err != nil {
			t.Fatalf("create lesson %d: %v", i, err)
		}
	}
	return st, ex
}

func TestRecommendOnlyWeakSkills(t *testing.T) {
	st, _ := seedCatalogue(t)
	r := New(st, fixedLevel(cefr.A2))

	recs, err := r.Recommend(context.Background(), "marie", "TEF", map[cefr.Skill]int{
		cefr.SkillCO: 50,
		cefr.SkillCE: 85,
	})
	if err != nil {
		t.Fatalf("Recommend() error = %v", err)
	}
	if len(recs) != 1 {
		t.Fatalf("recommendations = %d, want 1 (only CO is weak)", len(recs))
	}
	if recs[0].Skill != cefr.SkillCO || recs[0].ScorePct != 50 {
		t.Errorf("rec = %+v, want CO at 50", recs[0])
	}
}

func TestRecommendOrdersLessonsEasiestFirst(t *testing.T) {
	st, _ := seedCatalogue(t)
	r := New(st, fixedLevel(cefr.A2)).WithLimit(10)

	recs, err := r.Recommend(context.Background(), "marie", "TEF", map[cefr.Skill]int{
		cefr.SkillCO: 40,
	})
	if err != nil {
		t.Fatalf("Recommend() error = %v", err)
	}
	lessons := recs[0].Lessons

	// Three published CO lessons at or under A2; the B1 lesson and the
	// unpublished one are excluded.
	if len(lessons) != 3 {
		t.Fatalf("lessons = %d, want 3", len(lessons))
	}
	if lessons[0].Level != courselesson.LevelA1 || lessons[0].Order != 1 {
		t.Errorf("first lesson = %s/%d, want A1/1", lessons[0].Level, lessons[0].Order)
	}
	if lessons[2].Level != courselesson.LevelA2 {
		t.Errorf("last lesson level = %s, want A2", lessons[2].Level)
	}
}

func TestRecommendRespectsCeiling(t *testing.T) {
	st, _ := seedCatalogue(t)
	r := New(st, fixedLevel(cefr.B1)).WithLimit(10)

	recs, err := r.Recommend(context.Background(), "marie", "TEF", map[cefr.Skill]int{
		cefr.SkillCO: 40,
	})
	if err != nil {
		t.Fatalf("Recommend() error = %v", err)
	}
	if len(recs[0].Lessons) != 4 {
		t.Errorf("lessons = %d, want 4 with the B1 ceiling", len(recs[0].Lessons))
	}
}

func TestRecommendWeakestSkillFirst(t *testing.T) {
	st, _ := seedCatalogue(t)
	r := New(st, fixedLevel(cefr.A2))

	recs, err := r.Recommend(context.Background(), "marie", "TEF", map[cefr.Skill]int{
		cefr.SkillCO: 60,
		cefr.SkillCE: 30,
		cefr.SkillEE: 45,
	})
	if err != nil {
		t.Fatalf("Recommend() error = %v", err)
	}
	got := []cefr.Skill{recs[0].Skill, recs[1].Skill, recs[2].Skill}
	want := []cefr.Skill{cefr.SkillCE, cefr.SkillEE, cefr.SkillCO}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("skill order = %v, want %v", got, want)
		}
	}
}

func TestRecommendLimitPerSkill(t *testing.T) {
	st, _ := seedCatalogue(t)
	r := New(st, fixedLevel(cefr.A2))

	recs, err := r.Recommend(context.Background(), "marie", "TEF", map[cefr.Skill]int{
		cefr.SkillCO: 40,
	})
	if err != nil {
		t.Fatalf("Recommend() error = %v", err)
	}
	if len(recs[0].Lessons) != DefaultLimitPerSkill {
		t.Errorf("lessons = %d, want %d", len(recs[0].Lessons), DefaultLimitPerSkill)
	}
}

func TestRecommendRejectsInvalidSkill(t *testing.T) {
	st, _ := seedCatalogue(t)
	r := New(st, fixedLevel(cefr.A2))

	_, err := r.Recommend(context.Background(), "marie", "TEF", map[cefr.Skill]int{
		cefr.Skill("zz"): 10,
	})
	if err == nil {
		t.Error("Recommend() should reject unknown skills")
	}
}

func TestStudyPlanBucketsThreePerDay(t *testing.T) {
	mk := func(n int) []*ent.CourseLesson {
		out := make([]*ent.CourseLesson, n)
		for i := range out {
			out[i] = &ent.CourseLesson{ID: i + 1}
		}
		return out
	}

	days := StudyPlan([]Recommendation{
		{Skill: cefr.SkillCO, Lessons: mk(4)},
		{Skill: cefr.SkillCE, Lessons: mk(1)},
	})
	if len(days) != 2 {
		t.Fatalf("days = %d, want 2", len(days))
	}
	if len(days[0].Lessons) != 3 || len(days[1].Lessons) != 2 {
		t.Errorf("bucket sizes = %d/%d, want 3/2", len(days[0].Lessons), len(days[1].Lessons))
	}
	if days[0].Day != 1 || days[1].Day != 2 {
		t.Errorf("day numbers = %d/%d, want 1/2", days[0].Day, days[1].Day)
	}
}

func TestStudyPlanEmpty(t *testing.T) {
	if got := StudyPlan(nil); got != nil {
		t.Errorf("StudyPlan(nil) = %+v, want nil", got)
	}
}

func TestPlanConfigFocusGrowsWithLevel(t *testing.T) {
	if n := len(PlanConfig(cefr.A1).Focus); n != 2 {
		t.Errorf("A1 focus = %d skills, want 2", n)
	}
	if n := len(PlanConfig(cefr.B1).Focus); n != 4 {
		t.Errorf("B1 focus = %d skills, want 4", n)
	}
	if PlanConfig(cefr.Level("Z9")).Days != 14 {
		t.Error("unknown level should fall back to the A1 plan")
	}
}

func TestBuildLevelPlan(t *testing.T) {
	st, _ := seedCatalogue(t)
	r := New(st, fixedLevel(cefr.A1))

	plan, err := r.BuildLevelPlan(context.Background(), "TEF", cefr.A1)
	if err != nil {
		t.Fatalf("BuildLevelPlan() error = %v", err)
	}
	if plan.TotalDays != 14 || len(plan.Days) != 14 {
		t.Fatalf("plan = %d/%d days, want 14", len(plan.Days), plan.TotalDays)
	}

	// Three published A1 lessons in focus sections (2 CO + 1 CE); the
	// EE lesson is outside the A1 focus.
	withLesson := 0
	for _, d := range plan.Days {
		if d.Lesson != nil {
			withLesson++
		}
	}
	if withLesson != 3 {
		t.Errorf("days with a lesson = %d, want 3", withLesson)
	}
	// Sections sort alphabetically, so CE comes before CO.
	if plan.Days[0].Lesson == nil || plan.Days[0].Section != "CE" {
		t.Errorf("day 1 = %+v, want the CE lesson", plan.Days[0])
	}
	if plan.Days[13].Lesson != nil {
		t.Error("final day should be empty once the catalogue runs out")
	}
}
