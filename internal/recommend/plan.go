package recommend

import (
	"context"
	"fmt"
	"strings"

	"github.com/visaetude/prepcore/ent"
	"github.com/visaetude/prepcore/ent/courselesson"
	"github.com/visaetude/prepcore/ent/exam"

	"github.com/visaetude/prepcore/internal/cefr"
)

// LessonsPerDay is how many lessons a study plan schedules per day.
const LessonsPerDay = 3

// StudyPlan flattens recommendations (already ordered weakest skill
// first) into consecutive days of at most LessonsPerDay lessons.
func StudyPlan(recs []Recommendation) []PlanDay {
	var all []*ent.CourseLesson
	for _, rec := range recs {
		for _, lesson := range rec.Lessons {
			all = append(all, lesson)
		}
	}
	if len(all) == 0 {
		return nil
	}

	var days []PlanDay
	for start := 0; start < len(all); start += LessonsPerDay {
		end := start + LessonsPerDay
		if end > len(all) {
			end = len(all)
		}
		days = append(days, PlanDay{
			Day:     len(days) + 1,
			Lessons: all[start:end],
		})
	}
	return days
}

// LevelPlanConfig fixes the length and skill focus of a level's study
// plan. Early levels concentrate on comprehension; production skills
// join from A2 (writing) and B1 (speaking).
type LevelPlanConfig struct {
	Days  int
	Focus []cefr.Skill
}

var levelPlans = map[cefr.Level]LevelPlanConfig{
	cefr.A1: {Days: 14, Focus: []cefr.Skill{cefr.SkillCO, cefr.SkillCE}},
	cefr.A2: {Days: 21, Focus: []cefr.Skill{cefr.SkillCO, cefr.SkillCE, cefr.SkillEE}},
	cefr.B1: {Days: 28, Focus: cefr.Skills},
	cefr.B2: {Days: 30, Focus: cefr.Skills},
	cefr.C1: {Days: 30, Focus: cefr.Skills},
	cefr.C2: {Days: 30, Focus: cefr.Skills},
}

// PlanConfig returns the plan configuration for a level, falling back
// to the A1 plan for anything unrecognised.
func PlanConfig(level cefr.Level) LevelPlanConfig {
	if cfg, ok := levelPlans[level]; ok {
		return cfg
	}
	return levelPlans[cefr.A1]
}

// StudyDay is one day of a level plan; Lesson is nil when the
// catalogue ran out of material before the plan's last day.
type StudyDay struct {
	Day     int
	Section string
	Lesson  *ent.CourseLesson
}

// LevelStudyPlan is the full day-by-day plan for one exam and level.
type LevelStudyPlan struct {
	ExamCode  string
	Level     cefr.Level
	TotalDays int
	Days      []StudyDay
}

// BuildLevelPlan lays the level's published lessons over the plan's
// days, one lesson per day, in section then order sequence.
func (r *Recommender) BuildLevelPlan(ctx context.Context, examCode string, level cefr.Level) (*LevelStudyPlan, error) {
	if !cefr.Valid(level) {
		return nil, fmt.Errorf("invalid level %q", level)
	}
	cfg := PlanConfig(level)

	sections := make([]courselesson.Section, 0, len(cfg.Focus))
	for _, skill := range cfg.Focus {
		sections = append(sections, courselesson.Section(skill))
	}

	lessons, err := r.store.Client().CourseLesson.Query().
		Where(
			courselesson.SectionIn(sections...),
			courselesson.LevelEQ(courselesson.Level(level)),
			courselesson.Published(true),
			courselesson.HasExamsWith(exam.Code(examCode)),
		).
		Order(courselesson.BySection(), courselesson.ByOrder(), courselesson.ByID()).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query plan lessons: %w", err)
	}

	plan := &LevelStudyPlan{
		ExamCode:  examCode,
		Level:     level,
		TotalDays: cfg.Days,
		Days:      make([]StudyDay, 0, cfg.Days),
	}
	for day := 1; day <= cfg.Days; day++ {
		d := StudyDay{Day: day}
		if day-1 < len(lessons) {
			d.Lesson = lessons[day-1]
			d.Section = strings.ToUpper(string(d.Lesson.Section))
		}
		plan.Days = append(plan.Days, d)
	}
	return plan, nil
}
