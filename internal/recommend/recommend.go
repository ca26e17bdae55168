// Package recommend picks the lessons a learner should study next,
// based on weak section scores, and arranges them into a day-by-day
// study plan. Lessons above the learner's unlocked global level are
// never proposed.
package recommend

import (
	"context"
	"fmt"
	"sort"

	"github.com/visaetude/prepcore/ent"
	"github.com/visaetude/prepcore/ent/courselesson"
	"github.com/visaetude/prepcore/ent/exam"

	"github.com/visaetude/prepcore/internal/cefr"
	"github.com/visaetude/prepcore/internal/store"
)

// WeakThreshold is the section percentage under which a skill is
// considered weak and receives lesson recommendations.
const WeakThreshold = 70

// DefaultLimitPerSkill caps recommendations per weak skill.
const DefaultLimitPerSkill = 2

// LevelSource resolves the learner's global CEFR ceiling; satisfied by
// *progression.Engine.
type LevelSource interface {
	GlobalLevel(ctx context.Context, userID, examCode string) (cefr.Level, error)
}

// Recommendation groups the proposed lessons for one weak skill.
type Recommendation struct {
	Skill    cefr.Skill
	ScorePct int
	Lessons  []*ent.CourseLesson
}

// PlanDay is one day of a study plan.
type PlanDay struct {
	Day     int
	Lessons []*ent.CourseLesson
}

// Recommender selects lessons from the catalogue.
type Recommender struct {
	store  *store.Store
	levels LevelSource
	limit  int
}

// New creates a recommender with the default per-skill limit.
func New(st *store.Store, levels LevelSource) *Recommender {
	return &Recommender{store: st, levels: levels, limit: DefaultLimitPerSkill}
}

// WithLimit overrides the per-skill lesson cap.
func (r *Recommender) WithLimit(n int) *Recommender {
	if n > 0 {
		r.limit = n
	}
	return r
}

// Recommend returns lesson picks for every skill scoring under
// WeakThreshold, weakest skill first. Only published lessons linked to
// the exam and at or below the learner's global level qualify; within a
// skill they are ordered easiest first.
func (r *Recommender) Recommend(ctx context.Context, userID, examCode string, sectionPct map[cefr.Skill]int) ([]Recommendation, error) {
	ceiling, err := r.levels.GlobalLevel(ctx, userID, examCode)
	if err != nil {
		return nil, fmt.Errorf("resolve global level: %w", err)
	}

	weak := make([]cefr.Skill, 0, len(sectionPct))
	for skill, pct := range sectionPct {
		if !cefr.ValidSkill(skill) {
			return nil, fmt.Errorf("invalid skill %q", skill)
		}
		if pct < WeakThreshold {
			weak = append(weak, skill)
		}
	}
	sort.Slice(weak, func(i, j int) bool {
		if sectionPct[weak[i]] != sectionPct[weak[j]] {
			return sectionPct[weak[i]] < sectionPct[weak[j]]
		}
		return weak[i] < weak[j]
	})

	seen := make(map[int]bool)
	out := make([]Recommendation, 0, len(weak))
	for _, skill := range weak {
		lessons, err := r.lessonsFor(ctx, examCode, skill, ceiling)
		if err != nil {
			return nil, err
		}

		rec := Recommendation{Skill: skill, ScorePct: sectionPct[skill]}
		for _, lesson := range lessons {
			if seen[lesson.ID] {
				continue
			}
			seen[lesson.ID] = true
			rec.Lessons = append(rec.Lessons, lesson)
			if len(rec.Lessons) == r.limit {
				break
			}
		}
		out = append(out, rec)
	}
	return out, nil
}

func (r *Recommender) lessonsFor(ctx context.Context, examCode string, skill cefr.Skill, ceiling cefr.Level) ([]*ent.CourseLesson, error) {
	levels := make([]courselesson.Level, 0, len(cefr.Ladder))
	for _, l := range cefr.Ladder {
		if !cefr.AtMost(l, ceiling) {
			break
		}
		levels = append(levels, courselesson.Level(l))
	}

	lessons, err := r.store.Client().CourseLesson.Query().
		Where(
			courselesson.SectionEQ(courselesson.Section(skill)),
			courselesson.Published(true),
			courselesson.LevelIn(levels...),
			courselesson.HasExamsWith(exam.Code(examCode)),
		).
		Order(courselesson.ByLevel(), courselesson.ByOrder()).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query lessons for %s: %w", skill, err)
	}
	return lessons, nil
}
