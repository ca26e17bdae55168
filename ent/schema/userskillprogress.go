package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// UserSkillProgress tracks one learner's CEFR level per (exam, skill).
// Levels only move upward, one step at a time.
type UserSkillProgress struct {
	ent.Schema
}

func (UserSkillProgress) Fields() []ent.Field {
	return []ent.Field{
		field.String("user_id").
			NotEmpty(),
		field.String("exam_code").
			NotEmpty(),
		field.Enum("skill").
			Values("co", "ce", "eo", "ee"),
		field.Enum("current_level").
			Values("A1", "A2", "B1", "B2", "C1", "C2").
			Default("A1"),
		field.Float("last_score_percent").
			Default(0),
		field.Int("total_attempts").
			NonNegative().
			Default(0),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

func (UserSkillProgress) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "exam_code", "skill").
			Unique(),
	}
}
