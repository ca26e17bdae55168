package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Session is one learner run over an exam (or a single section).
type Session struct {
	ent.Schema
}

func (Session) Fields() []ent.Field {
	return []ent.Field{
		field.String("user_id").
			NotEmpty(),
		field.String("exam_code").
			NotEmpty(),
		field.String("section").
			Default("").
			Comment("Empty for full-exam sessions"),
		field.Enum("status").
			Values("active", "finished", "abandoned").
			Default("active"),
		field.Float("total_score").
			Default(0).
			Comment("Mean of attempt percentages, set on finish"),
		field.Int("duration_seconds").
			NonNegative().
			Default(0),
		field.JSON("result_data", map[string]any{}).
			Optional().
			Comment("Per-section summary frozen on finish"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

func (Session) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("attempts", Attempt.Type),
	}
}

func (Session) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "exam_code"),
		index.Fields("status"),
	}
}
