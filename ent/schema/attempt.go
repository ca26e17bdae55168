package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
)

// Attempt is one learner run over a single exam section within a session.
type Attempt struct {
	ent.Schema
}

func (Attempt) Fields() []ent.Field {
	return []ent.Field{
		field.Enum("section_code").
			Values("co", "ce", "eo", "ee"),
		field.Int("total_items").
			NonNegative().
			Default(0),
		field.Int("raw_score").
			NonNegative().
			Default(0),
		field.Float("score_percent").
			Default(0),
		field.Time("started_at").
			Default(time.Now).
			Immutable(),
		field.Time("finished_at").
			Optional().
			Nillable(),
	}
}

func (Attempt) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("session", Session.Type).
			Ref("attempts").
			Unique().
			Required(),
		edge.To("answers", Answer.Type),
	}
}
