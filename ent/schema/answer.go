package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Answer records the learner's response to one question within an
// attempt. Re-answering the same question overwrites the previous row.
type Answer struct {
	ent.Schema
}

func (Answer) Fields() []ent.Field {
	return []ent.Field{
		field.Text("text_answer").
			Default("").
			Comment("Free-form response for productive items"),
		field.Bool("correct").
			Default(false),
		field.Time("created_at").
			Default(time.Now),
	}
}

func (Answer) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("attempt", Attempt.Type).
			Ref("answers").
			Unique().
			Required(),
		edge.To("question", Question.Type).
			Unique().
			Required(),
		edge.To("choice", Choice.Type).
			Unique(),
	}
}

func (Answer) Indexes() []ent.Index {
	return []ent.Index{
		index.Edges("attempt", "question").
			Unique(),
	}
}
