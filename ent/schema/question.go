package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
)

// Question is one exam item. MCQ questions own 2..N choices with exactly
// one marked correct; text questions are free-form.
type Question struct {
	ent.Schema
}

func (Question) Fields() []ent.Field {
	return []ent.Field{
		field.Text("stem").
			NotEmpty(),
		field.Enum("subtype").
			Values("mcq", "text").
			Default("mcq"),
		field.Enum("difficulty").
			Values("easy", "medium", "hard").
			Default("medium"),
		field.Text("explanation").
			Optional().
			Comment("Markdown explanation of the correct answer"),
	}
}

func (Question) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("section", ExamSection.Type).
			Ref("questions").
			Unique().
			Required(),
		edge.From("passage", Passage.Type).
			Ref("questions").
			Unique(),
		edge.To("asset", Asset.Type).
			Unique(),
		edge.To("choices", Choice.Type),
	}
}
