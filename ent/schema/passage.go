package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
)

// Passage is a reading or listening stimulus shared by several questions.
type Passage struct {
	ent.Schema
}

func (Passage) Fields() []ent.Field {
	return []ent.Field{
		field.String("title").
			Default(""),
		field.Text("text").
			NotEmpty(),
	}
}

func (Passage) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("questions", Question.Type),
	}
}
