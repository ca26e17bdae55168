package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ExamSection is one of the four skill sections of an Exam.
type ExamSection struct {
	ent.Schema
}

func (ExamSection) Fields() []ent.Field {
	return []ent.Field{
		field.Enum("section_code").
			Values("co", "ce", "eo", "ee"),
		field.Int("order").
			Min(1).
			Max(4).
			Comment("Position within the exam, 1..4"),
		field.Int("duration_seconds").
			NonNegative().
			Default(0).
			Comment("Nominal section duration"),
	}
}

func (ExamSection) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("exam", Exam.Type).
			Ref("sections").
			Unique().
			Required(),
		edge.To("questions", Question.Type),
	}
}

func (ExamSection) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("section_code").
			Edges("exam").
			Unique(),
	}
}
