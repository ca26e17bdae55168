package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
)

// Exam is a certification format (TEF, TCF, DELF, DALF).
type Exam struct {
	ent.Schema
}

func (Exam) Fields() []ent.Field {
	return []ent.Field{
		field.String("code").
			NotEmpty().
			Unique().
			Comment("Short exam code, e.g. TEF"),
		field.String("name").
			NotEmpty().
			Comment("Display name"),
		field.String("language").
			Default("fr").
			Comment("ISO language code of the exam"),
	}
}

func (Exam) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("sections", ExamSection.Type),
		edge.From("lessons", CourseLesson.Type).
			Ref("exams"),
	}
}
