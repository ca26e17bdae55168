package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// CourseLesson is a pedagogical unit: generated or imported content a
// learner studies before attempting exam questions.
type CourseLesson struct {
	ent.Schema
}

func (CourseLesson) Fields() []ent.Field {
	return []ent.Field{
		field.String("title").
			NotEmpty(),
		field.String("slug").
			NotEmpty().
			Comment("Unique within a (section, level, locale) category"),
		field.Enum("section").
			Values("co", "ce", "eo", "ee"),
		field.Enum("level").
			Values("A1", "A2", "B1", "B2", "C1", "C2"),
		field.String("locale").
			Default("fr"),
		field.Text("content").
			Default("").
			Comment("Rich lesson body: script, reading text or instructions"),
		field.Int("order").
			Default(0),
		field.Bool("published").
			Default(false),
	}
}

func (CourseLesson) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("exams", Exam.Type),
		edge.To("exercises", CourseExercise.Type),
		edge.To("asset", Asset.Type).
			Unique(),
	}
}

func (CourseLesson) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("slug", "section", "level", "locale").
			Unique(),
		index.Fields("section", "level", "published"),
	}
}
