package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
)

// CourseExercise is one practice item inside a lesson. Objective items
// carry four options and a correct letter; productive items carry a
// writing/speaking prompt with word bounds and marking criteria.
type CourseExercise struct {
	ent.Schema
}

func (CourseExercise) Fields() []ent.Field {
	return []ent.Field{
		field.Enum("kind").
			Values("objective", "productive").
			Default("objective"),
		field.Text("stem").
			Default(""),
		field.String("option_a").
			Default(""),
		field.String("option_b").
			Default(""),
		field.String("option_c").
			Default(""),
		field.String("option_d").
			Default(""),
		field.String("correct_option").
			Default("").
			Comment("A, B, C or D for objective items"),
		field.Text("prompt").
			Default("").
			Comment("Productive task statement"),
		field.Int("min_words").
			NonNegative().
			Default(0),
		field.Int("max_words").
			NonNegative().
			Default(0),
		field.Text("sample_answer").
			Default(""),
		field.Text("criteria").
			Default("").
			Comment("Evaluation criteria, one per line"),
		field.Int("order").
			Default(0),
	}
}

func (CourseExercise) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("lesson", CourseLesson.Type).
			Ref("exercises").
			Unique().
			Required(),
		edge.To("asset", Asset.Type).
			Unique(),
	}
}
