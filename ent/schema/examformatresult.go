package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ExamFormatResult freezes the outcome of one completed mock exam on the
// official scale of its format.
type ExamFormatResult struct {
	ent.Schema
}

func (ExamFormatResult) Fields() []ent.Field {
	return []ent.Field{
		field.String("user_id").
			NotEmpty(),
		field.String("exam_code").
			NotEmpty(),
		field.Enum("level").
			Values("A1", "A2", "B1", "B2", "C1", "C2").
			Comment("Level the exam was taken at"),
		field.JSON("section_results", map[string]any{}).
			Comment("Per-section raw/total/percent/official score/CEFR estimate"),
		field.Float("global_score").
			Default(0),
		field.Float("score_max").
			Default(0),
		field.String("global_cefr").
			Default(""),
		field.Bool("passed").
			Default(false),
		field.Time("taken_at").
			Default(time.Now).
			Immutable(),
	}
}

func (ExamFormatResult) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "exam_code"),
		index.Fields("taken_at"),
	}
}
