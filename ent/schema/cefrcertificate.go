package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// CEFRCertificate is issued once per (user, exam, level) when progression
// unlocks a new level. The public_id is printed on the PDF and used for
// third-party verification.
type CEFRCertificate struct {
	ent.Schema
}

func (CEFRCertificate) Fields() []ent.Field {
	return []ent.Field{
		field.String("user_id").
			NotEmpty(),
		field.String("exam_code").
			NotEmpty(),
		field.Enum("level").
			Values("A1", "A2", "B1", "B2", "C1", "C2"),
		field.String("public_id").
			NotEmpty().
			Unique().
			Immutable().
			Comment("12 uppercase hex characters"),
		field.Time("issued_at").
			Default(time.Now).
			Immutable(),
		field.String("pdf_path").
			Default("").
			Comment("Media-relative path of the rendered certificate"),
	}
}

func (CEFRCertificate) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "exam_code", "level").
			Unique(),
	}
}
