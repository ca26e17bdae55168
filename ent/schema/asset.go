package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// Asset references a binary artifact under the media root, typically a
// synthesised audio file.
type Asset struct {
	ent.Schema
}

func (Asset) Fields() []ent.Field {
	return []ent.Field{
		field.String("path").
			NotEmpty().
			Comment("Media-relative path, e.g. audio/co_ab12.mp3"),
		field.Enum("kind").
			Values("audio", "image", "document").
			Default("audio"),
		field.String("language").
			Default("fr"),
	}
}
