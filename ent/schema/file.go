package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// File holds the schema definition for the File entity.
// Either storage_path (uploaded blob) or url (remote reference) is set.
type File struct {
	ent.Schema
}

// Fields of the File.
func (File) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("file_id").
			Unique().
			Immutable(),
		field.String("user_id"),
		field.String("filename"),
		field.String("description").
			Optional().
			Nillable(),
		field.String("content_type"),
		field.Int64("size_bytes").
			Optional().
			Nillable().
			Comment("Unknown for URL-registered files"),
		field.String("storage_path").
			Optional().
			Nillable(),
		field.String("url").
			Optional().
			Nillable(),
		field.Int("page_count").
			Optional().
			Nillable().
			Comment("PDF only; probed at upload time"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the File.
func (File) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("user", User.Type).
			Ref("files").
			Field("user_id").
			Unique().
			Required().
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the File.
func (File) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id"),
	}
}
