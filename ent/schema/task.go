package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Task holds the schema definition for the Task entity.
type Task struct {
	ent.Schema
}

// Fields of the Task.
func (Task) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("task_id").
			Unique().
			Immutable(),
		field.String("user_id"),
		field.Text("prompt").
			Immutable().
			Comment("Original user request; never mutated after creation"),
		field.String("title").
			Optional().
			Nillable().
			Comment("Set exactly once when decomposition succeeds"),
		field.Enum("status").
			Values("decomposing", "in_progress", "completed", "failed").
			Default("decomposing"),
		field.Text("output").
			Optional().
			Nillable().
			Comment("Final step output; non-nil iff status is completed"),
		field.Bool("steps_generated").
			Default(false),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("completed_at").
			Optional().
			Nillable(),
	}
}

// Edges of the Task.
func (Task) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("user", User.Type).
			Ref("tasks").
			Field("user_id").
			Unique().
			Required().
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("steps", TaskStep.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("costs", TaskCost.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Task.
func (Task) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id"),
		index.Fields("status"),
		index.Fields("user_id", "created_at"),
	}
}
