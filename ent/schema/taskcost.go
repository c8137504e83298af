package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// TaskCost holds the schema definition for the TaskCost entity.
// Rows are append-only; the total cost of a task is the sum of its rows.
type TaskCost struct {
	ent.Schema
}

// Fields of the TaskCost.
func (TaskCost) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("cost_id").
			Unique().
			Immutable(),
		field.String("task_id"),
		field.Float("amount_usd").
			Immutable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the TaskCost.
func (TaskCost) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("task", Task.Type).
			Ref("costs").
			Field("task_id").
			Unique().
			Required().
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the TaskCost.
func (TaskCost) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("task_id"),
	}
}
