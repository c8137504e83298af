package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/llimit/gateway/pkg/models"
)

// TaskStep holds the schema definition for the TaskStep entity.
// Steps are a tagged union: the step_type column discriminates between
// normal and reevaluate steps, and step_details carries the
// variant-specific payload as JSON.
type TaskStep struct {
	ent.Schema
}

// Fields of the TaskStep.
func (TaskStep) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("step_id").
			Unique().
			Immutable(),
		field.String("task_id"),
		field.Int("step_number").
			Comment("0-based execution order; unique among non-abandoned steps of a task"),
		field.Text("prompt"),
		field.Enum("step_type").
			Values("normal", "reevaluate").
			Default("normal").
			Immutable(),
		field.Enum("status").
			Values("pending", "in_progress", "completed", "could_not_complete", "failed", "abandoned").
			Default("pending"),
		field.JSON("step_details", models.StepDetails{}),
		field.Text("response_content").
			Optional().
			Nillable().
			Comment("Raw assistant content, tags stripped"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("started_at").
			Optional().
			Nillable(),
		field.Time("completed_at").
			Optional().
			Nillable(),
	}
}

// Edges of the TaskStep.
func (TaskStep) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("task", Task.Type).
			Ref("steps").
			Field("task_id").
			Unique().
			Required().
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the TaskStep.
func (TaskStep) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("task_id"),
		index.Fields("task_id", "step_number"),
		index.Fields("task_id", "status"),
	}
}
