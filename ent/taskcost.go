// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/llimit/gateway/ent/task"
	"github.com/llimit/gateway/ent/taskcost"
)

// TaskCost is the model entity for the TaskCost schema.
type TaskCost struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// TaskID holds the value of the "task_id" field.
	TaskID string `json:"task_id,omitempty"`
	// AmountUsd holds the value of the "amount_usd" field.
	AmountUsd float64 `json:"amount_usd,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the TaskCostQuery when eager-loading is set.
	Edges        TaskCostEdges `json:"edges"`
	selectValues sql.SelectValues
}

// TaskCostEdges holds the relations/edges for other nodes in the graph.
type TaskCostEdges struct {
	// Task holds the value of the task edge.
	Task *Task `json:"task,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// TaskOrErr returns the Task value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e TaskCostEdges) TaskOrErr() (*Task, error) {
	if e.Task != nil {
		return e.Task, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: task.Label}
	}
	return nil, &NotLoadedError{edge: "task"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*TaskCost) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case taskcost.FieldAmountUsd:
			values[i] = new(sql.NullFloat64)
		case taskcost.FieldID, taskcost.FieldTaskID:
			values[i] = new(sql.NullString)
		case taskcost.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the TaskCost fields.
func (_m *TaskCost) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case taskcost.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case taskcost.FieldTaskID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field task_id", values[i])
			} else if value.Valid {
				_m.TaskID = value.String
			}
		case taskcost.FieldAmountUsd:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field amount_usd", values[i])
			} else if value.Valid {
				_m.AmountUsd = value.Float64
			}
		case taskcost.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the TaskCost.
// This includes values selected through modifiers, order, etc.
func (_m *TaskCost) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryTask queries the "task" edge of the TaskCost entity.
func (_m *TaskCost) QueryTask() *TaskQuery {
	return NewTaskCostClient(_m.config).QueryTask(_m)
}

// Update returns a builder for updating this TaskCost.
// Note that you need to call TaskCost.Unwrap() before calling this method if this TaskCost
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *TaskCost) Update() *TaskCostUpdateOne {
	return NewTaskCostClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the TaskCost entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *TaskCost) Unwrap() *TaskCost {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: TaskCost is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *TaskCost) String() string {
	var builder strings.Builder
	builder.WriteString("TaskCost(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("task_id=")
	builder.WriteString(_m.TaskID)
	builder.WriteString(", ")
	builder.WriteString("amount_usd=")
	builder.WriteString(fmt.Sprintf("%v", _m.AmountUsd))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// TaskCosts is a parsable slice of TaskCost.
type TaskCosts []*TaskCost
