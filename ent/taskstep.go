// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/llimit/gateway/ent/task"
	"github.com/llimit/gateway/ent/taskstep"
	"github.com/llimit/gateway/pkg/models"
)

// TaskStep is the model entity for the TaskStep schema.
type TaskStep struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// TaskID holds the value of the "task_id" field.
	TaskID string `json:"task_id,omitempty"`
	// 0-based execution order; unique among non-abandoned steps of a task
	StepNumber int `json:"step_number,omitempty"`
	// Prompt holds the value of the "prompt" field.
	Prompt string `json:"prompt,omitempty"`
	// StepType holds the value of the "step_type" field.
	StepType taskstep.StepType `json:"step_type,omitempty"`
	// Status holds the value of the "status" field.
	Status taskstep.Status `json:"status,omitempty"`
	// StepDetails holds the value of the "step_details" field.
	StepDetails models.StepDetails `json:"step_details,omitempty"`
	// Raw assistant content, tags stripped
	ResponseContent *string `json:"response_content,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// StartedAt holds the value of the "started_at" field.
	StartedAt *time.Time `json:"started_at,omitempty"`
	// CompletedAt holds the value of the "completed_at" field.
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the TaskStepQuery when eager-loading is set.
	Edges        TaskStepEdges `json:"edges"`
	selectValues sql.SelectValues
}

// TaskStepEdges holds the relations/edges for other nodes in the graph.
type TaskStepEdges struct {
	// Task holds the value of the task edge.
	Task *Task `json:"task,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// TaskOrErr returns the Task value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e TaskStepEdges) TaskOrErr() (*Task, error) {
	if e.Task != nil {
		return e.Task, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: task.Label}
	}
	return nil, &NotLoadedError{edge: "task"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*TaskStep) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case taskstep.FieldStepDetails:
			values[i] = new([]byte)
		case taskstep.FieldStepNumber:
			values[i] = new(sql.NullInt64)
		case taskstep.FieldID, taskstep.FieldTaskID, taskstep.FieldPrompt, taskstep.FieldStepType, taskstep.FieldStatus, taskstep.FieldResponseContent:
			values[i] = new(sql.NullString)
		case taskstep.FieldCreatedAt, taskstep.FieldStartedAt, taskstep.FieldCompletedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the TaskStep fields.
func (_m *TaskStep) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case taskstep.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case taskstep.FieldTaskID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field task_id", values[i])
			} else if value.Valid {
				_m.TaskID = value.String
			}
		case taskstep.FieldStepNumber:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field step_number", values[i])
			} else if value.Valid {
				_m.StepNumber = int(value.Int64)
			}
		case taskstep.FieldPrompt:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field prompt", values[i])
			} else if value.Valid {
				_m.Prompt = value.String
			}
		case taskstep.FieldStepType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field step_type", values[i])
			} else if value.Valid {
				_m.StepType = taskstep.StepType(value.String)
			}
		case taskstep.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = taskstep.Status(value.String)
			}
		case taskstep.FieldStepDetails:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field step_details", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.StepDetails); err != nil {
					return fmt.Errorf("unmarshal field step_details: %w", err)
				}
			}
		case taskstep.FieldResponseContent:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field response_content", values[i])
			} else if value.Valid {
				_m.ResponseContent = new(string)
				*_m.ResponseContent = value.String
			}
		case taskstep.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case taskstep.FieldStartedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field started_at", values[i])
			} else if value.Valid {
				_m.StartedAt = new(time.Time)
				*_m.StartedAt = value.Time
			}
		case taskstep.FieldCompletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field completed_at", values[i])
			} else if value.Valid {
				_m.CompletedAt = new(time.Time)
				*_m.CompletedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the TaskStep.
// This includes values selected through modifiers, order, etc.
func (_m *TaskStep) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryTask queries the "task" edge of the TaskStep entity.
func (_m *TaskStep) QueryTask() *TaskQuery {
	return NewTaskStepClient(_m.config).QueryTask(_m)
}

// Update returns a builder for updating this TaskStep.
// Note that you need to call TaskStep.Unwrap() before calling this method if this TaskStep
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *TaskStep) Update() *TaskStepUpdateOne {
	return NewTaskStepClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the TaskStep entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *TaskStep) Unwrap() *TaskStep {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: TaskStep is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *TaskStep) String() string {
	var builder strings.Builder
	builder.WriteString("TaskStep(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("task_id=")
	builder.WriteString(_m.TaskID)
	builder.WriteString(", ")
	builder.WriteString("step_number=")
	builder.WriteString(fmt.Sprintf("%v", _m.StepNumber))
	builder.WriteString(", ")
	builder.WriteString("prompt=")
	builder.WriteString(_m.Prompt)
	builder.WriteString(", ")
	builder.WriteString("step_type=")
	builder.WriteString(fmt.Sprintf("%v", _m.StepType))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("step_details=")
	builder.WriteString(fmt.Sprintf("%v", _m.StepDetails))
	builder.WriteString(", ")
	if v := _m.ResponseContent; v != nil {
		builder.WriteString("response_content=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.StartedAt; v != nil {
		builder.WriteString("started_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.CompletedAt; v != nil {
		builder.WriteString("completed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// TaskSteps is a parsable slice of TaskStep.
type TaskSteps []*TaskStep
