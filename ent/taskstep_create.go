// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/llimit/gateway/ent/task"
	"github.com/llimit/gateway/ent/taskstep"
	"github.com/llimit/gateway/pkg/models"
)

// TaskStepCreate is the builder for creating a TaskStep entity.
type TaskStepCreate struct {
	config
	mutation *TaskStepMutation
	hooks    []Hook
}

// SetTaskID sets the "task_id" field.
func (_c *TaskStepCreate) SetTaskID(v string) *TaskStepCreate {
	_c.mutation.SetTaskID(v)
	return _c
}

// SetStepNumber sets the "step_number" field.
func (_c *TaskStepCreate) SetStepNumber(v int) *TaskStepCreate {
	_c.mutation.SetStepNumber(v)
	return _c
}

// SetPrompt sets the "prompt" field.
func (_c *TaskStepCreate) SetPrompt(v string) *TaskStepCreate {
	_c.mutation.SetPrompt(v)
	return _c
}

// SetStepType sets the "step_type" field.
func (_c *TaskStepCreate) SetStepType(v taskstep.StepType) *TaskStepCreate {
	_c.mutation.SetStepType(v)
	return _c
}

// SetNillableStepType sets the "step_type" field if the given value is not nil.
func (_c *TaskStepCreate) SetNillableStepType(v *taskstep.StepType) *TaskStepCreate {
	if v != nil {
		_c.SetStepType(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *TaskStepCreate) SetStatus(v taskstep.Status) *TaskStepCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *TaskStepCreate) SetNillableStatus(v *taskstep.Status) *TaskStepCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetStepDetails sets the "step_details" field.
func (_c *TaskStepCreate) SetStepDetails(v models.StepDetails) *TaskStepCreate {
	_c.mutation.SetStepDetails(v)
	return _c
}

// SetResponseContent sets the "response_content" field.
func (_c *TaskStepCreate) SetResponseContent(v string) *TaskStepCreate {
	_c.mutation.SetResponseContent(v)
	return _c
}

// SetNillableResponseContent sets the "response_content" field if the given value is not nil.
func (_c *TaskStepCreate) SetNillableResponseContent(v *string) *TaskStepCreate {
	if v != nil {
		_c.SetResponseContent(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *TaskStepCreate) SetCreatedAt(v time.Time) *TaskStepCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *TaskStepCreate) SetNillableCreatedAt(v *time.Time) *TaskStepCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *TaskStepCreate) SetStartedAt(v time.Time) *TaskStepCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *TaskStepCreate) SetNillableStartedAt(v *time.Time) *TaskStepCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *TaskStepCreate) SetCompletedAt(v time.Time) *TaskStepCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *TaskStepCreate) SetNillableCompletedAt(v *time.Time) *TaskStepCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *TaskStepCreate) SetID(v string) *TaskStepCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetTask sets the "task" edge to the Task entity.
func (_c *TaskStepCreate) SetTask(v *Task) *TaskStepCreate {
	return _c.SetTaskID(v.ID)
}

// Mutation returns the TaskStepMutation object of the builder.
func (_c *TaskStepCreate) Mutation() *TaskStepMutation {
	return _c.mutation
}

// Save creates the TaskStep in the database.
func (_c *TaskStepCreate) Save(ctx context.Context) (*TaskStep, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TaskStepCreate) SaveX(ctx context.Context) *TaskStep {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TaskStepCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TaskStepCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TaskStepCreate) defaults() {
	if _, ok := _c.mutation.StepType(); !ok {
		v := taskstep.DefaultStepType
		_c.mutation.SetStepType(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := taskstep.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := taskstep.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TaskStepCreate) check() error {
	if _, ok := _c.mutation.TaskID(); !ok {
		return &ValidationError{Name: "task_id", err: errors.New(`ent: missing required field "TaskStep.task_id"`)}
	}
	if _, ok := _c.mutation.StepNumber(); !ok {
		return &ValidationError{Name: "step_number", err: errors.New(`ent: missing required field "TaskStep.step_number"`)}
	}
	if _, ok := _c.mutation.Prompt(); !ok {
		return &ValidationError{Name: "prompt", err: errors.New(`ent: missing required field "TaskStep.prompt"`)}
	}
	if _, ok := _c.mutation.StepType(); !ok {
		return &ValidationError{Name: "step_type", err: errors.New(`ent: missing required field "TaskStep.step_type"`)}
	}
	if v, ok := _c.mutation.StepType(); ok {
		if err := taskstep.StepTypeValidator(v); err != nil {
			return &ValidationError{Name: "step_type", err: fmt.Errorf(`ent: validator failed for field "TaskStep.step_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "TaskStep.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := taskstep.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "TaskStep.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.StepDetails(); !ok {
		return &ValidationError{Name: "step_details", err: errors.New(`ent: missing required field "TaskStep.step_details"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "TaskStep.created_at"`)}
	}
	if len(_c.mutation.TaskIDs()) == 0 {
		return &ValidationError{Name: "task", err: errors.New(`ent: missing required edge "TaskStep.task"`)}
	}
	return nil
}

func (_c *TaskStepCreate) sqlSave(ctx context.Context) (*TaskStep, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected TaskStep.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *TaskStepCreate) createSpec() (*TaskStep, *sqlgraph.CreateSpec) {
	var (
		_node = &TaskStep{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(taskstep.Table, sqlgraph.NewFieldSpec(taskstep.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.StepNumber(); ok {
		_spec.SetField(taskstep.FieldStepNumber, field.TypeInt, value)
		_node.StepNumber = value
	}
	if value, ok := _c.mutation.Prompt(); ok {
		_spec.SetField(taskstep.FieldPrompt, field.TypeString, value)
		_node.Prompt = value
	}
	if value, ok := _c.mutation.StepType(); ok {
		_spec.SetField(taskstep.FieldStepType, field.TypeEnum, value)
		_node.StepType = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(taskstep.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.StepDetails(); ok {
		_spec.SetField(taskstep.FieldStepDetails, field.TypeJSON, value)
		_node.StepDetails = value
	}
	if value, ok := _c.mutation.ResponseContent(); ok {
		_spec.SetField(taskstep.FieldResponseContent, field.TypeString, value)
		_node.ResponseContent = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(taskstep.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(taskstep.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = &value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(taskstep.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	if nodes := _c.mutation.TaskIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   taskstep.TaskTable,
			Columns: []string{taskstep.TaskColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(task.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.TaskID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// TaskStepCreateBulk is the builder for creating many TaskStep entities in bulk.
type TaskStepCreateBulk struct {
	config
	err      error
	builders []*TaskStepCreate
}

// Save creates the TaskStep entities in the database.
func (_c *TaskStepCreateBulk) Save(ctx context.Context) ([]*TaskStep, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*TaskStep, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TaskStepMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *TaskStepCreateBulk) SaveX(ctx context.Context) []*TaskStep {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TaskStepCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TaskStepCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
