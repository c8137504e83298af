// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/llimit/gateway/ent/predicate"
	"github.com/llimit/gateway/ent/task"
	"github.com/llimit/gateway/ent/taskstep"
	"github.com/llimit/gateway/pkg/models"
)

// TaskStepUpdate is the builder for updating TaskStep entities.
type TaskStepUpdate struct {
	config
	hooks    []Hook
	mutation *TaskStepMutation
}

// Where appends a list predicates to the TaskStepUpdate builder.
func (_u *TaskStepUpdate) Where(ps ...predicate.TaskStep) *TaskStepUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTaskID sets the "task_id" field.
func (_u *TaskStepUpdate) SetTaskID(v string) *TaskStepUpdate {
	_u.mutation.SetTaskID(v)
	return _u
}

// SetNillableTaskID sets the "task_id" field if the given value is not nil.
func (_u *TaskStepUpdate) SetNillableTaskID(v *string) *TaskStepUpdate {
	if v != nil {
		_u.SetTaskID(*v)
	}
	return _u
}

// SetStepNumber sets the "step_number" field.
func (_u *TaskStepUpdate) SetStepNumber(v int) *TaskStepUpdate {
	_u.mutation.ResetStepNumber()
	_u.mutation.SetStepNumber(v)
	return _u
}

// SetNillableStepNumber sets the "step_number" field if the given value is not nil.
func (_u *TaskStepUpdate) SetNillableStepNumber(v *int) *TaskStepUpdate {
	if v != nil {
		_u.SetStepNumber(*v)
	}
	return _u
}

// AddStepNumber adds value to the "step_number" field.
func (_u *TaskStepUpdate) AddStepNumber(v int) *TaskStepUpdate {
	_u.mutation.AddStepNumber(v)
	return _u
}

// SetPrompt sets the "prompt" field.
func (_u *TaskStepUpdate) SetPrompt(v string) *TaskStepUpdate {
	_u.mutation.SetPrompt(v)
	return _u
}

// SetNillablePrompt sets the "prompt" field if the given value is not nil.
func (_u *TaskStepUpdate) SetNillablePrompt(v *string) *TaskStepUpdate {
	if v != nil {
		_u.SetPrompt(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *TaskStepUpdate) SetStatus(v taskstep.Status) *TaskStepUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *TaskStepUpdate) SetNillableStatus(v *taskstep.Status) *TaskStepUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetStepDetails sets the "step_details" field.
func (_u *TaskStepUpdate) SetStepDetails(v models.StepDetails) *TaskStepUpdate {
	_u.mutation.SetStepDetails(v)
	return _u
}

// SetNillableStepDetails sets the "step_details" field if the given value is not nil.
func (_u *TaskStepUpdate) SetNillableStepDetails(v *models.StepDetails) *TaskStepUpdate {
	if v != nil {
		_u.SetStepDetails(*v)
	}
	return _u
}

// SetResponseContent sets the "response_content" field.
func (_u *TaskStepUpdate) SetResponseContent(v string) *TaskStepUpdate {
	_u.mutation.SetResponseContent(v)
	return _u
}

// SetNillableResponseContent sets the "response_content" field if the given value is not nil.
func (_u *TaskStepUpdate) SetNillableResponseContent(v *string) *TaskStepUpdate {
	if v != nil {
		_u.SetResponseContent(*v)
	}
	return _u
}

// ClearResponseContent clears the value of the "response_content" field.
func (_u *TaskStepUpdate) ClearResponseContent() *TaskStepUpdate {
	_u.mutation.ClearResponseContent()
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *TaskStepUpdate) SetStartedAt(v time.Time) *TaskStepUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *TaskStepUpdate) SetNillableStartedAt(v *time.Time) *TaskStepUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *TaskStepUpdate) ClearStartedAt() *TaskStepUpdate {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *TaskStepUpdate) SetCompletedAt(v time.Time) *TaskStepUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *TaskStepUpdate) SetNillableCompletedAt(v *time.Time) *TaskStepUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *TaskStepUpdate) ClearCompletedAt() *TaskStepUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetTask sets the "task" edge to the Task entity.
func (_u *TaskStepUpdate) SetTask(v *Task) *TaskStepUpdate {
	return _u.SetTaskID(v.ID)
}

// Mutation returns the TaskStepMutation object of the builder.
func (_u *TaskStepUpdate) Mutation() *TaskStepMutation {
	return _u.mutation
}

// ClearTask clears the "task" edge to the Task entity.
func (_u *TaskStepUpdate) ClearTask() *TaskStepUpdate {
	_u.mutation.ClearTask()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TaskStepUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TaskStepUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TaskStepUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TaskStepUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TaskStepUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := taskstep.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "TaskStep.status": %w`, err)}
		}
	}
	if _u.mutation.TaskCleared() && len(_u.mutation.TaskIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "TaskStep.task"`)
	}
	return nil
}

func (_u *TaskStepUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(taskstep.Table, taskstep.Columns, sqlgraph.NewFieldSpec(taskstep.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.StepNumber(); ok {
		_spec.SetField(taskstep.FieldStepNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStepNumber(); ok {
		_spec.AddField(taskstep.FieldStepNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Prompt(); ok {
		_spec.SetField(taskstep.FieldPrompt, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(taskstep.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.StepDetails(); ok {
		_spec.SetField(taskstep.FieldStepDetails, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.ResponseContent(); ok {
		_spec.SetField(taskstep.FieldResponseContent, field.TypeString, value)
	}
	if _u.mutation.ResponseContentCleared() {
		_spec.ClearField(taskstep.FieldResponseContent, field.TypeString)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(taskstep.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(taskstep.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(taskstep.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(taskstep.FieldCompletedAt, field.TypeTime)
	}
	if _u.mutation.TaskCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TaskIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{taskstep.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TaskStepUpdateOne is the builder for updating a single TaskStep entity.
type TaskStepUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TaskStepMutation
}

// SetTaskID sets the "task_id" field.
func (_u *TaskStepUpdateOne) SetTaskID(v string) *TaskStepUpdateOne {
	_u.mutation.SetTaskID(v)
	return _u
}

// SetNillableTaskID sets the "task_id" field if the given value is not nil.
func (_u *TaskStepUpdateOne) SetNillableTaskID(v *string) *TaskStepUpdateOne {
	if v != nil {
		_u.SetTaskID(*v)
	}
	return _u
}

// SetStepNumber sets the "step_number" field.
func (_u *TaskStepUpdateOne) SetStepNumber(v int) *TaskStepUpdateOne {
	_u.mutation.ResetStepNumber()
	_u.mutation.SetStepNumber(v)
	return _u
}

// SetNillableStepNumber sets the "step_number" field if the given value is not nil.
func (_u *TaskStepUpdateOne) SetNillableStepNumber(v *int) *TaskStepUpdateOne {
	if v != nil {
		_u.SetStepNumber(*v)
	}
	return _u
}

// AddStepNumber adds value to the "step_number" field.
func (_u *TaskStepUpdateOne) AddStepNumber(v int) *TaskStepUpdateOne {
	_u.mutation.AddStepNumber(v)
	return _u
}

// SetPrompt sets the "prompt" field.
func (_u *TaskStepUpdateOne) SetPrompt(v string) *TaskStepUpdateOne {
	_u.mutation.SetPrompt(v)
	return _u
}

// SetNillablePrompt sets the "prompt" field if the given value is not nil.
func (_u *TaskStepUpdateOne) SetNillablePrompt(v *string) *TaskStepUpdateOne {
	if v != nil {
		_u.SetPrompt(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *TaskStepUpdateOne) SetStatus(v taskstep.Status) *TaskStepUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *TaskStepUpdateOne) SetNillableStatus(v *taskstep.Status) *TaskStepUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetStepDetails sets the "step_details" field.
func (_u *TaskStepUpdateOne) SetStepDetails(v models.StepDetails) *TaskStepUpdateOne {
	_u.mutation.SetStepDetails(v)
	return _u
}

// SetNillableStepDetails sets the "step_details" field if the given value is not nil.
func (_u *TaskStepUpdateOne) SetNillableStepDetails(v *models.StepDetails) *TaskStepUpdateOne {
	if v != nil {
		_u.SetStepDetails(*v)
	}
	return _u
}

// SetResponseContent sets the "response_content" field.
func (_u *TaskStepUpdateOne) SetResponseContent(v string) *TaskStepUpdateOne {
	_u.mutation.SetResponseContent(v)
	return _u
}

// SetNillableResponseContent sets the "response_content" field if the given value is not nil.
func (_u *TaskStepUpdateOne) SetNillableResponseContent(v *string) *TaskStepUpdateOne {
	if v != nil {
		_u.SetResponseContent(*v)
	}
	return _u
}

// ClearResponseContent clears the value of the "response_content" field.
func (_u *TaskStepUpdateOne) ClearResponseContent() *TaskStepUpdateOne {
	_u.mutation.ClearResponseContent()
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *TaskStepUpdateOne) SetStartedAt(v time.Time) *TaskStepUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *TaskStepUpdateOne) SetNillableStartedAt(v *time.Time) *TaskStepUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *TaskStepUpdateOne) ClearStartedAt() *TaskStepUpdateOne {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *TaskStepUpdateOne) SetCompletedAt(v time.Time) *TaskStepUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *TaskStepUpdateOne) SetNillableCompletedAt(v *time.Time) *TaskStepUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *TaskStepUpdateOne) ClearCompletedAt() *TaskStepUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetTask sets the "task" edge to the Task entity.
func (_u *TaskStepUpdateOne) SetTask(v *Task) *TaskStepUpdateOne {
	return _u.SetTaskID(v.ID)
}

// Mutation returns the TaskStepMutation object of the builder.
func (_u *TaskStepUpdateOne) Mutation() *TaskStepMutation {
	return _u.mutation
}

// ClearTask clears the "task" edge to the Task entity.
func (_u *TaskStepUpdateOne) ClearTask() *TaskStepUpdateOne {
	_u.mutation.ClearTask()
	return _u
}

// Where appends a list predicates to the TaskStepUpdate builder.
func (_u *TaskStepUpdateOne) Where(ps ...predicate.TaskStep) *TaskStepUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TaskStepUpdateOne) Select(field string, fields ...string) *TaskStepUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated TaskStep entity.
func (_u *TaskStepUpdateOne) Save(ctx context.Context) (*TaskStep, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TaskStepUpdateOne) SaveX(ctx context.Context) *TaskStep {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TaskStepUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TaskStepUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TaskStepUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := taskstep.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "TaskStep.status": %w`, err)}
		}
	}
	if _u.mutation.TaskCleared() && len(_u.mutation.TaskIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "TaskStep.task"`)
	}
	return nil
}

func (_u *TaskStepUpdateOne) sqlSave(ctx context.Context) (_node *TaskStep, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(taskstep.Table, taskstep.Columns, sqlgraph.NewFieldSpec(taskstep.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "TaskStep.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, taskstep.FieldID)
		for _, f := range fields {
			if !taskstep.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != taskstep.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.StepNumber(); ok {
		_spec.SetField(taskstep.FieldStepNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStepNumber(); ok {
		_spec.AddField(taskstep.FieldStepNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Prompt(); ok {
		_spec.SetField(taskstep.FieldPrompt, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(taskstep.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.StepDetails(); ok {
		_spec.SetField(taskstep.FieldStepDetails, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.ResponseContent(); ok {
		_spec.SetField(taskstep.FieldResponseContent, field.TypeString, value)
	}
	if _u.mutation.ResponseContentCleared() {
		_spec.ClearField(taskstep.FieldResponseContent, field.TypeString)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(taskstep.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(taskstep.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(taskstep.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(taskstep.FieldCompletedAt, field.TypeTime)
	}
	if _u.mutation.TaskCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TaskIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &TaskStep{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{taskstep.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
