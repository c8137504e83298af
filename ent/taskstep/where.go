// Code generated by ent, DO NOT EDIT.

package taskstep

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/llimit/gateway/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.TaskStep {
	return predicate.TaskStep(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.TaskStep {
	return predicate.TaskStep(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.TaskStep {
	return predicate.TaskStep(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.TaskStep {
	return predicate.TaskStep(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.TaskStep {
	return predicate.TaskStep(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.TaskStep {
	return predicate.TaskStep(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.TaskStep {
	return predicate.TaskStep(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.TaskStep {
	return predicate.TaskStep(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.TaskStep {
	return predicate.TaskStep(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.TaskStep {
	return predicate.TaskStep(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.TaskStep {
	return predicate.TaskStep(sql.FieldContainsFold(FieldID, id))
}

// TaskID applies equality check predicate on the "task_id" field. It's identical to TaskIDEQ.
func TaskID(v string) predicate.TaskStep {
	return predicate.TaskStep(sql.FieldEQ(FieldTaskID, v))
}

// StepNumber applies equality check predicate on the "step_number" field. It's identical to StepNumberEQ.
func StepNumber(v int) predicate.TaskStep {
	return predicate.TaskStep(sql.FieldEQ(FieldStepNumber, v))
}

// Prompt applies equality check predicate on the "prompt" field. It's identical to PromptEQ.
func Prompt(v string) predicate.TaskStep {
	return predicate.TaskStep(sql.FieldEQ(FieldPrompt, v))
}

// ResponseContent applies equality check predicate on the "response_content" field. It's identical to ResponseContentEQ.
func ResponseContent(v string) predicate.TaskStep {
	return predicate.TaskStep(sql.FieldEQ(FieldResponseContent, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.TaskStep {
	return predicate.TaskStep(sql.FieldEQ(FieldCreatedAt, v))
}

// StartedAt applies equality check predicate on the "started_at" field. It's identical to StartedAtEQ.
func StartedAt(v time.Time) predicate.TaskStep {
	return predicate.TaskStep(sql.FieldEQ(FieldStartedAt, v))
}

// CompletedAt applies equality check predicate on the "completed_at" field. It's identical to CompletedAtEQ.
func CompletedAt(v time.Time) predicate.TaskStep {
	return predicate.TaskStep(sql.FieldEQ(FieldCompletedAt, v))
}

// TaskIDEQ applies the EQ predicate on the "task_id" field.
func TaskIDEQ(v string) predicate.TaskStep {
	return predicate.TaskStep(sql.FieldEQ(FieldTaskID, v))
}

// TaskIDNEQ applies the NEQ predicate on the "task_id" field.
func TaskIDNEQ(v string) predicate.TaskStep {
	return predicate.TaskStep(sql.FieldNEQ(FieldTaskID, v))
}

// TaskIDIn applies the In predicate on the "task_id" field.
func TaskIDIn(vs ...string) predicate.TaskStep {
	return predicate.TaskStep(sql.FieldIn(FieldTaskID, vs...))
}

// TaskIDNotIn applies the NotIn predicate on the "task_id" field.
func TaskIDNotIn(vs ...string) predicate.TaskStep {
	return predicate.TaskStep(sql.FieldNotIn(FieldTaskID, vs...))
}

// TaskIDGT applies the GT predicate on the "task_id" field.
func TaskIDGT(v string) predicate.TaskStep {
	return predicate.TaskStep(sql.FieldGT(FieldTaskID, v))
}

// TaskIDGTE applies the GTE predicate on the "task_id" field.
func TaskIDGTE(v string) predicate.TaskStep {
	return predicate.TaskStep(sql.FieldGTE(FieldTaskID, v))
}

// TaskIDLT applies the LT predicate on the "task_id" field.
func TaskIDLT(v string) predicate.TaskStep {
	return predicate.TaskStep(sql.FieldLT(FieldTaskID, v))
}

// TaskIDLTE applies the LTE predicate on the "task_id" field.
func TaskIDLTE(v string) predicate.TaskStep {
	return predicate.TaskStep(sql.FieldLTE(FieldTaskID, v))
}

// TaskIDContains applies the Contains predicate on the "task_id" field.
func TaskIDContains(v string) predicate.TaskStep {
	return predicate.TaskStep(sql.FieldContains(FieldTaskID, v))
}

// TaskIDHasPrefix applies the HasPrefix predicate on the "task_id" field.
func TaskIDHasPrefix(v string) predicate.TaskStep {
	return predicate.TaskStep(sql.FieldHasPrefix(FieldTaskID, v))
}

// TaskIDHasSuffix applies the HasSuffix predicate on the "task_id" field.
func TaskIDHasSuffix(v string) predicate.TaskStep {
	return predicate.TaskStep(sql.FieldHasSuffix(FieldTaskID, v))
}

// TaskIDEqualFold applies the EqualFold predicate on the "task_id" field.
func TaskIDEqualFold(v string) predicate.TaskStep {
	return predicate.TaskStep(sql.FieldEqualFold(FieldTaskID, v))
}

// TaskIDContainsFold applies the ContainsFold predicate on the "task_id" field.
func TaskIDContainsFold(v string) predicate.TaskStep {
	return predicate.TaskStep(sql.FieldContainsFold(FieldTaskID, v))
}

// StepNumberEQ applies the EQ predicate on the "step_number" field.
func StepNumberEQ(v int) predicate.TaskStep {
	return predicate.TaskStep(sql.FieldEQ(FieldStepNumber, v))
}

// StepNumberNEQ applies the NEQ predicate on the "step_number" field.
func StepNumberNEQ(v int) predicate.TaskStep {
	return predicate.TaskStep(sql.FieldNEQ(FieldStepNumber, v))
}

// StepNumberIn applies the In predicate on the "step_number" field.
func StepNumberIn(vs ...int) predicate.TaskStep {
	return predicate.TaskStep(sql.FieldIn(FieldStepNumber, vs...))
}

// StepNumberNotIn applies the NotIn predicate on the "step_number" field.
func StepNumberNotIn(vs ...int) predicate.TaskStep {
	return predicate.TaskStep(sql.FieldNotIn(FieldStepNumber, vs...))
}

// StepNumberGT applies the GT predicate on the "step_number" field.
func StepNumberGT(v int) predicate.TaskStep {
	return predicate.TaskStep(sql.FieldGT(FieldStepNumber, v))
}

// StepNumberGTE applies the GTE predicate on the "step_number" field.
func StepNumberGTE(v int) predicate.TaskStep {
	return predicate.TaskStep(sql.FieldGTE(FieldStepNumber, v))
}

// StepNumberLT applies the LT predicate on the "step_number" field.
func StepNumberLT(v int) predicate.TaskStep {
	return predicate.TaskStep(sql.FieldLT(FieldStepNumber, v))
}

// StepNumberLTE applies the LTE predicate on the "step_number" field.
func StepNumberLTE(v int) predicate.TaskStep {
	return predicate.TaskStep(sql.FieldLTE(FieldStepNumber, v))
}

// PromptEQ applies the EQ predicate on the "prompt" field.
func PromptEQ(v string) predicate.TaskStep {
	return predicate.TaskStep(sql.FieldEQ(FieldPrompt, v))
}

// PromptNEQ applies the NEQ predicate on the "prompt" field.
func PromptNEQ(v string) predicate.TaskStep {
	return predicate.TaskStep(sql.FieldNEQ(FieldPrompt, v))
}

// PromptIn applies the In predicate on the "prompt" field.
func PromptIn(vs ...string) predicate.TaskStep {
	return predicate.TaskStep(sql.FieldIn(FieldPrompt, vs...))
}

// PromptNotIn applies the NotIn predicate on the "prompt" field.
func PromptNotIn(vs ...string) predicate.TaskStep {
	return predicate.TaskStep(sql.FieldNotIn(FieldPrompt, vs...))
}

// PromptGT applies the GT predicate on the "prompt" field.
func PromptGT(v string) predicate.TaskStep {
	return predicate.TaskStep(sql.FieldGT(FieldPrompt, v))
}

// PromptGTE applies the GTE predicate on the "prompt" field.
func PromptGTE(v string) predicate.TaskStep {
	return predicate.TaskStep(sql.FieldGTE(FieldPrompt, v))
}

// PromptLT applies the LT predicate on the "prompt" field.
func PromptLT(v string) predicate.TaskStep {
	return predicate.TaskStep(sql.FieldLT(FieldPrompt, v))
}

// PromptLTE applies the LTE predicate on the "prompt" field.
func PromptLTE(v string) predicate.TaskStep {
	return predicate.TaskStep(sql.FieldLTE(FieldPrompt, v))
}

// PromptContains applies the Contains predicate on the "prompt" field.
func PromptContains(v string) predicate.TaskStep {
	return predicate.TaskStep(sql.FieldContains(FieldPrompt, v))
}

// PromptHasPrefix applies the HasPrefix predicate on the "prompt" field.
func PromptHasPrefix(v string) predicate.TaskStep {
	return predicate.TaskStep(sql.FieldHasPrefix(FieldPrompt, v))
}

// PromptHasSuffix applies the HasSuffix predicate on the "prompt" field.
func PromptHasSuffix(v string) predicate.TaskStep {
	return predicate.TaskStep(sql.FieldHasSuffix(FieldPrompt, v))
}

// PromptEqualFold applies the EqualFold predicate on the "prompt" field.
func PromptEqualFold(v string) predicate.TaskStep {
	return predicate.TaskStep(sql.FieldEqualFold(FieldPrompt, v))
}

// PromptContainsFold applies the ContainsFold predicate on the "prompt" field.
func PromptContainsFold(v string) predicate.TaskStep {
	return predicate.TaskStep(sql.FieldContainsFold(FieldPrompt, v))
}

// StepTypeEQ applies the EQ predicate on the "step_type" field.
func StepTypeEQ(v StepType) predicate.TaskStep {
	return predicate.TaskStep(sql.FieldEQ(FieldStepType, v))
}

// StepTypeNEQ applies the NEQ predicate on the "step_type" field.
func StepTypeNEQ(v StepType) predicate.TaskStep {
	return predicate.TaskStep(sql.FieldNEQ(FieldStepType, v))
}

// StepTypeIn applies the In predicate on the "step_type" field.
func StepTypeIn(vs ...StepType) predicate.TaskStep {
	return predicate.TaskStep(sql.FieldIn(FieldStepType, vs...))
}

// StepTypeNotIn applies the NotIn predicate on the "step_type" field.
func StepTypeNotIn(vs ...StepType) predicate.TaskStep {
	return predicate.TaskStep(sql.FieldNotIn(FieldStepType, vs...))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.TaskStep {
	return predicate.TaskStep(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.TaskStep {
	return predicate.TaskStep(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.TaskStep {
	return predicate.TaskStep(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.TaskStep {
	return predicate.TaskStep(sql.FieldNotIn(FieldStatus, vs...))
}

// ResponseContentEQ applies the EQ predicate on the "response_content" field.
func ResponseContentEQ(v string) predicate.TaskStep {
	return predicate.TaskStep(sql.FieldEQ(FieldResponseContent, v))
}

// ResponseContentNEQ applies the NEQ predicate on the "response_content" field.
func ResponseContentNEQ(v string) predicate.TaskStep {
	return predicate.TaskStep(sql.FieldNEQ(FieldResponseContent, v))
}

// ResponseContentIn applies the In predicate on the "response_content" field.
func ResponseContentIn(vs ...string) predicate.TaskStep {
	return predicate.TaskStep(sql.FieldIn(FieldResponseContent, vs...))
}

// ResponseContentNotIn applies the NotIn predicate on the "response_content" field.
func ResponseContentNotIn(vs ...string) predicate.TaskStep {
	return predicate.TaskStep(sql.FieldNotIn(FieldResponseContent, vs...))
}

// ResponseContentGT applies the GT predicate on the "response_content" field.
func ResponseContentGT(v string) predicate.TaskStep {
	return predicate.TaskStep(sql.FieldGT(FieldResponseContent, v))
}

// ResponseContentGTE applies the GTE predicate on the "response_content" field.
func ResponseContentGTE(v string) predicate.TaskStep {
	return predicate.TaskStep(sql.FieldGTE(FieldResponseContent, v))
}

// ResponseContentLT applies the LT predicate on the "response_content" field.
func ResponseContentLT(v string) predicate.TaskStep {
	return predicate.TaskStep(sql.FieldLT(FieldResponseContent, v))
}

// ResponseContentLTE applies the LTE predicate on the "response_content" field.
func ResponseContentLTE(v string) predicate.TaskStep {
	return predicate.TaskStep(sql.FieldLTE(FieldResponseContent, v))
}

// ResponseContentContains applies the Contains predicate on the "response_content" field.
func ResponseContentContains(v string) predicate.TaskStep {
	return predicate.TaskStep(sql.FieldContains(FieldResponseContent, v))
}

// ResponseContentHasPrefix applies the HasPrefix predicate on the "response_content" field.
func ResponseContentHasPrefix(v string) predicate.TaskStep {
	return predicate.TaskStep(sql.FieldHasPrefix(FieldResponseContent, v))
}

// ResponseContentHasSuffix applies the HasSuffix predicate on the "response_content" field.
func ResponseContentHasSuffix(v string) predicate.TaskStep {
	return predicate.TaskStep(sql.FieldHasSuffix(FieldResponseContent, v))
}

// ResponseContentIsNil applies the IsNil predicate on the "response_content" field.
func ResponseContentIsNil() predicate.TaskStep {
	return predicate.TaskStep(sql.FieldIsNull(FieldResponseContent))
}

// ResponseContentNotNil applies the NotNil predicate on the "response_content" field.
func ResponseContentNotNil() predicate.TaskStep {
	return predicate.TaskStep(sql.FieldNotNull(FieldResponseContent))
}

// ResponseContentEqualFold applies the EqualFold predicate on the "response_content" field.
func ResponseContentEqualFold(v string) predicate.TaskStep {
	return predicate.TaskStep(sql.FieldEqualFold(FieldResponseContent, v))
}

// ResponseContentContainsFold applies the ContainsFold predicate on the "response_content" field.
func ResponseContentContainsFold(v string) predicate.TaskStep {
	return predicate.TaskStep(sql.FieldContainsFold(FieldResponseContent, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.TaskStep {
	return predicate.TaskStep(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.TaskStep {
	return predicate.TaskStep(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.TaskStep {
	return predicate.TaskStep(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.TaskStep {
	return predicate.TaskStep(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.TaskStep {
	return predicate.TaskStep(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.TaskStep {
	return predicate.TaskStep(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.TaskStep {
	return predicate.TaskStep(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.TaskStep {
	return predicate.TaskStep(sql.FieldLTE(FieldCreatedAt, v))
}

// StartedAtEQ applies the EQ predicate on the "started_at" field.
func StartedAtEQ(v time.Time) predicate.TaskStep {
	return predicate.TaskStep(sql.FieldEQ(FieldStartedAt, v))
}

// StartedAtNEQ applies the NEQ predicate on the "started_at" field.
func StartedAtNEQ(v time.Time) predicate.TaskStep {
	return predicate.TaskStep(sql.FieldNEQ(FieldStartedAt, v))
}

// StartedAtIn applies the In predicate on the "started_at" field.
func StartedAtIn(vs ...time.Time) predicate.TaskStep {
	return predicate.TaskStep(sql.FieldIn(FieldStartedAt, vs...))
}

// StartedAtNotIn applies the NotIn predicate on the "started_at" field.
func StartedAtNotIn(vs ...time.Time) predicate.TaskStep {
	return predicate.TaskStep(sql.FieldNotIn(FieldStartedAt, vs...))
}

// StartedAtGT applies the GT predicate on the "started_at" field.
func StartedAtGT(v time.Time) predicate.TaskStep {
	return predicate.TaskStep(sql.FieldGT(FieldStartedAt, v))
}

// StartedAtGTE applies the GTE predicate on the "started_at" field.
func StartedAtGTE(v time.Time) predicate.TaskStep {
	return predicate.TaskStep(sql.FieldGTE(FieldStartedAt, v))
}

// StartedAtLT applies the LT predicate on the "started_at" field.
func StartedAtLT(v time.Time) predicate.TaskStep {
	return predicate.TaskStep(sql.FieldLT(FieldStartedAt, v))
}

// StartedAtLTE applies the LTE predicate on the "started_at" field.
func StartedAtLTE(v time.Time) predicate.TaskStep {
	return predicate.TaskStep(sql.FieldLTE(FieldStartedAt, v))
}

// StartedAtIsNil applies the IsNil predicate on the "started_at" field.
func StartedAtIsNil() predicate.TaskStep {
	return predicate.TaskStep(sql.FieldIsNull(FieldStartedAt))
}

// StartedAtNotNil applies the NotNil predicate on the "started_at" field.
func StartedAtNotNil() predicate.TaskStep {
	return predicate.TaskStep(sql.FieldNotNull(FieldStartedAt))
}

// CompletedAtEQ applies the EQ predicate on the "completed_at" field.
func CompletedAtEQ(v time.Time) predicate.TaskStep {
	return predicate.TaskStep(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletedAtNEQ applies the NEQ predicate on the "completed_at" field.
func CompletedAtNEQ(v time.Time) predicate.TaskStep {
	return predicate.TaskStep(sql.FieldNEQ(FieldCompletedAt, v))
}

// CompletedAtIn applies the In predicate on the "completed_at" field.
func CompletedAtIn(vs ...time.Time) predicate.TaskStep {
	return predicate.TaskStep(sql.FieldIn(FieldCompletedAt, vs...))
}

// CompletedAtNotIn applies the NotIn predicate on the "completed_at" field.
func CompletedAtNotIn(vs ...time.Time) predicate.TaskStep {
	return predicate.TaskStep(sql.FieldNotIn(FieldCompletedAt, vs...))
}

// CompletedAtGT applies the GT predicate on the "completed_at" field.
func CompletedAtGT(v time.Time) predicate.TaskStep {
	return predicate.TaskStep(sql.FieldGT(FieldCompletedAt, v))
}

// CompletedAtGTE applies the GTE predicate on the "completed_at" field.
func CompletedAtGTE(v time.Time) predicate.TaskStep {
	return predicate.TaskStep(sql.FieldGTE(FieldCompletedAt, v))
}

// CompletedAtLT applies the LT predicate on the "completed_at" field.
func CompletedAtLT(v time.Time) predicate.TaskStep {
	return predicate.TaskStep(sql.FieldLT(FieldCompletedAt, v))
}

// CompletedAtLTE applies the LTE predicate on the "completed_at" field.
func CompletedAtLTE(v time.Time) predicate.TaskStep {
	return predicate.TaskStep(sql.FieldLTE(FieldCompletedAt, v))
}

// CompletedAtIsNil applies the IsNil predicate on the "completed_at" field.
func CompletedAtIsNil() predicate.TaskStep {
	return predicate.TaskStep(sql.FieldIsNull(FieldCompletedAt))
}

// CompletedAtNotNil applies the NotNil predicate on the "completed_at" field.
func CompletedAtNotNil() predicate.TaskStep {
	return predicate.TaskStep(sql.FieldNotNull(FieldCompletedAt))
}

// HasTask applies the HasEdge predicate on the "task" edge.
func HasTask() predicate.TaskStep {
	return predicate.TaskStep(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, TaskTable, TaskColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasTaskWith applies the HasEdge predicate on the "task" edge with a given conditions (other predicates).
func HasTaskWith(preds ...predicate.Task) predicate.TaskStep {
	return predicate.TaskStep(func(s *sql.Selector) {
		step := newTaskStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.TaskStep) predicate.TaskStep {
	return predicate.TaskStep(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.TaskStep) predicate.TaskStep {
	return predicate.TaskStep(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.TaskStep) predicate.TaskStep {
	return predicate.TaskStep(sql.NotPredicates(p))
}
