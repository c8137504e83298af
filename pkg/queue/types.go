// Package queue provides the per-process work queue driving task
// execution. A single consumer goroutine dispatches items in FIFO
// order, which is what serializes all writes to any one task.
package queue

import "context"

// Kind discriminates the work item variants.
type Kind string

// Work item kinds.
const (
	KindDecompose  Kind = "decompose"
	KindExecute    Kind = "execute"
	KindReevaluate Kind = "reevaluate"
)

// WorkItem is one unit of task work. APIKey is the user's upstream
// provider key, carried along because the queue consumer has no request
// context to read it from.
type WorkItem struct {
	Kind   Kind
	TaskID string
	UserID string
	APIKey string
	StepID string
}

// Decompose creates a decomposition work item for a fresh task.
func Decompose(taskID, userID, apiKey string) WorkItem {
	return WorkItem{Kind: KindDecompose, TaskID: taskID, UserID: userID, APIKey: apiKey}
}

// Execute creates an execution work item for one normal step.
func Execute(taskID, userID, apiKey, stepID string) WorkItem {
	return WorkItem{Kind: KindExecute, TaskID: taskID, UserID: userID, APIKey: apiKey, StepID: stepID}
}

// Reevaluate creates a reevaluation work item for one reevaluate step.
func Reevaluate(taskID, userID, apiKey, stepID string) WorkItem {
	return WorkItem{Kind: KindReevaluate, TaskID: taskID, UserID: userID, APIKey: apiKey, StepID: stepID}
}

// Dispatcher executes one work item and returns follow-up items to
// enqueue. Implemented by the task engine. A returned error marks the
// task failed; it must not kill the consumer.
type Dispatcher interface {
	Dispatch(ctx context.Context, item WorkItem) ([]WorkItem, error)
}
