package task

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/llimit/gateway/ent"
	enttask "github.com/llimit/gateway/ent/task"
	"github.com/llimit/gateway/pkg/events"
	"github.com/llimit/gateway/pkg/models"
	"github.com/llimit/gateway/pkg/queue"
)

// Store is the persistence surface the engine works against.
// Implemented by services.TaskStore.
type Store interface {
	GetTask(ctx context.Context, taskID, userID string) (*ent.Task, error)
	UpdateAfterDecomposition(ctx context.Context, taskID, title string, steps []models.StepDefinition) ([]*ent.TaskStep, error)
	UpdateTaskFinal(ctx context.Context, taskID string, status enttask.Status, output *string) error

	GetStep(ctx context.Context, stepID string) (*ent.TaskStep, error)
	GetSteps(ctx context.Context, taskID string, includeAbandoned bool) ([]*ent.TaskStep, error)
	StepByNumber(ctx context.Context, taskID string, number int) (*ent.TaskStep, error)
	SaveStepSelection(ctx context.Context, stepID, modelName string, score, predictedLength float64) (*ent.TaskStep, error)
	StartStep(ctx context.Context, stepID string) (*ent.TaskStep, error)
	CompleteStep(ctx context.Context, stepID, responseContent, output string) (*ent.TaskStep, error)
	MarkStepCouldNotComplete(ctx context.Context, stepID, responseContent, failureReason string) (*ent.TaskStep, error)
	FailStep(ctx context.Context, stepID, reason string) (*ent.TaskStep, error)
	MarkStepsAbandonedFrom(ctx context.Context, taskID string, fromNumber int, excludeStepID string) (int, error)
	InsertStepsAfterReevaluation(ctx context.Context, taskID string, afterStepNumber int, defs []models.StepDefinition) ([]*ent.TaskStep, error)
	CreateSynthesizedReevaluateStep(ctx context.Context, taskID, prompt string, number int) (*ent.TaskStep, error)
	CountBlockingSteps(ctx context.Context, taskID string) (int, error)

	AddCostIncrement(ctx context.Context, taskID string, amountUSD float64) error
}

// Engine dispatches queue work items to the decomposer, the executor,
// and the reevaluator. It is the queue's single Dispatcher.
type Engine struct {
	decomposer  *Decomposer
	executor    *Executor
	reevaluator *Reevaluator
}

// NewEngine wires the three task stages behind one dispatcher.
func NewEngine(store Store, files FileLoader, selector ModelSelector, completer Completer, pricer Pricer, bus *events.Bus, planningModel string) *Engine {
	return &Engine{
		decomposer:  NewDecomposer(store, completer, bus, planningModel),
		executor:    NewExecutor(store, files, selector, completer, pricer, bus),
		reevaluator: NewReevaluator(store, completer, bus, planningModel),
	}
}

// Dispatch implements queue.Dispatcher.
func (e *Engine) Dispatch(ctx context.Context, item queue.WorkItem) ([]queue.WorkItem, error) {
	switch item.Kind {
	case queue.KindDecompose:
		return e.decomposer.DecomposeAndQueue(ctx, item)
	case queue.KindExecute:
		return e.executor.ExecuteStep(ctx, item)
	case queue.KindReevaluate:
		return e.reevaluator.Reevaluate(ctx, item)
	}
	return nil, fmt.Errorf("unknown work item kind %q", item.Kind)
}

// FailTask is the queue's failure callback: it moves the task to
// failed and emits task.failed. Kept here so the queue stays free of
// storage concerns.
func FailTask(store Store, bus *events.Bus) queue.FailureFunc {
	return func(ctx context.Context, item queue.WorkItem, err error) {
		if updateErr := store.UpdateTaskFinal(ctx, item.TaskID, enttask.StatusFailed, nil); updateErr != nil {
			slog.Error("Failed to mark task failed", "task_id", item.TaskID, "error", updateErr)
			return
		}
		bus.Emit(item.UserID, events.TaskFailed(item.TaskID, err.Error()))
	}
}
