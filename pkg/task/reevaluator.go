package task

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/llimit/gateway/ent/taskstep"
	"github.com/llimit/gateway/pkg/events"
	"github.com/llimit/gateway/pkg/llm"
	"github.com/llimit/gateway/pkg/queue"
)

// Reevaluator rewrites the remainder of a plan from live results. It
// uses the same planning model as the decomposer.
type Reevaluator struct {
	store     Store
	completer Completer
	bus       *events.Bus
	model     string
}

// NewReevaluator creates a reevaluator planning with the given model.
func NewReevaluator(store Store, completer Completer, bus *events.Bus, model string) *Reevaluator {
	return &Reevaluator{store: store, completer: completer, bus: bus, model: model}
}

// Reevaluate runs a reevaluate step: every prior non-abandoned step
// must have finished (completed or could_not_complete), the planning
// model produces the replacement steps, the old remainder is
// abandoned, and the first new step's work item is returned.
func (r *Reevaluator) Reevaluate(ctx context.Context, item queue.WorkItem) ([]queue.WorkItem, error) {
	step, err := r.store.GetStep(ctx, item.StepID)
	if err != nil {
		return nil, err
	}
	if step.StepType != taskstep.StepTypeReevaluate {
		return nil, fmt.Errorf("step %s is a %s step, not a reevaluation", step.ID, step.StepType)
	}
	t, err := r.store.GetTask(ctx, item.TaskID, item.UserID)
	if err != nil {
		return nil, err
	}

	allSteps, err := r.store.GetSteps(ctx, t.ID, false)
	if err != nil {
		return nil, err
	}
	for _, s := range allSteps {
		if s.StepNumber >= step.StepNumber || s.ID == step.ID {
			continue
		}
		if s.Status != taskstep.StatusCompleted && s.Status != taskstep.StatusCouldNotComplete {
			return nil, &DecompositionError{
				Reason: fmt.Sprintf("step %d is still %s, cannot reevaluate", s.StepNumber, s.Status),
			}
		}
	}

	step, err = r.store.StartStep(ctx, step.ID)
	if err != nil {
		return nil, err
	}

	prompt := reevaluationPrompt(reevaluationContext(t, step, allSteps))
	messages := []llm.Message{llm.UserMessage(prompt)}
	requested := map[string]string{"steps": stepsDescription()}

	reply, err := r.completer.Complete(ctx, item.APIKey, r.model, messages, requested, planningTemperature, nil)
	if err != nil {
		return nil, err
	}

	rawSteps, ok := reply.AdditionalData["steps"]
	if !ok || strings.TrimSpace(rawSteps) == "" {
		return nil, &DecompositionError{Reason: "reevaluation returned no steps"}
	}
	defs, err := parseSteps(rawSteps)
	if err != nil {
		return nil, err
	}

	step, err = r.store.CompleteStep(ctx, step.ID, reply.Content, "")
	if err != nil {
		return nil, err
	}
	r.bus.Emit(item.UserID, events.TaskStepCompleted(t.ID, step.ID, step.StepNumber, reply.Content))

	abandoned, err := r.store.MarkStepsAbandonedFrom(ctx, t.ID, step.StepNumber, step.ID)
	if err != nil {
		return nil, err
	}

	newSteps, err := r.store.InsertStepsAfterReevaluation(ctx, t.ID, step.StepNumber, defs)
	if err != nil {
		return nil, err
	}

	slog.Info("Plan reevaluated",
		"task_id", t.ID,
		"abandoned", abandoned,
		"new_steps", len(newSteps))
	r.bus.Emit(item.UserID, events.TaskStepsRegenerated(t.ID, len(newSteps), step.StepNumber+1))

	if len(newSteps) == 0 {
		if err := finalizeIfDone(ctx, r.store, r.bus, t.ID, item.UserID); err != nil {
			return nil, err
		}
		return nil, nil
	}
	return []queue.WorkItem{stepWorkItem(item, newSteps[0])}, nil
}
