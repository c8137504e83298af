// Package task contains the engine that turns a user prompt into an
// executed multi-step plan: decomposition, per-step execution, and
// mid-plan reevaluation.
package task

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/llimit/gateway/ent"
	"github.com/llimit/gateway/ent/taskstep"
	"github.com/llimit/gateway/pkg/events"
	"github.com/llimit/gateway/pkg/llm"
	"github.com/llimit/gateway/pkg/models"
	"github.com/llimit/gateway/pkg/queue"
)

const planningTemperature = 0.7

// DecompositionError means the planning model returned an unusable
// plan.
type DecompositionError struct {
	Reason string
}

func (e *DecompositionError) Error() string {
	return fmt.Sprintf("decomposition failed: %s", e.Reason)
}

// Completer is the slice of the LLM adapter the engine needs for
// planning and execution calls.
type Completer interface {
	Complete(ctx context.Context, apiKey, model string, messages []llm.Message, requested map[string]string, temperature float64, cfg *llm.Config) (*llm.Message, error)
}

// Decomposer turns a user prompt into a step plan using a fixed
// high-capability planning model.
type Decomposer struct {
	store     Store
	completer Completer
	bus       *events.Bus
	model     string
}

// NewDecomposer creates a decomposer planning with the given model.
func NewDecomposer(store Store, completer Completer, bus *events.Bus, model string) *Decomposer {
	return &Decomposer{store: store, completer: completer, bus: bus, model: model}
}

// Decompose calls the planning model and strictly parses its plan.
func (d *Decomposer) Decompose(ctx context.Context, apiKey, userPrompt string) (*models.DecompositionResult, error) {
	messages := []llm.Message{llm.UserMessage(decompositionPrompt(userPrompt))}
	requested := map[string]string{
		"title": taskTitleDescription,
		"steps": stepsDescription(),
	}

	reply, err := d.completer.Complete(ctx, apiKey, d.model, messages, requested, planningTemperature, nil)
	if err != nil {
		return nil, err
	}

	rawSteps, ok := reply.AdditionalData["steps"]
	if !ok || strings.TrimSpace(rawSteps) == "" {
		return nil, &DecompositionError{Reason: "model returned no steps"}
	}
	steps, err := parseSteps(rawSteps)
	if err != nil {
		return nil, err
	}
	if len(steps) == 0 {
		return nil, &DecompositionError{Reason: "model returned an empty plan"}
	}

	title := strings.TrimSpace(reply.AdditionalData["title"])
	if title == "" {
		return nil, &DecompositionError{Reason: "model returned no title"}
	}

	return &models.DecompositionResult{Title: title, Steps: steps}, nil
}

// DecomposeAndQueue plans the task, persists the plan, and returns the
// work item for the first step.
func (d *Decomposer) DecomposeAndQueue(ctx context.Context, item queue.WorkItem) ([]queue.WorkItem, error) {
	t, err := d.store.GetTask(ctx, item.TaskID, item.UserID)
	if err != nil {
		return nil, err
	}

	result, err := d.Decompose(ctx, item.APIKey, t.Prompt)
	if err != nil {
		return nil, err
	}

	steps, err := d.store.UpdateAfterDecomposition(ctx, t.ID, result.Title, result.Steps)
	if err != nil {
		return nil, err
	}

	slog.Info("Task decomposed",
		"task_id", t.ID,
		"title", result.Title,
		"steps", len(steps))
	d.bus.Emit(item.UserID, events.TaskStepsGenerated(t.ID, result.Title, len(steps)))

	return []queue.WorkItem{stepWorkItem(item, steps[0])}, nil
}

// stepWorkItem builds the queue item matching a step's type.
func stepWorkItem(item queue.WorkItem, step *ent.TaskStep) queue.WorkItem {
	if step.StepType == taskstep.StepTypeReevaluate {
		return queue.Reevaluate(item.TaskID, item.UserID, item.APIKey, step.ID)
	}
	return queue.Execute(item.TaskID, item.UserID, item.APIKey, step.ID)
}

func decodeStepArray(raw string) ([]models.StepDefinition, error) {
	var defs []models.StepDefinition
	if err := json.Unmarshal([]byte(raw), &defs); err != nil {
		return nil, &DecompositionError{Reason: fmt.Sprintf("steps payload is not a JSON array: %v", err)}
	}
	return defs, nil
}
