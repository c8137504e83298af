package task

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/llimit/gateway/ent"
	enttask "github.com/llimit/gateway/ent/task"
	"github.com/llimit/gateway/ent/taskstep"
	"github.com/llimit/gateway/pkg/events"
	"github.com/llimit/gateway/pkg/llm"
	"github.com/llimit/gateway/pkg/models"
	"github.com/llimit/gateway/pkg/pricing"
	"github.com/llimit/gateway/pkg/queue"
	"github.com/llimit/gateway/pkg/selection"
)

const executionTemperature = 0.7

// noSuitableModelFailure is recorded as the failure reason when the
// selector finds no candidate, so the synthesized reevaluation can plan
// around the requirement.
const noSuitableModelFailure = "No available model satisfies this step's file and capability requirements."

// FileLoader resolves a step's required files. Implemented by
// services.FileService.
type FileLoader interface {
	GetFile(ctx context.Context, fileID, userID string) (*ent.File, error)
	LoadAttachment(ctx context.Context, f *ent.File) (llm.File, error)
}

// ModelSelector picks the model for a step. Implemented by
// selection.Selector.
type ModelSelector interface {
	SelectModel(ctx context.Context, prompt string, capabilities []models.Capability, files []pricing.FileInfo) (*selection.Evaluation, error)
}

// Pricer records actual call costs. Implemented by pricing.Calculator.
type Pricer interface {
	ActualCost(ctx context.Context, modelID string, promptTokens, completionTokens int64, files []pricing.FileInfo, cfg llm.Config) (float64, error)
}

// Executor runs one normal step end to end.
type Executor struct {
	store     Store
	files     FileLoader
	selector  ModelSelector
	completer Completer
	pricer    Pricer
	bus       *events.Bus
}

// NewExecutor creates a step executor.
func NewExecutor(store Store, files FileLoader, selector ModelSelector, completer Completer, pricer Pricer, bus *events.Bus) *Executor {
	return &Executor{
		store:     store,
		files:     files,
		selector:  selector,
		completer: completer,
		pricer:    pricer,
		bus:       bus,
	}
}

// ExecuteStep runs a pending normal step: select a model, build the
// context from prior outputs, call the LLM, classify the result, and
// return the follow-up work. An error return means infrastructure
// failure; the step is already marked failed and the queue fails the
// task.
func (e *Executor) ExecuteStep(ctx context.Context, item queue.WorkItem) ([]queue.WorkItem, error) {
	step, err := e.store.GetStep(ctx, item.StepID)
	if err != nil {
		return nil, err
	}
	if step.StepType != taskstep.StepTypeNormal {
		return nil, fmt.Errorf("step %s is a %s step, not executable", step.ID, step.StepType)
	}
	if step.Status != taskstep.StatusPending {
		return nil, fmt.Errorf("step %s is %s, not pending", step.ID, step.Status)
	}
	t, err := e.store.GetTask(ctx, item.TaskID, item.UserID)
	if err != nil {
		return nil, err
	}

	attachments, fileInfos, err := e.loadFiles(ctx, step, item.UserID)
	if err != nil {
		return e.failStep(ctx, item, step, err)
	}

	if step.StepDetails.ModelName == nil {
		step, err = e.selectModel(ctx, item, step, fileInfos)
		if err != nil {
			if errors.Is(err, selection.ErrNoSuitableModel) {
				return e.handleNoSuitableModel(ctx, item, step)
			}
			return e.failStep(ctx, item, step, err)
		}
	}

	step, err = e.store.StartStep(ctx, step.ID)
	if err != nil {
		return nil, err
	}

	allSteps, err := e.store.GetSteps(ctx, t.ID, false)
	if err != nil {
		return e.failStep(ctx, item, step, err)
	}

	cfg := llm.ConfigForCapabilities(step.StepDetails.RequiredCapabilities)
	messages := []llm.Message{
		llm.UserMessage(stepContext(t, step, allSteps), attachments...),
	}
	requested := map[string]string{
		"output":         taskStepOutputDescription,
		"failure_reason": taskStepFailureReasonDescription,
	}

	reply, err := e.completer.Complete(ctx, item.APIKey, *step.StepDetails.ModelName, messages, requested, executionTemperature, &cfg)
	if err != nil {
		return e.failStep(ctx, item, step, err)
	}

	e.recordCost(ctx, t.ID, *step.StepDetails.ModelName, reply, fileInfos, cfg)

	failureReason := strings.TrimSpace(reply.AdditionalData["failure_reason"])
	if failureReason != "" {
		return e.handleStepFailure(ctx, item, step, reply.Content, failureReason)
	}

	output := reply.AdditionalData["output"]
	step, err = e.store.CompleteStep(ctx, step.ID, reply.Content, output)
	if err != nil {
		return nil, err
	}
	e.bus.Emit(item.UserID, events.TaskStepCompleted(t.ID, step.ID, step.StepNumber, reply.Content))

	return e.nextWork(ctx, item, step)
}

func (e *Executor) loadFiles(ctx context.Context, step *ent.TaskStep, userID string) ([]llm.File, []pricing.FileInfo, error) {
	var attachments []llm.File
	var infos []pricing.FileInfo
	for _, fileID := range step.StepDetails.RequiredFileIDs {
		f, err := e.files.GetFile(ctx, fileID, userID)
		if err != nil {
			return nil, nil, fmt.Errorf("loading file %s for step %s: %w", fileID, step.ID, err)
		}
		attachment, err := e.files.LoadAttachment(ctx, f)
		if err != nil {
			return nil, nil, err
		}
		attachments = append(attachments, attachment)
		infos = append(infos, pricing.FileInfo{
			ContentType: f.ContentType,
			SizeBytes:   f.SizeBytes,
			PageCount:   f.PageCount,
		})
	}
	return attachments, infos, nil
}

// selectModel runs the selector and persists the choice before the
// step starts, so the prediction survives a crash mid-execution.
func (e *Executor) selectModel(ctx context.Context, item queue.WorkItem, step *ent.TaskStep, files []pricing.FileInfo) (*ent.TaskStep, error) {
	eval, err := e.selector.SelectModel(ctx, step.Prompt, step.StepDetails.RequiredCapabilities, files)
	if err != nil {
		return nil, err
	}
	slog.Info("Step model selected",
		"task_id", item.TaskID,
		"step_id", step.ID,
		"model", eval.ModelID,
		"estimated_cost", eval.EstimatedCost)
	return e.store.SaveStepSelection(ctx, step.ID, eval.ModelID, eval.Score, eval.PredictedLength)
}

func (e *Executor) recordCost(ctx context.Context, taskID, model string, reply *llm.Message, files []pricing.FileInfo, cfg llm.Config) {
	if reply.PromptTokens == nil || reply.CompletionTokens == nil {
		slog.Warn("Completion carried no usage, skipping cost record", "task_id", taskID)
		return
	}
	cost, err := e.pricer.ActualCost(ctx, model, *reply.PromptTokens, *reply.CompletionTokens, files, cfg)
	if err != nil {
		slog.Warn("Failed to price completion", "task_id", taskID, "error", err)
		return
	}
	if err := e.store.AddCostIncrement(ctx, taskID, cost); err != nil {
		slog.Warn("Failed to record cost increment", "task_id", taskID, "error", err)
	}
}

// handleStepFailure records a model-reported failure and synthesizes a
// reevaluation right after the failed step.
func (e *Executor) handleStepFailure(ctx context.Context, item queue.WorkItem, step *ent.TaskStep, responseContent, failureReason string) ([]queue.WorkItem, error) {
	step, err := e.store.MarkStepCouldNotComplete(ctx, step.ID, responseContent, failureReason)
	if err != nil {
		return nil, err
	}
	e.bus.Emit(item.UserID, events.TaskStepCompleted(item.TaskID, step.ID, step.StepNumber, responseContent))

	reevaluate, err := e.store.CreateSynthesizedReevaluateStep(ctx, item.TaskID, failureReason, step.StepNumber+1)
	if err != nil {
		return nil, err
	}
	return []queue.WorkItem{queue.Reevaluate(item.TaskID, item.UserID, item.APIKey, reevaluate.ID)}, nil
}

// handleNoSuitableModel treats an empty candidate set like a model
// failure: the step cannot run, so a reevaluation plans around it.
func (e *Executor) handleNoSuitableModel(ctx context.Context, item queue.WorkItem, step *ent.TaskStep) ([]queue.WorkItem, error) {
	return e.handleStepFailure(ctx, item, step, "", noSuitableModelFailure)
}

// failStep marks the step failed and propagates the error so the queue
// fails the whole task. The only event for this path is the queue's
// task.failed.
func (e *Executor) failStep(ctx context.Context, item queue.WorkItem, step *ent.TaskStep, cause error) ([]queue.WorkItem, error) {
	if _, err := e.store.FailStep(ctx, step.ID, cause.Error()); err != nil {
		slog.Error("Failed to mark step failed", "step_id", step.ID, "error", err)
	}
	return nil, cause
}

// nextWork finds the exact next step by number, or finalizes the task
// when the plan is exhausted.
func (e *Executor) nextWork(ctx context.Context, item queue.WorkItem, completed *ent.TaskStep) ([]queue.WorkItem, error) {
	next, err := e.store.StepByNumber(ctx, item.TaskID, completed.StepNumber+1)
	if err != nil {
		return nil, err
	}
	if next != nil {
		return []queue.WorkItem{stepWorkItem(item, next)}, nil
	}

	if err := finalizeIfDone(ctx, e.store, e.bus, item.TaskID, item.UserID); err != nil {
		return nil, err
	}
	return nil, nil
}

// finalizeIfDone completes the task when no non-abandoned step is
// still pending or running. The final output is the last completed
// step's output.
func finalizeIfDone(ctx context.Context, store Store, bus *events.Bus, taskID, userID string) error {
	blocking, err := store.CountBlockingSteps(ctx, taskID)
	if err != nil {
		return err
	}
	if blocking > 0 {
		return nil
	}

	steps, err := store.GetSteps(ctx, taskID, false)
	if err != nil {
		return err
	}
	var finalOutput *string
	for _, s := range steps {
		if s.Status == taskstep.StatusCompleted && s.StepDetails.Output != nil && *s.StepDetails.Output != "" {
			finalOutput = s.StepDetails.Output
		}
	}
	if finalOutput == nil {
		return fmt.Errorf("task %s has no completed step with output", taskID)
	}

	if err := store.UpdateTaskFinal(ctx, taskID, enttask.StatusCompleted, finalOutput); err != nil {
		return err
	}
	slog.Info("Task completed", "task_id", taskID)
	bus.Emit(userID, events.TaskCompleted(taskID, *finalOutput))
	return nil
}
