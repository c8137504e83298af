package task

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llimit/gateway/ent"
	enttask "github.com/llimit/gateway/ent/task"
	"github.com/llimit/gateway/ent/taskstep"
	"github.com/llimit/gateway/pkg/events"
	"github.com/llimit/gateway/pkg/llm"
	"github.com/llimit/gateway/pkg/models"
	"github.com/llimit/gateway/pkg/queue"
	"github.com/llimit/gateway/pkg/selection"
)

// seedPlan puts the harness task mid-execution with the given number of
// pending normal steps and returns them.
func seedPlan(h *harness, pending int) []*ent.TaskStep {
	h.store.task.Status = enttask.StatusInProgress
	h.store.task.Title = strptr("Seeded Task")
	h.store.task.StepsGenerated = true
	steps := make([]*ent.TaskStep, 0, pending)
	for i := 0; i < pending; i++ {
		steps = append(steps, h.store.addStep(i, taskstep.StatusPending, models.StepDetails{
			Complexity: models.ComplexityLow,
		}))
	}
	return steps
}

func TestExecuteStepHappyPath(t *testing.T) {
	h := newHarness(t, "do things")
	steps := seedPlan(h, 2)
	h.completer.replies = []completerReply{
		{msg: assistantReply("raw answer", map[string]string{"output": "step output"}, 100, 50)},
	}

	items, err := h.engine.Dispatch(context.Background(), h.workItem(queue.KindExecute, steps[0].ID))
	require.NoError(t, err)

	// Selection persisted before the step started.
	assert.Equal(t, 1, h.selector.calls)
	require.NotNil(t, steps[0].StepDetails.ModelName)
	assert.Equal(t, "fast-model", *steps[0].StepDetails.ModelName)
	require.NotNil(t, steps[0].StepDetails.PredictedScore)
	assert.Equal(t, 1.5, *steps[0].StepDetails.PredictedScore)

	require.Len(t, h.completer.calls, 1)
	call := h.completer.calls[0]
	assert.Equal(t, "fast-model", call.model)
	assert.Equal(t, executionTemperature, call.temperature)
	require.NotNil(t, call.cfg)
	assert.Contains(t, call.requested, "output")
	assert.Contains(t, call.requested, "failure_reason")
	require.Len(t, call.messages, 1)
	assert.Contains(t, call.messages[0].Content, "Task: Seeded Task")

	assert.Equal(t, taskstep.StatusCompleted, steps[0].Status)
	require.NotNil(t, steps[0].ResponseContent)
	assert.Equal(t, "raw answer", *steps[0].ResponseContent)
	require.NotNil(t, steps[0].StepDetails.Output)
	assert.Equal(t, "step output", *steps[0].StepDetails.Output)

	assert.Equal(t, []float64{0.001}, h.store.costs)

	e := h.nextEvent(t)
	assert.Equal(t, events.EventTypeTaskStepCompleted, e.Type)
	assert.Equal(t, steps[0].ID, e.Content["step_id"])

	require.Len(t, items, 1)
	assert.Equal(t, queue.KindExecute, items[0].Kind)
	assert.Equal(t, steps[1].ID, items[0].StepID)
}

func TestExecuteStepContextCarriesPriorOutputs(t *testing.T) {
	h := newHarness(t, "do things")
	steps := seedPlan(h, 2)
	steps[0].Status = taskstep.StatusCompleted
	steps[0].StepDetails.Output = strptr("first output")
	h.completer.replies = []completerReply{
		{msg: assistantReply("answer", map[string]string{"output": "final"}, 10, 10)},
	}

	_, err := h.engine.Dispatch(context.Background(), h.workItem(queue.KindExecute, steps[1].ID))
	require.NoError(t, err)

	require.Len(t, h.completer.calls, 1)
	prompt := h.completer.calls[0].messages[0].Content
	assert.Contains(t, prompt, "Step 1: step 0 prompt")
	assert.Contains(t, prompt, "Output: first output")
	assert.Contains(t, prompt, "Current step (Step 2):")
}

func TestExecuteStepFinalizesTask(t *testing.T) {
	h := newHarness(t, "do things")
	steps := seedPlan(h, 1)
	h.completer.replies = []completerReply{
		{msg: assistantReply("answer", map[string]string{"output": "the final output"}, 10, 10)},
	}

	items, err := h.engine.Dispatch(context.Background(), h.workItem(queue.KindExecute, steps[0].ID))
	require.NoError(t, err)
	assert.Empty(t, items)

	assert.Equal(t, enttask.StatusCompleted, h.store.task.Status)
	require.NotNil(t, h.store.task.Output)
	assert.Equal(t, "the final output", *h.store.task.Output)
	require.NotNil(t, h.store.task.CompletedAt)

	e := h.nextEvent(t)
	assert.Equal(t, events.EventTypeTaskStepCompleted, e.Type)
	e = h.nextEvent(t)
	assert.Equal(t, events.EventTypeTaskCompleted, e.Type)
	assert.Equal(t, "the final output", e.Content["output"])
}

func TestExecuteStepModelReportedFailure(t *testing.T) {
	h := newHarness(t, "do things")
	steps := seedPlan(h, 2)
	h.completer.replies = []completerReply{
		{msg: assistantReply("sorry", map[string]string{"failure_reason": "the source is paywalled"}, 10, 10)},
	}

	items, err := h.engine.Dispatch(context.Background(), h.workItem(queue.KindExecute, steps[0].ID))
	require.NoError(t, err)

	assert.Equal(t, taskstep.StatusCouldNotComplete, steps[0].Status)
	require.NotNil(t, steps[0].StepDetails.FailureReason)
	assert.Equal(t, "the source is paywalled", *steps[0].StepDetails.FailureReason)

	// A reevaluation is synthesized right after the failed step.
	require.Len(t, items, 1)
	assert.Equal(t, queue.KindReevaluate, items[0].Kind)
	reevaluate, err := h.store.GetStep(context.Background(), items[0].StepID)
	require.NoError(t, err)
	assert.Equal(t, taskstep.StepTypeReevaluate, reevaluate.StepType)
	assert.Equal(t, steps[0].StepNumber+1, reevaluate.StepNumber)
	assert.Equal(t, "the source is paywalled", reevaluate.Prompt)
	assert.False(t, reevaluate.StepDetails.IsPlanned)
}

func TestExecuteStepNoSuitableModel(t *testing.T) {
	h := newHarness(t, "do things")
	steps := seedPlan(h, 1)
	h.selector.err = selection.ErrNoSuitableModel

	items, err := h.engine.Dispatch(context.Background(), h.workItem(queue.KindExecute, steps[0].ID))
	require.NoError(t, err)

	assert.Empty(t, h.completer.calls, "no completion call without a model")
	assert.Equal(t, taskstep.StatusCouldNotComplete, steps[0].Status)
	require.NotNil(t, steps[0].StepDetails.FailureReason)
	assert.Equal(t, noSuitableModelFailure, *steps[0].StepDetails.FailureReason)

	require.Len(t, items, 1)
	assert.Equal(t, queue.KindReevaluate, items[0].Kind)
}

func TestExecuteStepUpstreamErrorFailsStep(t *testing.T) {
	h := newHarness(t, "do things")
	steps := seedPlan(h, 1)
	h.completer.replies = []completerReply{
		{err: fmt.Errorf("upstream 502")},
	}

	_, err := h.engine.Dispatch(context.Background(), h.workItem(queue.KindExecute, steps[0].ID))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "upstream 502")

	assert.Equal(t, taskstep.StatusFailed, steps[0].Status)
	require.NotNil(t, steps[0].StepDetails.FailureReason)
	assert.Contains(t, *steps[0].StepDetails.FailureReason, "upstream 502")

	// No step event for an infrastructure failure; the queue's failure
	// path emits task.failed.
	h.assertNoEvent(t)
}

func TestExecuteStepRejectsNonPendingStep(t *testing.T) {
	h := newHarness(t, "do things")
	steps := seedPlan(h, 1)
	steps[0].Status = taskstep.StatusCompleted

	_, err := h.engine.Dispatch(context.Background(), h.workItem(queue.KindExecute, steps[0].ID))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not pending")
	assert.Empty(t, h.completer.calls)
}

func TestExecuteStepSkipsSelectionWhenModelPinned(t *testing.T) {
	h := newHarness(t, "do things")
	steps := seedPlan(h, 1)
	steps[0].StepDetails.ModelName = strptr("pinned-model")
	h.completer.replies = []completerReply{
		{msg: assistantReply("answer", map[string]string{"output": "out"}, 10, 10)},
	}

	_, err := h.engine.Dispatch(context.Background(), h.workItem(queue.KindExecute, steps[0].ID))
	require.NoError(t, err)

	assert.Zero(t, h.selector.calls)
	require.Len(t, h.completer.calls, 1)
	assert.Equal(t, "pinned-model", h.completer.calls[0].model)
}

func TestExecuteStepWithoutUsageSkipsCost(t *testing.T) {
	h := newHarness(t, "do things")
	steps := seedPlan(h, 1)
	reply := llm.AssistantMessage("answer", map[string]string{"output": "out"})
	h.completer.replies = []completerReply{{msg: &reply}}

	_, err := h.engine.Dispatch(context.Background(), h.workItem(queue.KindExecute, steps[0].ID))
	require.NoError(t, err)

	assert.Zero(t, h.pricer.calls)
	assert.Empty(t, h.store.costs)
}

func TestExecuteStepRejectsReevaluateStep(t *testing.T) {
	h := newHarness(t, "do things")
	seedPlan(h, 0)
	reevaluate := h.store.addReevaluateStep(0, "replan")

	_, err := h.engine.Dispatch(context.Background(), h.workItem(queue.KindExecute, reevaluate.ID))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not executable")
}

func TestExecuteStepMissingFileFailsStep(t *testing.T) {
	h := newHarness(t, "do things")
	steps := seedPlan(h, 1)
	steps[0].StepDetails.RequiredFileIDs = []string{"f-missing"}

	_, err := h.engine.Dispatch(context.Background(), h.workItem(queue.KindExecute, steps[0].ID))
	require.Error(t, err)
	assert.Equal(t, taskstep.StatusFailed, steps[0].Status)
	assert.Empty(t, h.completer.calls)
}
