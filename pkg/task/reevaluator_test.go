package task

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	enttask "github.com/llimit/gateway/ent/task"
	"github.com/llimit/gateway/ent/taskstep"
	"github.com/llimit/gateway/pkg/events"
	"github.com/llimit/gateway/pkg/models"
	"github.com/llimit/gateway/pkg/queue"
)

func TestReevaluateReplacesRemainder(t *testing.T) {
	h := newHarness(t, "do things")
	h.store.task.Status = enttask.StatusInProgress
	h.store.task.Title = strptr("Seeded Task")

	h.store.addStep(0, taskstep.StatusCompleted, models.StepDetails{Output: strptr("first output")})
	h.store.addStep(1, taskstep.StatusCouldNotComplete, models.StepDetails{FailureReason: strptr("paywalled")})
	stale1 := h.store.addStep(2, taskstep.StatusPending, models.StepDetails{Complexity: models.ComplexityLow})
	stale2 := h.store.addStep(3, taskstep.StatusPending, models.StepDetails{Complexity: models.ComplexityLow})
	reevaluate, err := h.store.CreateSynthesizedReevaluateStep(context.Background(), "t1", "paywalled", 2)
	require.NoError(t, err)

	h.completer.replies = []completerReply{
		{msg: assistantReply("replanned", map[string]string{
			"steps": stepsJSON("use the open mirror", "summarize"),
		}, 10, 10)},
	}

	items, err := h.engine.Dispatch(context.Background(), h.workItem(queue.KindReevaluate, reevaluate.ID))
	require.NoError(t, err)

	// The planning call sees the history including the failure.
	require.Len(t, h.completer.calls, 1)
	call := h.completer.calls[0]
	assert.Equal(t, "planner-model", call.model)
	prompt := call.messages[0].Content
	assert.Contains(t, prompt, "Output: first output")
	assert.Contains(t, prompt, "Could not be completed: paywalled")

	// Old remainder abandoned, reevaluate step itself completed.
	assert.Equal(t, taskstep.StatusAbandoned, stale1.Status)
	assert.Equal(t, taskstep.StatusAbandoned, stale2.Status)
	assert.Equal(t, taskstep.StatusCompleted, reevaluate.Status)

	// New steps numbered after the reevaluation point.
	fresh, err := h.store.GetSteps(context.Background(), "t1", false)
	require.NoError(t, err)
	var newNumbers []int
	for _, s := range fresh {
		if s.Status == taskstep.StatusPending {
			newNumbers = append(newNumbers, s.StepNumber)
		}
	}
	assert.Equal(t, []int{3, 4}, newNumbers)

	require.Len(t, items, 1)
	assert.Equal(t, queue.KindExecute, items[0].Kind)
	next, err := h.store.GetStep(context.Background(), items[0].StepID)
	require.NoError(t, err)
	assert.Equal(t, 3, next.StepNumber)
	assert.Equal(t, "use the open mirror", next.Prompt)

	e := h.nextEvent(t)
	assert.Equal(t, events.EventTypeTaskStepCompleted, e.Type)
	e = h.nextEvent(t)
	assert.Equal(t, events.EventTypeTaskStepsRegenerated, e.Type)
	assert.Equal(t, 2, e.Content["new_step_count"])
	assert.Equal(t, 3, e.Content["first_new_step_number"])
}

func TestReevaluateRequiresSettledPriors(t *testing.T) {
	h := newHarness(t, "do things")
	h.store.task.Status = enttask.StatusInProgress
	h.store.addStep(0, taskstep.StatusInProgress, models.StepDetails{Complexity: models.ComplexityLow})
	reevaluate := h.store.addReevaluateStep(1, "replan")

	_, err := h.engine.Dispatch(context.Background(), h.workItem(queue.KindReevaluate, reevaluate.ID))
	var decompErr *DecompositionError
	require.ErrorAs(t, err, &decompErr)
	assert.Empty(t, h.completer.calls)
}

func TestReevaluateEmptyPlanFinalizes(t *testing.T) {
	h := newHarness(t, "do things")
	h.store.task.Status = enttask.StatusInProgress
	h.store.addStep(0, taskstep.StatusCompleted, models.StepDetails{Output: strptr("already done")})
	reevaluate := h.store.addReevaluateStep(1, "check whether more work is needed")

	h.completer.replies = []completerReply{
		{msg: assistantReply("nothing left", map[string]string{"steps": "[]"}, 5, 5)},
	}

	items, err := h.engine.Dispatch(context.Background(), h.workItem(queue.KindReevaluate, reevaluate.ID))
	require.NoError(t, err)
	assert.Empty(t, items)

	assert.Equal(t, enttask.StatusCompleted, h.store.task.Status)
	require.NotNil(t, h.store.task.Output)
	assert.Equal(t, "already done", *h.store.task.Output)
}

func TestReevaluateRejectsBadPlan(t *testing.T) {
	h := newHarness(t, "do things")
	h.store.task.Status = enttask.StatusInProgress
	h.store.addStep(0, taskstep.StatusCompleted, models.StepDetails{Output: strptr("out")})
	reevaluate := h.store.addReevaluateStep(1, "replan")

	h.completer.replies = []completerReply{
		{msg: assistantReply("reply", map[string]string{}, 5, 5)},
	}

	_, err := h.engine.Dispatch(context.Background(), h.workItem(queue.KindReevaluate, reevaluate.ID))
	var decompErr *DecompositionError
	require.ErrorAs(t, err, &decompErr)
}

func TestReevaluateRejectsNormalStep(t *testing.T) {
	h := newHarness(t, "do things")
	h.store.task.Status = enttask.StatusInProgress
	step := h.store.addStep(0, taskstep.StatusPending, models.StepDetails{Complexity: models.ComplexityLow})

	_, err := h.engine.Dispatch(context.Background(), h.workItem(queue.KindReevaluate, step.ID))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a reevaluation")
}
