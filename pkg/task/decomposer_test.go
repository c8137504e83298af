package task

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	enttask "github.com/llimit/gateway/ent/task"
	"github.com/llimit/gateway/ent/taskstep"
	"github.com/llimit/gateway/pkg/events"
	"github.com/llimit/gateway/pkg/queue"
)

func TestDecomposeParsesPlan(t *testing.T) {
	h := newHarness(t, "research France")
	h.completer.replies = []completerReply{
		{msg: assistantReply("here is the plan", map[string]string{
			"title": "France Research",
			"steps": stepsJSON("find population", "summarize"),
		}, 10, 20)},
	}

	result, err := h.engine.decomposer.Decompose(context.Background(), "or-key", "research France")
	require.NoError(t, err)
	assert.Equal(t, "France Research", result.Title)
	require.Len(t, result.Steps, 2)
	assert.Equal(t, "find population", result.Steps[0].Prompt)

	require.Len(t, h.completer.calls, 1)
	call := h.completer.calls[0]
	assert.Equal(t, "or-key", call.apiKey)
	assert.Equal(t, "planner-model", call.model)
	assert.Equal(t, planningTemperature, call.temperature)
	assert.Nil(t, call.cfg)
	assert.Contains(t, call.requested, "title")
	assert.Contains(t, call.requested, "steps")
	require.Len(t, call.messages, 1)
	assert.Contains(t, call.messages[0].Content, "research France")
}

func TestDecomposeRejectsBadPlans(t *testing.T) {
	tests := []struct {
		name string
		data map[string]string
	}{
		{name: "no steps key", data: map[string]string{"title": "T"}},
		{name: "blank steps", data: map[string]string{"title": "T", "steps": "  "}},
		{name: "empty plan", data: map[string]string{"title": "T", "steps": "[]"}},
		{name: "steps not json", data: map[string]string{"title": "T", "steps": "do stuff"}},
		{name: "no title", data: map[string]string{"steps": stepsJSON("a")}},
		{name: "blank title", data: map[string]string{"title": " ", "steps": stepsJSON("a")}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t, "prompt")
			h.completer.replies = []completerReply{
				{msg: assistantReply("reply", tt.data, 1, 1)},
			}

			_, err := h.engine.decomposer.Decompose(context.Background(), "or-key", "prompt")
			var decompErr *DecompositionError
			require.ErrorAs(t, err, &decompErr)
		})
	}
}

func TestDecomposePropagatesUpstreamError(t *testing.T) {
	h := newHarness(t, "prompt")
	h.completer.replies = []completerReply{
		{err: fmt.Errorf("upstream 502")},
	}

	_, err := h.engine.decomposer.Decompose(context.Background(), "or-key", "prompt")
	require.Error(t, err)
	var decompErr *DecompositionError
	assert.False(t, errors.As(err, &decompErr), "transport errors are not decomposition errors")
}

func TestDecomposeAndQueuePersistsPlan(t *testing.T) {
	h := newHarness(t, "research France")
	h.completer.replies = []completerReply{
		{msg: assistantReply("planned", map[string]string{
			"title": "France Research",
			"steps": stepsJSON("find population", "summarize"),
		}, 10, 20)},
	}

	items, err := h.engine.Dispatch(context.Background(), h.workItem(queue.KindDecompose, ""))
	require.NoError(t, err)

	assert.Equal(t, enttask.StatusInProgress, h.store.task.Status)
	require.NotNil(t, h.store.task.Title)
	assert.Equal(t, "France Research", *h.store.task.Title)
	assert.True(t, h.store.task.StepsGenerated)

	require.Len(t, h.store.steps, 2)
	assert.Equal(t, 0, h.store.steps[0].StepNumber)
	assert.Equal(t, 1, h.store.steps[1].StepNumber)
	assert.Equal(t, taskstep.StatusPending, h.store.steps[0].Status)

	require.Len(t, items, 1)
	assert.Equal(t, queue.KindExecute, items[0].Kind)
	assert.Equal(t, h.store.steps[0].ID, items[0].StepID)
	assert.Equal(t, "or-key", items[0].APIKey)

	e := h.nextEvent(t)
	assert.Equal(t, events.EventTypeTaskStepsGenerated, e.Type)
	assert.Equal(t, "France Research", e.Content["title"])
	assert.Equal(t, 2, e.Content["step_count"])
}

func TestDecomposeAndQueueLeavesTaskOnBadPlan(t *testing.T) {
	h := newHarness(t, "prompt")
	h.completer.replies = []completerReply{
		{msg: assistantReply("reply", map[string]string{"title": "T", "steps": "[]"}, 1, 1)},
	}

	_, err := h.engine.Dispatch(context.Background(), h.workItem(queue.KindDecompose, ""))
	var decompErr *DecompositionError
	require.ErrorAs(t, err, &decompErr)
	assert.Empty(t, h.store.steps)
	assert.Equal(t, enttask.StatusDecomposing, h.store.task.Status)
}
