package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	enttask "github.com/llimit/gateway/ent/task"
	"github.com/llimit/gateway/ent/taskstep"
	"github.com/llimit/gateway/pkg/models"
)

func seedTask(t *testing.T, store *TaskStore, userID string) string {
	t.Helper()
	created, err := store.CreateTask(context.Background(), userID, "research France")
	require.NoError(t, err)
	return created.ID
}

func TestCreateAndGetTask(t *testing.T) {
	client := newTestClient(t)
	store := NewTaskStore(client)
	userID := newTestUser(t, client)
	ctx := context.Background()

	created, err := store.CreateTask(ctx, userID, "research France")
	require.NoError(t, err)
	assert.Equal(t, enttask.StatusDecomposing, created.Status)
	assert.False(t, created.StepsGenerated)

	got, err := store.GetTask(ctx, created.ID, userID)
	require.NoError(t, err)
	assert.Equal(t, "research France", got.Prompt)

	_, err = store.GetTask(ctx, "no-such-task", userID)
	assert.ErrorIs(t, err, ErrNotFound)

	other := newTestUser(t, client)
	_, err = store.GetTask(ctx, created.ID, other)
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestCreateTaskRequiresPrompt(t *testing.T) {
	client := newTestClient(t)
	store := NewTaskStore(client)
	userID := newTestUser(t, client)

	_, err := store.CreateTask(context.Background(), userID, "")
	assert.True(t, IsValidationError(err))
}

func TestUpdateAfterDecomposition(t *testing.T) {
	client := newTestClient(t)
	store := NewTaskStore(client)
	userID := newTestUser(t, client)
	ctx := context.Background()
	taskID := seedTask(t, store, userID)

	steps, err := store.UpdateAfterDecomposition(ctx, taskID, "France Research", []models.StepDefinition{
		{Prompt: "find population", Type: models.StepTypeNormal, Complexity: models.ComplexityLow,
			RequiredCapabilities: []models.Capability{models.CapabilityExaSearch}},
		{Prompt: "check results", Type: models.StepTypeReevaluate},
		{Prompt: "summarize", Type: models.StepTypeNormal, Complexity: models.ComplexityMedium},
	})
	require.NoError(t, err)
	require.Len(t, steps, 3)

	got, err := store.GetTask(ctx, taskID, userID)
	require.NoError(t, err)
	assert.Equal(t, enttask.StatusInProgress, got.Status)
	require.NotNil(t, got.Title)
	assert.Equal(t, "France Research", *got.Title)
	assert.True(t, got.StepsGenerated)

	for i, step := range steps {
		assert.Equal(t, i, step.StepNumber)
		assert.Equal(t, taskstep.StatusPending, step.Status)
	}
	assert.Equal(t, taskstep.StepTypeNormal, steps[0].StepType)
	assert.Equal(t, []models.Capability{models.CapabilityExaSearch}, steps[0].StepDetails.RequiredCapabilities)
	assert.Equal(t, taskstep.StepTypeReevaluate, steps[1].StepType)
	assert.True(t, steps[1].StepDetails.IsPlanned)
}

func TestStepLifecycle(t *testing.T) {
	client := newTestClient(t)
	store := NewTaskStore(client)
	userID := newTestUser(t, client)
	ctx := context.Background()
	taskID := seedTask(t, store, userID)

	steps, err := store.UpdateAfterDecomposition(ctx, taskID, "T", []models.StepDefinition{
		{Prompt: "a", Complexity: models.ComplexityLow},
		{Prompt: "b", Complexity: models.ComplexityLow},
	})
	require.NoError(t, err)

	step, err := store.SaveStepSelection(ctx, steps[0].ID, "fast-model", 1.5, 120)
	require.NoError(t, err)
	require.NotNil(t, step.StepDetails.ModelName)
	assert.Equal(t, "fast-model", *step.StepDetails.ModelName)

	step, err = store.StartStep(ctx, step.ID)
	require.NoError(t, err)
	assert.Equal(t, taskstep.StatusInProgress, step.Status)
	require.NotNil(t, step.StartedAt)

	step, err = store.CompleteStep(ctx, step.ID, "raw reply", "clean output")
	require.NoError(t, err)
	assert.Equal(t, taskstep.StatusCompleted, step.Status)
	require.NotNil(t, step.CompletedAt)
	require.NotNil(t, step.ResponseContent)
	assert.Equal(t, "raw reply", *step.ResponseContent)

	// Details survive the JSON round trip.
	reloaded, err := store.GetStep(ctx, step.ID)
	require.NoError(t, err)
	require.NotNil(t, reloaded.StepDetails.Output)
	assert.Equal(t, "clean output", *reloaded.StepDetails.Output)
	require.NotNil(t, reloaded.StepDetails.ModelName)
	assert.Equal(t, "fast-model", *reloaded.StepDetails.ModelName)

	blocking, err := store.CountBlockingSteps(ctx, taskID)
	require.NoError(t, err)
	assert.Equal(t, 1, blocking)
}

func TestMarkStepCouldNotComplete(t *testing.T) {
	client := newTestClient(t)
	store := NewTaskStore(client)
	userID := newTestUser(t, client)
	ctx := context.Background()
	taskID := seedTask(t, store, userID)

	steps, err := store.UpdateAfterDecomposition(ctx, taskID, "T", []models.StepDefinition{
		{Prompt: "a", Complexity: models.ComplexityLow},
	})
	require.NoError(t, err)

	step, err := store.MarkStepCouldNotComplete(ctx, steps[0].ID, "sorry", "paywalled")
	require.NoError(t, err)
	assert.Equal(t, taskstep.StatusCouldNotComplete, step.Status)
	require.NotNil(t, step.StepDetails.FailureReason)
	assert.Equal(t, "paywalled", *step.StepDetails.FailureReason)
}

func TestFailStep(t *testing.T) {
	client := newTestClient(t)
	store := NewTaskStore(client)
	userID := newTestUser(t, client)
	ctx := context.Background()
	taskID := seedTask(t, store, userID)

	steps, err := store.UpdateAfterDecomposition(ctx, taskID, "T", []models.StepDefinition{
		{Prompt: "a", Complexity: models.ComplexityLow},
	})
	require.NoError(t, err)

	step, err := store.FailStep(ctx, steps[0].ID, "upstream 502")
	require.NoError(t, err)
	assert.Equal(t, taskstep.StatusFailed, step.Status)
	require.NotNil(t, step.StepDetails.FailureReason)
	assert.Equal(t, "upstream 502", *step.StepDetails.FailureReason)
	assert.Nil(t, step.ResponseContent)
}

func TestReevaluationReshapesPlan(t *testing.T) {
	client := newTestClient(t)
	store := NewTaskStore(client)
	userID := newTestUser(t, client)
	ctx := context.Background()
	taskID := seedTask(t, store, userID)

	steps, err := store.UpdateAfterDecomposition(ctx, taskID, "T", []models.StepDefinition{
		{Prompt: "a", Complexity: models.ComplexityLow},
		{Prompt: "b", Complexity: models.ComplexityLow},
		{Prompt: "c", Complexity: models.ComplexityLow},
	})
	require.NoError(t, err)
	_, err = store.CompleteStep(ctx, steps[0].ID, "done", "out")
	require.NoError(t, err)

	reevaluate, err := store.CreateSynthesizedReevaluateStep(ctx, taskID, "plan around failure", 1)
	require.NoError(t, err)
	assert.Equal(t, taskstep.StepTypeReevaluate, reevaluate.StepType)
	assert.False(t, reevaluate.StepDetails.IsPlanned)

	abandoned, err := store.MarkStepsAbandonedFrom(ctx, taskID, 1, reevaluate.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, abandoned)

	// The reevaluate step survives at its number; abandoned steps are
	// invisible to StepByNumber.
	byNumber, err := store.StepByNumber(ctx, taskID, 1)
	require.NoError(t, err)
	require.NotNil(t, byNumber)
	assert.Equal(t, reevaluate.ID, byNumber.ID)
	byNumber, err = store.StepByNumber(ctx, taskID, 2)
	require.NoError(t, err)
	assert.Nil(t, byNumber)

	inserted, err := store.InsertStepsAfterReevaluation(ctx, taskID, 1, []models.StepDefinition{
		{Prompt: "d", Complexity: models.ComplexityLow},
		{Prompt: "e", Complexity: models.ComplexityLow},
	})
	require.NoError(t, err)
	require.Len(t, inserted, 2)
	assert.Equal(t, 2, inserted[0].StepNumber)
	assert.Equal(t, 3, inserted[1].StepNumber)

	visible, err := store.GetSteps(ctx, taskID, false)
	require.NoError(t, err)
	assert.Len(t, visible, 4)
	all, err := store.GetSteps(ctx, taskID, true)
	require.NoError(t, err)
	assert.Len(t, all, 6)
}

func TestUpdateTaskFinal(t *testing.T) {
	client := newTestClient(t)
	store := NewTaskStore(client)
	userID := newTestUser(t, client)
	ctx := context.Background()
	taskID := seedTask(t, store, userID)

	output := "the answer"
	require.NoError(t, store.UpdateTaskFinal(ctx, taskID, enttask.StatusCompleted, &output))

	got, err := store.GetTask(ctx, taskID, userID)
	require.NoError(t, err)
	assert.Equal(t, enttask.StatusCompleted, got.Status)
	require.NotNil(t, got.Output)
	assert.Equal(t, "the answer", *got.Output)
	require.NotNil(t, got.CompletedAt)
}

func TestTotalCostSumsIncrements(t *testing.T) {
	client := newTestClient(t)
	store := NewTaskStore(client)
	userID := newTestUser(t, client)
	ctx := context.Background()
	taskID := seedTask(t, store, userID)

	total, err := store.TotalCost(ctx, taskID)
	require.NoError(t, err)
	assert.Zero(t, total)

	for _, amount := range []float64{0.001, 0.0025, 0.01} {
		require.NoError(t, store.AddCostIncrement(ctx, taskID, amount))
	}

	total, err = store.TotalCost(ctx, taskID)
	require.NoError(t, err)
	assert.InDelta(t, 0.0135, total, 1e-9)
}
