package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/llimit/gateway/ent"
	"github.com/llimit/gateway/ent/task"
	"github.com/llimit/gateway/ent/taskcost"
	"github.com/llimit/gateway/ent/taskstep"
	"github.com/llimit/gateway/pkg/models"
)

// TaskStore persists tasks, their step plans, and their accumulated
// costs. All writes for one task come from the single queue consumer,
// so methods do not guard against concurrent writers.
type TaskStore struct {
	client *ent.Client
}

// NewTaskStore creates a new TaskStore
func NewTaskStore(client *ent.Client) *TaskStore {
	return &TaskStore{client: client}
}

// CreateTask inserts a task in the decomposing state.
func (s *TaskStore) CreateTask(ctx context.Context, userID, prompt string) (*ent.Task, error) {
	if prompt == "" {
		return nil, NewValidationError("prompt", "required")
	}

	t, err := s.client.Task.Create().
		SetID(uuid.New().String()).
		SetUserID(userID).
		SetPrompt(prompt).
		SetStatus(task.StatusDecomposing).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}
	return t, nil
}

// GetTask returns the task, enforcing ownership. A task owned by a
// different user yields ErrForbidden, not ErrNotFound, so the caller
// can distinguish the two.
func (s *TaskStore) GetTask(ctx context.Context, taskID, userID string) (*ent.Task, error) {
	t, err := s.client.Task.Get(ctx, taskID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get task: %w", err)
	}
	if t.UserID != userID {
		return nil, ErrForbidden
	}
	return t, nil
}

// ListTasks returns the user's tasks, newest first.
func (s *TaskStore) ListTasks(ctx context.Context, userID string) ([]*ent.Task, error) {
	tasks, err := s.client.Task.Query().
		Where(task.UserID(userID)).
		Order(ent.Desc(task.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	return tasks, nil
}

// UpdateAfterDecomposition atomically records the decomposition result:
// title, in_progress status, steps_generated, and all step rows.
func (s *TaskStore) UpdateAfterDecomposition(ctx context.Context, taskID, title string, steps []models.StepDefinition) ([]*ent.TaskStep, error) {
	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to open transaction: %w", err)
	}

	err = tx.Task.UpdateOneID(taskID).
		SetTitle(title).
		SetStatus(task.StatusInProgress).
		SetStepsGenerated(true).
		Exec(ctx)
	if err != nil {
		return nil, rollback(tx, fmt.Errorf("failed to update task after decomposition: %w", err))
	}

	created := make([]*ent.TaskStep, 0, len(steps))
	for i, def := range steps {
		step, err := createStep(ctx, tx.TaskStep, taskID, i, def)
		if err != nil {
			return nil, rollback(tx, err)
		}
		created = append(created, step)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit decomposition: %w", err)
	}
	return created, nil
}

func createStep(ctx context.Context, c *ent.TaskStepClient, taskID string, number int, def models.StepDefinition) (*ent.TaskStep, error) {
	details := models.StepDetails{}
	stepType := taskstep.StepTypeNormal
	switch def.Type {
	case models.StepTypeReevaluate:
		stepType = taskstep.StepTypeReevaluate
		details.IsPlanned = true
	default:
		details.Complexity = def.Complexity
		details.RequiredCapabilities = def.RequiredCapabilities
		details.RequiredFileIDs = def.RequiredFileIDs
	}

	step, err := c.Create().
		SetID(uuid.New().String()).
		SetTaskID(taskID).
		SetStepNumber(number).
		SetPrompt(def.Prompt).
		SetStepType(stepType).
		SetStatus(taskstep.StatusPending).
		SetStepDetails(details).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create step %d: %w", number, err)
	}
	return step, nil
}

func rollback(tx *ent.Tx, err error) error {
	if rerr := tx.Rollback(); rerr != nil {
		return fmt.Errorf("%w (rollback failed: %v)", err, rerr)
	}
	return err
}

// UpdateTaskFinal moves a task to a terminal status. Output is set only
// for completed tasks.
func (s *TaskStore) UpdateTaskFinal(ctx context.Context, taskID string, status task.Status, output *string) error {
	update := s.client.Task.UpdateOneID(taskID).
		SetStatus(status).
		SetCompletedAt(time.Now())
	if output != nil {
		update.SetOutput(*output)
	}
	if err := update.Exec(ctx); err != nil {
		return fmt.Errorf("failed to finalize task: %w", err)
	}
	return nil
}

// GetStep returns a step by ID.
func (s *TaskStore) GetStep(ctx context.Context, stepID string) (*ent.TaskStep, error) {
	step, err := s.client.TaskStep.Get(ctx, stepID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get step: %w", err)
	}
	return step, nil
}

// GetSteps returns a task's steps ordered by step number. Abandoned
// steps are excluded unless includeAbandoned is set.
func (s *TaskStore) GetSteps(ctx context.Context, taskID string, includeAbandoned bool) ([]*ent.TaskStep, error) {
	q := s.client.TaskStep.Query().Where(taskstep.TaskID(taskID))
	if !includeAbandoned {
		q = q.Where(taskstep.StatusNEQ(taskstep.StatusAbandoned))
	}
	steps, err := q.Order(ent.Asc(taskstep.FieldStepNumber)).All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get steps: %w", err)
	}
	return steps, nil
}

// StepByNumber returns the non-abandoned step with exactly the given
// number, or nil when the plan has no such step.
func (s *TaskStore) StepByNumber(ctx context.Context, taskID string, number int) (*ent.TaskStep, error) {
	step, err := s.client.TaskStep.Query().
		Where(
			taskstep.TaskID(taskID),
			taskstep.StepNumber(number),
			taskstep.StatusNEQ(taskstep.StatusAbandoned),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get step %d: %w", number, err)
	}
	return step, nil
}

// SaveStepSelection persists the model choice before execution starts,
// so a crash after selection does not lose the prediction.
func (s *TaskStore) SaveStepSelection(ctx context.Context, stepID, modelName string, score, predictedLength float64) (*ent.TaskStep, error) {
	return s.updateDetails(ctx, stepID, func(d *models.StepDetails) {
		d.ModelName = &modelName
		d.PredictedScore = &score
		d.PredictedLength = &predictedLength
	})
}

// StartStep marks a step in progress.
func (s *TaskStore) StartStep(ctx context.Context, stepID string) (*ent.TaskStep, error) {
	step, err := s.client.TaskStep.UpdateOneID(stepID).
		SetStatus(taskstep.StatusInProgress).
		SetStartedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start step: %w", err)
	}
	return step, nil
}

// CompleteStep records a successful step result.
func (s *TaskStore) CompleteStep(ctx context.Context, stepID, responseContent, output string) (*ent.TaskStep, error) {
	step, err := s.updateDetails(ctx, stepID, func(d *models.StepDetails) {
		d.Output = &output
	})
	if err != nil {
		return nil, err
	}
	step, err = s.client.TaskStep.UpdateOne(step).
		SetStatus(taskstep.StatusCompleted).
		SetResponseContent(responseContent).
		SetCompletedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to complete step: %w", err)
	}
	return step, nil
}

// MarkStepCouldNotComplete records a model-reported failure.
func (s *TaskStore) MarkStepCouldNotComplete(ctx context.Context, stepID, responseContent, failureReason string) (*ent.TaskStep, error) {
	step, err := s.updateDetails(ctx, stepID, func(d *models.StepDetails) {
		d.FailureReason = &failureReason
	})
	if err != nil {
		return nil, err
	}
	step, err = s.client.TaskStep.UpdateOne(step).
		SetStatus(taskstep.StatusCouldNotComplete).
		SetResponseContent(responseContent).
		SetCompletedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to mark step could_not_complete: %w", err)
	}
	return step, nil
}

// FailStep records an infrastructure failure.
func (s *TaskStore) FailStep(ctx context.Context, stepID, reason string) (*ent.TaskStep, error) {
	step, err := s.updateDetails(ctx, stepID, func(d *models.StepDetails) {
		d.FailureReason = &reason
	})
	if err != nil {
		return nil, err
	}
	step, err = s.client.TaskStep.UpdateOne(step).
		SetStatus(taskstep.StatusFailed).
		SetCompletedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fail step: %w", err)
	}
	return step, nil
}

func (s *TaskStore) updateDetails(ctx context.Context, stepID string, mutate func(*models.StepDetails)) (*ent.TaskStep, error) {
	step, err := s.GetStep(ctx, stepID)
	if err != nil {
		return nil, err
	}
	details := step.StepDetails
	mutate(&details)

	step, err = s.client.TaskStep.UpdateOne(step).
		SetStepDetails(details).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to update step details: %w", err)
	}
	return step, nil
}

// MarkStepsAbandonedFrom abandons every non-terminal step numbered at
// or after fromNumber, except the step driving the reevaluation.
func (s *TaskStore) MarkStepsAbandonedFrom(ctx context.Context, taskID string, fromNumber int, excludeStepID string) (int, error) {
	n, err := s.client.TaskStep.Update().
		Where(
			taskstep.TaskID(taskID),
			taskstep.StepNumberGTE(fromNumber),
			taskstep.IDNEQ(excludeStepID),
			taskstep.StatusIn(taskstep.StatusPending, taskstep.StatusInProgress),
		).
		SetStatus(taskstep.StatusAbandoned).
		Save(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to abandon steps: %w", err)
	}
	return n, nil
}

// InsertStepsAfterReevaluation inserts the replacement plan starting
// right after the reevaluate step's number.
func (s *TaskStore) InsertStepsAfterReevaluation(ctx context.Context, taskID string, afterStepNumber int, defs []models.StepDefinition) ([]*ent.TaskStep, error) {
	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to open transaction: %w", err)
	}

	created := make([]*ent.TaskStep, 0, len(defs))
	for i, def := range defs {
		step, err := createStep(ctx, tx.TaskStep, taskID, afterStepNumber+1+i, def)
		if err != nil {
			return nil, rollback(tx, err)
		}
		created = append(created, step)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit reevaluation steps: %w", err)
	}
	return created, nil
}

// CreateSynthesizedReevaluateStep inserts an unplanned reevaluate step
// at the given number, used when a step fails mid-plan.
func (s *TaskStore) CreateSynthesizedReevaluateStep(ctx context.Context, taskID, prompt string, number int) (*ent.TaskStep, error) {
	step, err := s.client.TaskStep.Create().
		SetID(uuid.New().String()).
		SetTaskID(taskID).
		SetStepNumber(number).
		SetPrompt(prompt).
		SetStepType(taskstep.StepTypeReevaluate).
		SetStatus(taskstep.StatusPending).
		SetStepDetails(models.StepDetails{IsPlanned: false}).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create synthesized reevaluate step: %w", err)
	}
	return step, nil
}

// CountBlockingSteps counts non-abandoned steps that still have to run.
// Zero means the task can be finalized.
func (s *TaskStore) CountBlockingSteps(ctx context.Context, taskID string) (int, error) {
	n, err := s.client.TaskStep.Query().
		Where(
			taskstep.TaskID(taskID),
			taskstep.StatusIn(taskstep.StatusPending, taskstep.StatusInProgress),
		).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count blocking steps: %w", err)
	}
	return n, nil
}

// AddCostIncrement appends one cost row for the task.
func (s *TaskStore) AddCostIncrement(ctx context.Context, taskID string, amountUSD float64) error {
	err := s.client.TaskCost.Create().
		SetID(uuid.New().String()).
		SetTaskID(taskID).
		SetAmountUsd(amountUSD).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to add cost increment: %w", err)
	}
	return nil
}

// TotalCost sums the task's cost rows.
func (s *TaskStore) TotalCost(ctx context.Context, taskID string) (float64, error) {
	amounts, err := s.client.TaskCost.Query().
		Where(taskcost.TaskID(taskID)).
		Select(taskcost.FieldAmountUsd).
		Float64s(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to sum task costs: %w", err)
	}
	var total float64
	for _, a := range amounts {
		total += a
	}
	return total, nil
}
