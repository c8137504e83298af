package task

import (
	"context"
	"fmt"
	"sort"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

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

// fakeStore is an in-memory Store. It records every in_progress
// transition so tests can check execution order, and flags any moment
// where two steps of the task run at once.
type fakeStore struct {
	task  *ent.Task
	steps []*ent.TaskStep
	costs []float64

	startedNumbers  []int
	concurrentStart bool
}

func newFakeStore(prompt string) *fakeStore {
	return &fakeStore{
		task: &ent.Task{
			ID:        "t1",
			UserID:    "u1",
			Prompt:    prompt,
			Status:    enttask.StatusDecomposing,
			CreatedAt: time.Now(),
		},
	}
}

func (f *fakeStore) newStep(number int, def models.StepDefinition) *ent.TaskStep {
	details := models.StepDetails{}
	stepType := taskstep.StepTypeNormal
	if def.Type == models.StepTypeReevaluate {
		stepType = taskstep.StepTypeReevaluate
		details.IsPlanned = true
	} else {
		details.Complexity = def.Complexity
		details.RequiredCapabilities = def.RequiredCapabilities
		details.RequiredFileIDs = def.RequiredFileIDs
	}
	step := &ent.TaskStep{
		ID:          uuid.New().String(),
		TaskID:      f.task.ID,
		StepNumber:  number,
		Prompt:      def.Prompt,
		StepType:    stepType,
		Status:      taskstep.StatusPending,
		StepDetails: details,
		CreatedAt:   time.Now(),
	}
	f.steps = append(f.steps, step)
	return step
}

// addStep seeds a step directly, bypassing decomposition.
func (f *fakeStore) addStep(number int, status taskstep.Status, details models.StepDetails) *ent.TaskStep {
	step := f.newStep(number, models.StepDefinition{Prompt: fmt.Sprintf("step %d prompt", number)})
	step.Status = status
	step.StepDetails = details
	return step
}

func (f *fakeStore) addReevaluateStep(number int, prompt string) *ent.TaskStep {
	step := f.newStep(number, models.StepDefinition{Prompt: prompt, Type: models.StepTypeReevaluate})
	return step
}

func (f *fakeStore) GetTask(ctx context.Context, taskID, userID string) (*ent.Task, error) {
	if taskID != f.task.ID || userID != f.task.UserID {
		return nil, fmt.Errorf("task %s not found", taskID)
	}
	return f.task, nil
}

func (f *fakeStore) UpdateAfterDecomposition(ctx context.Context, taskID, title string, defs []models.StepDefinition) ([]*ent.TaskStep, error) {
	f.task.Title = &title
	f.task.Status = enttask.StatusInProgress
	f.task.StepsGenerated = true
	created := make([]*ent.TaskStep, 0, len(defs))
	for i, def := range defs {
		created = append(created, f.newStep(i, def))
	}
	return created, nil
}

func (f *fakeStore) UpdateTaskFinal(ctx context.Context, taskID string, status enttask.Status, output *string) error {
	f.task.Status = status
	if output != nil {
		f.task.Output = output
	}
	now := time.Now()
	f.task.CompletedAt = &now
	return nil
}

func (f *fakeStore) GetStep(ctx context.Context, stepID string) (*ent.TaskStep, error) {
	for _, s := range f.steps {
		if s.ID == stepID {
			return s, nil
		}
	}
	return nil, fmt.Errorf("step %s not found", stepID)
}

func (f *fakeStore) GetSteps(ctx context.Context, taskID string, includeAbandoned bool) ([]*ent.TaskStep, error) {
	var out []*ent.TaskStep
	for _, s := range f.steps {
		if !includeAbandoned && s.Status == taskstep.StatusAbandoned {
			continue
		}
		out = append(out, s)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].StepNumber < out[j].StepNumber })
	return out, nil
}

func (f *fakeStore) StepByNumber(ctx context.Context, taskID string, number int) (*ent.TaskStep, error) {
	for _, s := range f.steps {
		if s.StepNumber == number && s.Status != taskstep.StatusAbandoned {
			return s, nil
		}
	}
	return nil, nil
}

func (f *fakeStore) SaveStepSelection(ctx context.Context, stepID, modelName string, score, predictedLength float64) (*ent.TaskStep, error) {
	s, err := f.GetStep(ctx, stepID)
	if err != nil {
		return nil, err
	}
	s.StepDetails.ModelName = &modelName
	s.StepDetails.PredictedScore = &score
	s.StepDetails.PredictedLength = &predictedLength
	return s, nil
}

func (f *fakeStore) StartStep(ctx context.Context, stepID string) (*ent.TaskStep, error) {
	for _, s := range f.steps {
		if s.ID != stepID && s.Status == taskstep.StatusInProgress {
			f.concurrentStart = true
		}
	}
	s, err := f.GetStep(ctx, stepID)
	if err != nil {
		return nil, err
	}
	s.Status = taskstep.StatusInProgress
	now := time.Now()
	s.StartedAt = &now
	f.startedNumbers = append(f.startedNumbers, s.StepNumber)
	return s, nil
}

func (f *fakeStore) CompleteStep(ctx context.Context, stepID, responseContent, output string) (*ent.TaskStep, error) {
	s, err := f.GetStep(ctx, stepID)
	if err != nil {
		return nil, err
	}
	s.StepDetails.Output = &output
	s.Status = taskstep.StatusCompleted
	s.ResponseContent = &responseContent
	now := time.Now()
	s.CompletedAt = &now
	return s, nil
}

func (f *fakeStore) MarkStepCouldNotComplete(ctx context.Context, stepID, responseContent, failureReason string) (*ent.TaskStep, error) {
	s, err := f.GetStep(ctx, stepID)
	if err != nil {
		return nil, err
	}
	s.StepDetails.FailureReason = &failureReason
	s.Status = taskstep.StatusCouldNotComplete
	s.ResponseContent = &responseContent
	now := time.Now()
	s.CompletedAt = &now
	return s, nil
}

func (f *fakeStore) FailStep(ctx context.Context, stepID, reason string) (*ent.TaskStep, error) {
	s, err := f.GetStep(ctx, stepID)
	if err != nil {
		return nil, err
	}
	s.StepDetails.FailureReason = &reason
	s.Status = taskstep.StatusFailed
	now := time.Now()
	s.CompletedAt = &now
	return s, nil
}

func (f *fakeStore) MarkStepsAbandonedFrom(ctx context.Context, taskID string, fromNumber int, excludeStepID string) (int, error) {
	n := 0
	for _, s := range f.steps {
		if s.StepNumber < fromNumber || s.ID == excludeStepID {
			continue
		}
		if s.Status == taskstep.StatusPending || s.Status == taskstep.StatusInProgress {
			s.Status = taskstep.StatusAbandoned
			n++
		}
	}
	return n, nil
}

func (f *fakeStore) InsertStepsAfterReevaluation(ctx context.Context, taskID string, afterStepNumber int, defs []models.StepDefinition) ([]*ent.TaskStep, error) {
	created := make([]*ent.TaskStep, 0, len(defs))
	for i, def := range defs {
		created = append(created, f.newStep(afterStepNumber+1+i, def))
	}
	return created, nil
}

func (f *fakeStore) CreateSynthesizedReevaluateStep(ctx context.Context, taskID, prompt string, number int) (*ent.TaskStep, error) {
	step := &ent.TaskStep{
		ID:          uuid.New().String(),
		TaskID:      f.task.ID,
		StepNumber:  number,
		Prompt:      prompt,
		StepType:    taskstep.StepTypeReevaluate,
		Status:      taskstep.StatusPending,
		StepDetails: models.StepDetails{IsPlanned: false},
		CreatedAt:   time.Now(),
	}
	f.steps = append(f.steps, step)
	return step, nil
}

func (f *fakeStore) CountBlockingSteps(ctx context.Context, taskID string) (int, error) {
	n := 0
	for _, s := range f.steps {
		if s.Status == taskstep.StatusPending || s.Status == taskstep.StatusInProgress {
			n++
		}
	}
	return n, nil
}

func (f *fakeStore) AddCostIncrement(ctx context.Context, taskID string, amountUSD float64) error {
	f.costs = append(f.costs, amountUSD)
	return nil
}

// completerReply scripts one Complete call of the fake completer.
type completerReply struct {
	msg *llm.Message
	err error
}

type completerCall struct {
	apiKey      string
	model       string
	messages    []llm.Message
	requested   map[string]string
	temperature float64
	cfg         *llm.Config
}

type fakeCompleter struct {
	replies []completerReply
	calls   []completerCall
}

func (f *fakeCompleter) Complete(ctx context.Context, apiKey, model string, messages []llm.Message, requested map[string]string, temperature float64, cfg *llm.Config) (*llm.Message, error) {
	f.calls = append(f.calls, completerCall{
		apiKey:      apiKey,
		model:       model,
		messages:    messages,
		requested:   requested,
		temperature: temperature,
		cfg:         cfg,
	})
	if len(f.replies) == 0 {
		return nil, fmt.Errorf("unexpected completion call for model %s", model)
	}
	reply := f.replies[0]
	f.replies = f.replies[1:]
	return reply.msg, reply.err
}

// assistantReply builds a scripted assistant message.
func assistantReply(content string, data map[string]string, promptTokens, completionTokens int64) *llm.Message {
	return &llm.Message{
		Role:             llm.RoleAssistant,
		Content:          content,
		AdditionalData:   data,
		PromptTokens:     &promptTokens,
		CompletionTokens: &completionTokens,
	}
}

type fakeSelector struct {
	eval  *selection.Evaluation
	err   error
	calls int
}

func (f *fakeSelector) SelectModel(ctx context.Context, prompt string, capabilities []models.Capability, files []pricing.FileInfo) (*selection.Evaluation, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.eval, nil
}

type fakeFiles struct {
	files       map[string]*ent.File
	attachments map[string]llm.File
}

func (f *fakeFiles) GetFile(ctx context.Context, fileID, userID string) (*ent.File, error) {
	file, ok := f.files[fileID]
	if !ok {
		return nil, fmt.Errorf("file %s not found", fileID)
	}
	return file, nil
}

func (f *fakeFiles) LoadAttachment(ctx context.Context, file *ent.File) (llm.File, error) {
	return f.attachments[file.ID], nil
}

type fakePricer struct {
	cost  float64
	err   error
	calls int
}

func (f *fakePricer) ActualCost(ctx context.Context, modelID string, promptTokens, completionTokens int64, files []pricing.FileInfo, cfg llm.Config) (float64, error) {
	f.calls++
	if f.err != nil {
		return 0, f.err
	}
	return f.cost, nil
}

// harness bundles the engine with all its fakes and an event
// subscription for the task's user.
type harness struct {
	store     *fakeStore
	completer *fakeCompleter
	selector  *fakeSelector
	files     *fakeFiles
	pricer    *fakePricer
	bus       *events.Bus
	conn      *events.Connection
	engine    *Engine
}

func newHarness(t *testing.T, prompt string) *harness {
	t.Helper()
	h := &harness{
		store:     newFakeStore(prompt),
		completer: &fakeCompleter{},
		selector:  &fakeSelector{eval: &selection.Evaluation{ModelID: "fast-model", Score: 1.5, PredictedLength: 100}},
		files:     &fakeFiles{files: map[string]*ent.File{}, attachments: map[string]llm.File{}},
		pricer:    &fakePricer{cost: 0.001},
		bus:       events.NewBus(),
	}
	h.engine = NewEngine(h.store, h.files, h.selector, h.completer, h.pricer, h.bus, "planner-model")
	h.conn = h.bus.Register("u1", events.Filter{})
	t.Cleanup(func() { h.bus.Unregister(h.conn) })
	h.nextEvent(t) // connection.established
	return h
}

func (h *harness) nextEvent(t *testing.T) events.Event {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	e, ok := h.conn.Receive(ctx)
	require.True(t, ok, "expected an event before timeout")
	return e
}

func (h *harness) assertNoEvent(t *testing.T) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	if e, ok := h.conn.Receive(ctx); ok {
		t.Fatalf("unexpected event %s", e.Type)
	}
}

func (h *harness) workItem(kind queue.Kind, stepID string) queue.WorkItem {
	return queue.WorkItem{Kind: kind, TaskID: "t1", UserID: "u1", APIKey: "or-key", StepID: stepID}
}

func stepsJSON(prompts ...string) string {
	out := "["
	for i, p := range prompts {
		if i > 0 {
			out += ","
		}
		out += fmt.Sprintf(`{"prompt": %q, "complexity": "low", "required_capabilities": []}`, p)
	}
	return out + "]"
}

func TestDispatchRejectsUnknownKind(t *testing.T) {
	h := newHarness(t, "do things")
	_, err := h.engine.Dispatch(context.Background(), queue.WorkItem{Kind: "mystery"})
	assert.Error(t, err)
}

func TestFailTaskMarksTaskFailedAndEmits(t *testing.T) {
	h := newHarness(t, "do things")
	fail := FailTask(h.store, h.bus)

	fail(context.Background(), h.workItem(queue.KindDecompose, ""), fmt.Errorf("upstream exploded"))

	assert.Equal(t, enttask.StatusFailed, h.store.task.Status)
	e := h.nextEvent(t)
	assert.Equal(t, events.EventTypeTaskFailed, e.Type)
	assert.Equal(t, "upstream exploded", e.Content["reason"])
}

// Driving a whole plan through Dispatch must execute steps in strictly
// increasing order with never more than one step running.
func TestPlanExecutesSequentially(t *testing.T) {
	h := newHarness(t, "research and summarize")
	h.completer.replies = []completerReply{
		{msg: assistantReply("planned", map[string]string{
			"title": "Research and summarize",
			"steps": stepsJSON("research", "analyze", "summarize"),
		}, 10, 20)},
		{msg: assistantReply("step one done", map[string]string{"output": "research notes"}, 10, 20)},
		{msg: assistantReply("step two done", map[string]string{"output": "analysis"}, 10, 20)},
		{msg: assistantReply("step three done", map[string]string{"output": "final summary"}, 10, 20)},
	}

	items := []queue.WorkItem{h.workItem(queue.KindDecompose, "")}
	for len(items) > 0 {
		item := items[0]
		items = items[1:]
		followups, err := h.engine.Dispatch(context.Background(), item)
		require.NoError(t, err)
		items = append(items, followups...)
	}

	assert.Equal(t, []int{0, 1, 2}, h.store.startedNumbers)
	assert.False(t, h.store.concurrentStart, "two steps were in_progress at once")
	assert.Equal(t, enttask.StatusCompleted, h.store.task.Status)
	require.NotNil(t, h.store.task.Output)
	assert.Equal(t, "final summary", *h.store.task.Output)
}
