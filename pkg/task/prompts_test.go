package task

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llimit/gateway/ent"
	"github.com/llimit/gateway/ent/taskstep"
	"github.com/llimit/gateway/pkg/models"
)

func strptr(s string) *string { return &s }

func TestParseSteps(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    []models.StepDefinition
		wantErr string
	}{
		{
			name: "valid plan",
			raw:  `[{"prompt": "research", "complexity": "low", "required_capabilities": ["exa_search"]}, {"prompt": "summarize", "complexity": "medium", "required_capabilities": []}]`,
			want: []models.StepDefinition{
				{Prompt: "research", Type: models.StepTypeNormal, Complexity: models.ComplexityLow, RequiredCapabilities: []models.Capability{models.CapabilityExaSearch}},
				{Prompt: "summarize", Type: models.StepTypeNormal, Complexity: models.ComplexityMedium, RequiredCapabilities: []models.Capability{}},
			},
		},
		{
			name: "reevaluate step skips complexity checks",
			raw:  `[{"prompt": "first", "complexity": "high"}, {"prompt": "check results", "step_type": "reevaluate"}]`,
			want: []models.StepDefinition{
				{Prompt: "first", Type: models.StepTypeNormal, Complexity: models.ComplexityHigh},
				{Prompt: "check results", Type: models.StepTypeReevaluate},
			},
		},
		{
			name: "empty array is valid",
			raw:  `[]`,
			want: []models.StepDefinition{},
		},
		{
			name:    "not a JSON array",
			raw:     `{"prompt": "x"}`,
			wantErr: "not a JSON array",
		},
		{
			name:    "missing prompt",
			raw:     `[{"complexity": "low"}]`,
			wantErr: "step 0 has no prompt",
		},
		{
			name:    "unknown step type",
			raw:     `[{"prompt": "x", "step_type": "parallel"}]`,
			wantErr: `unknown step_type "parallel"`,
		},
		{
			name:    "unknown complexity",
			raw:     `[{"prompt": "x", "complexity": "extreme"}]`,
			wantErr: `unknown complexity "extreme"`,
		},
		{
			name:    "missing complexity",
			raw:     `[{"prompt": "x"}]`,
			wantErr: `unknown complexity ""`,
		},
		{
			name:    "unknown capability",
			raw:     `[{"prompt": "x", "complexity": "low", "required_capabilities": ["telepathy"]}]`,
			wantErr: `unknown capability "telepathy"`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseSteps(tt.raw)
			if tt.wantErr != "" {
				require.Error(t, err)
				var decompErr *DecompositionError
				require.ErrorAs(t, err, &decompErr)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			if len(tt.want) == 0 {
				assert.Empty(t, got)
				return
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestStepContext(t *testing.T) {
	tk := &ent.Task{ID: "t1", Prompt: "original prompt", Title: strptr("Research Report")}
	steps := []*ent.TaskStep{
		{StepNumber: 0, Prompt: "gather data", Status: taskstep.StatusCompleted,
			StepDetails: models.StepDetails{Output: strptr("the data")}},
		{StepNumber: 1, Prompt: "failed attempt", Status: taskstep.StatusCouldNotComplete,
			StepDetails: models.StepDetails{FailureReason: strptr("no access")}},
		{StepNumber: 2, Prompt: "write report", Status: taskstep.StatusPending},
		{StepNumber: 3, Prompt: "later step", Status: taskstep.StatusPending},
	}

	got := stepContext(tk, steps[2], steps)

	assert.Contains(t, got, "Task: Research Report\n")
	// Completed priors only, displayed 1-based.
	assert.Contains(t, got, "Step 1: gather data\n")
	assert.Contains(t, got, "Output: the data\n")
	assert.NotContains(t, got, "failed attempt")
	assert.NotContains(t, got, "later step")
	assert.Contains(t, got, "Current step (Step 3):\nwrite report\n")
}

func TestStepContextFallsBackToPrompt(t *testing.T) {
	tk := &ent.Task{ID: "t1", Prompt: "original prompt"}
	current := &ent.TaskStep{StepNumber: 0, Prompt: "only step"}

	got := stepContext(tk, current, []*ent.TaskStep{current})
	assert.Contains(t, got, "Task: original prompt\n")
	assert.Contains(t, got, "Current step (Step 1):\nonly step\n")
}

func TestReevaluationContext(t *testing.T) {
	tk := &ent.Task{ID: "t1", Prompt: "original prompt", Title: strptr("My Task")}
	steps := []*ent.TaskStep{
		{StepNumber: 0, Prompt: "gather data", Status: taskstep.StatusCompleted,
			StepDetails: models.StepDetails{Output: strptr("the data")}},
		{StepNumber: 1, Prompt: "fetch restricted source", Status: taskstep.StatusCouldNotComplete,
			StepDetails: models.StepDetails{FailureReason: strptr("source requires login")}},
	}
	reevaluate := &ent.TaskStep{StepNumber: 2, Prompt: "source requires login", StepType: taskstep.StepTypeReevaluate}

	got := reevaluationContext(tk, reevaluate, append(steps, reevaluate))

	assert.Contains(t, got, "Task: original prompt\n")
	assert.Contains(t, got, "Title: My Task\n")
	assert.Contains(t, got, "Step 1: gather data\n")
	assert.Contains(t, got, "Output: the data\n")
	assert.Contains(t, got, "Step 2: fetch restricted source\n")
	assert.Contains(t, got, "Could not be completed: source requires login\n")
	assert.Contains(t, got, "Step 3 (Reevaluate): source requires login\n")
}

func TestPlanningPromptsEmbedVocabulary(t *testing.T) {
	decomp := decompositionPrompt("do the thing")
	assert.Contains(t, decomp, "do the thing")
	assert.Contains(t, decomp, complexityLevelsList)
	assert.Contains(t, decomp, capabilitiesList)
	assert.NotContains(t, decomp, "{user_prompt}")

	steps := stepsDescription()
	assert.Contains(t, steps, complexityLevelsList)
	assert.NotContains(t, steps, "{complexity_levels}")

	reeval := reevaluationPrompt("CONTEXT HERE")
	assert.Contains(t, reeval, "CONTEXT HERE")
	assert.NotContains(t, reeval, "{context}")
}
