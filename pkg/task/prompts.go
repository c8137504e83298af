package task

import (
	"fmt"
	"strings"

	"github.com/llimit/gateway/ent"
	"github.com/llimit/gateway/ent/taskstep"
	"github.com/llimit/gateway/pkg/models"
)

// Lists embedded into the planning prompts.
const (
	complexityLevelsList = "low, medium, high"
	capabilitiesList     = "reasoning, exa_search, native_web_search, ocr_pdf, text_pdf, native_pdf"
)

const decompositionPromptTemplate = `You are a task decomposition assistant. Your goal is to break down complex user tasks into a series of sequential steps that can be executed independently by different AI models.

When decomposing a task, follow these guidelines:
1. Break the task into clear, sequential steps
2. Each step should be self-contained and actionable
3. For each step, specify:
   - A clear prompt that describes what needs to be done
   - The complexity level: {complexity_levels}
   - Required model capabilities (only specify if actually needed): {capabilities}
4. The final step's output will be treated as the final output of the task, and will be shown to the user. This means that usually it's a good idea for the last step to summarize and combine all necessary information from previous steps.

Important notes about step execution:
- When a step is executed, all previous steps' prompts and outputs will be automatically provided to the model
- Steps can naturally reference previous steps (e.g., "use the information from step 3", "based on the previous analysis")
- Later steps can build upon earlier outputs without special syntax

Simple tasks:
- If the task is simple and doesn't require multiple steps, return a single step representing the entire task
- The prompt can either be the same as the user's request, or rephrased to be clearer and more actionable for an LLM

Example (multi-step):
If I ask to "research the population of France and then create a comparison chart with Germany":
- Step 1: "Find the current population of France" (complexity: low, capabilities: [web_search])
- Step 2: "Find the current population of Germany" (complexity: low, capabilities: [web_search])
- Step 3: "Create a comparison chart showing the populations of France and Germany based on the previous findings" (complexity: medium, capabilities: [])

Example (simple task):
If I ask to "write a poem about cats":
- Step 1: "Write a creative and engaging poem about cats" (complexity: low, capabilities: [])

Now, please decompose this task:
{user_prompt}`

const taskTitleDescription = "A concise title (3-8 words) that summarizes the task"

const taskStepsDescriptionTemplate = `JSON array of step objects. Each object must have:
- "prompt": string describing the step task (can reference previous steps naturally, e.g. "analyze the results from step 2")
- "complexity": string, one of: {complexity_levels}
- "required_capabilities": array of strings from: {capabilities} (only include capabilities that are actually needed; can be empty array if no special capabilities required)

Example: [{"prompt": "Research X", "complexity": "low", "required_capabilities": ["web_search"]}, {"prompt": "Analyze the research findings", "complexity": "medium", "required_capabilities": []}]`

const taskStepOutputDescription = "Concise result of this step that can be used by subsequent steps, or shown to the user if this is the final step. " +
	"Include all essential information, without referencing the rest of the response."

const taskStepFailureReasonDescription = "Reason why this step could not be completed as requested. " +
	"Only return this field if the step genuinely could not be completed; otherwise do not return it."

const reevaluationPromptTemplate = `You are a task reevaluation assistant. A multi-step task is being executed and has reached a reevaluation point. Based on the results so far, produce the remaining steps of the plan.

When producing the remaining steps, follow the same guidelines as task decomposition:
1. Break the remaining work into clear, sequential steps
2. Each step should be self-contained and actionable
3. For each step, specify:
   - A clear prompt that describes what needs to be done
   - The complexity level: {complexity_levels}
   - Required model capabilities (only specify if actually needed): {capabilities}
4. The final step's output will be treated as the final output of the task, and will be shown to the user.

If the results so far already fulfil the task, return a single summarizing step. If a previous step could not be completed, plan around the obstacle.

{context}`

func fillTemplate(template string, vars map[string]string) string {
	pairs := make([]string, 0, len(vars)*2)
	for k, v := range vars {
		pairs = append(pairs, "{"+k+"}", v)
	}
	return strings.NewReplacer(pairs...).Replace(template)
}

func decompositionPrompt(userPrompt string) string {
	return fillTemplate(decompositionPromptTemplate, map[string]string{
		"complexity_levels": complexityLevelsList,
		"capabilities":      capabilitiesList,
		"user_prompt":       userPrompt,
	})
}

func stepsDescription() string {
	return fillTemplate(taskStepsDescriptionTemplate, map[string]string{
		"complexity_levels": complexityLevelsList,
		"capabilities":      capabilitiesList,
	})
}

func reevaluationPrompt(context string) string {
	return fillTemplate(reevaluationPromptTemplate, map[string]string{
		"complexity_levels": complexityLevelsList,
		"capabilities":      capabilitiesList,
		"context":           context,
	})
}

// stepContext renders the execution context for a step: the task, the
// completed prior steps with their outputs, and the current step.
// Step numbers are displayed 1-based.
func stepContext(t *ent.Task, current *ent.TaskStep, allSteps []*ent.TaskStep) string {
	title := t.Prompt
	if t.Title != nil && *t.Title != "" {
		title = *t.Title
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Task: %s\n\n", title)

	var priors []*ent.TaskStep
	for _, s := range allSteps {
		if s.StepNumber < current.StepNumber && s.Status == taskstep.StatusCompleted {
			priors = append(priors, s)
		}
	}
	if len(priors) > 0 {
		b.WriteString("Previous step results:\n")
		for _, s := range priors {
			fmt.Fprintf(&b, "\nStep %d: %s\n", s.StepNumber+1, s.Prompt)
			if s.StepDetails.Output != nil && *s.StepDetails.Output != "" {
				fmt.Fprintf(&b, "Output: %s\n", *s.StepDetails.Output)
			}
		}
	}

	fmt.Fprintf(&b, "\nCurrent step (Step %d):\n%s\n", current.StepNumber+1, current.Prompt)
	return b.String()
}

// reevaluationContext renders the history a reevaluation sees: every
// prior step with its outcome and the reevaluate step's own prompt.
func reevaluationContext(t *ent.Task, reevaluate *ent.TaskStep, allSteps []*ent.TaskStep) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Task: %s\n", t.Prompt)
	if t.Title != nil && *t.Title != "" {
		fmt.Fprintf(&b, "Title: %s\n", *t.Title)
	}
	b.WriteString("\nSteps so far:\n")

	for _, s := range allSteps {
		if s.StepNumber >= reevaluate.StepNumber {
			continue
		}
		fmt.Fprintf(&b, "\nStep %d: %s\n", s.StepNumber+1, s.Prompt)
		switch {
		case s.StepDetails.Output != nil && *s.StepDetails.Output != "":
			fmt.Fprintf(&b, "Output: %s\n", *s.StepDetails.Output)
		case s.StepDetails.FailureReason != nil && *s.StepDetails.FailureReason != "":
			fmt.Fprintf(&b, "Could not be completed: %s\n", *s.StepDetails.FailureReason)
		}
	}

	fmt.Fprintf(&b, "\nStep %d (Reevaluate): %s\n", reevaluate.StepNumber+1, reevaluate.Prompt)
	return b.String()
}

// parseSteps strictly parses the decomposer's steps payload. Any shape
// violation is a DecompositionError.
func parseSteps(raw string) ([]models.StepDefinition, error) {
	defs, err := decodeStepArray(raw)
	if err != nil {
		return nil, err
	}
	for i := range defs {
		def := &defs[i]
		if def.Prompt == "" {
			return nil, &DecompositionError{Reason: fmt.Sprintf("step %d has no prompt", i)}
		}
		if def.Type == "" {
			def.Type = models.StepTypeNormal
		}
		if def.Type != models.StepTypeNormal && def.Type != models.StepTypeReevaluate {
			return nil, &DecompositionError{Reason: fmt.Sprintf("step %d has unknown step_type %q", i, def.Type)}
		}
		if def.Type == models.StepTypeReevaluate {
			continue
		}
		if !def.Complexity.Validate() {
			return nil, &DecompositionError{Reason: fmt.Sprintf("step %d has unknown complexity %q", i, def.Complexity)}
		}
		for _, c := range def.RequiredCapabilities {
			if !c.Validate() {
				return nil, &DecompositionError{Reason: fmt.Sprintf("step %d has unknown capability %q", i, c)}
			}
		}
	}
	return defs, nil
}
