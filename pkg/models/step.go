// Package models contains the domain value types shared across the
// gateway: step definitions and their JSON-persisted details, model
// catalogue descriptions, and file-type helpers.
package models

// Complexity classifies how demanding a normal step is expected to be.
type Complexity string

// Complexity levels.
const (
	ComplexityLow    Complexity = "low"
	ComplexityMedium Complexity = "medium"
	ComplexityHigh   Complexity = "high"
)

// Validate checks that the complexity is a known value.
func (c Complexity) Validate() bool {
	switch c {
	case ComplexityLow, ComplexityMedium, ComplexityHigh:
		return true
	}
	return false
}

// Capability is a model feature a normal step may require.
type Capability string

// Capabilities a step definition may name.
const (
	CapabilityReasoning       Capability = "reasoning"
	CapabilityExaSearch       Capability = "exa_search"
	CapabilityNativeWebSearch Capability = "native_web_search"
	CapabilityOCRPDF          Capability = "ocr_pdf"
	CapabilityTextPDF         Capability = "text_pdf"
	CapabilityNativePDF       Capability = "native_pdf"
)

// Validate checks that the capability is a known value.
func (c Capability) Validate() bool {
	switch c {
	case CapabilityReasoning, CapabilityExaSearch, CapabilityNativeWebSearch,
		CapabilityOCRPDF, CapabilityTextPDF, CapabilityNativePDF:
		return true
	}
	return false
}

// StepType discriminates the two step variants.
type StepType string

// Step types.
const (
	StepTypeNormal     StepType = "normal"
	StepTypeReevaluate StepType = "reevaluate"
)

// StepDefinition is one planned step as produced by decomposition or
// reevaluation, before it is persisted as a TaskStep row.
type StepDefinition struct {
	Prompt               string       `json:"prompt"`
	Type                 StepType     `json:"step_type"`
	Complexity           Complexity   `json:"complexity,omitempty"`
	RequiredCapabilities []Capability `json:"required_capabilities,omitempty"`
	RequiredFileIDs      []string     `json:"required_file_ids,omitempty"`
}

// DecompositionResult is the parsed output of the decomposer.
type DecompositionResult struct {
	Title string
	Steps []StepDefinition
}

// StepDetails is the variant payload persisted in the step_details JSON
// column. Normal steps use the planning and execution fields; reevaluate
// steps only use IsPlanned.
type StepDetails struct {
	// Normal steps.
	Complexity           Complexity   `json:"complexity,omitempty"`
	RequiredCapabilities []Capability `json:"required_capabilities,omitempty"`
	RequiredFileIDs      []string     `json:"required_file_ids,omitempty"`
	ModelName            *string      `json:"model_name,omitempty"`
	PredictedScore       *float64     `json:"predicted_score,omitempty"`
	PredictedLength      *float64     `json:"predicted_length,omitempty"`
	Output               *string      `json:"output,omitempty"`
	FailureReason        *string      `json:"failure_reason,omitempty"`

	// Reevaluate steps. True when the step came from the decomposer,
	// false when it was synthesized after a failure.
	IsPlanned bool `json:"is_planned,omitempty"`
}
