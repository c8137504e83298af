package models

import "strings"

// ModelPricing holds per-model prices. Token prices are per million
// tokens; optional prices are nil when the catalogue does not report
// them.
type ModelPricing struct {
	PromptPerMillion     float64  `json:"prompt_per_million"`
	CompletionPerMillion float64  `json:"completion_per_million"`
	Request              *float64 `json:"request,omitempty"`
	Image                *float64 `json:"image,omitempty"`
	Audio                *float64 `json:"audio,omitempty"`
	InternalReasoning    *float64 `json:"internal_reasoning,omitempty"`
	ExaSearch            *float64 `json:"exa_search,omitempty"`
	NativeSearch         *float64 `json:"native_search,omitempty"`

	// PDF text extraction is free; native PDF input is charged as
	// prompt tokens. Mistral OCR is priced per 1000 pages.
	PDFMistralOCR float64 `json:"pdf_mistral_ocr"`
}

// DefaultPDFMistralOCRPrice is the per-1000-pages OCR price used when
// the catalogue carries no explicit figure.
const DefaultPDFMistralOCRPrice = 0.0002

// ModelArchitecture describes a model's modalities and tokenizer.
type ModelArchitecture struct {
	Modality         string   `json:"modality"`
	InputModalities  []string `json:"input_modalities"`
	OutputModalities []string `json:"output_modalities"`
	Tokenizer        string   `json:"tokenizer"`
}

// SupportsInput reports whether the architecture accepts the given
// input modality ("text", "image", "file", "audio", "video").
func (a ModelArchitecture) SupportsInput(modality string) bool {
	for _, m := range a.InputModalities {
		if m == modality {
			return true
		}
	}
	return false
}

// ModelDescription is one entry of the cached model catalogue.
type ModelDescription struct {
	ID                  string            `json:"id"`
	Name                string            `json:"name"`
	Provider            string            `json:"provider"`
	Description         string            `json:"description"`
	ContextLength       int               `json:"context_length"`
	Architecture        ModelArchitecture `json:"architecture"`
	Pricing             ModelPricing      `json:"pricing"`
	IsModerated         bool              `json:"is_moderated"`
	SupportedParameters []string          `json:"supported_parameters"`
}

// SupportsReasoning reports whether the model accepts extended
// thinking/reasoning parameters.
func (m ModelDescription) SupportsReasoning() bool {
	return m.hasParameter("reasoning") || m.hasParameter("include_reasoning")
}

// SupportsStructuredOutputs reports whether the model supports
// structured output formats.
func (m ModelDescription) SupportsStructuredOutputs() bool {
	return m.hasParameter("structured_outputs")
}

// SupportsNativeWebSearch reports whether the model can perform
// provider-side web search via web_search_options.
func (m ModelDescription) SupportsNativeWebSearch() bool {
	if strings.HasPrefix(m.ID, "google/gemini-2.5-") {
		return true
	}
	if strings.HasPrefix(m.ID, "perplexity/") {
		return true
	}
	return m.hasParameter("web_search_options")
}

func (m ModelDescription) hasParameter(name string) bool {
	for _, p := range m.SupportedParameters {
		if p == name {
			return true
		}
	}
	return false
}

// ProviderFromID extracts the provider part of a catalogue model ID
// such as "openai/gpt-4o".
func ProviderFromID(id string) string {
	if i := strings.IndexByte(id, '/'); i > 0 {
		return id[:i]
	}
	return id
}
