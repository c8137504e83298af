package llm

// SearchContextSize controls how much retrieved context native web
// search feeds the model.
type SearchContextSize string

// Search context sizes.
const (
	SearchContextLow    SearchContextSize = "low"
	SearchContextMedium SearchContextSize = "medium"
	SearchContextHigh   SearchContextSize = "high"
)

// ReasoningEffort controls the extended-thinking budget.
type ReasoningEffort string

// Reasoning effort levels.
const (
	ReasoningNone    ReasoningEffort = "none"
	ReasoningMinimal ReasoningEffort = "minimal"
	ReasoningLow     ReasoningEffort = "low"
	ReasoningMedium  ReasoningEffort = "medium"
	ReasoningHigh    ReasoningEffort = "high"
)

// PDFEngine selects how PDF attachments are processed.
type PDFEngine string

// PDF engines.
const (
	PDFEngineNative     PDFEngine = "native"
	PDFEngineMistralOCR PDFEngine = "mistral_ocr"
	PDFEngineText       PDFEngine = "pdf_text"
)

// WebSearchConfig enables provider-side or Exa web search.
type WebSearchConfig struct {
	UseExaSearch    bool
	UseNativeSearch bool
	MaxResults      int
	ContextSize     SearchContextSize
	SearchPrompt    string
}

// Enabled reports whether any search engine is requested.
func (c WebSearchConfig) Enabled() bool {
	return c.UseExaSearch || c.UseNativeSearch
}

// ReasoningConfig enables extended thinking.
type ReasoningConfig struct {
	Effort ReasoningEffort
}

// Enabled reports whether reasoning is requested.
func (c ReasoningConfig) Enabled() bool {
	return c.Effort != "" && c.Effort != ReasoningNone
}

// PDFConfig selects the PDF processing engine.
type PDFConfig struct {
	Engine PDFEngine
}

// Config bundles the per-call options of a completion request.
type Config struct {
	WebSearch WebSearchConfig
	Reasoning ReasoningConfig
	PDF       PDFConfig
}

// DefaultConfig returns the neutral configuration: no search, no
// reasoning, native PDF handling.
func DefaultConfig() Config {
	return Config{
		WebSearch: WebSearchConfig{ContextSize: SearchContextMedium},
		Reasoning: ReasoningConfig{Effort: ReasoningNone},
		PDF:       PDFConfig{Engine: PDFEngineNative},
	}
}
