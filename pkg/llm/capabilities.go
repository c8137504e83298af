package llm

import "github.com/llimit/gateway/pkg/models"

// Defaults applied when a capability enables a feature without further
// tuning.
const (
	defaultSearchMaxResults = 5
)

// ConfigForCapabilities derives the per-call configuration implied by a
// step's required capabilities. PDF engines are ranked: OCR wins over
// text extraction, which wins over native input.
func ConfigForCapabilities(capabilities []models.Capability) Config {
	cfg := DefaultConfig()

	has := make(map[models.Capability]bool, len(capabilities))
	for _, c := range capabilities {
		has[c] = true
	}

	if has[models.CapabilityExaSearch] || has[models.CapabilityNativeWebSearch] {
		cfg.WebSearch = WebSearchConfig{
			UseExaSearch:    has[models.CapabilityExaSearch],
			UseNativeSearch: has[models.CapabilityNativeWebSearch],
			MaxResults:      defaultSearchMaxResults,
			ContextSize:     SearchContextMedium,
		}
	}

	if has[models.CapabilityReasoning] {
		cfg.Reasoning.Effort = ReasoningMedium
	}

	switch {
	case has[models.CapabilityOCRPDF]:
		cfg.PDF.Engine = PDFEngineMistralOCR
	case has[models.CapabilityTextPDF]:
		cfg.PDF.Engine = PDFEngineText
	case has[models.CapabilityNativePDF]:
		cfg.PDF.Engine = PDFEngineNative
	}

	return cfg
}
