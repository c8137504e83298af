// Package pricing computes actual and estimated USD costs of
// completion calls from catalogue prices, attached files, and the
// per-call configuration.
package pricing

import (
	"context"
	"fmt"

	"github.com/llimit/gateway/pkg/llm"
	"github.com/llimit/gateway/pkg/models"
)

// Estimation constants. Prompt text is approximated at 4 characters per
// token and text files at 1.5 bytes per character. Audio is billed at
// 75 tokens per second of playback.
const (
	charsPerToken      = 4.0
	bytesPerChar       = 1.5
	audioTokensPerMin  = 75.0 * 60.0
	videoImageEstimate = 10.0
	pdfTokensPerPage   = 500.0
)

// mbPerMinute maps an audio type to its approximate megabytes per
// minute of playback, used to derive duration from file size.
var mbPerMinute = map[models.AudioType]float64{
	models.AudioWAV: 10.0,
	models.AudioMP3: 1.2,
}

// FileInfo is the pricing-relevant slice of a stored file.
type FileInfo struct {
	ContentType string
	SizeBytes   *int64
	PageCount   *int
}

// Catalogue resolves model IDs to their descriptions. Implemented by
// catalogue.Cache.
type Catalogue interface {
	ByID(ctx context.Context, id string) (*models.ModelDescription, error)
}

// Calculator prices completion calls against the cached catalogue.
type Calculator struct {
	catalogue Catalogue
}

// NewCalculator creates a calculator over the given catalogue.
func NewCalculator(catalogue Catalogue) *Calculator {
	return &Calculator{catalogue: catalogue}
}

func (c *Calculator) lookup(ctx context.Context, modelID string) (*models.ModelDescription, error) {
	desc, err := c.catalogue.ByID(ctx, modelID)
	if err != nil {
		return nil, err
	}
	if desc == nil {
		return nil, fmt.Errorf("model %q: %w", modelID, llm.ErrModelNotFound)
	}
	return desc, nil
}

// ActualCost prices a finished call from its real token counts. File
// kinds whose tokens are already included in the prompt count (text,
// PDF, video frames) contribute nothing extra here.
func (c *Calculator) ActualCost(ctx context.Context, modelID string, promptTokens, completionTokens int64, files []FileInfo, cfg llm.Config) (float64, error) {
	desc, err := c.lookup(ctx, modelID)
	if err != nil {
		return 0, err
	}
	return cost(desc.Pricing, float64(promptTokens), float64(completionTokens), files, cfg, true)
}

// EstimateCost predicts the price of a call before it is made. Prompt
// tokens are approximated from the prompt length and file token costs
// are included.
func (c *Calculator) EstimateCost(ctx context.Context, modelID string, prompt string, predictedCompletionTokens int64, files []FileInfo, cfg llm.Config) (float64, error) {
	desc, err := c.lookup(ctx, modelID)
	if err != nil {
		return 0, err
	}
	promptTokens := float64(len(prompt)) / charsPerToken
	return cost(desc.Pricing, promptTokens, float64(predictedCompletionTokens), files, cfg, false)
}

func cost(p models.ModelPricing, promptTokens, completionTokens float64, files []FileInfo, cfg llm.Config, omitTokenCosts bool) (float64, error) {
	total := promptTokens/1e6*p.PromptPerMillion + completionTokens/1e6*p.CompletionPerMillion
	if p.Request != nil {
		total += *p.Request
	}

	fileTotal, err := fileCosts(p, files, cfg, omitTokenCosts)
	if err != nil {
		return 0, err
	}
	total += fileTotal
	total += reasoningCost(p, cfg, completionTokens)
	total += webSearchCost(p, cfg)
	return total, nil
}

func fileCosts(p models.ModelPricing, files []FileInfo, cfg llm.Config, omitTokenCosts bool) (float64, error) {
	var total float64
	for _, f := range files {
		switch {
		case models.ImageTypeFor(f.ContentType) != "":
			if p.Image != nil {
				total += *p.Image
			}

		case models.AudioTypeFor(f.ContentType) != "":
			if f.SizeBytes == nil {
				return 0, fmt.Errorf("audio file has no size, cannot price %s", f.ContentType)
			}
			if p.Audio != nil {
				minutes := float64(*f.SizeBytes) / (1024 * 1024) / mbPerMinute[models.AudioTypeFor(f.ContentType)]
				tokens := minutes * audioTokensPerMin
				total += tokens / 1e6 * *p.Audio
			}

		case models.VideoTypeFor(f.ContentType) != "":
			// Video frames are billed inside the real prompt count; the
			// estimate approximates them as a batch of images.
			if !omitTokenCosts && p.Image != nil {
				total += videoImageEstimate * *p.Image
			}

		case models.IsTextContentType(f.ContentType):
			if omitTokenCosts {
				continue
			}
			if f.SizeBytes == nil {
				return 0, fmt.Errorf("text file has no size, cannot estimate cost")
			}
			tokens := float64(*f.SizeBytes) / bytesPerChar / charsPerToken
			total += tokens / 1e6 * p.PromptPerMillion

		case models.IsPDFContentType(f.ContentType):
			if omitTokenCosts {
				continue
			}
			if f.PageCount == nil {
				return 0, fmt.Errorf("PDF has no page count, cannot estimate cost")
			}
			pages := float64(*f.PageCount)
			if cfg.PDF.Engine == llm.PDFEngineMistralOCR {
				total += pages / 1000 * p.PDFMistralOCR
			} else {
				tokens := pages * pdfTokensPerPage
				total += tokens / 1e6 * p.PromptPerMillion
			}

		default:
			return 0, fmt.Errorf("unsupported content type for pricing: %s", f.ContentType)
		}
	}
	return total, nil
}

// reasoningMultipliers scale the completion token count into an
// approximate internal reasoning token count per effort level.
var reasoningMultipliers = map[llm.ReasoningEffort]float64{
	llm.ReasoningNone:    0,
	llm.ReasoningMinimal: 0.5,
	llm.ReasoningLow:     1,
	llm.ReasoningMedium:  2,
	llm.ReasoningHigh:    4,
}

func reasoningCost(p models.ModelPricing, cfg llm.Config, completionTokens float64) float64 {
	if !cfg.Reasoning.Enabled() || p.InternalReasoning == nil {
		return 0
	}
	mult := reasoningMultipliers[cfg.Reasoning.Effort]
	return mult * completionTokens / 1e6 * *p.InternalReasoning
}

// searchContextMultipliers scale native search cost by retrieved
// context size.
var searchContextMultipliers = map[llm.SearchContextSize]float64{
	llm.SearchContextLow:    0.5,
	llm.SearchContextMedium: 1,
	llm.SearchContextHigh:   2,
}

func webSearchCost(p models.ModelPricing, cfg llm.Config) float64 {
	var total float64
	if cfg.WebSearch.UseExaSearch && p.ExaSearch != nil {
		total += float64(cfg.WebSearch.MaxResults) / 1000 * *p.ExaSearch
	}
	if cfg.WebSearch.UseNativeSearch && p.NativeSearch != nil {
		mult, ok := searchContextMultipliers[cfg.WebSearch.ContextSize]
		if !ok {
			mult = 1
		}
		total += float64(cfg.WebSearch.MaxResults) * mult / 1000 * *p.NativeSearch
	}
	return total
}
