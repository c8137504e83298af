// Package llm adapts the gateway's structured completion requests to
// the OpenRouter API and parses the tag-based additional-data protocol
// out of model responses, both whole and streamed.
package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"github.com/llimit/gateway/pkg/models"
)

const openRouterBaseURL = "https://openrouter.ai/api/v1"

// ModelLookup resolves a model ID against the cached catalogue.
// Implemented by catalogue.Cache.
type ModelLookup interface {
	ByID(ctx context.Context, id string) (*models.ModelDescription, error)
}

// Client is the OpenRouter-backed completion adapter. Calls are made
// with the per-request user API key; the client itself holds no
// credentials.
type Client struct {
	models  ModelLookup
	baseURL string
}

// NewClient creates an adapter that validates models against the given
// catalogue lookup.
func NewClient(lookup ModelLookup) *Client {
	return &Client{models: lookup, baseURL: openRouterBaseURL}
}

// SetModelLookup installs the catalogue lookup after construction.
// The catalogue needs the client to fetch models, so one side of the
// cycle is wired late.
func (c *Client) SetModelLookup(lookup ModelLookup) {
	c.models = lookup
}

// validateRequest checks the requested additional-data keys, resolves
// the model and validates attached files against it.
func (c *Client) validateRequest(ctx context.Context, model string, messages []Message, requested map[string]string) (*models.ModelDescription, error) {
	for _, reserved := range []string{InternalReasoningKey, InternalReasoningSummaryKey} {
		if _, ok := requested[reserved]; ok {
			return nil, &ReservedKeyError{Key: reserved}
		}
	}

	desc, err := c.models.ByID(ctx, model)
	if err != nil {
		return nil, fmt.Errorf("resolving model %q: %w", model, err)
	}
	if desc == nil {
		return nil, fmt.Errorf("model %q: %w", model, ErrModelNotFound)
	}

	var reasons []string
	for _, msg := range messages {
		for _, f := range msg.Files {
			reasons = append(reasons, f.Validate(*desc)...)
		}
	}
	if len(reasons) > 0 {
		return nil, &UnsupportedInputError{Reasons: reasons}
	}

	return desc, nil
}

// Complete sends a non-streaming completion request and returns the
// assistant message with additional-data segments stripped from the
// content and collected into AdditionalData.
func (c *Client) Complete(ctx context.Context, apiKey, model string, messages []Message, requested map[string]string, temperature float64, cfg *Config) (*Message, error) {
	desc, err := c.validateRequest(ctx, model, messages, requested)
	if err != nil {
		return nil, err
	}
	if cfg == nil {
		def := DefaultConfig()
		cfg = &def
	}

	client := openai.NewClient(option.WithBaseURL(c.baseURL), option.WithAPIKey(apiKey))
	params, opts := buildParams(model, messages, requested, temperature)
	opts = append(opts, extraBodyOptions(*cfg, *desc)...)

	resp, err := client.Chat.Completions.New(ctx, params, opts...)
	if err != nil {
		return nil, &UpstreamError{Err: err}
	}
	if len(resp.Choices) == 0 {
		return nil, &UpstreamError{Err: fmt.Errorf("no choices in response")}
	}

	message := resp.Choices[0].Message
	cleaned, data := ParseAdditionalData(message.Content)
	mergeReasoning(data, message.JSON.ExtraFields["reasoning"].Raw(), message.JSON.ExtraFields["reasoning_details"].Raw())

	out := AssistantMessage(cleaned, data)
	promptTokens := resp.Usage.PromptTokens
	completionTokens := resp.Usage.CompletionTokens
	out.PromptTokens = &promptTokens
	out.CompletionTokens = &completionTokens
	return &out, nil
}

// Stream sends a streaming completion request. The returned channel
// carries parsed chunks in arrival order; a chunk with Err set is the
// final element when the upstream stream fails. The channel is closed
// when the stream ends.
func (c *Client) Stream(ctx context.Context, apiKey, model string, messages []Message, requested map[string]string, temperature float64, cfg *Config) (<-chan Chunk, error) {
	desc, err := c.validateRequest(ctx, model, messages, requested)
	if err != nil {
		return nil, err
	}
	if cfg == nil {
		def := DefaultConfig()
		cfg = &def
	}

	client := openai.NewClient(option.WithBaseURL(c.baseURL), option.WithAPIKey(apiKey))
	params, opts := buildParams(model, messages, requested, temperature)
	opts = append(opts, extraBodyOptions(*cfg, *desc)...)

	out := make(chan Chunk)
	go func() {
		defer close(out)

		stream := client.Chat.Completions.NewStreaming(ctx, params, opts...)
		defer func() {
			if err := stream.Close(); err != nil {
				slog.Warn("Failed to close completion stream", "error", err)
			}
		}()

		var parser StreamParser
		for stream.Next() {
			chunk := stream.Current()
			if len(chunk.Choices) == 0 {
				continue
			}
			delta := chunk.Choices[0].Delta

			for _, rc := range reasoningChunksFromDelta(delta.JSON.ExtraFields["reasoning_details"].Raw()) {
				out <- rc
			}
			if delta.Content == "" {
				continue
			}
			for _, parsed := range parser.Feed(delta.Content) {
				out <- parsed
			}
		}
		if err := stream.Err(); err != nil {
			out <- Chunk{Err: &UpstreamError{Err: err}}
			return
		}
		for _, parsed := range parser.Flush() {
			out <- parsed
		}
	}()

	return out, nil
}

// reasoningDetail is the OpenRouter reasoning_details element shape.
type reasoningDetail struct {
	Type    string `json:"type"`
	Text    string `json:"text"`
	Summary string `json:"summary"`
}

func parseReasoningDetails(raw string) []reasoningDetail {
	if raw == "" {
		return nil
	}
	var details []reasoningDetail
	if err := json.Unmarshal([]byte(raw), &details); err != nil {
		return nil
	}
	return details
}

// mergeReasoning folds OpenRouter reasoning extension fields into the
// additional-data map under the reserved keys.
func mergeReasoning(data map[string]string, rawReasoning, rawDetails string) {
	if rawReasoning != "" {
		var reasoning string
		if err := json.Unmarshal([]byte(rawReasoning), &reasoning); err == nil && reasoning != "" {
			data[InternalReasoningKey] = reasoning
		}
	}

	var texts, summaries []string
	for _, d := range parseReasoningDetails(rawDetails) {
		switch d.Type {
		case "reasoning.text":
			if d.Text != "" {
				texts = append(texts, d.Text)
			}
		case "reasoning.summary":
			if d.Summary != "" {
				summaries = append(summaries, d.Summary)
			}
		}
	}
	if len(texts) > 0 {
		joined := joinLines(texts)
		if existing, ok := data[InternalReasoningKey]; ok {
			data[InternalReasoningKey] = existing + "\n" + joined
		} else {
			data[InternalReasoningKey] = joined
		}
	}
	if len(summaries) > 0 {
		data[InternalReasoningSummaryKey] = joinLines(summaries)
	}
}

// reasoningChunksFromDelta converts streamed reasoning details into
// reserved-key chunks.
func reasoningChunksFromDelta(rawDetails string) []Chunk {
	var chunks []Chunk
	for _, d := range parseReasoningDetails(rawDetails) {
		switch d.Type {
		case "reasoning.text":
			if d.Text != "" {
				chunks = append(chunks, TagChunk(d.Text, InternalReasoningKey))
			}
		case "reasoning.summary":
			if d.Summary != "" {
				chunks = append(chunks, TagChunk(d.Summary, InternalReasoningSummaryKey))
			}
		}
	}
	return chunks
}

func joinLines(parts []string) string {
	out := parts[0]
	for _, p := range parts[1:] {
		out += "\n" + p
	}
	return out
}

// catalogueResponse is the OpenRouter GET /models payload.
type catalogueResponse struct {
	Data []catalogueModel `json:"data"`
}

type catalogueModel struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Description   string `json:"description"`
	ContextLength int    `json:"context_length"`
	Architecture  struct {
		Modality         string   `json:"modality"`
		InputModalities  []string `json:"input_modalities"`
		OutputModalities []string `json:"output_modalities"`
		Tokenizer        string   `json:"tokenizer"`
	} `json:"architecture"`
	Pricing struct {
		Prompt            string `json:"prompt"`
		Completion        string `json:"completion"`
		Request           string `json:"request"`
		Image             string `json:"image"`
		Audio             string `json:"audio"`
		WebSearch         string `json:"web_search"`
		InternalReasoning string `json:"internal_reasoning"`
	} `json:"pricing"`
	TopProvider struct {
		IsModerated bool `json:"is_moderated"`
	} `json:"top_provider"`
	SupportedParameters []string `json:"supported_parameters"`
}

// Exa search is priced by OpenRouter per 1000 results regardless of
// the model.
const exaSearchPricePerThousand = 4.0

// FetchModels retrieves the full model catalogue from OpenRouter. The
// endpoint is public; no API key is required. Token prices on the wire
// are per token and converted to per-million here.
func (c *Client) FetchModels(ctx context.Context) ([]models.ModelDescription, error) {
	client := openai.NewClient(option.WithBaseURL(c.baseURL))

	var payload catalogueResponse
	if err := client.Get(ctx, "/models", nil, &payload); err != nil {
		return nil, fmt.Errorf("fetching model catalogue: %w", err)
	}

	out := make([]models.ModelDescription, 0, len(payload.Data))
	for _, m := range payload.Data {
		desc := models.ModelDescription{
			ID:            m.ID,
			Name:          m.Name,
			Provider:      models.ProviderFromID(m.ID),
			Description:   m.Description,
			ContextLength: m.ContextLength,
			Architecture: models.ModelArchitecture{
				Modality:         m.Architecture.Modality,
				InputModalities:  m.Architecture.InputModalities,
				OutputModalities: m.Architecture.OutputModalities,
				Tokenizer:        m.Architecture.Tokenizer,
			},
			Pricing: models.ModelPricing{
				PromptPerMillion:     perMillion(m.Pricing.Prompt),
				CompletionPerMillion: perMillion(m.Pricing.Completion),
				Request:              optionalPrice(m.Pricing.Request, 1),
				Image:                optionalPrice(m.Pricing.Image, 1),
				Audio:                optionalPrice(m.Pricing.Audio, 1e6),
				InternalReasoning:    optionalPrice(m.Pricing.InternalReasoning, 1e6),
				NativeSearch:         optionalPrice(m.Pricing.WebSearch, 1000),
				PDFMistralOCR:        models.DefaultPDFMistralOCRPrice,
			},
			IsModerated:         m.TopProvider.IsModerated,
			SupportedParameters: m.SupportedParameters,
		}
		exa := exaSearchPricePerThousand
		desc.Pricing.ExaSearch = &exa
		out = append(out, desc)
	}
	return out, nil
}

// perMillion converts a per-token price string to USD per million
// tokens. Unparseable or empty values read as zero.
func perMillion(raw string) float64 {
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0
	}
	return v * 1e6
}

// optionalPrice parses a price string scaled by the given factor,
// returning nil for empty, unparseable, or zero values.
func optionalPrice(raw string, scale float64) *float64 {
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || v == 0 {
		return nil
	}
	v *= scale
	return &v
}
