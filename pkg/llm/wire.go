package llm

import (
	"fmt"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"github.com/llimit/gateway/pkg/models"
)

// buildParams translates adapter messages to the provider request. The
// system message (with additional-data instructions when requested) is
// always the first wire message.
//
// Video parts have no typed equivalent in the SDK, so a placeholder
// text part is emitted in their position and overwritten in the JSON
// body via a request option.
func buildParams(model string, messages []Message, requested map[string]string, temperature float64) (openai.ChatCompletionNewParams, []option.RequestOption) {
	wire := make([]openai.ChatCompletionMessageParamUnion, 0, len(messages)+1)
	wire = append(wire, openai.SystemMessage(buildSystemMessage(requested)))

	var opts []option.RequestOption
	for _, msg := range messages {
		msgIndex := len(wire)
		switch msg.Role {
		case RoleSystem:
			wire = append(wire, openai.SystemMessage(msg.Content))
		case RoleAssistant:
			wire = append(wire, openai.AssistantMessage(msg.Content))
		default:
			if len(msg.Files) == 0 {
				wire = append(wire, openai.UserMessage(msg.Content))
				continue
			}
			parts, overrides := buildUserParts(msg, msgIndex)
			wire = append(wire, openai.ChatCompletionMessageParamUnion{
				OfUser: &openai.ChatCompletionUserMessageParam{
					Content: openai.ChatCompletionUserMessageParamContentUnion{
						OfArrayOfContentParts: parts,
					},
				},
			})
			opts = append(opts, overrides...)
		}
	}

	params := openai.ChatCompletionNewParams{
		Model:       openai.ChatModel(model),
		Messages:    wire,
		Temperature: openai.Float(temperature),
	}
	return params, opts
}

// buildUserParts renders a user message with attachments as content
// parts, returning JSON overrides for attachment kinds the SDK cannot
// express.
func buildUserParts(msg Message, msgIndex int) ([]openai.ChatCompletionContentPartUnionParam, []option.RequestOption) {
	parts := []openai.ChatCompletionContentPartUnionParam{
		openai.TextContentPart(msg.Content),
	}
	var overrides []option.RequestOption

	for _, f := range msg.Files {
		partIndex := len(parts)
		switch file := f.(type) {
		case PDF:
			parts = append(parts, openai.FileContentPart(openai.ChatCompletionContentPartFileFileParam{
				Filename: openai.String(file.Name),
				FileData: openai.String(fileDataURL(file)),
			}))
		case PDFURL:
			parts = append(parts, openai.FileContentPart(openai.ChatCompletionContentPartFileFileParam{
				Filename: openai.String(file.Name),
				FileData: openai.String(file.URL),
			}))
		case Image:
			parts = append(parts, openai.ImageContentPart(openai.ChatCompletionContentPartImageImageURLParam{
				URL: imageDataURL(file),
			}))
		case ImageURL:
			parts = append(parts, openai.ImageContentPart(openai.ChatCompletionContentPartImageImageURLParam{
				URL: file.URL,
			}))
		case Audio:
			parts = append(parts, openai.InputAudioContentPart(openai.ChatCompletionContentPartInputAudioInputAudioParam{
				Data:   audioData(file),
				Format: file.Format,
			}))
		case TextFile:
			parts = append(parts, openai.TextContentPart(textFileBody(file)))
		default:
			// Video and video URL parts: placeholder overwritten in the
			// serialized body.
			parts = append(parts, openai.TextContentPart(""))
			path := fmt.Sprintf("messages.%d.content.%d", msgIndex, partIndex)
			overrides = append(overrides, option.WithJSONSet(path, f.wirePart()))
		}
	}
	return parts, overrides
}

func fileDataURL(f PDF) string {
	return f.wirePart()["file"].(map[string]any)["file_data"].(string)
}

func imageDataURL(f Image) string {
	return f.wirePart()["image_url"].(map[string]any)["url"].(string)
}

func audioData(f Audio) string {
	return f.wirePart()["input_audio"].(map[string]any)["data"].(string)
}

func textFileBody(f TextFile) string {
	return f.wirePart()["text"].(string)
}

// extraBodyOptions renders the OpenRouter extension fields (web search
// plugins, native search options, reasoning effort, PDF engine) as
// JSON body overrides. Native search silently downgrades to Exa when
// the model does not support it.
func extraBodyOptions(cfg Config, desc models.ModelDescription) []option.RequestOption {
	var opts []option.RequestOption
	var plugins []map[string]any

	if cfg.WebSearch.Enabled() {
		useExa := cfg.WebSearch.UseExaSearch
		useNative := cfg.WebSearch.UseNativeSearch && desc.SupportsNativeWebSearch()
		if cfg.WebSearch.UseNativeSearch && !desc.SupportsNativeWebSearch() {
			useExa = true
		}

		if useExa {
			plugin := map[string]any{
				"id":          "web",
				"engine":      "exa",
				"max_results": cfg.WebSearch.MaxResults,
			}
			if cfg.WebSearch.SearchPrompt != "" {
				plugin["search_prompt"] = cfg.WebSearch.SearchPrompt
			}
			plugins = append(plugins, plugin)
		}
		if useNative {
			opts = append(opts, option.WithJSONSet("web_search_options", map[string]any{
				"search_context_size": string(cfg.WebSearch.ContextSize),
			}))
		}
	}

	switch cfg.PDF.Engine {
	case PDFEngineMistralOCR:
		plugins = append(plugins, map[string]any{
			"id":  "file-parser",
			"pdf": map[string]any{"engine": "mistral-ocr"},
		})
	case PDFEngineText:
		plugins = append(plugins, map[string]any{
			"id":  "file-parser",
			"pdf": map[string]any{"engine": "pdf-text"},
		})
	}

	if len(plugins) > 0 {
		opts = append(opts, option.WithJSONSet("plugins", plugins))
	}

	if cfg.Reasoning.Enabled() && desc.SupportsReasoning() {
		opts = append(opts, option.WithJSONSet("reasoning", map[string]any{
			"effort": string(cfg.Reasoning.Effort),
		}))
	}

	return opts
}
