package llm

// Role of a conversation message.
type Role string

// Message roles.
const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Reserved additional-data keys used to surface reasoning output.
// Callers may not request these keys themselves.
const (
	InternalReasoningKey        = "_internal_reasoning"
	InternalReasoningSummaryKey = "_internal_reasoning_summary"
)

// Message is one conversation turn. Assistant messages returned by the
// adapter additionally carry token counts and the parsed
// additional-data map.
type Message struct {
	Role    Role
	Content string
	Files   []File

	AdditionalData   map[string]string
	PromptTokens     *int64
	CompletionTokens *int64
}

// SystemMessage builds a system message.
func SystemMessage(content string) Message {
	return Message{Role: RoleSystem, Content: content}
}

// UserMessage builds a user message with optional attached files.
func UserMessage(content string, files ...File) Message {
	return Message{Role: RoleUser, Content: content, Files: files}
}

// AssistantMessage builds an assistant message with parsed additional
// data.
func AssistantMessage(content string, additionalData map[string]string) Message {
	return Message{Role: RoleAssistant, Content: content, AdditionalData: additionalData}
}
