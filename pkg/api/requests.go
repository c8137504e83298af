package api

// CreateTaskRequest is the body of POST /task.
type CreateTaskRequest struct {
	Prompt string `json:"prompt" binding:"required"`
}

// CompletionMessage is one history turn in a completion request.
type CompletionMessage struct {
	Role    string `json:"role" binding:"required,oneof=system user assistant"`
	Content string `json:"content" binding:"required"`
}

// CompletionRequest is the body of POST /completions and
// POST /completions/stream. The prompt is appended to the optional
// history as a user message.
type CompletionRequest struct {
	Model                   string              `json:"model" binding:"required"`
	Prompt                  string              `json:"prompt" binding:"required"`
	Messages                []CompletionMessage `json:"messages" binding:"omitempty,dive"`
	AdditionalRequestedData map[string]string   `json:"additional_requested_data"`
	Temperature             *float64            `json:"temperature" binding:"omitempty,gte=0,lte=2"`
}

// RegisterFileURLRequest is the body of POST /files/url.
type RegisterFileURLRequest struct {
	Filename    string `json:"filename" binding:"required"`
	ContentType string `json:"content_type" binding:"required"`
	URL         string `json:"url" binding:"required"`
	Description string `json:"description"`
}

// CreateAPIKeyRequest is the body of POST /api-keys.
type CreateAPIKeyRequest struct {
	Name string `json:"name" binding:"required"`
}

// CreateThreadRequest is the body of POST /chat/threads.
type CreateThreadRequest struct {
	ModelName   string  `json:"model_name" binding:"required"`
	Title       *string `json:"title"`
	Description *string `json:"description"`
}

// UpdateThreadRequest is the body of PATCH /chat/threads/:id.
type UpdateThreadRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
}

// SendMessageRequest is the body of POST /chat/threads/:id/messages.
type SendMessageRequest struct {
	Content string `json:"content" binding:"required"`
}
