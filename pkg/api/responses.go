package api

import (
	"time"

	"github.com/llimit/gateway/ent"
	"github.com/llimit/gateway/pkg/models"
)

// TaskResponse is the wire shape of a task. Steps and TotalCost are
// populated on the detail endpoints only.
type TaskResponse struct {
	ID          string         `json:"task_id"`
	Prompt      string         `json:"prompt"`
	Title       *string        `json:"title"`
	Status      string         `json:"status"`
	Output      *string        `json:"output"`
	CreatedAt   time.Time      `json:"created_at"`
	CompletedAt *time.Time     `json:"completed_at"`
	TotalCost   *float64       `json:"total_cost,omitempty"`
	Steps       []StepResponse `json:"steps,omitempty"`
}

// StepResponse is the wire shape of a task step.
type StepResponse struct {
	ID                   string              `json:"step_id"`
	StepNumber           int                 `json:"step_number"`
	StepType             string              `json:"step_type"`
	Status               string              `json:"status"`
	Prompt               string              `json:"prompt"`
	Complexity           models.Complexity   `json:"complexity,omitempty"`
	RequiredCapabilities []models.Capability `json:"required_capabilities,omitempty"`
	RequiredFileIDs      []string            `json:"required_file_ids,omitempty"`
	ModelName            *string             `json:"model_name,omitempty"`
	Output               *string             `json:"output,omitempty"`
	FailureReason        *string             `json:"failure_reason,omitempty"`
	ResponseContent      *string             `json:"response_content,omitempty"`
	CreatedAt            time.Time           `json:"created_at"`
	StartedAt            *time.Time          `json:"started_at"`
	CompletedAt          *time.Time          `json:"completed_at"`
}

// APIKeyResponse is the wire shape of an API key. Key carries the
// plaintext and is set exactly once, in the creation response.
type APIKeyResponse struct {
	ID        string    `json:"key_id"`
	Name      string    `json:"name"`
	Key       string    `json:"key,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// FileResponse is the wire shape of a file record.
type FileResponse struct {
	ID          string    `json:"file_id"`
	Filename    string    `json:"filename"`
	Description *string   `json:"description"`
	ContentType string    `json:"content_type"`
	SizeBytes   *int64    `json:"size_bytes"`
	URL         *string   `json:"url"`
	PageCount   *int      `json:"page_count"`
	CreatedAt   time.Time `json:"created_at"`
}

// ThreadResponse is the wire shape of a chat thread.
type ThreadResponse struct {
	ID          string    `json:"thread_id"`
	Title       *string   `json:"title"`
	Description *string   `json:"description"`
	ModelName   string    `json:"model_name"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// MessageResponse is the wire shape of a chat message.
type MessageResponse struct {
	ID             string            `json:"message_id"`
	Role           string            `json:"role"`
	Content        string            `json:"content"`
	AdditionalData map[string]string `json:"additional_data,omitempty"`
	CreatedAt      time.Time         `json:"created_at"`
}

// CompletionResponse is the synchronous completion result.
type CompletionResponse struct {
	Content          string            `json:"content"`
	AdditionalData   map[string]string `json:"additional_data,omitempty"`
	PromptTokens     *int64            `json:"prompt_tokens,omitempty"`
	CompletionTokens *int64            `json:"completion_tokens,omitempty"`
}

func toTaskResponse(t *ent.Task) TaskResponse {
	return TaskResponse{
		ID:          t.ID,
		Prompt:      t.Prompt,
		Title:       t.Title,
		Status:      string(t.Status),
		Output:      t.Output,
		CreatedAt:   t.CreatedAt,
		CompletedAt: t.CompletedAt,
	}
}

func toStepResponse(s *ent.TaskStep) StepResponse {
	return StepResponse{
		ID:                   s.ID,
		StepNumber:           s.StepNumber,
		StepType:             string(s.StepType),
		Status:               string(s.Status),
		Prompt:               s.Prompt,
		Complexity:           s.StepDetails.Complexity,
		RequiredCapabilities: s.StepDetails.RequiredCapabilities,
		RequiredFileIDs:      s.StepDetails.RequiredFileIDs,
		ModelName:            s.StepDetails.ModelName,
		Output:               s.StepDetails.Output,
		FailureReason:        s.StepDetails.FailureReason,
		ResponseContent:      s.ResponseContent,
		CreatedAt:            s.CreatedAt,
		StartedAt:            s.StartedAt,
		CompletedAt:          s.CompletedAt,
	}
}

func toStepResponses(steps []*ent.TaskStep) []StepResponse {
	out := make([]StepResponse, 0, len(steps))
	for _, s := range steps {
		out = append(out, toStepResponse(s))
	}
	return out
}

func toAPIKeyResponse(k *ent.APIKey, plaintext string) APIKeyResponse {
	return APIKeyResponse{
		ID:        k.ID,
		Name:      k.Name,
		Key:       plaintext,
		CreatedAt: k.CreatedAt,
	}
}

func toFileResponse(f *ent.File) FileResponse {
	return FileResponse{
		ID:          f.ID,
		Filename:    f.Filename,
		Description: f.Description,
		ContentType: f.ContentType,
		SizeBytes:   f.SizeBytes,
		URL:         f.URL,
		PageCount:   f.PageCount,
		CreatedAt:   f.CreatedAt,
	}
}

func toThreadResponse(t *ent.ChatThread) ThreadResponse {
	return ThreadResponse{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		ModelName:   t.ModelName,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

func toMessageResponse(m *ent.ChatMessage) MessageResponse {
	return MessageResponse{
		ID:             m.ID,
		Role:           string(m.Role),
		Content:        m.Content,
		AdditionalData: m.AdditionalData,
		CreatedAt:      m.CreatedAt,
	}
}
