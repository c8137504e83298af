// Package services contains business logic service layer implementations.
package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/llimit/gateway/ent"
	"github.com/llimit/gateway/ent/chatmessage"
	"github.com/llimit/gateway/ent/chatthread"
	"github.com/llimit/gateway/pkg/events"
	"github.com/llimit/gateway/pkg/llm"
)

// Chat prompt texts. The assistant maintains the thread title and
// description itself through the additional-data protocol.
const (
	chatSystemMessageTemplate = "You are a helpful assistant that can help with tasks and questions." +
		" Current conversation title: %s. Current conversation description: %s."

	chatTitleDescription = "Title of the conversation. Only return this field if the title should be set/updated. " +
		"If current title is appropriate, do not return this field."

	chatDescriptionDescription = "Description of the conversation. Only return this field if the description should be set/updated. " +
		"If current description is appropriate, do not return this field."
)

const chatTemperature = 0.7

// Completer is the slice of the LLM adapter chat needs.
type Completer interface {
	Complete(ctx context.Context, apiKey, model string, messages []llm.Message, requested map[string]string, temperature float64, cfg *llm.Config) (*llm.Message, error)
}

// ChatService manages chat threads and drives their completions.
type ChatService struct {
	client    *ent.Client
	completer Completer
	bus       *events.Bus
}

// NewChatService creates a new ChatService
func NewChatService(client *ent.Client, completer Completer, bus *events.Bus) *ChatService {
	return &ChatService{client: client, completer: completer, bus: bus}
}

// CreateThread creates a chat thread pinned to one model.
func (s *ChatService) CreateThread(ctx context.Context, userID, modelName string, title, description *string) (*ent.ChatThread, error) {
	if modelName == "" {
		return nil, NewValidationError("model_name", "required")
	}

	create := s.client.ChatThread.Create().
		SetID(uuid.New().String()).
		SetUserID(userID).
		SetModelName(modelName)
	if title != nil {
		create.SetTitle(*title)
	}
	if description != nil {
		create.SetDescription(*description)
	}

	thread, err := create.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create chat thread: %w", err)
	}

	s.bus.Emit(userID, events.ChatThreadCreated(thread.ID))
	return thread, nil
}

// GetThread returns the thread, enforcing ownership and hiding deleted
// threads.
func (s *ChatService) GetThread(ctx context.Context, threadID, userID string) (*ent.ChatThread, error) {
	thread, err := s.client.ChatThread.Get(ctx, threadID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get chat thread: %w", err)
	}
	if thread.UserID != userID {
		return nil, ErrForbidden
	}
	if thread.DeletedAt != nil {
		return nil, ErrNotFound
	}
	return thread, nil
}

// ListThreads returns the user's live threads, most recently active
// first.
func (s *ChatService) ListThreads(ctx context.Context, userID string) ([]*ent.ChatThread, error) {
	threads, err := s.client.ChatThread.Query().
		Where(chatthread.UserID(userID), chatthread.DeletedAtIsNil()).
		Order(ent.Desc(chatthread.FieldUpdatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list chat threads: %w", err)
	}
	return threads, nil
}

// UpdateThread patches the title and/or description.
func (s *ChatService) UpdateThread(ctx context.Context, threadID, userID string, title, description *string) (*ent.ChatThread, error) {
	thread, err := s.GetThread(ctx, threadID, userID)
	if err != nil {
		return nil, err
	}

	update := s.client.ChatThread.UpdateOne(thread)
	if title != nil {
		update.SetTitle(*title)
	}
	if description != nil {
		update.SetDescription(*description)
	}

	thread, err = update.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to update chat thread: %w", err)
	}
	return thread, nil
}

// DeleteThread soft-deletes a thread.
func (s *ChatService) DeleteThread(ctx context.Context, threadID, userID string) error {
	thread, err := s.GetThread(ctx, threadID, userID)
	if err != nil {
		return err
	}
	err = s.client.ChatThread.UpdateOne(thread).
		SetDeletedAt(time.Now()).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete chat thread: %w", err)
	}
	return nil
}

// GetMessages returns the thread's messages in order.
func (s *ChatService) GetMessages(ctx context.Context, threadID, userID string) ([]*ent.ChatMessage, error) {
	if _, err := s.GetThread(ctx, threadID, userID); err != nil {
		return nil, err
	}

	messages, err := s.client.ChatMessage.Query().
		Where(chatmessage.ThreadID(threadID)).
		Order(ent.Asc(chatmessage.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get chat messages: %w", err)
	}
	return messages, nil
}

// SendMessage persists the user's message, runs the completion against
// the thread's model with the full history, persists the assistant's
// reply, and lets the model retitle the thread via additional data.
func (s *ChatService) SendMessage(ctx context.Context, apiKey, threadID, userID, content string) (*ent.ChatMessage, error) {
	if content == "" {
		return nil, NewValidationError("content", "required")
	}
	thread, err := s.GetThread(ctx, threadID, userID)
	if err != nil {
		return nil, err
	}
	history, err := s.GetMessages(ctx, threadID, userID)
	if err != nil {
		return nil, err
	}

	userMsg, err := s.client.ChatMessage.Create().
		SetID(uuid.New().String()).
		SetThreadID(threadID).
		SetRole(chatmessage.RoleUser).
		SetContent(content).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to persist user message: %w", err)
	}
	s.bus.Emit(userID, events.ChatMessage(threadID, userMsg.ID, string(userMsg.Role), userMsg.Content))

	llmMessages := buildChatMessages(thread, history, content)
	requested := map[string]string{
		"title":       chatTitleDescription,
		"description": chatDescriptionDescription,
	}

	reply, err := s.completer.Complete(ctx, apiKey, thread.ModelName, llmMessages, requested, chatTemperature, nil)
	if err != nil {
		return nil, err
	}

	assistantMsg, err := s.client.ChatMessage.Create().
		SetID(uuid.New().String()).
		SetThreadID(threadID).
		SetRole(chatmessage.RoleAssistant).
		SetContent(reply.Content).
		SetAdditionalData(reply.AdditionalData).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to persist assistant message: %w", err)
	}

	if err := s.applyThreadMetadata(ctx, thread, reply.AdditionalData); err != nil {
		return nil, err
	}

	s.bus.Emit(userID, events.ChatMessage(threadID, assistantMsg.ID, string(assistantMsg.Role), assistantMsg.Content))
	return assistantMsg, nil
}

func buildChatMessages(thread *ent.ChatThread, history []*ent.ChatMessage, content string) []llm.Message {
	title := "(not set)"
	if thread.Title != nil {
		title = *thread.Title
	}
	description := "(not set)"
	if thread.Description != nil {
		description = *thread.Description
	}

	out := []llm.Message{
		llm.SystemMessage(fmt.Sprintf(chatSystemMessageTemplate, title, description)),
	}
	for _, m := range history {
		switch m.Role {
		case chatmessage.RoleAssistant:
			out = append(out, llm.AssistantMessage(m.Content, nil))
		case chatmessage.RoleUser:
			out = append(out, llm.UserMessage(m.Content))
		}
	}
	out = append(out, llm.UserMessage(content))
	return out
}

// applyThreadMetadata commits title/description changes the model
// returned. The updated_at bump doubles as activity tracking.
func (s *ChatService) applyThreadMetadata(ctx context.Context, thread *ent.ChatThread, data map[string]string) error {
	update := s.client.ChatThread.UpdateOne(thread)
	if title, ok := data["title"]; ok && title != "" {
		update.SetTitle(title)
	}
	if description, ok := data["description"]; ok && description != "" {
		update.SetDescription(description)
	}
	if err := update.Exec(ctx); err != nil {
		return fmt.Errorf("failed to update thread metadata: %w", err)
	}
	return nil
}
