package services

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llimit/gateway/ent/chatmessage"
	"github.com/llimit/gateway/pkg/events"
	"github.com/llimit/gateway/pkg/llm"
)

// scriptedCompleter returns canned assistant replies and records the
// calls it received.
type scriptedCompleter struct {
	replies []llm.Message
	calls   [][]llm.Message
}

func (s *scriptedCompleter) Complete(ctx context.Context, apiKey, model string, messages []llm.Message, requested map[string]string, temperature float64, cfg *llm.Config) (*llm.Message, error) {
	s.calls = append(s.calls, messages)
	if len(s.replies) == 0 {
		return nil, fmt.Errorf("unexpected completion call")
	}
	reply := s.replies[0]
	s.replies = s.replies[1:]
	return &reply, nil
}

func newTestChatService(t *testing.T) (*ChatService, *scriptedCompleter, string) {
	t.Helper()
	client := newTestClient(t)
	completer := &scriptedCompleter{}
	svc := NewChatService(client, completer, events.NewBus())
	return svc, completer, newTestUser(t, client)
}

func TestThreadLifecycle(t *testing.T) {
	svc, _, userID := newTestChatService(t)
	ctx := context.Background()

	title := "Trip planning"
	thread, err := svc.CreateThread(ctx, userID, "openai/gpt-4o", &title, nil)
	require.NoError(t, err)
	assert.Equal(t, "openai/gpt-4o", thread.ModelName)
	require.NotNil(t, thread.Title)
	assert.Equal(t, "Trip planning", *thread.Title)

	description := "planning a trip to France"
	thread, err = svc.UpdateThread(ctx, thread.ID, userID, nil, &description)
	require.NoError(t, err)
	require.NotNil(t, thread.Description)
	assert.Equal(t, "planning a trip to France", *thread.Description)

	threads, err := svc.ListThreads(ctx, userID)
	require.NoError(t, err)
	assert.Len(t, threads, 1)

	require.NoError(t, svc.DeleteThread(ctx, thread.ID, userID))
	_, err = svc.GetThread(ctx, thread.ID, userID)
	assert.ErrorIs(t, err, ErrNotFound)
	threads, err = svc.ListThreads(ctx, userID)
	require.NoError(t, err)
	assert.Empty(t, threads)
}

func TestCreateThreadRequiresModel(t *testing.T) {
	svc, _, userID := newTestChatService(t)

	_, err := svc.CreateThread(context.Background(), userID, "", nil, nil)
	assert.True(t, IsValidationError(err))
}

func TestGetThreadEnforcesOwnership(t *testing.T) {
	client := newTestClient(t)
	svc := NewChatService(client, &scriptedCompleter{}, events.NewBus())
	owner := newTestUser(t, client)
	other := newTestUser(t, client)
	ctx := context.Background()

	thread, err := svc.CreateThread(ctx, owner, "openai/gpt-4o", nil, nil)
	require.NoError(t, err)

	_, err = svc.GetThread(ctx, thread.ID, other)
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestSendMessagePersistsBothSides(t *testing.T) {
	svc, completer, userID := newTestChatService(t)
	ctx := context.Background()

	thread, err := svc.CreateThread(ctx, userID, "openai/gpt-4o", nil, nil)
	require.NoError(t, err)
	completer.replies = []llm.Message{
		llm.AssistantMessage("Bonjour!", map[string]string{"title": "French greetings"}),
	}

	reply, err := svc.SendMessage(ctx, "or-key", thread.ID, userID, "say hello in French")
	require.NoError(t, err)
	assert.Equal(t, chatmessage.RoleAssistant, reply.Role)
	assert.Equal(t, "Bonjour!", reply.Content)

	messages, err := svc.GetMessages(ctx, thread.ID, userID)
	require.NoError(t, err)
	require.Len(t, messages, 2)
	assert.Equal(t, chatmessage.RoleUser, messages[0].Role)
	assert.Equal(t, "say hello in French", messages[0].Content)
	assert.Equal(t, chatmessage.RoleAssistant, messages[1].Role)

	// The model's returned title is applied to the thread.
	thread, err = svc.GetThread(ctx, thread.ID, userID)
	require.NoError(t, err)
	require.NotNil(t, thread.Title)
	assert.Equal(t, "French greetings", *thread.Title)
}

func TestSendMessageSendsFullHistory(t *testing.T) {
	svc, completer, userID := newTestChatService(t)
	ctx := context.Background()

	thread, err := svc.CreateThread(ctx, userID, "openai/gpt-4o", nil, nil)
	require.NoError(t, err)
	completer.replies = []llm.Message{
		llm.AssistantMessage("first reply", nil),
		llm.AssistantMessage("second reply", nil),
	}

	_, err = svc.SendMessage(ctx, "or-key", thread.ID, userID, "first question")
	require.NoError(t, err)
	_, err = svc.SendMessage(ctx, "or-key", thread.ID, userID, "second question")
	require.NoError(t, err)

	require.Len(t, completer.calls, 2)
	second := completer.calls[1]
	// System prompt, first exchange, then the new user message.
	require.Len(t, second, 4)
	assert.Equal(t, llm.RoleSystem, second[0].Role)
	assert.Equal(t, "first question", second[1].Content)
	assert.Equal(t, "first reply", second[2].Content)
	assert.Equal(t, llm.RoleAssistant, second[2].Role)
	assert.Equal(t, "second question", second[3].Content)
}

func TestSendMessageRequiresContent(t *testing.T) {
	svc, _, userID := newTestChatService(t)
	ctx := context.Background()

	thread, err := svc.CreateThread(ctx, userID, "openai/gpt-4o", nil, nil)
	require.NoError(t, err)

	_, err = svc.SendMessage(ctx, "or-key", thread.ID, userID, "")
	assert.True(t, IsValidationError(err))
}
