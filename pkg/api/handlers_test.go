package api

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llimit/gateway/pkg/events"
	"github.com/llimit/gateway/pkg/llm"
)

func TestCreateTask(t *testing.T) {
	h := newAPIHarness(t)

	w := h.do(t, http.MethodPost, "/task", gin.H{"prompt": "research France"}, true)
	require.Equal(t, http.StatusAccepted, w.Code)
	body := decodeJSON(t, w)
	taskID, _ := body["task_id"].(string)
	require.NotEmpty(t, taskID)
	assert.Equal(t, "decomposing", body["status"])

	// Decomposition work is queued with the caller's upstream key.
	assert.Equal(t, 1, h.queue.Len())

	created, err := h.tasks.GetTask(context.Background(), taskID, h.userID)
	require.NoError(t, err)
	assert.Equal(t, "research France", created.Prompt)
}

func TestCreateTaskValidation(t *testing.T) {
	h := newAPIHarness(t)

	w := h.do(t, http.MethodPost, "/task", gin.H{}, true)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Zero(t, h.queue.Len())
}

func TestGetTask(t *testing.T) {
	h := newAPIHarness(t)
	ctx := context.Background()

	created, err := h.tasks.CreateTask(ctx, h.userID, "research France")
	require.NoError(t, err)
	require.NoError(t, h.tasks.AddCostIncrement(ctx, created.ID, 0.002))

	w := h.do(t, http.MethodGet, "/task/"+created.ID, nil, false)
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeJSON(t, w)
	assert.Equal(t, created.ID, body["task_id"])
	assert.InDelta(t, 0.002, body["total_cost"], 1e-9)

	w = h.do(t, http.MethodGet, "/task/no-such-task", nil, false)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetTaskEnforcesOwnership(t *testing.T) {
	h := newAPIHarness(t)
	ctx := context.Background()

	stranger, err := h.client.User.Create().SetID("stranger").Save(ctx)
	require.NoError(t, err)
	theirs, err := h.tasks.CreateTask(ctx, stranger.ID, "private work")
	require.NoError(t, err)

	w := h.do(t, http.MethodGet, "/task/"+theirs.ID, nil, false)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestListTasks(t *testing.T) {
	h := newAPIHarness(t)
	ctx := context.Background()
	_, err := h.tasks.CreateTask(ctx, h.userID, "one")
	require.NoError(t, err)
	_, err = h.tasks.CreateTask(ctx, h.userID, "two")
	require.NoError(t, err)

	w := h.do(t, http.MethodGet, "/task", nil, false)
	require.Equal(t, http.StatusOK, w.Code)
	var list []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	assert.Len(t, list, 2)
}

func TestUploadFile(t *testing.T) {
	h := newAPIHarness(t)

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition", `form-data; name="file"; filename="notes.txt"`)
	header.Set("Content-Type", "text/plain")
	part, err := writer.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write([]byte("hello world"))
	require.NoError(t, err)
	require.NoError(t, writer.WriteField("description", "my notes"))
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/files", &buf)
	req.Header.Set("X-API-Key", h.apiKey)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	w := httptest.NewRecorder()
	h.handler.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)
	body := decodeJSON(t, w)
	assert.Equal(t, "notes.txt", body["filename"])
	assert.Equal(t, float64(11), body["size_bytes"])
	fileID, _ := body["file_id"].(string)
	require.NotEmpty(t, fileID)

	w2 := h.do(t, http.MethodGet, "/files/"+fileID, nil, false)
	assert.Equal(t, http.StatusOK, w2.Code)
}

func TestRegisterFileURL(t *testing.T) {
	h := newAPIHarness(t)

	w := h.do(t, http.MethodPost, "/files/url", gin.H{
		"filename":     "paper.pdf",
		"content_type": "application/pdf",
		"url":          "https://example.com/paper.pdf",
	}, false)
	require.Equal(t, http.StatusCreated, w.Code)

	w = h.do(t, http.MethodPost, "/files/url", gin.H{
		"filename":     "paper.pdf",
		"content_type": "application/pdf",
		"url":          "ftp://example.com/paper.pdf",
	}, false)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestChatThreadEndpoints(t *testing.T) {
	h := newAPIHarness(t)
	h.completer.reply = llm.AssistantMessage("Bonjour!", map[string]string{"title": "French"})

	w := h.do(t, http.MethodPost, "/chat/threads", gin.H{"model_name": "openai/gpt-4o"}, false)
	require.Equal(t, http.StatusCreated, w.Code)
	threadID, _ := decodeJSON(t, w)["thread_id"].(string)
	require.NotEmpty(t, threadID)

	// Sending a message needs the upstream key.
	w = h.do(t, http.MethodPost, "/chat/threads/"+threadID+"/messages", gin.H{"content": "hi"}, false)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = h.do(t, http.MethodPost, "/chat/threads/"+threadID+"/messages", gin.H{"content": "hi"}, true)
	require.Equal(t, http.StatusOK, w.Code)
	reply := decodeJSON(t, w)
	assert.Equal(t, "assistant", reply["role"])
	assert.Equal(t, "Bonjour!", reply["content"])

	w = h.do(t, http.MethodGet, "/chat/threads/"+threadID+"/messages", nil, false)
	require.Equal(t, http.StatusOK, w.Code)
	var messages []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &messages))
	assert.Len(t, messages, 2)

	// The model retitled the thread through additional data.
	w = h.do(t, http.MethodGet, "/chat/threads/"+threadID, nil, false)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "French", decodeJSON(t, w)["title"])

	w = h.do(t, http.MethodDelete, "/chat/threads/"+threadID, nil, false)
	assert.Equal(t, http.StatusNoContent, w.Code)
	w = h.do(t, http.MethodGet, "/chat/threads/"+threadID, nil, false)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCompletionEndpoint(t *testing.T) {
	h := newAPIHarness(t)
	tokens := func(n int64) *int64 { return &n }
	h.completer.reply = llm.Message{
		Role:             llm.RoleAssistant,
		Content:          "The capital is Paris.",
		AdditionalData:   map[string]string{"confidence": "high"},
		PromptTokens:     tokens(12),
		CompletionTokens: tokens(6),
	}

	w := h.do(t, http.MethodPost, "/completions", gin.H{
		"model":                     "openai/gpt-4o",
		"prompt":                    "capital of France?",
		"additional_requested_data": gin.H{"confidence": "How confident are you?"},
	}, true)
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeJSON(t, w)
	assert.Equal(t, "The capital is Paris.", body["content"])
	assert.Equal(t, float64(12), body["prompt_tokens"])
	data, ok := body["additional_data"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "high", data["confidence"])
}

func TestCompletionEndpointValidation(t *testing.T) {
	h := newAPIHarness(t)

	// Model and prompt are both required.
	w := h.do(t, http.MethodPost, "/completions", gin.H{"prompt": "x"}, true)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	w = h.do(t, http.MethodPost, "/completions", gin.H{"model": "openai/gpt-4o"}, true)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = h.do(t, http.MethodPost, "/completions", gin.H{
		"model": "openai/gpt-4o", "prompt": "x", "temperature": 3.5,
	}, true)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCompletionStreamEndpoint(t *testing.T) {
	h := newAPIHarness(t)
	key := "title"
	h.streamer.chunks = []llm.Chunk{
		llm.ContentChunk("Hello"),
		{Content: "My Title", AdditionalDataKey: &key},
	}

	w := h.do(t, http.MethodPost, "/completions/stream", gin.H{
		"model": "openai/gpt-4o", "prompt": "hi",
	}, true)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/event-stream", w.Header().Get("Content-Type"))

	var types []string
	for _, line := range strings.Split(w.Body.String(), "\n") {
		if !strings.HasPrefix(line, "data: ") {
			continue
		}
		var e events.Event
		require.NoError(t, json.Unmarshal([]byte(strings.TrimPrefix(line, "data: ")), &e))
		types = append(types, e.Type)
	}
	assert.Equal(t, []string{
		events.EventTypeCompletionStarted,
		events.EventTypeCompletionChunk,
		events.EventTypeCompletionChunk,
		events.EventTypeCompletionFinished,
	}, types)
}

// readSSEEvent reads one data frame from a live SSE stream.
func readSSEEvent(t *testing.T, r *bufio.Reader) events.Event {
	t.Helper()
	for {
		line, err := r.ReadString('\n')
		require.NoError(t, err)
		line = strings.TrimRight(line, "\n")
		if line == "" {
			continue
		}
		require.True(t, strings.HasPrefix(line, "data: "), "unexpected SSE line %q", line)
		var e events.Event
		require.NoError(t, json.Unmarshal([]byte(strings.TrimPrefix(line, "data: ")), &e))
		return e
	}
}

func TestEventStream(t *testing.T) {
	h := newAPIHarness(t)
	srv := httptest.NewServer(h.handler)
	defer srv.Close()

	req, err := http.NewRequest(http.MethodGet, srv.URL+"/sse/events", nil)
	require.NoError(t, err)
	req.Header.Set("X-API-Key", h.apiKey)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "text/event-stream", resp.Header.Get("Content-Type"))

	reader := bufio.NewReader(resp.Body)
	first := readSSEEvent(t, reader)
	assert.Equal(t, events.EventTypeConnectionEstablished, first.Type)

	// Events for other users never reach this stream.
	h.bus.Emit("someone-else", events.TaskCreated("their-task"))
	h.bus.Emit(h.userID, events.TaskCreated("my-task"))

	second := readSSEEvent(t, reader)
	assert.Equal(t, events.EventTypeTaskCreated, second.Type)
	assert.Equal(t, "my-task", second.Content["task_id"])
}
