package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llimit/gateway/ent"
	"github.com/llimit/gateway/ent/enttest"
	"github.com/llimit/gateway/pkg/catalogue"
	"github.com/llimit/gateway/pkg/completion"
	"github.com/llimit/gateway/pkg/events"
	"github.com/llimit/gateway/pkg/llm"
	"github.com/llimit/gateway/pkg/models"
	"github.com/llimit/gateway/pkg/queue"
	"github.com/llimit/gateway/pkg/services"
)

type fakeFetcher struct{}

func (fakeFetcher) FetchModels(ctx context.Context) ([]models.ModelDescription, error) {
	return []models.ModelDescription{
		{ID: "openai/gpt-4o", Name: "GPT-4o", Provider: "openai"},
		{ID: "anthropic/claude", Name: "Claude", Provider: "anthropic"},
	}, nil
}

// fakeCompleter serves both the pass-through completions endpoint and
// the chat service.
type fakeCompleter struct {
	reply llm.Message
	err   error
	calls int
}

func (f *fakeCompleter) Complete(ctx context.Context, apiKey, model string, messages []llm.Message, requested map[string]string, temperature float64, cfg *llm.Config) (*llm.Message, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	reply := f.reply
	return &reply, nil
}

type fakeStreamer struct {
	chunks []llm.Chunk
}

func (f *fakeStreamer) Stream(ctx context.Context, apiKey, model string, messages []llm.Message, requested map[string]string, temperature float64, cfg *llm.Config) (<-chan llm.Chunk, error) {
	out := make(chan llm.Chunk, len(f.chunks))
	for _, c := range f.chunks {
		out <- c
	}
	close(out)
	return out, nil
}

type noopDispatcher struct{}

func (noopDispatcher) Dispatch(ctx context.Context, item queue.WorkItem) ([]queue.WorkItem, error) {
	return nil, nil
}

type apiHarness struct {
	handler   http.Handler
	client    *ent.Client
	keys      *services.APIKeyService
	tasks     *services.TaskStore
	queue     *queue.Queue
	bus       *events.Bus
	completer *fakeCompleter
	streamer  *fakeStreamer

	userID string
	apiKey string
	keyID  string
}

func newAPIHarness(t *testing.T) *apiHarness {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_fk=1", uuid.New().String())
	client := enttest.Open(t, "sqlite3", dsn)
	t.Cleanup(func() { client.Close() })

	ctx := context.Background()
	u, err := client.User.Create().SetID(uuid.New().String()).Save(ctx)
	require.NoError(t, err)

	keys := services.NewAPIKeyService(client)
	key, plaintext, err := keys.CreateKey(ctx, u.ID, "test")
	require.NoError(t, err)

	bus := events.NewBus()
	completer := &fakeCompleter{reply: llm.AssistantMessage("ok", nil)}
	streamer := &fakeStreamer{chunks: []llm.Chunk{llm.ContentChunk("hi")}}
	tasks := services.NewTaskStore(client)
	files, err := services.NewFileService(client, t.TempDir())
	require.NoError(t, err)
	chat := services.NewChatService(client, completer, bus)
	completions := completion.NewService(streamer, bus)
	q := queue.New(noopDispatcher{}, nil)

	server := NewServer(keys, tasks, files, chat,
		catalogue.New(fakeFetcher{}, 0), completer, completions, q, bus)

	return &apiHarness{
		handler:   server.Handler(),
		client:    client,
		keys:      keys,
		tasks:     tasks,
		queue:     q,
		bus:       bus,
		completer: completer,
		streamer:  streamer,
		userID:    u.ID,
		apiKey:    plaintext,
		keyID:     key.ID,
	}
}

// do performs a request with the harness user's API key. A non-nil body
// is sent as JSON. upstreamKey adds X-OpenRouter-API-Key.
func (h *apiHarness) do(t *testing.T, method, path string, body any, upstreamKey bool) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("X-API-Key", h.apiKey)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if upstreamKey {
		req.Header.Set("X-OpenRouter-API-Key", "or-test-key")
	}

	w := httptest.NewRecorder()
	h.handler.ServeHTTP(w, req)
	return w
}

func decodeJSON(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func TestAuthentication(t *testing.T) {
	h := newAPIHarness(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	h.handler.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	req = httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("X-API-Key", "llimit_wrong")
	w = httptest.NewRecorder()
	h.handler.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = h.do(t, http.MethodGet, "/health", nil, false)
	assert.Equal(t, http.StatusOK, w.Code)
	body := decodeJSON(t, w)
	assert.Equal(t, "healthy", body["status"])
	assert.Equal(t, float64(0), body["queue_size"])
}

func TestUpstreamKeyRequired(t *testing.T) {
	h := newAPIHarness(t)

	w := h.do(t, http.MethodPost, "/task", gin.H{"prompt": "do things"}, false)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "X-OpenRouter-API-Key")
	assert.Zero(t, h.queue.Len())
}

func TestAPIKeyEndpoints(t *testing.T) {
	h := newAPIHarness(t)

	w := h.do(t, http.MethodPost, "/api-keys", gin.H{"name": "second"}, false)
	require.Equal(t, http.StatusCreated, w.Code)
	created := decodeJSON(t, w)
	plaintext, _ := created["key"].(string)
	assert.Contains(t, plaintext, "llimit_")
	secondID, _ := created["key_id"].(string)
	require.NotEmpty(t, secondID)

	// Listing never echoes key material.
	w = h.do(t, http.MethodGet, "/api-keys", nil, false)
	require.Equal(t, http.StatusOK, w.Code)
	var list []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Len(t, list, 2)
	for _, item := range list {
		_, present := item["key"]
		assert.False(t, present)
	}

	// Deleting the authenticating key is refused.
	w = h.do(t, http.MethodDelete, "/api-keys/"+h.keyID, nil, false)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	w = h.do(t, http.MethodDelete, "/api-keys/"+secondID, nil, false)
	assert.Equal(t, http.StatusNoContent, w.Code)
	w = h.do(t, http.MethodDelete, "/api-keys/"+secondID, nil, false)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListModels(t *testing.T) {
	h := newAPIHarness(t)

	w := h.do(t, http.MethodGet, "/models", nil, false)
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeJSON(t, w)
	all, ok := body["models"].([]any)
	require.True(t, ok)
	assert.Len(t, all, 2)

	w = h.do(t, http.MethodGet, "/models?provider=openai", nil, false)
	require.Equal(t, http.StatusOK, w.Code)
	body = decodeJSON(t, w)
	filtered, ok := body["models"].([]any)
	require.True(t, ok)
	require.Len(t, filtered, 1)
	first, ok := filtered[0].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "openai/gpt-4o", first["id"])
}

func TestEventFilterFromQuery(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet,
		"/sse/events?event_types=task.created,task.completed&task_id=t1&task_id=t2", nil)

	filter := eventFilter(c)
	assert.ElementsMatch(t, []string{"task.created", "task.completed"}, filter.EventTypes)
	assert.ElementsMatch(t, []string{"t1", "t2"}, filter.Metadata["task_id"])

	assert.True(t, filter.Matches(events.TaskCreated("t1")))
	assert.False(t, filter.Matches(events.TaskCreated("t3")))
	assert.False(t, filter.Matches(events.TaskFailed("t1", "boom")))
}
