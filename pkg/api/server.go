// Package api exposes the gateway over HTTP: task submission, direct
// completions, chat threads, files, API keys, the model catalogue, and
// the SSE event stream.
package api

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/llimit/gateway/pkg/catalogue"
	"github.com/llimit/gateway/pkg/completion"
	"github.com/llimit/gateway/pkg/events"
	"github.com/llimit/gateway/pkg/llm"
	"github.com/llimit/gateway/pkg/queue"
	"github.com/llimit/gateway/pkg/services"
)

// Completer is the synchronous slice of the LLM adapter used by the
// pass-through completions endpoint.
type Completer interface {
	Complete(ctx context.Context, apiKey, model string, messages []llm.Message, requested map[string]string, temperature float64, cfg *llm.Config) (*llm.Message, error)
}

// Server holds the handler dependencies.
type Server struct {
	keys        *services.APIKeyService
	tasks       *services.TaskStore
	files       *services.FileService
	chat        *services.ChatService
	catalogue   *catalogue.Cache
	completer   Completer
	completions *completion.Service
	queue       *queue.Queue
	bus         *events.Bus
}

// NewServer creates the API server.
func NewServer(
	keys *services.APIKeyService,
	tasks *services.TaskStore,
	files *services.FileService,
	chat *services.ChatService,
	cat *catalogue.Cache,
	completer Completer,
	completions *completion.Service,
	q *queue.Queue,
	bus *events.Bus,
) *Server {
	return &Server{
		keys:        keys,
		tasks:       tasks,
		files:       files,
		chat:        chat,
		catalogue:   cat,
		completer:   completer,
		completions: completions,
		queue:       q,
		bus:         bus,
	}
}

// Handler builds the router. Every route requires X-API-Key; routes
// that place upstream LLM calls additionally require
// X-OpenRouter-API-Key.
func (s *Server) Handler() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	authed := r.Group("", requireAPIKey(s.keys))
	authed.GET("/health", s.healthHandler)

	authed.POST("/api-keys", s.createAPIKeyHandler)
	authed.GET("/api-keys", s.listAPIKeysHandler)
	authed.DELETE("/api-keys/:id", s.deleteAPIKeyHandler)

	authed.GET("/models", s.listModelsHandler)

	authed.POST("/files", s.uploadFileHandler)
	authed.POST("/files/url", s.registerFileURLHandler)
	authed.GET("/files", s.listFilesHandler)
	authed.GET("/files/:id", s.getFileHandler)

	authed.GET("/task", s.listTasksHandler)
	authed.GET("/task/:id", s.getTaskHandler)
	authed.GET("/task/:id/steps", s.getTaskStepsHandler)

	authed.GET("/chat/threads", s.listThreadsHandler)
	authed.GET("/chat/threads/:id", s.getThreadHandler)
	authed.POST("/chat/threads", s.createThreadHandler)
	authed.PATCH("/chat/threads/:id", s.updateThreadHandler)
	authed.DELETE("/chat/threads/:id", s.deleteThreadHandler)
	authed.GET("/chat/threads/:id/messages", s.listMessagesHandler)

	authed.GET("/sse/events", s.eventsHandler)

	upstream := authed.Group("", requireOpenRouterKey())
	upstream.POST("/task", s.createTaskHandler)
	upstream.POST("/completions", s.completionHandler)
	upstream.POST("/completions/stream", s.completionStreamHandler)
	upstream.POST("/chat/threads/:id/messages", s.sendMessageHandler)

	return r
}
