package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/llimit/gateway/pkg/llm"
)

const defaultCompletionTemperature = 0.7

// completionMessages converts the request history and appends the
// prompt as the final user message.
func completionMessages(req CompletionRequest) []llm.Message {
	messages := make([]llm.Message, 0, len(req.Messages)+1)
	for _, m := range req.Messages {
		messages = append(messages, llm.Message{Role: llm.Role(m.Role), Content: m.Content})
	}
	return append(messages, llm.UserMessage(req.Prompt))
}

func completionTemperature(req CompletionRequest) float64 {
	if req.Temperature != nil {
		return *req.Temperature
	}
	return defaultCompletionTemperature
}

// completionHandler handles POST /completions: a synchronous
// pass-through call that is not saved to any conversation.
func (s *Server) completionHandler(c *gin.Context) {
	var req CompletionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
		return
	}

	reply, err := s.completer.Complete(c.Request.Context(), openRouterKey(c), req.Model,
		completionMessages(req), req.AdditionalRequestedData, completionTemperature(req), nil)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, CompletionResponse{
		Content:          reply.Content,
		AdditionalData:   reply.AdditionalData,
		PromptTokens:     reply.PromptTokens,
		CompletionTokens: reply.CompletionTokens,
	})
}

// completionStreamHandler handles POST /completions/stream: the
// response is an SSE stream of completion.started, completion.chunk,
// and completion.finished events.
func (s *Server) completionStreamHandler(c *gin.Context) {
	var req CompletionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
		return
	}

	ctx := c.Request.Context()
	_, sequence, err := s.completions.Start(ctx, openRouterKey(c), userID(c), req.Model,
		completionMessages(req), req.AdditionalRequestedData, completionTemperature(req), nil)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	setSSEHeaders(c)
	for {
		select {
		case e, ok := <-sequence:
			if !ok {
				return
			}
			if err := writeSSEEvent(c, e); err != nil {
				return
			}
		case <-ctx.Done():
			return
		}
	}
}
