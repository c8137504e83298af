package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// createThreadHandler handles POST /chat/threads.
func (s *Server) createThreadHandler(c *gin.Context) {
	var req CreateThreadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
		return
	}

	thread, err := s.chat.CreateThread(c.Request.Context(), userID(c), req.ModelName, req.Title, req.Description)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toThreadResponse(thread))
}

// listThreadsHandler handles GET /chat/threads.
func (s *Server) listThreadsHandler(c *gin.Context) {
	threads, err := s.chat.ListThreads(c.Request.Context(), userID(c))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	out := make([]ThreadResponse, 0, len(threads))
	for _, t := range threads {
		out = append(out, toThreadResponse(t))
	}
	c.JSON(http.StatusOK, out)
}

// getThreadHandler handles GET /chat/threads/:id.
func (s *Server) getThreadHandler(c *gin.Context) {
	thread, err := s.chat.GetThread(c.Request.Context(), c.Param("id"), userID(c))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, toThreadResponse(thread))
}

// updateThreadHandler handles PATCH /chat/threads/:id.
func (s *Server) updateThreadHandler(c *gin.Context) {
	var req UpdateThreadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
		return
	}

	thread, err := s.chat.UpdateThread(c.Request.Context(), c.Param("id"), userID(c), req.Title, req.Description)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, toThreadResponse(thread))
}

// deleteThreadHandler handles DELETE /chat/threads/:id.
func (s *Server) deleteThreadHandler(c *gin.Context) {
	if err := s.chat.DeleteThread(c.Request.Context(), c.Param("id"), userID(c)); err != nil {
		writeServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// listMessagesHandler handles GET /chat/threads/:id/messages.
func (s *Server) listMessagesHandler(c *gin.Context) {
	messages, err := s.chat.GetMessages(c.Request.Context(), c.Param("id"), userID(c))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	out := make([]MessageResponse, 0, len(messages))
	for _, m := range messages {
		out = append(out, toMessageResponse(m))
	}
	c.JSON(http.StatusOK, out)
}

// sendMessageHandler handles POST /chat/threads/:id/messages: persist
// the user turn, call the thread's model with the full history, and
// return the assistant turn.
func (s *Server) sendMessageHandler(c *gin.Context) {
	var req SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
		return
	}

	reply, err := s.chat.SendMessage(c.Request.Context(), openRouterKey(c), c.Param("id"), userID(c), req.Content)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, toMessageResponse(reply))
}
