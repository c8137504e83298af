package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/llimit/gateway/pkg/version"
)

// healthHandler handles GET /health.
func (s *Server) healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":     "healthy",
		"version":    version.Full(),
		"queue_size": s.queue.Len(),
	})
}
