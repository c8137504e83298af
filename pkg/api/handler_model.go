package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// listModelsHandler handles GET /models. The optional provider query
// filters by provider prefix.
func (s *Server) listModelsHandler(c *gin.Context) {
	descriptions, err := s.catalogue.All(c.Request.Context(), c.Query("provider"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"models": descriptions})
}
