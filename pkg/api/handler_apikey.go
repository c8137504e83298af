package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// createAPIKeyHandler handles POST /api-keys. The plaintext key is
// returned here and never again.
func (s *Server) createAPIKeyHandler(c *gin.Context) {
	var req CreateAPIKeyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
		return
	}

	key, plaintext, err := s.keys.CreateKey(c.Request.Context(), userID(c), req.Name)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toAPIKeyResponse(key, plaintext))
}

// listAPIKeysHandler handles GET /api-keys.
func (s *Server) listAPIKeysHandler(c *gin.Context) {
	keys, err := s.keys.ListKeys(c.Request.Context(), userID(c))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	out := make([]APIKeyResponse, 0, len(keys))
	for _, k := range keys {
		out = append(out, toAPIKeyResponse(k, ""))
	}
	c.JSON(http.StatusOK, out)
}

// deleteAPIKeyHandler handles DELETE /api-keys/:id. Deleting the key
// that authenticated this request is rejected with 422.
func (s *Server) deleteAPIKeyHandler(c *gin.Context) {
	err := s.keys.DeleteKey(c.Request.Context(), userID(c), c.Param("id"), apiKeyID(c))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
