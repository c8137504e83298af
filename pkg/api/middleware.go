package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/llimit/gateway/pkg/services"
)

// Context keys set by the auth middleware.
const (
	ctxUserID        = "user_id"
	ctxAPIKeyID      = "api_key_id"
	ctxOpenRouterKey = "openrouter_key"
)

// requireAPIKey authenticates the X-API-Key header against the hashed
// key store and stashes the resolved user and key IDs in the request
// context.
func requireAPIKey(keys *services.APIKeyService) gin.HandlerFunc {
	return func(c *gin.Context) {
		plaintext := c.GetHeader("X-API-Key")
		if plaintext == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing X-API-Key header"})
			return
		}
		key, err := keys.Authenticate(c.Request.Context(), plaintext)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid API key"})
			return
		}
		c.Set(ctxUserID, key.UserID)
		c.Set(ctxAPIKeyID, key.ID)
		c.Next()
	}
}

// requireOpenRouterKey guards routes that place upstream LLM calls on
// the caller's behalf. The key is passed through, never stored.
func requireOpenRouterKey() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.GetHeader("X-OpenRouter-API-Key")
		if key == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing X-OpenRouter-API-Key header"})
			return
		}
		c.Set(ctxOpenRouterKey, key)
		c.Next()
	}
}

func userID(c *gin.Context) string {
	return c.GetString(ctxUserID)
}

func apiKeyID(c *gin.Context) string {
	return c.GetString(ctxAPIKeyID)
}

func openRouterKey(c *gin.Context) string {
	return c.GetString(ctxOpenRouterKey)
}
