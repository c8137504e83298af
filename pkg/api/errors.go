package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/llimit/gateway/pkg/llm"
	"github.com/llimit/gateway/pkg/selection"
	"github.com/llimit/gateway/pkg/services"
	"github.com/llimit/gateway/pkg/task"
)

// writeServiceError maps service-layer errors to HTTP error responses.
func writeServiceError(c *gin.Context, err error) {
	var validErr *services.ValidationError
	if errors.As(err, &validErr) {
		c.JSON(http.StatusBadRequest, gin.H{"error": validErr.Error()})
		return
	}
	var reservedErr *llm.ReservedKeyError
	if errors.As(err, &reservedErr) {
		c.JSON(http.StatusBadRequest, gin.H{"error": reservedErr.Error()})
		return
	}
	var decompErr *task.DecompositionError
	if errors.As(err, &decompErr) {
		c.JSON(http.StatusBadRequest, gin.H{"error": decompErr.Error()})
		return
	}
	var unsupportedErr *llm.UnsupportedInputError
	if errors.As(err, &unsupportedErr) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": unsupportedErr.Error()})
		return
	}
	switch {
	case errors.Is(err, services.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, llm.ErrModelNotFound):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, selection.ErrNoSuitableModel):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrSelfKeyDeletion):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "cannot delete the API key used to authenticate this request"})
	case errors.Is(err, services.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": "access denied"})
	case errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "resource not found"})
	case errors.Is(err, services.ErrAlreadyExists):
		c.JSON(http.StatusConflict, gin.H{"error": "resource already exists"})
	default:
		slog.Error("Unexpected service error", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
