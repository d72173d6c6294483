package utils

import (
	"aimodel-generator-backend/internal/services"
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

// StatusForError maps a service error to an HTTP status and a user-facing
// message.
func StatusForError(err error) (int, string) {
	switch {
	case errors.Is(err, services.ErrRecordNotFound):
		return http.StatusNotFound, "Model not found"
	case errors.Is(err, services.ErrAlreadyTrained):
		return http.StatusConflict, "Model is already trained"
	case errors.Is(err, services.ErrNoActiveTraining):
		return http.StatusConflict, "No active training run"
	case errors.Is(err, services.ErrUnknownTool):
		return http.StatusBadRequest, "Unknown tool"
	case errors.Is(err, services.ErrSessionClosed):
		return http.StatusGone, "Session is closed"
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return http.StatusServiceUnavailable, "Request cancelled before the model was ready"
	default:
		return http.StatusInternalServerError, "Internal server error"
	}
}

// RespondError writes the error envelope for err. Server errors are also
// attached to the context so the request logger records them.
func RespondError(c *gin.Context, err error) {
	status, message := StatusForError(err)
	if status >= http.StatusInternalServerError {
		_ = c.Error(err)
	}
	c.JSON(status, NewErrorResponse(status, message))
}
