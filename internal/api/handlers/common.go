package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/stockgame-service/stockgame_service/internal/domain/entities"
	"github.com/stockgame-service/stockgame_service/pkg/errors"
	"github.com/stockgame-service/stockgame_service/pkg/logger"
)

// getRequestID extracts request ID from context
func getRequestID(c *gin.Context) string {
	if reqID, exists := c.Get("request_id"); exists {
		if id, ok := reqID.(string); ok {
			return id
		}
	}
	return ""
}

// requestLogger returns the per-request logger set by the logging
// middleware, falling back to the given base logger.
func requestLogger(c *gin.Context, base *logger.Logger) *logger.Logger {
	if l, exists := c.Get("logger"); exists {
		if log, ok := l.(*logger.Logger); ok {
			return log
		}
	}
	return base
}

// respondError sends a standardized error response
func respondError(c *gin.Context, status int, code errors.ErrorCode, message string, details map[string]interface{}) {
	c.JSON(status, entities.ErrorResponse{
		Code:    string(code),
		Message: message,
		Details: details,
	})
}

// respondBadRequest sends a bad request error
func respondBadRequest(c *gin.Context, message string, details map[string]interface{}) {
	respondError(c, http.StatusBadRequest, errors.ErrCodeInvalidInput, message, details)
}

// respondServiceError translates a service-layer error into an HTTP
// response, preserving the error code and mapped status for known
// errors and degrading to a generic 500 otherwise.
func respondServiceError(c *gin.Context, log *logger.Logger, err error) {
	if gameErr := errors.AsGameError(err); gameErr != nil {
		requestLogger(c, log).WithError(err).Warnw("Request failed",
			"request_id", getRequestID(c),
			"code", gameErr.Code,
			"status", gameErr.StatusCode,
		)
		respondError(c, gameErr.StatusCode, gameErr.Code, gameErr.Message, gameErr.Details)
		return
	}

	requestLogger(c, log).WithError(err).Errorw("Unhandled service error",
		"request_id", getRequestID(c),
	)
	respondError(c, http.StatusInternalServerError, errors.ErrCodeInternal, "Internal server error", nil)
}

// respondPlayerNotFound sends the canonical unknown-slug response.
func respondPlayerNotFound(c *gin.Context, slug string) {
	respondError(c, http.StatusNotFound, errors.ErrCodePlayerNotFound, "Player not found",
		map[string]interface{}{"slug": slug})
}
