package handlers

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	apperrors "github.com/stockgame-service/stockgame_service/pkg/errors"
	"github.com/stockgame-service/stockgame_service/pkg/logger"
)

func newErrorContext(t *testing.T) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/api/v1/leaderboard", nil)
	return c, w
}

func TestGetRequestID(t *testing.T) {
	c, _ := newErrorContext(t)
	assert.Empty(t, getRequestID(c))

	c.Set("request_id", "req-123")
	assert.Equal(t, "req-123", getRequestID(c))
}

func TestRespondServiceErrorKnownCode(t *testing.T) {
	c, w := newErrorContext(t)
	c.Set("request_id", "req-123")

	err := apperrors.New(apperrors.ErrCodeDataUnavailable, "leaderboard source is missing or unreadable")
	respondServiceError(c, logger.NewNop(), err)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), "DATA_UNAVAILABLE")
}

func TestRespondServiceErrorUnknownError(t *testing.T) {
	c, w := newErrorContext(t)

	respondServiceError(c, logger.NewNop(), fmt.Errorf("disk on fire"))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "INTERNAL_ERROR")
	// Internal detail must not leak into the response body.
	assert.NotContains(t, w.Body.String(), "disk on fire")
}
