package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorCode represents standardized error codes
type ErrorCode string

const (
	// Data errors
	ErrCodeDataUnavailable ErrorCode = "DATA_UNAVAILABLE"
	ErrCodePlayerNotFound  ErrorCode = "PLAYER_NOT_FOUND"
	ErrCodeSlugCollision   ErrorCode = "SLUG_COLLISION"

	// Validation errors
	ErrCodeInvalidInput ErrorCode = "INVALID_INPUT"

	// System errors
	ErrCodeInternal  ErrorCode = "INTERNAL_ERROR"
	ErrCodeRateLimit ErrorCode = "RATE_LIMIT_EXCEEDED"
)

// GameError represents a standardized error
type GameError struct {
	Code       ErrorCode              `json:"code"`
	Message    string                 `json:"message"`
	Details    map[string]interface{} `json:"details,omitempty"`
	StatusCode int                    `json:"-"`
	Err        error                  `json:"-"`
}

func (e *GameError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *GameError) Unwrap() error {
	return e.Err
}

// New creates a new GameError
func New(code ErrorCode, message string) *GameError {
	return &GameError{
		Code:       code,
		Message:    message,
		StatusCode: getHTTPStatusCode(code),
	}
}

// Wrap wraps an existing error with a GameError
func Wrap(err error, code ErrorCode, message string) *GameError {
	return &GameError{
		Code:       code,
		Message:    message,
		StatusCode: getHTTPStatusCode(code),
		Err:        err,
	}
}

// AddDetail adds a detail to the error
func (e *GameError) AddDetail(key string, value interface{}) *GameError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// AsGameError extracts a *GameError from an error chain, or nil
func AsGameError(err error) *GameError {
	var ge *GameError
	if errors.As(err, &ge) {
		return ge
	}
	return nil
}

// HasCode reports whether err carries the given error code
func HasCode(err error, code ErrorCode) bool {
	ge := AsGameError(err)
	return ge != nil && ge.Code == code
}

// getHTTPStatusCode maps error codes to HTTP status codes
func getHTTPStatusCode(code ErrorCode) int {
	switch code {
	case ErrCodeInvalidInput:
		return http.StatusBadRequest
	case ErrCodePlayerNotFound:
		return http.StatusNotFound
	case ErrCodeRateLimit:
		return http.StatusTooManyRequests
	case ErrCodeDataUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
