package errors

import (
	"context"
	"errors"
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"

	"codeberg.org/promptforge/server/internal/logger"
)

// Error Handling Guidelines:
//
// For HTTP REST handlers:
//   - Use errors.InternalError(), errors.BadRequest(), etc. for critical errors
//     These functions handle both logging and HTTP response automatically
//   - Use logger.ErrorErr() only for non-critical errors where processing continues
//     (e.g. a generation that degraded to a template)
//   - Never call both logger.ErrorErr() and errors.InternalError() for the same error
//
// For services and internal packages:
//   - Return wrapped errors with context using fmt.Errorf("context: %w", err)
//   - Let the caller (handler) decide how to log and respond

// represents a standardized error response. the shape matches what the
// chat client reads: a human readable "error" plus success=false.
type ErrorResponse struct {
	Error   string `json:"error"`             // user-friendly message
	Success bool   `json:"success"`           // always false
	Code    string `json:"code,omitempty"`    // machine readable code
	Details string `json:"details,omitempty"` // optional details (sanitized in production)
}

// standard error codes
const (
	CodeNotFound        = "not_found"
	CodeValidationError = "validation_error"
	CodeServerError     = "server_error"
	CodeBadRequest      = "bad_request"
	CodeTooManyRequests = "too_many_requests"
	CodeUpstreamError   = "upstream_error"
	CodeNotConfigured   = "not_configured"
)

// writes an error envelope with an explicit status and code
func Failure(c *gin.Context, status int, code, message string, err error) {
	response := ErrorResponse{
		Error:   message,
		Success: false,
		Code:    code,
	}

	if err != nil {
		response.Details = sanitizeError(err)
	}

	c.JSON(status, response)
}

// returns a 400 bad request error
func BadRequest(c *gin.Context, message string, err error) {
	if message == "" {
		message = "invalid request"
	}

	Failure(c, http.StatusBadRequest, CodeBadRequest, message, err)
}

// returns a 400 bad request error for validation failures
func ValidationError(c *gin.Context, message string) {
	if message == "" {
		message = "validation failed"
	}

	Failure(c, http.StatusBadRequest, CodeValidationError, message, nil)
}

// returns a 404 not found error
func NotFound(c *gin.Context, resource string) {
	message := "resource not found"

	if resource != "" {
		message = resource + " not found"
	}

	Failure(c, http.StatusNotFound, CodeNotFound, message, nil)
}

// returns a 429 too many requests error
func TooManyRequests(c *gin.Context, message string) {
	if message == "" {
		message = "too many requests"
	}

	Failure(c, http.StatusTooManyRequests, CodeTooManyRequests, message, nil)
}

// logs and returns a 500 internal server error
func InternalError(c *gin.Context, message string, err error) {
	InternalErrorWithCode(c, CodeServerError, message, err)
}

// logs and returns a 500 with a specific error code
func InternalErrorWithCode(c *gin.Context, code, message string, err error) {
	if message == "" {
		message = "an error occurred"
	}

	logger.FromContext(c.Request.Context()).Error(message,
		"error", err,
		"code", code,
		"path", c.Request.URL.Path,
		"method", c.Request.Method,
	)

	Failure(c, http.StatusInternalServerError, code, message, err)
}

// sanitizes error messages for production
func sanitizeError(err error) string {
	if err == nil {
		return ""
	}

	if os.Getenv("ENVIRONMENT") != "production" {
		return err.Error()
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return "request timed out"
	}

	if errors.Is(err, context.Canceled) {
		return "request canceled"
	}

	errMsg := strings.ToLower(err.Error())

	if strings.Contains(errMsg, "connection") || strings.Contains(errMsg, "network") ||
		strings.Contains(errMsg, "dial") {
		return "connection error occurred"
	}

	if strings.Contains(errMsg, "timeout") {
		return "request timed out"
	}

	if strings.Contains(errMsg, "redis") {
		return "storage operation failed"
	}

	if strings.Contains(errMsg, "status") {
		return "upstream request failed"
	}

	return "an error occurred"
}
