package http

import (
	"fmt"
	"net/http"
	"time"
)

// AppError represents application-level error with HTTP status.
type AppError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
	Status  int    `json:"-"`
	Err     error  `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns underlying error.
func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates a new application error.
func NewAppError(code, field, message string, status int) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Field:   field,
		Status:  status,
	}
}

// WithError wraps an underlying error. The wrapped error is for logs only and
// never reaches the response body.
func (e *AppError) WithError(err error) *AppError {
	e.Err = err
	return e
}

// BadRequestError creates a 400 error.
func BadRequestError(message string) *AppError {
	return NewAppError("ERR_BAD_REQUEST", "", message, http.StatusBadRequest)
}

// AuthenticationRequired creates the 401 returned when no session token is present.
func AuthenticationRequired() *AppError {
	return NewAppError("ERR_AUTH_REQUIRED", "", "Authentication required", http.StatusUnauthorized)
}

// UpstreamHTTPError reports a non-2xx upstream reply with the upstream status.
// Statuses outside the 4xx/5xx range are reported as 502.
func UpstreamHTTPError(status int) *AppError {
	code := status
	if code < http.StatusBadRequest || code > 599 {
		code = http.StatusBadGateway
	}
	return NewAppError("ERR_UPSTREAM_HTTP", "", fmt.Sprintf("External API returned %d", status), code)
}

// UpstreamTimeout creates the 408 returned when the upstream exceeds its budget.
func UpstreamTimeout(budget time.Duration) *AppError {
	return NewAppError("ERR_UPSTREAM_TIMEOUT", "",
		fmt.Sprintf("Request timeout - upstream did not respond within %s, please try again", budget),
		http.StatusRequestTimeout)
}

// UpstreamUnavailable creates the 503 returned when the upstream cannot be reached.
func UpstreamUnavailable() *AppError {
	return NewAppError("ERR_UPSTREAM_UNAVAILABLE", "",
		"Connection failed - unable to reach the market data service", http.StatusServiceUnavailable)
}

// TransformError creates the 500 returned when normalization fails unexpectedly.
func TransformError(message string) *AppError {
	return NewAppError("ERR_TRANSFORM", "", message, http.StatusInternalServerError)
}

// InternalError creates a 500 error.
func InternalError(message string) *AppError {
	return NewAppError("ERR_INTERNAL", "", message, http.StatusInternalServerError)
}

// InternalErrorf creates a 500 error with formatting.
func InternalErrorf(format string, a ...interface{}) *AppError {
	return InternalError(fmt.Sprintf(format, a...))
}
