package http

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
)

// now is replaced in tests.
var now = time.Now

// EnvelopeResponse writes an envelope with the given status.
func EnvelopeResponse(c echo.Context, statusCode int, data interface{}, errMsg string) error {
	env := Envelope{
		Success:   errMsg == "",
		Timestamp: now().UnixMilli(),
	}
	if env.Success {
		env.Data = data
	} else {
		env.Error = &errMsg
	}
	return c.JSON(statusCode, env)
}

// SuccessResponse writes a 200 success envelope.
func SuccessResponse(c echo.Context, data interface{}) error {
	return EnvelopeResponse(c, http.StatusOK, data, "")
}

// ErrorResponse writes a failure envelope.
func ErrorResponse(c echo.Context, statusCode int, message string) error {
	if message == "" {
		message = http.StatusText(statusCode)
	}
	return EnvelopeResponse(c, statusCode, nil, message)
}

// ValidationFailed folds field errors into a single 400 AppError.
func ValidationFailed(errs []ValidationError) *AppError {
	msgs := make([]string, 0, len(errs))
	for _, e := range errs {
		msgs = append(msgs, e.Message)
	}
	return BadRequestError(strings.Join(msgs, "; "))
}

// InternalServerErrorResponse writes internal server error.
func InternalServerErrorResponse(c echo.Context) error {
	return ErrorResponse(c, http.StatusInternalServerError, "Internal server error")
}

// AppErrorResponse writes application error response.
func AppErrorResponse(c echo.Context, err error) error {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return ErrorResponse(c, appErr.Status, appErr.Message)
	}
	return InternalServerErrorResponse(c)
}
