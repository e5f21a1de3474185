package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"PMTerminal/pkg/logger"

	"github.com/labstack/echo/v4"
)

// Recover returns recovery middleware. A panic is logged with its stack and
// turned into a 500 error for the server's error handler to render, so it
// must run inside RequestLogging.
func Recover(l *logger.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) (err error) {
			defer func() {
				if r := recover(); r != nil {
					perr, ok := r.(error)
					if !ok {
						perr = fmt.Errorf("%v", r)
					}
					l.Error("panic recovered",
						logger.Error(perr),
						logger.String("path", c.Path()),
						logger.String("stack", string(debug.Stack())),
					)
					err = echo.NewHTTPError(http.StatusInternalServerError, "Internal server error").SetInternal(perr)
				}
			}()
			return next(c)
		}
	}
}
