package middleware

import (
	"encoding/json"
	"net/url"
	"time"

	"PMTerminal/pkg/logger"

	"github.com/labstack/echo/v4"
)

// RequestLogging logs HTTP requests. userCookie names the cookie carrying
// the URL-encoded profile JSON; its id is attached to the entry when present.
func RequestLogging(l *logger.Logger, userCookie string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			res := c.Response()
			start := time.Now()

			err := next(c)
			if err != nil {
				// let echo render the error so the status below is final
				c.Error(err)
			}

			fields := []logger.Field{
				logger.String("method", req.Method),
				logger.String("route", c.Path()),
				logger.String("uri", req.RequestURI),
				logger.Int("status", res.Status),
				logger.Duration("latency_ms", time.Since(start)),
				logger.String("request_id", res.Header().Get(echo.HeaderXRequestID)),
			}
			if uid := userID(c, userCookie); uid != "" {
				fields = append(fields, logger.String("user_id", uid))
			}
			l.Info("http request", fields...)

			return nil
		}
	}
}

// userID reads the id from the profile cookie; absent or malformed cookies yield "".
func userID(c echo.Context, cookie string) string {
	if cookie == "" {
		return ""
	}
	ck, err := c.Cookie(cookie)
	if err != nil || ck.Value == "" {
		return ""
	}
	raw, err := url.QueryUnescape(ck.Value)
	if err != nil {
		return ""
	}
	var profile struct {
		ID json.RawMessage `json:"id"`
	}
	if json.Unmarshal([]byte(raw), &profile) != nil || len(profile.ID) == 0 {
		return ""
	}
	var s string
	if json.Unmarshal(profile.ID, &s) == nil {
		return s
	}
	return string(profile.ID)
}
