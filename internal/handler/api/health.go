package api

import (
	"time"

	xhttp "PMTerminal/pkg/http"

	"github.com/labstack/echo/v4"
)

// HealthInfo is the static part of the health report.
type HealthInfo struct {
	Service       string `json:"service"`
	Environment   string `json:"environment"`
	UpstreamBase  bool   `json:"upstreamConfigured"`
	FallbackToken bool   `json:"fallbackTokenConfigured"`
	CacheEnabled  bool   `json:"cacheEnabled"`
	CacheBackend  string `json:"cacheBackend,omitempty"`
}

type healthResponse struct {
	HealthInfo
	Status string `json:"status"`
	Time   string `json:"time"`
}

// Health reports liveness. It makes no upstream call.
func (h *Handler) Health(c echo.Context) error {
	return xhttp.SuccessResponse(c, healthResponse{
		HealthInfo: h.health,
		Status:     "ok",
		Time:       time.Now().UTC().Format(time.RFC3339),
	})
}
