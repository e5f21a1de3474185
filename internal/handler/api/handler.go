package api

import (
	"context"
	"errors"

	"PMTerminal/internal/domain/models"
	"PMTerminal/internal/service/auth"
	"PMTerminal/internal/usecase"
	xhttp "PMTerminal/pkg/http"
	xlogger "PMTerminal/pkg/logger"

	"github.com/labstack/echo/v4"
)

// Handler serves the /api routes. Each request runs auth, validation,
// the use case and the envelope in that order.
type Handler struct {
	logger *xlogger.Logger
	gate   *auth.Gate
	svc    *usecase.Service
	health HealthInfo
}

func NewHandler(logger *xlogger.Logger, gate *auth.Gate, svc *usecase.Service, health HealthInfo) *Handler {
	if logger == nil {
		logger = xlogger.Nop()
	}
	return &Handler{logger: logger, gate: gate, svc: svc, health: health}
}

func (h *Handler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/api")

	g.POST("/cot/chart", h.CotChart)
	g.POST("/cot/positioning", h.CotPositioning)
	g.POST("/distribution/stats", h.DistributionStats)
	g.POST("/distribution/range-probability", h.RangeProbability)
	g.POST("/distribution/average-range", h.AverageRange)
	g.POST("/fx-options/risk-reversals", h.RiskReversals)
	g.POST("/seasonality/forecast", h.SeasonalityForecast)
	g.POST("/seasonality/performance-chart", h.SeasonalityPerformance)
	g.POST("/price/chart", h.PriceChart)
	g.POST("/positionbook", h.PositionBook)

	g.GET("/notifications", h.Notifications)

	g.GET("/tabs", h.UserTabs)
	g.POST("/tabs/widgets", h.InsertTabWidget)
	g.DELETE("/tabs/widgets", h.DeleteTabWidget)
	g.POST("/tabs/widgets/positions", h.UpdateWidgetPositions)

	g.GET("/preferences", h.Preferences)
	g.POST("/preferences", h.SavePreferences)

	g.GET("/health", h.Health)
}

// serve runs one request: token for policy, then bind and validate R, then fn.
func serve[R any, T any](h *Handler, c echo.Context, name string, policy models.AuthPolicy,
	fn func(ctx context.Context, token string, req *R) (T, error)) error {
	token, err := h.gate.Token(c.Request(), policy)
	if err != nil {
		return xhttp.AppErrorResponse(c, err)
	}

	req := new(R)
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return h.fail(c, name, xhttp.ValidationFailed(verr))
	}

	res, err := fn(c.Request().Context(), token, req)
	if err != nil {
		return h.fail(c, name, err)
	}
	return xhttp.SuccessResponse(c, res)
}

// serveNoBody is serve for requests without parameters.
func serveNoBody[T any](h *Handler, c echo.Context, name string, policy models.AuthPolicy,
	fn func(ctx context.Context, token string) (T, error)) error {
	token, err := h.gate.Token(c.Request(), policy)
	if err != nil {
		return xhttp.AppErrorResponse(c, err)
	}

	res, err := fn(c.Request().Context(), token)
	if err != nil {
		return h.fail(c, name, err)
	}
	return xhttp.SuccessResponse(c, res)
}

func (h *Handler) fail(c echo.Context, name string, err error) error {
	var appErr *xhttp.AppError
	if errors.As(err, &appErr) && appErr.Status < 500 {
		h.logger.Warn(name+" failed", xlogger.Error(err))
	} else {
		h.logger.Error(name+" failed", xlogger.Error(err))
	}
	return xhttp.AppErrorResponse(c, err)
}
