package api

import (
	"PMTerminal/internal/usecase"

	"github.com/labstack/echo/v4"
)

func (h *Handler) CotChart(c echo.Context) error {
	return serve(h, c, "cot chart", usecase.CotChartEndpoint.Auth, h.svc.CotChart)
}

func (h *Handler) CotPositioning(c echo.Context) error {
	return serve(h, c, "cot positioning", usecase.CotPositioningEndpoint.Auth, h.svc.CotPositioning)
}

func (h *Handler) DistributionStats(c echo.Context) error {
	return serve(h, c, "distribution stats", usecase.DistributionStatsEndpoint.Auth, h.svc.DistributionStats)
}

func (h *Handler) RangeProbability(c echo.Context) error {
	return serve(h, c, "range probability", usecase.RangeProbabilityEndpoint.Auth, h.svc.RangeProbability)
}

// AverageRange uses one policy for all three histogram endpoints.
func (h *Handler) AverageRange(c echo.Context) error {
	return serve(h, c, "average range", usecase.AverageDailyEndpoint.Auth, h.svc.AverageRange)
}

func (h *Handler) RiskReversals(c echo.Context) error {
	return serve(h, c, "risk reversals", usecase.RiskReversalsEndpoint.Auth, h.svc.RiskReversals)
}

func (h *Handler) SeasonalityForecast(c echo.Context) error {
	return serve(h, c, "seasonality forecast", usecase.SeasonalityForecastEndpoint.Auth, h.svc.SeasonalityForecast)
}

func (h *Handler) SeasonalityPerformance(c echo.Context) error {
	return serve(h, c, "seasonality performance", usecase.SeasonalityPerformanceEndpoint.Auth, h.svc.SeasonalityPerformance)
}

func (h *Handler) PriceChart(c echo.Context) error {
	return serve(h, c, "price chart", usecase.PriceChartEndpoint.Auth, h.svc.PriceChart)
}

func (h *Handler) PositionBook(c echo.Context) error {
	return serve(h, c, "position book", usecase.PositionBookEndpoint.Auth, h.svc.PositionBook)
}

func (h *Handler) Notifications(c echo.Context) error {
	c.Response().Header().Set(echo.HeaderCacheControl, "private, no-store")
	return serve(h, c, "notifications", usecase.NotificationsEndpoint.Auth, h.svc.Notifications)
}
