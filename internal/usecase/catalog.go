package usecase

import (
	"net/http"

	"PMTerminal/internal/domain/models"
)

// Upstream endpoints and the policies each one runs under.
var (
	CotChartEndpoint = models.Endpoint{Name: "getCOTChartView", Method: http.MethodPost,
		Timeout: models.TimeoutStandard, Auth: models.AuthRequired, MockFallback: true, Cacheable: true}
	CotPositioningEndpoint = models.Endpoint{Name: "getCOTPositioning", Method: http.MethodPost,
		Timeout: models.TimeoutStandard, Auth: models.AuthRequired, Cacheable: true}
	DistributionStatsEndpoint = models.Endpoint{Name: "getDistributionStats", Method: http.MethodPost,
		Timeout: models.TimeoutHeavy, Auth: models.AuthRequired, Cacheable: true}
	RangeProbabilityEndpoint = models.Endpoint{Name: "getRangeProbability", Method: http.MethodPost,
		Timeout: models.TimeoutHeavy, Auth: models.AuthRequired, Cacheable: true}
	AverageDailyEndpoint = models.Endpoint{Name: "getAverageDailyHistogram", Method: http.MethodPost,
		Timeout: models.TimeoutHeavy, Auth: models.AuthRequired, Cacheable: true}
	AverageWeeklyEndpoint = models.Endpoint{Name: "getAverageWeeklyHistogram", Method: http.MethodPost,
		Timeout: models.TimeoutHeavy, Auth: models.AuthRequired, Cacheable: true}
	AverageMonthlyEndpoint = models.Endpoint{Name: "getAverageMonthlyHistogram", Method: http.MethodPost,
		Timeout: models.TimeoutHeavy, Auth: models.AuthRequired, Cacheable: true}
	RiskReversalsEndpoint = models.Endpoint{Name: "getFxOptionsRiskReversals", Method: http.MethodPost,
		Timeout: models.TimeoutStandard, Auth: models.AuthRequired, Cacheable: true}
	SeasonalityForecastEndpoint = models.Endpoint{Name: "getSeasonalityForecastTable", Method: http.MethodPost,
		Timeout: models.TimeoutStandard, Auth: models.AuthRequired, Cacheable: true}
	SeasonalityPerformanceEndpoint = models.Endpoint{Name: "getSeasonalityPerformanceChart", Method: http.MethodPost,
		Timeout: models.TimeoutHeavy, Auth: models.AuthRequired, MockFallback: true, Cacheable: true}
	PriceChartEndpoint = models.Endpoint{Name: "getPriceChart", Method: http.MethodPost,
		Timeout: models.TimeoutStandard, Auth: models.AuthRequired, Cacheable: true}
	PositionBookEndpoint = models.Endpoint{Name: "getPositionBook", Method: http.MethodPost,
		Timeout: models.TimeoutFast, Auth: models.AuthRequired}

	NotificationsEndpoint = models.Endpoint{Name: "getNotifications", Method: http.MethodGet,
		Timeout: models.TimeoutStandard, Auth: models.AuthRequired}
	NewsEndpoint = models.Endpoint{Name: "getNews", Method: http.MethodGet,
		Timeout: models.TimeoutStandard, Auth: models.AuthRequired}
	EconomicCalendarEndpoint = models.Endpoint{Name: "getEconomicCalendar", Method: http.MethodGet,
		Timeout: models.TimeoutStandard, Auth: models.AuthRequired}

	// Tab layout endpoints substitute the fallback token when no session exists.
	UserTabsEndpoint = models.Endpoint{Name: "getUserTabs", Method: http.MethodGet,
		Timeout: models.TimeoutProxy, Auth: models.AuthFallback}
	InsertTabWidgetEndpoint = models.Endpoint{Name: "insertTabWidget", Method: http.MethodPost,
		Timeout: models.TimeoutProxy, Auth: models.AuthFallback}
	DeleteTabWidgetEndpoint = models.Endpoint{Name: "deleteTabWidget", Method: http.MethodDelete,
		Timeout: models.TimeoutProxy, Auth: models.AuthFallback}
	UpdateWidgetPositionsEndpoint = models.Endpoint{Name: "updateTabWidgetPositions", Method: http.MethodPost,
		Timeout: models.TimeoutProxy, Auth: models.AuthFallback}

	GetPreferencesEndpoint = models.Endpoint{Name: "getUserPreferences", Method: http.MethodGet,
		Timeout: models.TimeoutProxy, Auth: models.AuthRequired}
	SavePreferencesEndpoint = models.Endpoint{Name: "saveUserPreferences", Method: http.MethodPost,
		Timeout: models.TimeoutProxy, Auth: models.AuthRequired}
)

// AverageRangeEndpoint selects the histogram endpoint for a grouping mode.
func AverageRangeEndpoint(mode string) models.Endpoint {
	switch mode {
	case "weekly":
		return AverageWeeklyEndpoint
	case "monthly":
		return AverageMonthlyEndpoint
	default:
		return AverageDailyEndpoint
	}
}
