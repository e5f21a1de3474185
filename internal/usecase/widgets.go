package usecase

import (
	"context"
	"encoding/json"

	"PMTerminal/internal/domain/models"
	"PMTerminal/internal/transform"

	"github.com/tidwall/gjson"
)

func (s *Service) CotChart(ctx context.Context, token string, req *models.CotRequest) (models.CotChart, error) {
	return call(ctx, s, token, CotChartEndpoint, req, transform.CotChart,
		func() models.CotChart { return mockCotChart(s.now(), req.Weeks) })
}

func (s *Service) CotPositioning(ctx context.Context, token string, req *models.CotRequest) ([]models.CotPositioningRow, error) {
	return call(ctx, s, token, CotPositioningEndpoint, req, transform.CotPositioning, nil)
}

func (s *Service) DistributionStats(ctx context.Context, token string, req *models.DistributionRequest) (models.DistributionStats, error) {
	return call(ctx, s, token, DistributionStatsEndpoint, req, transform.DistributionStats, nil)
}

func (s *Service) RangeProbability(ctx context.Context, token string, req *models.DistributionRequest) (models.RangeProbability, error) {
	return call(ctx, s, token, RangeProbabilityEndpoint, req, transform.RangeProbability, nil)
}

func (s *Service) AverageRange(ctx context.Context, token string, req *models.AverageRangeRequest) (models.AverageRangeHistogram, error) {
	return call(ctx, s, token, AverageRangeEndpoint(req.Mode), req,
		func(doc gjson.Result) models.AverageRangeHistogram { return transform.AverageRange(doc, req.Mode) }, nil)
}

func (s *Service) RiskReversals(ctx context.Context, token string, req *models.RiskReversalRequest) ([]models.RiskReversalPoint, error) {
	return call(ctx, s, token, RiskReversalsEndpoint, req, transform.RiskReversals, nil)
}

func (s *Service) SeasonalityForecast(ctx context.Context, token string, req *models.SeasonalityRequest) ([]models.ForecastRow, error) {
	return call(ctx, s, token, SeasonalityForecastEndpoint, req, transform.SeasonalityForecast, nil)
}

func (s *Service) SeasonalityPerformance(ctx context.Context, token string, req *models.SeasonalityRequest) (models.SeasonalityPerformance, error) {
	return call(ctx, s, token, SeasonalityPerformanceEndpoint, req, transform.SeasonalityPerformance, mockSeasonalityPerformance)
}

func (s *Service) PriceChart(ctx context.Context, token string, req *models.PriceChartRequest) ([]models.ChartPoint, error) {
	return call(ctx, s, token, PriceChartEndpoint, req, transform.PriceChart, nil)
}

func (s *Service) PositionBook(ctx context.Context, token string, req *models.PositionBookRequest) (json.RawMessage, error) {
	return call(ctx, s, token, PositionBookEndpoint, req, transform.PassThrough, nil)
}
