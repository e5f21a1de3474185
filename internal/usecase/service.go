package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"PMTerminal/internal/domain/models"
	domrepo "PMTerminal/internal/domain/repository"
	svcmetrics "PMTerminal/internal/service/metrics"
	"PMTerminal/pkg/config"
	xhttp "PMTerminal/pkg/http"
	"PMTerminal/pkg/jsonx"
	"PMTerminal/pkg/logger"

	"github.com/tidwall/gjson"
)

// Service runs every widget request through invoke, fallback and transform.
type Service struct {
	upstream domrepo.Upstream
	timeouts config.Timeouts
	log      *logger.Logger
	metrics  domrepo.Metrics
	now      func() time.Time
}

func NewService(up domrepo.Upstream, timeouts config.Timeouts, l *logger.Logger, m domrepo.Metrics) *Service {
	if l == nil {
		l = logger.Nop()
	}
	if m == nil {
		m = domrepo.NopMetrics{}
	}
	svcmetrics.Register()
	return &Service{upstream: up, timeouts: timeouts, log: l, metrics: m, now: time.Now}
}

// Budget returns the configured time budget of a timeout class.
func (s *Service) Budget(class models.TimeoutClass) time.Duration {
	switch class {
	case models.TimeoutFast:
		return s.timeouts.Fast
	case models.TimeoutProxy:
		return s.timeouts.Proxy
	case models.TimeoutHeavy:
		return s.timeouts.Heavy
	default:
		return s.timeouts.Standard
	}
}

// call performs ep and converts the result with transform. On an HTTP error
// an endpoint flagged MockFallback answers with fallback() instead. A panic
// in transform becomes a TransformError.
func call[T any](ctx context.Context, s *Service, token string, ep models.Endpoint, body interface{},
	transform func(gjson.Result) T, fallback func() T) (out T, err error) {
	start := time.Now()
	defer func() {
		svcmetrics.WidgetLatency.WithLabelValues(ep.Name).Observe(time.Since(start).Seconds())
		if err != nil {
			status := 500
			var appErr *xhttp.AppError
			if errors.As(err, &appErr) {
				status = appErr.Status
			}
			svcmetrics.WidgetErrors.WithLabelValues(ep.Name, strconv.Itoa(status)).Inc()
		}
	}()

	res, err := s.invoke(ctx, token, ep, body)
	if err != nil {
		return out, err
	}

	if res.Kind == models.ResultHTTPError && ep.MockFallback && fallback != nil {
		s.log.Warn("upstream failed, serving placeholder data",
			logger.String("endpoint", ep.Name),
			logger.Int("status", res.Status),
		)
		svcmetrics.WidgetFallbacks.WithLabelValues(ep.Name).Inc()
		res.Kind = models.ResultFallback
	}

	switch res.Kind {
	case models.ResultOK:
		return safeTransform(s, ep, res.Body, transform)
	case models.ResultFallback:
		return fallback(), nil
	default:
		return out, ResultError(res)
	}
}

func (s *Service) invoke(ctx context.Context, token string, ep models.Endpoint, body interface{}) (models.UpstreamResult, error) {
	req := models.UpstreamRequest{
		Endpoint:  ep.Name,
		Method:    ep.Method,
		Timeout:   s.Budget(ep.Timeout),
		Cacheable: ep.Cacheable,
	}
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return models.UpstreamResult{}, xhttp.InternalErrorf("encode %s request", ep.Name).WithError(err)
		}
		req.Body = b
	}
	return s.upstream.Invoke(ctx, token, req), nil
}

func safeTransform[T any](s *Service, ep models.Endpoint, body []byte, transform func(gjson.Result) T) (out T, err error) {
	defer func() {
		if r := recover(); r != nil {
			s.metrics.RecordError("transform")
			s.log.Error("transform panic", logger.String("endpoint", ep.Name), logger.Any("panic", r))
			err = xhttp.TransformError(fmt.Sprint(r))
		}
	}()
	return transform(jsonx.Parse(body)), nil
}
