package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"testing"
	"time"

	"PMTerminal/internal/domain/models"
	"PMTerminal/pkg/config"
	xhttp "PMTerminal/pkg/http"

	"github.com/tidwall/gjson"
)

type fakeUpstream struct {
	results map[string]models.UpstreamResult
	calls   []models.UpstreamRequest
	tokens  []string
}

func (f *fakeUpstream) Invoke(_ context.Context, token string, req models.UpstreamRequest) models.UpstreamResult {
	f.calls = append(f.calls, req)
	f.tokens = append(f.tokens, token)
	if res, ok := f.results[req.Endpoint]; ok {
		return res
	}
	return models.UpstreamResult{Kind: models.ResultOK, Status: 200, Body: []byte(`{}`)}
}

func ok(body string) models.UpstreamResult {
	return models.UpstreamResult{Kind: models.ResultOK, Status: 200, Body: []byte(body)}
}

func newTestService(up *fakeUpstream) *Service {
	s := NewService(up, config.Default().Upstream.Timeouts, nil, nil)
	s.now = func() time.Time { return time.Date(2025, 4, 4, 12, 0, 0, 0, time.UTC) }
	return s
}

func appStatus(t *testing.T, err error) int {
	t.Helper()
	var appErr *xhttp.AppError
	if !errors.As(err, &appErr) {
		t.Fatalf("expected AppError, got %v", err)
	}
	return appErr.Status
}

func TestCotChartFallsBackOnHTTPError(t *testing.T) {
	up := &fakeUpstream{results: map[string]models.UpstreamResult{
		CotChartEndpoint.Name: {Kind: models.ResultHTTPError, Status: 500, Body: []byte("boom")},
	}}
	res, err := newTestService(up).CotChart(context.Background(), "tok", &models.CotRequest{Symbol: "EUR", Weeks: 8})
	if err != nil {
		t.Fatalf("expected placeholder data, got %v", err)
	}
	if !res.IsMock || len(res.Points) != 8 {
		t.Fatalf("unexpected fallback payload %+v", res)
	}
	if res.Points[7].Date != "2025-04-01" {
		t.Fatalf("expected last report on the preceding Tuesday, got %s", res.Points[7].Date)
	}
}

func TestCotChartTimeoutIsNotMasked(t *testing.T) {
	up := &fakeUpstream{results: map[string]models.UpstreamResult{
		CotChartEndpoint.Name: {Kind: models.ResultTimeout, Budget: 15 * time.Second},
	}}
	_, err := newTestService(up).CotChart(context.Background(), "tok", &models.CotRequest{Symbol: "EUR"})
	if appStatus(t, err) != http.StatusRequestTimeout {
		t.Fatalf("expected 408, got %v", err)
	}
	if !strings.Contains(strings.ToLower(err.Error()), "timeout") {
		t.Fatalf("expected timeout message, got %q", err.Error())
	}
}

func TestSeasonalityPerformanceFallback(t *testing.T) {
	up := &fakeUpstream{results: map[string]models.UpstreamResult{
		SeasonalityPerformanceEndpoint.Name: {Kind: models.ResultHTTPError, Status: 404},
	}}
	res, err := newTestService(up).SeasonalityPerformance(context.Background(), "tok", &models.SeasonalityRequest{Symbol: "X"})
	if err != nil || !res.IsMock || len(res.Points) != 12 {
		t.Fatalf("unexpected result %+v %v", res, err)
	}
}

func TestHTTPErrorWithoutFallback(t *testing.T) {
	up := &fakeUpstream{results: map[string]models.UpstreamResult{
		DistributionStatsEndpoint.Name: {Kind: models.ResultHTTPError, Status: 502, Body: []byte("secret stack trace")},
	}}
	_, err := newTestService(up).DistributionStats(context.Background(), "tok", &models.DistributionRequest{Symbol: "X"})
	if appStatus(t, err) != 502 {
		t.Fatalf("expected upstream status passed through")
	}
	var appErr *xhttp.AppError
	errors.As(err, &appErr)
	if appErr.Message != "External API returned 502" {
		t.Fatalf("unexpected message %q", appErr.Message)
	}
}

func TestNetworkErrorIs503(t *testing.T) {
	up := &fakeUpstream{results: map[string]models.UpstreamResult{
		PriceChartEndpoint.Name: {Kind: models.ResultNetworkError, Message: "connection refused"},
	}}
	_, err := newTestService(up).PriceChart(context.Background(), "tok", &models.PriceChartRequest{Symbol: "X"})
	if appStatus(t, err) != http.StatusServiceUnavailable {
		t.Fatalf("expected 503")
	}
}

func TestTransformPanicBecomes500(t *testing.T) {
	s := newTestService(&fakeUpstream{})
	_, err := call(context.Background(), s, "tok", PriceChartEndpoint, nil,
		func(gjson.Result) int { panic("bad shape") }, nil)
	if appStatus(t, err) != http.StatusInternalServerError {
		t.Fatalf("expected 500")
	}
	var appErr *xhttp.AppError
	errors.As(err, &appErr)
	if appErr.Message != "bad shape" {
		t.Fatalf("expected panic message surfaced, got %q", appErr.Message)
	}
}

func TestRequestCarriesBudgetAndBody(t *testing.T) {
	up := &fakeUpstream{}
	s := newTestService(up)
	_, _ = s.DistributionStats(context.Background(), "tok", &models.DistributionRequest{Symbol: "EURUSD", Timeframe: "daily", Years: 5})
	_, _ = s.CotPositioning(context.Background(), "tok", &models.CotRequest{Symbol: "EURUSD", Weeks: 52})
	_, _ = s.UserTabs(context.Background(), "fb")

	if up.calls[0].Timeout != 30*time.Second || up.calls[1].Timeout != 15*time.Second || up.calls[2].Timeout != 10*time.Second {
		t.Fatalf("unexpected budgets %s %s %s", up.calls[0].Timeout, up.calls[1].Timeout, up.calls[2].Timeout)
	}
	var body map[string]interface{}
	if err := json.Unmarshal(up.calls[0].Body, &body); err != nil || body["symbol"] != "EURUSD" {
		t.Fatalf("unexpected forwarded body %s", up.calls[0].Body)
	}
	if up.calls[2].Body != nil || up.calls[2].Method != http.MethodGet {
		t.Fatalf("expected bodyless GET for tabs, got %+v", up.calls[2])
	}
	if !up.calls[0].Cacheable || up.calls[2].Cacheable {
		t.Fatalf("unexpected cacheable flags")
	}
}

func TestAverageRangeSelectsEndpointByMode(t *testing.T) {
	up := &fakeUpstream{}
	s := newTestService(up)
	for _, mode := range []string{"daily", "weekly", "monthly"} {
		res, err := s.AverageRange(context.Background(), "tok", &models.AverageRangeRequest{Symbol: "X", Mode: mode})
		if err != nil || res.Mode != mode {
			t.Fatalf("mode %s: %+v %v", mode, res, err)
		}
	}
	want := []string{"getAverageDailyHistogram", "getAverageWeeklyHistogram", "getAverageMonthlyHistogram"}
	for i, w := range want {
		if up.calls[i].Endpoint != w {
			t.Fatalf("call %d: got %s want %s", i, up.calls[i].Endpoint, w)
		}
	}
}

func TestNotificationsPartialFailure(t *testing.T) {
	up := &fakeUpstream{results: map[string]models.UpstreamResult{
		NotificationsEndpoint.Name:    {Kind: models.ResultTimeout, Budget: time.Second},
		NewsEndpoint.Name:             ok(`[{"id":"a","title":"Fed","publishedAt":"2025-04-04T10:00:00Z"}]`),
		EconomicCalendarEndpoint.Name: {Kind: models.ResultNetworkError, Message: "dns"},
	}}
	feed, err := newTestService(up).Notifications(context.Background(), "tok", &models.NotificationsRequest{Limit: 50})
	if err != nil {
		t.Fatalf("expected partial feed, got %v", err)
	}
	if len(feed) != 1 || feed[0].ID != "a" || !feed[0].IsNew {
		t.Fatalf("unexpected feed %+v", feed)
	}
}

func TestNotificationsAllFail(t *testing.T) {
	fail := models.UpstreamResult{Kind: models.ResultHTTPError, Status: 401}
	up := &fakeUpstream{results: map[string]models.UpstreamResult{
		NotificationsEndpoint.Name:    fail,
		NewsEndpoint.Name:             fail,
		EconomicCalendarEndpoint.Name: fail,
	}}
	_, err := newTestService(up).Notifications(context.Background(), "tok", &models.NotificationsRequest{Limit: 50})
	if appStatus(t, err) != 401 {
		t.Fatalf("expected first source error surfaced")
	}
}
