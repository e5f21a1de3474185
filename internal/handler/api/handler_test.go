package api

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"PMTerminal/internal/service/auth"
	"PMTerminal/internal/service/upstream"
	"PMTerminal/internal/usecase"
	"PMTerminal/pkg/config"
	xhttp "PMTerminal/pkg/http"

	"github.com/labstack/echo/v4"
)

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *string         `json:"error"`
}

type recordedCall struct {
	path, auth, body string
}

type fakeAPI struct {
	mu    sync.Mutex
	calls []recordedCall
	srv   *httptest.Server
}

func newFakeAPI(t *testing.T, handler http.HandlerFunc) *fakeAPI {
	t.Helper()
	f := &fakeAPI{}
	f.srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		f.mu.Lock()
		f.calls = append(f.calls, recordedCall{path: r.URL.Path, auth: r.Header.Get("Authorization"), body: string(b)})
		f.mu.Unlock()
		handler(w, r)
	}))
	t.Cleanup(f.srv.Close)
	return f
}

func newTestEcho(base string, timeouts config.Timeouts) *echo.Echo {
	gate := auth.NewGate("pmt_auth_token", "fallback-token")
	inv := upstream.NewInvoker(nil, base, time.Minute, nil, nil)
	svc := usecase.NewService(inv, timeouts, nil, nil)
	h := NewHandler(nil, gate, svc, HealthInfo{Service: "pmterminal", Environment: "test", UpstreamBase: true})
	return xhttp.NewServer(h, xhttp.WithMetrics(false, "")).Echo()
}

func defaultTimeouts() config.Timeouts {
	return config.Default().Upstream.Timeouts
}

func do(e *echo.Echo, method, path, body string, cookies ...*http.Cookie) (*httptest.ResponseRecorder, envelope) {
	var rd io.Reader
	if body != "" {
		rd = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, rd)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	var env envelope
	_ = json.Unmarshal(rec.Body.Bytes(), &env)
	return rec, env
}

func session() *http.Cookie {
	return &http.Cookie{Name: "pmt_auth_token", Value: "user-token"}
}

func TestDistributionStatsRequiresAuth(t *testing.T) {
	api := newFakeAPI(t, func(w http.ResponseWriter, r *http.Request) { _, _ = w.Write([]byte(`{}`)) })
	e := newTestEcho(api.srv.URL, defaultTimeouts())

	rec, env := do(e, http.MethodPost, "/api/distribution/stats", `{"symbol":"EURUSD"}`)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	if env.Success || env.Error == nil || *env.Error != "Authentication required" || string(env.Data) != "null" {
		t.Fatalf("unexpected envelope %s", rec.Body.String())
	}
	if len(api.calls) != 0 {
		t.Fatalf("upstream must not be called without a token")
	}
}

func TestInsertTabWidgetUsesFallbackToken(t *testing.T) {
	api := newFakeAPI(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"data":{"widgetId":"w1"}}`))
	})
	e := newTestEcho(api.srv.URL, defaultTimeouts())

	rec, env := do(e, http.MethodPost, "/api/tabs/widgets", `{"tabId":"t1","widgetType":"cot-chart"}`)
	if rec.Code != http.StatusOK || !env.Success || env.Error != nil {
		t.Fatalf("expected 200 success, got %d %s", rec.Code, rec.Body.String())
	}
	if string(env.Data) != `{"widgetId":"w1"}` {
		t.Fatalf("unexpected data %s", env.Data)
	}
	if len(api.calls) != 1 || api.calls[0].auth != "Bearer fallback-token" || api.calls[0].path != "/insertTabWidget" {
		t.Fatalf("unexpected upstream call %+v", api.calls)
	}
}

func TestTimeoutReturns408(t *testing.T) {
	api := newFakeAPI(t, func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-time.After(2 * time.Second):
		case <-r.Context().Done():
		}
	})
	timeouts := defaultTimeouts()
	timeouts.Standard = 100 * time.Millisecond
	e := newTestEcho(api.srv.URL, timeouts)

	start := time.Now()
	rec, env := do(e, http.MethodPost, "/api/cot/positioning", `{"symbol":"EUR"}`, session())
	elapsed := time.Since(start)

	if rec.Code != http.StatusRequestTimeout {
		t.Fatalf("expected 408, got %d %s", rec.Code, rec.Body.String())
	}
	if env.Success || env.Error == nil || !strings.Contains(strings.ToLower(*env.Error), "timeout") {
		t.Fatalf("unexpected envelope %s", rec.Body.String())
	}
	if elapsed > time.Second {
		t.Fatalf("timeout not bounded: %s", elapsed)
	}
}

func TestUpstreamErrorIsGeneric(t *testing.T) {
	api := newFakeAPI(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"trace":"db password wrong"}`))
	})
	e := newTestEcho(api.srv.URL, defaultTimeouts())

	rec, env := do(e, http.MethodPost, "/api/price/chart", `{"symbol":"EURUSD"}`, session())
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected upstream status, got %d", rec.Code)
	}
	if *env.Error != "External API returned 500" || strings.Contains(rec.Body.String(), "password") {
		t.Fatalf("upstream internals leaked: %s", rec.Body.String())
	}
}

func TestCotChartMockFallback(t *testing.T) {
	api := newFakeAPI(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})
	e := newTestEcho(api.srv.URL, defaultTimeouts())

	rec, env := do(e, http.MethodPost, "/api/cot/chart", `{"symbol":"EUR","weeks":4}`, session())
	if rec.Code != http.StatusOK || !env.Success {
		t.Fatalf("expected placeholder 200, got %d %s", rec.Code, rec.Body.String())
	}
	var chart struct {
		Points []json.RawMessage `json:"points"`
		IsMock bool              `json:"isMock"`
	}
	if err := json.Unmarshal(env.Data, &chart); err != nil || !chart.IsMock || len(chart.Points) != 4 {
		t.Fatalf("unexpected chart %s", env.Data)
	}
}

func TestNetworkFailureReturns503(t *testing.T) {
	api := newFakeAPI(t, func(w http.ResponseWriter, r *http.Request) {})
	base := api.srv.URL
	api.srv.Close()
	e := newTestEcho(base, defaultTimeouts())

	rec, env := do(e, http.MethodPost, "/api/seasonality/forecast", `{"symbol":"EURUSD"}`, session())
	if rec.Code != http.StatusServiceUnavailable || env.Success {
		t.Fatalf("expected 503, got %d %s", rec.Code, rec.Body.String())
	}
}

func TestValidationFailure(t *testing.T) {
	api := newFakeAPI(t, func(w http.ResponseWriter, r *http.Request) { _, _ = w.Write([]byte(`{}`)) })
	e := newTestEcho(api.srv.URL, defaultTimeouts())

	rec, env := do(e, http.MethodPost, "/api/distribution/average-range", `{"symbol":"EURUSD","mode":"hourly"}`, session())
	if rec.Code != http.StatusBadRequest || env.Success || env.Error == nil {
		t.Fatalf("expected 400, got %d %s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(*env.Error, "mode") {
		t.Fatalf("expected field name in message, got %q", *env.Error)
	}
	if len(api.calls) != 0 {
		t.Fatalf("invalid requests must not reach upstream")
	}
}

func TestRiskReversalsEndToEnd(t *testing.T) {
	api := newFakeAPI(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"MRR":{"datetime":["04/04/2025"],"value":[1.234]},"MO":{"datetime":["04/04/2025"],"value":[2.345]}}`))
	})
	e := newTestEcho(api.srv.URL, defaultTimeouts())

	rec, env := do(e, http.MethodPost, "/api/fx-options/risk-reversals", `{"symbol":"EURUSD"}`, session())
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if string(env.Data) != `[{"date":"Apr 4","put":1.234,"call":2.345}]` {
		t.Fatalf("unexpected data %s", env.Data)
	}
	if !strings.Contains(api.calls[0].body, `"tenor":"1M"`) {
		t.Fatalf("expected defaults forwarded, got %s", api.calls[0].body)
	}
}

func TestNotificationsQuery(t *testing.T) {
	api := newFakeAPI(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/getNews":
			_, _ = w.Write([]byte(`[{"id":"1","title":"a"},{"id":"2","title":"b"},{"id":"3","title":"c"}]`))
		default:
			_, _ = w.Write([]byte(`[]`))
		}
	})
	e := newTestEcho(api.srv.URL, defaultTimeouts())

	rec, env := do(e, http.MethodGet, "/api/notifications?limit=2", "", session())
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d %s", rec.Code, rec.Body.String())
	}
	var items []map[string]interface{}
	_ = json.Unmarshal(env.Data, &items)
	if len(items) != 2 {
		t.Fatalf("expected limit applied, got %d", len(items))
	}
	if len(api.calls) != 3 {
		t.Fatalf("expected three feed calls, got %d", len(api.calls))
	}
}

func TestHealth(t *testing.T) {
	e := newTestEcho("http://127.0.0.1:1", defaultTimeouts())
	rec, env := do(e, http.MethodGet, "/api/health", "")
	if rec.Code != http.StatusOK || !env.Success {
		t.Fatalf("unexpected health response %d %s", rec.Code, rec.Body.String())
	}
}

func TestUnknownRouteIsEnvelope(t *testing.T) {
	e := newTestEcho("http://127.0.0.1:1", defaultTimeouts())
	rec, env := do(e, http.MethodGet, "/api/nope", "")
	if rec.Code != http.StatusNotFound || env.Success || env.Error == nil {
		t.Fatalf("expected 404 envelope, got %d %s", rec.Code, rec.Body.String())
	}
}

func TestPreferencesRequireSession(t *testing.T) {
	api := newFakeAPI(t, func(w http.ResponseWriter, r *http.Request) { _, _ = w.Write([]byte(`{"theme":"dark"}`)) })
	e := newTestEcho(api.srv.URL, defaultTimeouts())

	rec, _ := do(e, http.MethodGet, "/api/preferences", "")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without session, got %d", rec.Code)
	}

	rec, env := do(e, http.MethodGet, "/api/preferences", "", session())
	if rec.Code != http.StatusOK || string(env.Data) != `{"theme":"dark"}` {
		t.Fatalf("unexpected response %d %s", rec.Code, rec.Body.String())
	}
	if len(api.calls) != 1 || api.calls[0].auth != "Bearer user-token" {
		t.Fatalf("unexpected upstream calls %+v", api.calls)
	}
}

func TestDeleteTabWidgetFromQuery(t *testing.T) {
	api := newFakeAPI(t, func(w http.ResponseWriter, r *http.Request) { _, _ = w.Write([]byte(`{"deleted":true}`)) })
	e := newTestEcho(api.srv.URL, defaultTimeouts())

	rec, env := do(e, http.MethodDelete, "/api/tabs/widgets?tabId=t1&widgetId=w9", "", session())
	if rec.Code != http.StatusOK || !env.Success {
		t.Fatalf("unexpected response %d %s", rec.Code, rec.Body.String())
	}
	if len(api.calls) != 1 || api.calls[0].path != "/deleteTabWidget" || api.calls[0].auth != "Bearer user-token" {
		t.Fatalf("unexpected upstream calls %+v", api.calls)
	}
	if !strings.Contains(api.calls[0].body, `"widgetId":"w9"`) {
		t.Fatalf("widget id not forwarded: %s", api.calls[0].body)
	}
}
