package upstream

import (
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"PMTerminal/internal/domain/models"
	"PMTerminal/pkg/cache"
)

type countingUpstream struct {
	calls int
	res   models.UpstreamResult
}

func (c *countingUpstream) Invoke(context.Context, string, models.UpstreamRequest) models.UpstreamResult {
	c.calls++
	return c.res
}

func TestCachingUpstreamServesRepeats(t *testing.T) {
	next := &countingUpstream{res: models.UpstreamResult{Kind: models.ResultOK, Status: 200, Body: []byte(`{"a":1}`)}}
	mc := cache.NewMemoryCache()
	defer mc.Close()
	u := NewCachingUpstream(next, mc, time.Minute, nil, nil)

	req := models.UpstreamRequest{Endpoint: "getSeasonalityForecastTable", Body: json.RawMessage(`{"symbol":"X","years":10}`), Cacheable: true}
	first := u.Invoke(context.Background(), "tok", req)
	req.Body = json.RawMessage(`{ "years": 10, "symbol": "X" }`)
	second := u.Invoke(context.Background(), "tok", req)

	if next.calls != 1 {
		t.Fatalf("expected one upstream call, got %d", next.calls)
	}
	if string(first.Body) != string(second.Body) || !second.OK() {
		t.Fatalf("cached result differs: %s vs %s", first.Body, second.Body)
	}
}

func TestCachingUpstreamSeparatesTokens(t *testing.T) {
	next := &countingUpstream{res: models.UpstreamResult{Kind: models.ResultOK, Body: []byte(`{}`)}}
	mc := cache.NewMemoryCache()
	defer mc.Close()
	u := NewCachingUpstream(next, mc, time.Minute, nil, nil)

	req := models.UpstreamRequest{Endpoint: "getPriceChart", Cacheable: true}
	u.Invoke(context.Background(), "a", req)
	u.Invoke(context.Background(), "b", req)
	if next.calls != 2 {
		t.Fatalf("expected per-token entries, got %d calls", next.calls)
	}
}

func TestCachingUpstreamSkipsFailuresAndUncacheable(t *testing.T) {
	next := &countingUpstream{res: models.UpstreamResult{Kind: models.ResultHTTPError, Status: 500}}
	mc := cache.NewMemoryCache()
	defer mc.Close()
	u := NewCachingUpstream(next, mc, time.Minute, nil, nil)

	req := models.UpstreamRequest{Endpoint: "getPriceChart", Cacheable: true}
	u.Invoke(context.Background(), "t", req)
	u.Invoke(context.Background(), "t", req)
	if next.calls != 2 {
		t.Fatalf("errors must not be cached, got %d calls", next.calls)
	}

	next.res = models.UpstreamResult{Kind: models.ResultOK}
	req = models.UpstreamRequest{Endpoint: "insertTabWidget"}
	u.Invoke(context.Background(), "t", req)
	u.Invoke(context.Background(), "t", req)
	if next.calls != 4 {
		t.Fatalf("uncacheable requests must pass through, got %d calls", next.calls)
	}
}

func TestCacheKeyHidesToken(t *testing.T) {
	key := CacheKey("secret-token", models.UpstreamRequest{Endpoint: "getPriceChart"})
	if strings.Contains(key, "secret") {
		t.Fatalf("raw token leaked into key %q", key)
	}
}
