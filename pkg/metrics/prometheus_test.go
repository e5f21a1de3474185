package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestRecorderCounts(t *testing.T) {
	r := New(prometheus.NewRegistry())

	r.RecordUpstream("getPriceChart", "ok", 0.2)
	r.RecordUpstream("getPriceChart", "ok", 0.3)
	r.RecordUpstream("getPriceChart", "timeout", 15)
	r.RecordCache(true)
	r.RecordCache(false)
	r.RecordError("transform")

	if got := testutil.ToFloat64(r.upstreamCalls.WithLabelValues("getPriceChart", "ok")); got != 2 {
		t.Fatalf("expected 2 ok calls, got %v", got)
	}
	if got := testutil.ToFloat64(r.upstreamCalls.WithLabelValues("getPriceChart", "timeout")); got != 1 {
		t.Fatalf("expected 1 timeout, got %v", got)
	}
	if got := testutil.ToFloat64(r.cacheLookups.WithLabelValues("hit")); got != 1 {
		t.Fatalf("expected 1 hit, got %v", got)
	}
	if got := testutil.ToFloat64(r.errorsTotal.WithLabelValues("transform")); got != 1 {
		t.Fatalf("expected 1 transform error, got %v", got)
	}
}

func TestRecorderSeparateRegistries(t *testing.T) {
	// constructing twice must not panic on duplicate registration
	_ = New(prometheus.NewRegistry())
	_ = New(prometheus.NewRegistry())
}
