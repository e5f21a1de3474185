package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	once sync.Once

	WidgetLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "pmt",
			Subsystem: "widget",
			Name:      "latency_seconds",
			Help:      "Latency of widget endpoints, upstream call and transform included",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 15, 30},
		},
		[]string{"endpoint"},
	)

	WidgetErrors = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "pmt",
			Subsystem: "widget",
			Name:      "errors_total",
			Help:      "Failed widget requests by endpoint and status",
		},
		[]string{"endpoint", "status"},
	)

	WidgetFallbacks = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "pmt",
			Subsystem: "widget",
			Name:      "fallbacks_total",
			Help:      "Placeholder payloads served instead of upstream errors",
		},
		[]string{"endpoint"},
	)
)

func Register() {
	once.Do(func() {
		prometheus.MustRegister(WidgetLatency, WidgetErrors, WidgetFallbacks)
	})
}
