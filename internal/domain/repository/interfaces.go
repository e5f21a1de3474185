package repository

import (
	"context"

	"PMTerminal/internal/domain/models"
)

// Upstream performs one classified call to the market-data API.
type Upstream interface {
	Invoke(ctx context.Context, token string, req models.UpstreamRequest) models.UpstreamResult
}

type Metrics interface {
	RecordUpstream(endpoint, outcome string, seconds float64)
	RecordError(kind string)
	RecordCache(hit bool)
}

// NopMetrics discards everything.
type NopMetrics struct{}

func (NopMetrics) RecordUpstream(string, string, float64) {}
func (NopMetrics) RecordError(string)                     {}
func (NopMetrics) RecordCache(bool)                       {}
