package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"time"

	"PMTerminal/internal/domain/models"
	"PMTerminal/internal/domain/repository"
	"PMTerminal/pkg/cache"
	"PMTerminal/pkg/logger"
)

// CachingUpstream serves repeated cacheable calls from a byte cache. Only OK
// results are stored; keys never contain the raw token.
type CachingUpstream struct {
	next    repository.Upstream
	cache   cache.Service
	ttl     time.Duration
	log     *logger.Logger
	metrics repository.Metrics
}

func NewCachingUpstream(next repository.Upstream, c cache.Service, ttl time.Duration, l *logger.Logger, m repository.Metrics) *CachingUpstream {
	if l == nil {
		l = logger.Nop()
	}
	if m == nil {
		m = repository.NopMetrics{}
	}
	return &CachingUpstream{next: next, cache: c, ttl: ttl, log: l, metrics: m}
}

func (u *CachingUpstream) Invoke(ctx context.Context, token string, req models.UpstreamRequest) models.UpstreamResult {
	if !req.Cacheable {
		return u.next.Invoke(ctx, token, req)
	}

	key := CacheKey(token, req)
	if body, err := u.cache.Get(ctx, key); err == nil {
		u.metrics.RecordCache(true)
		return models.UpstreamResult{Kind: models.ResultOK, Status: 200, Body: body}
	} else if !errors.Is(err, cache.ErrCacheMiss) {
		u.log.Warn("cache get failed", logger.String("endpoint", req.Endpoint), logger.Error(err))
	}
	u.metrics.RecordCache(false)

	res := u.next.Invoke(ctx, token, req)
	if res.OK() {
		if err := u.cache.Set(ctx, key, res.Body, u.ttl); err != nil {
			u.log.Warn("cache set failed", logger.String("endpoint", req.Endpoint), logger.Error(err))
		}
	}
	return res
}

// CacheKey derives the key for (endpoint, token, body).
func CacheKey(token string, req models.UpstreamRequest) string {
	return cache.GenerateKeyWithParams("upstream", req.Endpoint, cache.HashKey(token), cache.HashKey(normalizeBody(req.Body)))
}

// normalizeBody re-encodes JSON so key order and whitespace do not matter.
func normalizeBody(b json.RawMessage) string {
	if len(bytes.TrimSpace(b)) == 0 {
		return ""
	}
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return string(b)
	}
	out, err := json.Marshal(v)
	if err != nil {
		return string(b)
	}
	return string(out)
}
