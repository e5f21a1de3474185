package di

import (
	"fmt"
	"io"
	"net/http"

	"PMTerminal/internal/domain/repository"
	"PMTerminal/internal/handler/api"
	"PMTerminal/internal/service/auth"
	"PMTerminal/internal/service/upstream"
	"PMTerminal/internal/usecase"
	"PMTerminal/pkg/cache"
	"PMTerminal/pkg/config"
	xhttp "PMTerminal/pkg/http"
	"PMTerminal/pkg/logger"
	"PMTerminal/pkg/metrics"
	"PMTerminal/pkg/server"

	"github.com/prometheus/client_golang/prometheus"
)

// ProvideLogger creates the application logger from config.
func ProvideLogger(cfg *config.Config) (*logger.Logger, error) {
	l, err := logger.New(&logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	if err != nil {
		return nil, fmt.Errorf("logger: %w", err)
	}
	return l.With(logger.String("service", "pmterminal"), logger.String("env", cfg.Environment)), nil
}

// ProvideMetrics creates a Prometheus metrics recorder.
func ProvideMetrics(cfg *config.Config) repository.Metrics {
	if !cfg.Metrics.Enabled {
		return repository.NopMetrics{}
	}
	return metrics.New(prometheus.DefaultRegisterer)
}

// ProvideHTTPClient creates the outbound client shared by upstream calls.
// All calls go to one host, so the idle pool is sized per host.
func ProvideHTTPClient(cfg *config.Config) *xhttp.Client {
	tr := http.DefaultTransport.(*http.Transport).Clone()
	if n := cfg.Upstream.MaxIdleConnsPerHost; n > 0 {
		tr.MaxIdleConnsPerHost = n
		if tr.MaxIdleConns < n {
			tr.MaxIdleConns = n
		}
	}
	return xhttp.NewClient(
		xhttp.WithTimeout(cfg.Upstream.MaxTimeout),
		xhttp.WithTransport(tr),
	)
}

// ProvideCache creates the response cache backend. It returns nil when
// caching is disabled.
func ProvideCache(cfg *config.Config) (cache.Service, error) {
	if !cfg.Cache.Enabled {
		return nil, nil
	}
	c := cfg.Cache
	memOpts := []cache.MemoryOption{
		cache.WithMemoryMaxSize(c.MemorySize),
		cache.WithMemoryDefaultTTL(c.TTL),
		cache.WithMemoryCleanup(c.CleanupInterval),
	}

	switch c.Backend {
	case "memory":
		return cache.NewMemoryCache(memOpts...), nil
	case "redis", "layered":
		rc, err := cache.NewRedisCache(
			cache.WithRedisAddr(c.Redis.Addr),
			cache.WithRedisPassword(c.Redis.Password),
			cache.WithRedisDB(c.Redis.DB),
			cache.WithRedisPrefix(c.Redis.Prefix),
			cache.WithRedisPool(c.Redis.PoolSize, c.Redis.MinIdleConns, c.Redis.PoolTimeout),
		)
		if err != nil {
			return nil, fmt.Errorf("redis cache: %w", err)
		}
		if c.Backend == "redis" {
			return rc, nil
		}
		// L1 entries expire sooner so peers' writes become visible
		return cache.NewLayeredCache(rc, c.TTL/2, memOpts...), nil
	default:
		return nil, fmt.Errorf("unknown cache backend %q", c.Backend)
	}
}

// ProvideUpstream creates the upstream invoker, behind the response cache
// when one is configured.
func ProvideUpstream(cfg *config.Config, client *xhttp.Client, c cache.Service, l *logger.Logger, m repository.Metrics) repository.Upstream {
	inv := upstream.NewInvoker(client, cfg.Upstream.BaseURL, cfg.Upstream.MaxTimeout, l, m)
	if c == nil {
		return inv
	}
	return upstream.NewCachingUpstream(inv, c, cfg.Cache.TTL, l, m)
}

// ProvideAuthGate creates the cookie auth gate.
func ProvideAuthGate(cfg *config.Config) *auth.Gate {
	return auth.NewGate(cfg.Auth.TokenCookie, cfg.Upstream.FallbackToken)
}

// ProvideService creates the widget use case service.
func ProvideService(up repository.Upstream, cfg *config.Config, l *logger.Logger, m repository.Metrics) *usecase.Service {
	return usecase.NewService(up, cfg.Upstream.Timeouts, l, m)
}

// ProvideHandler creates the /api handler.
func ProvideHandler(cfg *config.Config, l *logger.Logger, gate *auth.Gate, svc *usecase.Service) *api.Handler {
	return api.NewHandler(l, gate, svc, api.HealthInfo{
		Service:       "pmterminal",
		Environment:   cfg.Environment,
		UpstreamBase:  cfg.Upstream.BaseURL != "",
		FallbackToken: gate.FallbackConfigured(),
		CacheEnabled:  cfg.Cache.Enabled,
		CacheBackend:  cacheBackend(cfg),
	})
}

// ProvideApp creates the application server.
func ProvideApp(cfg *config.Config, l *logger.Logger, h *api.Handler, c cache.Service) *server.App {
	var closers []io.Closer
	if c != nil {
		closers = append(closers, c)
	}
	return server.New(cfg, l, h, closers...)
}

func cacheBackend(cfg *config.Config) string {
	if !cfg.Cache.Enabled {
		return ""
	}
	return cfg.Cache.Backend
}
