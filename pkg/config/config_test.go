package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(p, []byte(body), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return p
}

func TestLoadAppliesDefaults(t *testing.T) {
	p := writeConfig(t, "environment: test\nupstream:\n  base_url: http://upstream.local\n")
	c, err := Load(p)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if c.Upstream.Timeouts.Standard != 15*time.Second || c.Upstream.Timeouts.Heavy != 30*time.Second {
		t.Fatalf("unexpected timeouts %+v", c.Upstream.Timeouts)
	}
	if c.Auth.TokenCookie != "pmt_auth_token" {
		t.Fatalf("unexpected token cookie %q", c.Auth.TokenCookie)
	}
	if c.Cache.Enabled {
		t.Fatalf("cache must be opt-in")
	}
	if c.Cache.CleanupInterval != time.Minute || c.Cache.Redis.PoolSize != 10 || c.Cache.Redis.PoolTimeout != 5*time.Second {
		t.Fatalf("unexpected cache pool defaults %+v", c.Cache)
	}
}

func TestLoadParsesDurations(t *testing.T) {
	p := writeConfig(t, "environment: test\nupstream:\n  base_url: http://upstream.local\n  timeouts:\n    fast: 2s\n    heavy: 1m\n")
	c, err := Load(p)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if c.Upstream.Timeouts.Fast != 2*time.Second || c.Upstream.Timeouts.Heavy != time.Minute {
		t.Fatalf("unexpected timeouts %+v", c.Upstream.Timeouts)
	}
}

func TestLoadWithEnvOverrides(t *testing.T) {
	p := writeConfig(t, "environment: test\nupstream:\n  base_url: http://upstream.local\n")
	t.Setenv("UPSTREAM_API_URL", "https://override.local/")
	t.Setenv("UPSTREAM_FALLBACK_TOKEN", "dev-token")
	t.Setenv("PORT", "8088")
	c, err := LoadWithEnv(p)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if c.Upstream.BaseURL != "https://override.local/" || c.Upstream.FallbackToken != "dev-token" || c.Server.Port != 8088 {
		t.Fatalf("overrides not applied: %+v", c.Upstream)
	}
}

func TestValidate(t *testing.T) {
	c := Default()
	if err := c.Validate(); err == nil {
		t.Fatalf("expected error for missing base url")
	}
	c.Upstream.BaseURL = "ftp://nope"
	if err := c.Validate(); err == nil {
		t.Fatalf("expected error for non-http base url")
	}
	c.Upstream.BaseURL = "http://ok.local"
	if err := c.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	c.Cache.Backend = "memcached"
	if err := c.Validate(); err == nil {
		t.Fatalf("expected error for unknown cache backend")
	}
}
