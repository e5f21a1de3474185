package server

import (
	"context"
	"testing"

	"PMTerminal/pkg/config"

	"github.com/labstack/echo/v4"
)

type noRoutes struct{}

func (noRoutes) RegisterRoutes(*echo.Echo) {}

type countingCloser struct{ n int }

func (c *countingCloser) Close() error {
	c.n++
	return nil
}

func TestRunContextShutsDownAndCloses(t *testing.T) {
	cfg := config.Default()
	cfg.Server.Port = 0
	cfg.Metrics.Enabled = false

	closer := &countingCloser{}
	app := New(cfg, nil, noRoutes{}, closer, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := app.RunContext(ctx); err != nil {
		t.Fatalf("run: %v", err)
	}
	if closer.n != 1 {
		t.Fatalf("expected closer to run once, ran %d times", closer.n)
	}
}
