//go:build wireinject
// +build wireinject

package di

import (
	"PMTerminal/pkg/config"
	"PMTerminal/pkg/server"

	"github.com/google/wire"
)

// InitializeApp wires up all dependencies and returns the application.
// Wire will generate the implementation of this function.
func InitializeApp(cfg *config.Config) (*server.App, error) {
	wire.Build(
		// Observability
		ProvideLogger,
		ProvideMetrics,

		// Infrastructure clients
		ProvideHTTPClient,
		ProvideCache,

		// Services
		ProvideUpstream,
		ProvideAuthGate,

		// Use cases
		ProvideService,

		// HTTP
		ProvideHandler,
		ProvideApp,
	)
	return &server.App{}, nil
}
