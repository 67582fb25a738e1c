// Package di provides dependency injection configuration for the PrepStock server.
package di

import (
	"github.com/samber/do/v2"

	"github.com/prepstock/prepstock-server/internal/config"
	"github.com/prepstock/prepstock-server/internal/di/providers"
	"github.com/prepstock/prepstock-server/internal/logger"
	"github.com/prepstock/prepstock-server/internal/scan"
	"github.com/prepstock/prepstock-server/internal/service"
)

// NewContainer creates and configures the DI container with all providers.
func NewContainer() *do.RootScope {
	injector := do.New()

	// Core infrastructure
	do.Provide(injector, providers.ProvideConfig)
	do.Provide(injector, providers.ProvideLogger)

	// Database layer
	do.Provide(injector, providers.ProvideSSEManager)
	do.Provide(injector, providers.ProvideStore)

	// Search layer
	do.Provide(injector, providers.ProvideSearchIndex)

	// Business services
	do.Provide(injector, providers.ProvideInventoryService)
	do.Provide(injector, providers.ProvideScanGate)
	do.Provide(injector, providers.ProvideScanService)

	// Server
	do.Provide(injector, providers.ProvideHTTPServer)

	return injector
}

// Bootstrap initializes all services and returns handles for lifecycle management.
// This triggers lazy initialization of all core services.
func Bootstrap(injector *do.RootScope) error {
	// Invoke core services to trigger initialization
	_ = do.MustInvoke[*config.Config](injector)
	_ = do.MustInvoke[*logger.Logger](injector)
	_ = do.MustInvoke[*providers.SSEManagerHandle](injector)
	_ = do.MustInvoke[*providers.StoreHandle](injector)
	_ = do.MustInvoke[*providers.SearchIndexHandle](injector)

	// Business services
	_ = do.MustInvoke[*service.InventoryService](injector)
	_ = do.MustInvoke[*scan.Gate](injector)
	_ = do.MustInvoke[*service.ScanService](injector)

	// Server
	_ = do.MustInvoke[*providers.HTTPServerHandle](injector)

	return nil
}
