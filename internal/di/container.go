// Package di provides dependency injection configuration for the Ask Your Crush server.
package di

import (
	"github.com/samber/do/v2"

	"github.com/askyourcrush/askyourcrush-server/internal/config"
	"github.com/askyourcrush/askyourcrush-server/internal/di/providers"
	"github.com/askyourcrush/askyourcrush-server/internal/logger"
	"github.com/askyourcrush/askyourcrush-server/internal/notify"
	"github.com/askyourcrush/askyourcrush-server/internal/service"
)

// NewContainer creates and configures the DI container with all providers.
func NewContainer() *do.RootScope {
	injector := do.New()

	// Core infrastructure
	do.Provide(injector, providers.ProvideConfig)
	do.Provide(injector, providers.ProvideLogger)
	do.Provide(injector, providers.ProvideTelemetry)

	// Database layer
	do.Provide(injector, providers.ProvideStore)

	// Notifications
	do.Provide(injector, providers.ProvideMailer)

	// Business services
	do.Provide(injector, providers.ProvideInviteService)

	// Server
	do.Provide(injector, providers.ProvideHTTPServer)

	return injector
}

// Bootstrap initializes all services and returns handles for lifecycle management.
// This triggers lazy initialization of all core services.
func Bootstrap(injector *do.RootScope) error {
	if _, err := do.Invoke[*config.Config](injector); err != nil {
		return err
	}
	_ = do.MustInvoke[*logger.Logger](injector)
	_ = do.MustInvoke[*providers.TelemetryHandle](injector)

	if _, err := do.Invoke[*providers.StoreHandle](injector); err != nil {
		return err
	}
	_ = do.MustInvoke[*notify.Mailer](injector)
	_ = do.MustInvoke[*service.InviteService](injector)

	// Server
	if _, err := do.Invoke[*providers.HTTPServerHandle](injector); err != nil {
		return err
	}

	return nil
}
