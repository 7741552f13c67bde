// Package providers contains dependency injection providers for the Ask Your Crush server.
package providers

import (
	"github.com/samber/do/v2"

	"github.com/askyourcrush/askyourcrush-server/internal/config"
	"github.com/askyourcrush/askyourcrush-server/internal/logger"
)

// ProvideConfig provides the application configuration.
func ProvideConfig(i do.Injector) (*config.Config, error) {
	return config.LoadConfig()
}

// ProvideLogger provides the structured logger.
func ProvideLogger(i do.Injector) (*logger.Logger, error) {
	cfg := do.MustInvoke[*config.Config](i)

	log := logger.New(logger.Config{
		Level:       logger.ParseLevel(cfg.Logger.Level),
		AddSource:   cfg.App.Environment == "development",
		Environment: cfg.App.Environment,
		Service:     serviceName,
	})

	log.Info("Starting Ask Your Crush server",
		"version", Version,
		"environment", cfg.App.Environment,
		"log_level", cfg.Logger.Level,
		"data_path", cfg.Storage.DataPath,
		"public_url", cfg.Invite.PublicURL,
	)

	return log, nil
}
