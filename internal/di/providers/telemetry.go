package providers

import (
	"context"

	"github.com/samber/do/v2"

	"github.com/askyourcrush/askyourcrush-server/internal/config"
	"github.com/askyourcrush/askyourcrush-server/internal/logger"
	"github.com/askyourcrush/askyourcrush-server/internal/telemetry"
)

// TelemetryHandle flushes pending spans on shutdown.
type TelemetryHandle struct {
	shutdown func(context.Context) error
}

// Shutdown implements do.Shutdownable.
func (h *TelemetryHandle) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return h.shutdown(ctx)
}

// ProvideTelemetry installs the global tracer provider when tracing is configured.
func ProvideTelemetry(i do.Injector) (*TelemetryHandle, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*logger.Logger](i)

	shutdown, err := telemetry.Setup(context.Background(), telemetry.Config{
		Endpoint:       cfg.Telemetry.Endpoint,
		Enabled:        cfg.Telemetry.Enabled,
		ServiceName:    serviceName,
		ServiceVersion: Version,
	})
	if err != nil {
		return nil, err
	}

	if cfg.Telemetry.Enabled && cfg.Telemetry.Endpoint != "" {
		log.Info("Tracing enabled", "endpoint", cfg.Telemetry.Endpoint)
	}

	return &TelemetryHandle{shutdown: shutdown}, nil
}
