package providers

import "time"

const (
	// shutdownTimeout is the maximum time to wait for graceful shutdown of services.
	shutdownTimeout = 30 * time.Second

	serviceName = "askyourcrush-server"
)

// Version is the server build version, set at link time.
var Version = "dev"
