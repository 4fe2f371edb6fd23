package configs

import "time"

// HTTP defines configuration for the HTTP server. The Port specifies
// which port the server will bind to.
type HTTP struct {
	// Port is the TCP port the HTTP server will listen on. Defaults to 8080.
	Port uint16 `env:"PORT" envDefault:"8080"`
	// ShutdownTimeout bounds how long in-flight requests may take to drain
	// after a termination signal.
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"5s"`
	// Faucet exposes POST /api/v1/faucet, which mints tokens to any
	// caller. Only enable it for development.
	Faucet bool `env:"FAUCET" envDefault:"false"`
}
