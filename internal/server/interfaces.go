package server

import "context"

// Server defines the lifecycle contract of the transport servers managed by
// this package.
type Server interface {
	// RunServer serves until SIGINT, SIGTERM or SIGQUIT arrives, then shuts
	// down gracefully.
	RunServer() error

	// Run serves until ctx is cancelled or a listener fails. Every listener is
	// shut down before Run returns.
	Run(ctx context.Context) error

	// Shutdown gracefully stops serving within the deadline of ctx.
	Shutdown(ctx context.Context) error
}
