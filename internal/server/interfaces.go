package server

import "context"

// Server defines the lifecycle contract of the cipher server.
type Server interface {
	// RunServer serves requests until SIGINT, SIGTERM or SIGQUIT arrives and
	// then shuts down gracefully.
	RunServer()

	// Run serves requests until ctx is done. It returns early with the
	// listener error if the server cannot start.
	Run(ctx context.Context) error

	// Shutdown gracefully stops the server and frees associated resources.
	Shutdown()
}
