package server

import "context"

// Server defines the common lifecycle contract for transport servers managed
// by this package.
type Server interface {
	// RunServer starts serving requests and blocks until a termination
	// signal arrives and every transport has stopped.
	RunServer() error

	// Shutdown gracefully stops the server within ctx.
	Shutdown(ctx context.Context) error
}

// transport is a single listener managed by the composite server.
type transport interface {
	name() string
	serve() error
	shutdown(ctx context.Context) error
}
