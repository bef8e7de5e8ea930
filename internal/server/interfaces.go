package server

import "context"

// Server defines the common lifecycle contract for transport servers managed
// by this package.
//
// Implementations block in [RunServer] until they are stopped and release
// resources in [Shutdown].
type Server interface {
	// RunServer starts serving requests and blocks until the server stops.
	// A server stopped by Shutdown returns nil.
	RunServer(ctx context.Context) error

	// Shutdown gracefully stops the server, waiting for in-flight requests
	// until ctx is done.
	Shutdown(ctx context.Context) error
}
