package server

import "context"

// Server runs the transports of a process.
type Server interface {
	// RunServer serves until ctx is cancelled, a termination signal arrives
	// or a transport fails. The transports are then shut down and the
	// registered shutdown hooks run. It returns the transport failure, if
	// any.
	RunServer(ctx context.Context) error

	// Shutdown stops all transports, waiting at most until ctx is done.
	Shutdown(ctx context.Context)

	// OnShutdown registers fn to run after the transports stopped. Hooks
	// run in registration order.
	OnShutdown(fn func(ctx context.Context))
}

type transport interface {
	name() string
	serve() error
	shutdown(ctx context.Context)
}
