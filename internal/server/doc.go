// Package server runs the HTTP and gRPC transports of a process and shuts
// them down on a signal or context cancellation.
package server
