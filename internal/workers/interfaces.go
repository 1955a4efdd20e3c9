// Package workers runs the background jobs of a process.
package workers

import "context"

// Worker is a background job. Run starts it and returns without blocking;
// Stop cancels it and waits until it has exited.
type Worker interface {
	Run(ctx context.Context)
	Stop()
}
