// Package workers provides abstractions for managing and running
// background workers in the application.
// It defines the Worker interface and a Workers aggregate that allows
// running multiple workers in a unified way.
package workers

import "context"

// Worker is the interface that must be implemented by any background worker.
//
// Run blocks until ctx is cancelled or the work is done.
type Worker interface {
	Run(ctx context.Context)
}

// Counter reports how many records a storage holds. Every store.Map
// satisfies it.
type Counter interface {
	Len(ctx context.Context) (int, error)
}
