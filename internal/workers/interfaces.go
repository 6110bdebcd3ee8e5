// Package workers provides abstractions for managing and running
// background workers in the application.
// It defines the Worker interface and a Workers aggregate that allows
// running multiple workers in a unified way.
package workers

import "context"

// Worker is the interface that must be implemented by any background worker.
//
// Run must not block: implementations start their own goroutine and stop it
// when ctx is cancelled.
type Worker interface {
	Run(ctx context.Context)
}

// Sweepable is anything holding expiring entries that can be reclaimed.
// cache.Store satisfies it.
type Sweepable interface {
	Sweep() int
}
