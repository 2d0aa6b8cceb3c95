// Package workers provides abstractions for managing and running
// background workers in the application.
// It defines the Worker interface and a Workers aggregate that allows
// running multiple workers in a unified way.
package workers

// Worker is the interface that must be implemented by any background worker.
//
// Run starts the worker's execution and is expected to spawn goroutines
// internally. Stop cancels the background work and blocks until it has
// fully exited; it is safe to call when the worker is not running.
type Worker interface {
	Run()
	Stop()
}
