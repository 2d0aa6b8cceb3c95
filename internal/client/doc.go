// Package client implements the interactive client application runtime.
//
// It wires the terminal UI flows, the application services, the local store
// and the outbound HTTP clients into a single process lifecycle.
package client

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run starts the client application and blocks until exit.
	Run() error
}
