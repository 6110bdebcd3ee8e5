// Package server wires and runs the vault's HTTP server together with its
// background workers, including startup, signal handling, and graceful
// shutdown.
package server
