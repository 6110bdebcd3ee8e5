package server

// Server runs the vault API and its background workers as one unit.
type Server interface {
	// RunServer serves until SIGINT, SIGTERM or SIGQUIT and then shuts down.
	// Workers stop together with the HTTP server.
	RunServer()

	// Shutdown stops accepting requests and waits for in-flight ones.
	Shutdown()
}
