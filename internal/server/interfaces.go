package server

// Server is returned by [NewServer]. RunServer blocks until a stop signal
// arrives or a transport exits; Shutdown stops the HTTP and gRPC listeners
// that were configured.
type Server interface {
	RunServer()
	Shutdown()
}
