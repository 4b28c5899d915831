package server

// Server is the lifecycle of the running dashboard.
type Server interface {
	// RunServer serves until a stop signal arrives.
	RunServer()

	// Shutdown stops every transport.
	Shutdown()
}
