// Package workers runs the background jobs of the dashboard server.
package workers

import "context"

// Worker is a background job. Run blocks until ctx is cancelled or the job
// has nothing left to do.
type Worker interface {
	Run(ctx context.Context)
}

// Pinger is an upstream that can be health-checked.
type Pinger interface {
	Ping(ctx context.Context) error
}

// StatusSetter receives the outcome of each check. The gRPC health handler
// satisfies it.
type StatusSetter interface {
	SetServing(service string, serving bool)
}
