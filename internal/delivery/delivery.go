// Package delivery defines the interface every transport front end
// implements. Servers are collected into an Fx group and started together.
package delivery

import "context"

// Delivery is a long-running server surface (HTTP, worker, ...).
type Delivery interface {
	// Serve blocks until the server stops.
	Serve(ctx context.Context) error
}
