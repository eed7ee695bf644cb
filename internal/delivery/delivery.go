// Package delivery defines the interface every transport-facing server
// implements, so main can serve them uniformly.
package delivery

import "context"

// Delivery is a long-running server surface (HTTP now, others later).
type Delivery interface {
	// Serve blocks, serving requests until the server is stopped.
	Serve(ctx context.Context) error
}
