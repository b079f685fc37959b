// Package delivery defines the contract every transport entry point
// implements, so the composition root can start them uniformly.
package delivery

import "context"

// Delivery is a long-running transport serving requests until shutdown.
type Delivery interface {
	Serve(ctx context.Context) error
}
