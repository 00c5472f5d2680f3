// Package delivery defines the contract every transport front end satisfies.
package delivery

import "context"

// Delivery is a long-running transport (an HTTP server). Serve blocks until
// the delivery stops or fails.
type Delivery interface {
	Serve(ctx context.Context) error
}
