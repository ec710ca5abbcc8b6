// Package delivery defines the contract every transport surface satisfies.
package delivery

import "context"

// Delivery is a long-running transport surface started by the application.
type Delivery interface {
	Serve(ctx context.Context) error
}
