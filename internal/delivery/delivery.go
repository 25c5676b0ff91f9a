// Package delivery defines the common contract for transport servers.
package delivery

import "context"

// Delivery is implemented by every server the application can run. Serve
// blocks until the server stops; shutdown is driven through Fx lifecycle
// hooks.
type Delivery interface {
	Serve(ctx context.Context) error
}
