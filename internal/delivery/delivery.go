// Package delivery defines the contract shared by the process entrypoints.
package delivery

import "context"

// Delivery is a long-running serving surface (HTTP API, worker endpoint).
type Delivery interface {
	Serve(ctx context.Context) error
}
