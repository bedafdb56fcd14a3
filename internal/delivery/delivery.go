// Package delivery defines the long-running entry points started by the binaries.
package delivery

import "context"

// Delivery is a server or loop that runs until its context ends or it fails.
type Delivery interface {
	Serve(ctx context.Context) error
}
