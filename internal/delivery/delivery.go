// Package delivery contains the inbound adapters of the service.
package delivery

import "context"

// Delivery is a server that runs until its context ends or it is shut down.
type Delivery interface {
	Serve(ctx context.Context) error
}
