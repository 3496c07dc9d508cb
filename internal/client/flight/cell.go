// Package flight provides a one-slot single-flight cell.
package flight

import (
	"context"
	"sync/atomic"

	"golang.org/x/sync/singleflight"
)

const cellKey = "cell"

// Cell runs at most one call at a time. Callers arriving while a call is in flight
// wait for it and share its result instead of starting their own.
// The zero value is ready to use.
type Cell[T any] struct {
	group    singleflight.Group
	inflight atomic.Bool
}

// Do runs fn, or joins the call already in flight. shared reports whether the
// result was produced for more than one caller. The call itself is detached from
// ctx cancellation so an impatient first caller cannot fail everyone else; ctx only
// bounds how long this caller waits.
func (c *Cell[T]) Do(ctx context.Context, fn func(context.Context) (T, error)) (val T, shared bool, err error) {
	detached := context.WithoutCancel(ctx)

	ch := c.group.DoChan(cellKey, func() (any, error) {
		c.inflight.Store(true)
		defer c.inflight.Store(false)

		return fn(detached)
	})

	select {
	case res := <-ch:
		if res.Err != nil {
			return val, res.Shared, res.Err
		}

		return res.Val.(T), res.Shared, nil
	case <-ctx.Done():
		return val, false, ctx.Err()
	}
}

// InFlight reports whether a call is currently running.
func (c *Cell[T]) InFlight() bool {
	return c.inflight.Load()
}
