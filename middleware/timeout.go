package middleware

import (
	"context"
	"time"

	"github.com/xraph/worlds/world"
)

// Timeout returns middleware that bounds the run context with a deadline.
// Cancellation stays advisory: the unit of work must still observe its
// context, and a world whose deadline expires before a stop was requested
// terminates in StateFailed with the deadline error. A non-positive
// duration disables the bound.
func Timeout(d time.Duration) world.Middleware {
	return func(ctx context.Context, w *world.World, next world.Handler) error {
		if d <= 0 {
			return next(ctx)
		}

		ctx, cancel := context.WithTimeout(ctx, d)
		defer cancel()

		return next(ctx)
	}
}
