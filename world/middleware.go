package world

import (
	"context"
	"time"

	"github.com/xraph/worlds"
)

// Handler is the terminal function that executes the unit of work.
type Handler func(ctx context.Context) error

// Middleware wraps a Handler with cross-cutting logic. It receives the
// run context, the world being executed, and the next handler to call.
// Middleware MUST call next to continue the chain (unless
// short-circuiting on error). Implementations live in the middleware
// package; the types are declared here because the world runner applies
// the chain.
type Middleware func(ctx context.Context, w *World, next Handler) error

// Chain composes multiple middleware into a single Middleware.
// Middleware are applied right-to-left: the first middleware in the
// list is the outermost wrapper.
//
// Example: Chain(logging, tracing, timeout) executes as:
//
//	logging → tracing → timeout → work
func Chain(mws ...Middleware) Middleware {
	return func(ctx context.Context, w *World, next Handler) error {
		// Build the chain from the end backwards.
		h := next
		for i := len(mws) - 1; i >= 0; i-- {
			mw := mws[i]
			prev := h
			h = func(ctx context.Context) error {
				return mw(ctx, w, prev)
			}
		}

		return h(ctx)
	}
}

// Emitter receives world lifecycle notifications. ext.Registry provides
// the fan-out implementation; the interface is declared here so the world
// package does not import ext (same layering as the rest of the module:
// the wrapped package declares, the outer package implements).
type Emitter interface {
	EmitWorldStarted(ctx context.Context, w *World)
	EmitWorldFinished(ctx context.Context, w *World, elapsed time.Duration)
	EmitWorldFailed(ctx context.Context, w *World, reason string)
	EmitWorldStopped(ctx context.Context, w *World, final worlds.State)
}
