package world

import (
	"context"
	"fmt"
	"reflect"

	"github.com/xraph/worlds"
)

// Result blocks until w reaches a terminal state and returns its value as
// T. The stored value is held behind a dynamically-typed cell; retrieval
// performs a checked downcast and fails with a *TypeError on mismatch,
// never an unchecked reinterpretation.
//
// Failed worlds yield a *FailureError carrying the captured reason.
// Stopped and killed worlds yield the partial value the unit of work
// returned when it observed the stop signal. A world that was never
// started yields ErrNotStarted. Result is read-many: repeated calls
// return the same value.
func Result[T any](ctx context.Context, w *World) (T, error) {
	var zero T

	snap, err := w.Await(ctx)
	if err != nil {
		return zero, err
	}

	if snap.State == worlds.StateFailed {
		return zero, &FailureError{World: w.Name(), Reason: snap.Reason}
	}

	v := w.value()
	typed, ok := v.(T)
	if !ok {
		return zero, &TypeError{
			World: w.Name(),
			Want:  reflect.TypeFor[T]().String(),
			Got:   fmt.Sprintf("%T", v),
		}
	}

	return typed, nil
}

// FailureError reports that a world terminated in StateFailed.
type FailureError struct {
	World  string
	Reason string
}

func (e *FailureError) Error() string {
	return fmt.Sprintf("worlds: world %q failed: %s", e.World, e.Reason)
}

// TypeError reports a typed result retrieval whose type parameter does
// not match the value the unit of work produced.
type TypeError struct {
	World string
	Want  string
	Got   string
}

func (e *TypeError) Error() string {
	return fmt.Sprintf("worlds: result type mismatch for world %q: want %s, got %s", e.World, e.Want, e.Got)
}
