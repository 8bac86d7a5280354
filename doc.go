// Package worlds provides a concurrent task-handle registry for Go.
// A world is a named unit of work that runs on its own goroutine; callers
// register worlds under string identifiers, start them individually or in
// bulk, poll their lifecycle state, and block for a strongly-typed result.
//
// Worlds is designed as a library, not a service. Construct a registry,
// register worlds built from ordinary Go functions, and retrieve results
// with compile-time typed accessors.
//
// # Quick Start
//
//	r := registry.New()
//
//	w := world.From(func(ctx context.Context) (int, error) {
//	    return 100, nil
//	})
//
//	_ = r.Add("answer", w)
//	_ = r.Exec("answer")
//
//	n, err := registry.Result[int](context.Background(), r, "answer")
//
// # Architecture
//
// The root package defines the shared vocabulary: lifecycle states,
// progress snapshots, and sentinel errors. The world package owns the
// per-task state machine, result cell, and fault boundary. The registry
// package maps caller-supplied identifiers to world handles. Lifecycle
// extensions (ext), OpenTelemetry metrics (observability), and optional
// work middleware (middleware) layer on top.
//
// Cancellation is cooperative: stopping a world cancels the context its
// unit of work receives, and nothing more. A unit of work that never
// observes its context keeps running; there is no forced preemption.
//
// All world handles carry a TypeID (type-prefixed, K-sortable,
// UUIDv7-based identifiers) for logging and tracing.
package worlds
