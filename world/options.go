package world

import "log/slog"

// Option configures a World at construction time.
type Option func(*World)

// WithName sets the world's display name used in logs, traces, and
// errors. Worlds registered without a name adopt their registry
// identifier.
func WithName(name string) Option {
	return func(w *World) { w.name = name }
}

// WithLogger sets the logger for the world's lifecycle and fault-boundary
// logging. Defaults to slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(w *World) {
		if logger != nil {
			w.logger = logger
		}
	}
}

// WithEmitter sets the lifecycle emitter. Worlds registered without one
// adopt the registry's extension fan-out.
func WithEmitter(em Emitter) Option {
	return func(w *World) { w.emitter = em }
}

// WithMiddleware appends middleware applied around the unit of work, in
// order (first is outermost).
func WithMiddleware(mws ...Middleware) Option {
	return func(w *World) { w.mws = append(w.mws, mws...) }
}
