// Package middleware provides composable middleware for world execution.
// Middleware wraps the unit of work synchronously and can modify its run
// (log, add tracing, bound the run context, etc.).
//
// The middleware types themselves (world.Middleware, world.Handler,
// world.Chain) are declared in the world package, which applies the
// chain; this package holds the implementations.
//
// The fault boundary is deliberately not middleware: panic containment is
// unconditional in the world runner and cannot be opted out of.
package middleware
