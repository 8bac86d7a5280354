// Package ext defines the extension system for worlds.
// Extensions are notified of lifecycle events (world added, started,
// finished, failed, stopped) and can react to them: logging, metrics,
// bookkeeping, etc.
//
// Each lifecycle hook is a separate interface so extensions opt in only
// to the events they care about. Hook errors are logged and never
// propagated: a misbehaving extension must not destabilize a world, the
// same containment policy that applies to the unit of work itself.
//
// Hooks run synchronously on the world's goroutine before waiters are
// released, so they must return promptly and must never block on the
// world they observe.
package ext
