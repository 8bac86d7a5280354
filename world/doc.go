// Package world implements the per-task handle: one unit of work, its
// backing goroutine, and its status/result cell.
//
// A World is built from a typed function with [From], registered with a
// registry (or used standalone), started with Start, and observed with
// Progress (non-blocking) or Await (blocking). The typed result is
// retrieved with the package-level generic [Result].
//
// The unit of work receives a context that doubles as the cooperative
// stop signal: Stop and Kill cancel it, and nothing more. Work that never
// observes its context keeps running; there is no forced preemption.
//
// Panics inside the unit of work are contained at the goroutine boundary
// and surface as StateFailed with a descriptive reason. A failing world
// never unwinds into its registry or affects other worlds.
package world
