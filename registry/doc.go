// Package registry maps caller-supplied string identifiers to world
// handles and exposes per-id and bulk lifecycle operations.
//
// A Registry is an explicitly constructed object, never a process-wide
// singleton: callers needing independent task groups construct more than
// one. Identifiers are unique within a registry; insertion fails on a
// duplicate and removal is refused while the world is running.
//
// Bulk operations (StartAll, StopAll) are best-effort and non-blocking:
// entries not in an eligible state are skipped silently, and partial
// success is expected, not an error. The only blocking operations are
// Await, AwaitAll, and typed Result retrieval.
package registry
