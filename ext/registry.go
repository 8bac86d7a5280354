package ext

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/xraph/worlds"
	"github.com/xraph/worlds/world"
)

// Registry satisfies world.Emitter so it can be attached to world handles
// directly.
var _ world.Emitter = (*Registry)(nil)

// Named entry types pair a hook implementation with the extension name
// captured at registration time. This avoids type-asserting back to
// Extension inside the emit methods.
type worldAddedEntry struct {
	name string
	hook WorldAdded
}

type worldRemovedEntry struct {
	name string
	hook WorldRemoved
}

type worldStartedEntry struct {
	name string
	hook WorldStarted
}

type worldFinishedEntry struct {
	name string
	hook WorldFinished
}

type worldFailedEntry struct {
	name string
	hook WorldFailed
}

type worldStoppedEntry struct {
	name string
	hook WorldStopped
}

// Registry fans lifecycle events out to registered extensions.
// It is safe for concurrent use.
type Registry struct {
	logger *slog.Logger

	mu       sync.RWMutex
	added    []worldAddedEntry
	removed  []worldRemovedEntry
	started  []worldStartedEntry
	finished []worldFinishedEntry
	failed   []worldFailedEntry
	stopped  []worldStoppedEntry
}

// NewRegistry creates an empty extension registry.
func NewRegistry(logger *slog.Logger) *Registry {
	if logger == nil {
		logger = slog.Default()
	}

	return &Registry{logger: logger}
}

// Register adds an extension, wiring up every lifecycle hook it
// implements.
func (r *Registry) Register(e Extension) {
	r.mu.Lock()
	defer r.mu.Unlock()

	name := e.Name()
	if h, ok := e.(WorldAdded); ok {
		r.added = append(r.added, worldAddedEntry{name: name, hook: h})
	}
	if h, ok := e.(WorldRemoved); ok {
		r.removed = append(r.removed, worldRemovedEntry{name: name, hook: h})
	}
	if h, ok := e.(WorldStarted); ok {
		r.started = append(r.started, worldStartedEntry{name: name, hook: h})
	}
	if h, ok := e.(WorldFinished); ok {
		r.finished = append(r.finished, worldFinishedEntry{name: name, hook: h})
	}
	if h, ok := e.(WorldFailed); ok {
		r.failed = append(r.failed, worldFailedEntry{name: name, hook: h})
	}
	if h, ok := e.(WorldStopped); ok {
		r.stopped = append(r.stopped, worldStoppedEntry{name: name, hook: h})
	}
}

// hookErr logs a hook failure. Hook errors never propagate to the world
// or the registry.
func (r *Registry) hookErr(extension, hook string, err error) {
	r.logger.Error("extension hook failed",
		slog.String("extension", extension),
		slog.String("hook", hook),
		slog.String("error", err.Error()),
	)
}

// EmitWorldAdded notifies WorldAdded hooks.
func (r *Registry) EmitWorldAdded(ctx context.Context, id string, w *world.World) {
	r.mu.RLock()
	entries := r.added
	r.mu.RUnlock()

	for _, e := range entries {
		if err := e.hook.OnWorldAdded(ctx, id, w); err != nil {
			r.hookErr(e.name, "OnWorldAdded", err)
		}
	}
}

// EmitWorldRemoved notifies WorldRemoved hooks.
func (r *Registry) EmitWorldRemoved(ctx context.Context, id string) {
	r.mu.RLock()
	entries := r.removed
	r.mu.RUnlock()

	for _, e := range entries {
		if err := e.hook.OnWorldRemoved(ctx, id); err != nil {
			r.hookErr(e.name, "OnWorldRemoved", err)
		}
	}
}

// EmitWorldStarted notifies WorldStarted hooks. Implements world.Emitter.
func (r *Registry) EmitWorldStarted(ctx context.Context, w *world.World) {
	r.mu.RLock()
	entries := r.started
	r.mu.RUnlock()

	for _, e := range entries {
		if err := e.hook.OnWorldStarted(ctx, w); err != nil {
			r.hookErr(e.name, "OnWorldStarted", err)
		}
	}
}

// EmitWorldFinished notifies WorldFinished hooks. Implements world.Emitter.
func (r *Registry) EmitWorldFinished(ctx context.Context, w *world.World, elapsed time.Duration) {
	r.mu.RLock()
	entries := r.finished
	r.mu.RUnlock()

	for _, e := range entries {
		if err := e.hook.OnWorldFinished(ctx, w, elapsed); err != nil {
			r.hookErr(e.name, "OnWorldFinished", err)
		}
	}
}

// EmitWorldFailed notifies WorldFailed hooks. Implements world.Emitter.
func (r *Registry) EmitWorldFailed(ctx context.Context, w *world.World, reason string) {
	r.mu.RLock()
	entries := r.failed
	r.mu.RUnlock()

	for _, e := range entries {
		if err := e.hook.OnWorldFailed(ctx, w, reason); err != nil {
			r.hookErr(e.name, "OnWorldFailed", err)
		}
	}
}

// EmitWorldStopped notifies WorldStopped hooks. Implements world.Emitter.
func (r *Registry) EmitWorldStopped(ctx context.Context, w *world.World, final worlds.State) {
	r.mu.RLock()
	entries := r.stopped
	r.mu.RUnlock()

	for _, e := range entries {
		if err := e.hook.OnWorldStopped(ctx, w, final); err != nil {
			r.hookErr(e.name, "OnWorldStopped", err)
		}
	}
}
