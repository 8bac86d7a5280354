package registry

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/xraph/worlds"
	"github.com/xraph/worlds/ext"
	"github.com/xraph/worlds/world"
)

// Registry is a concurrent mapping from identifier to world handle.
// All methods are safe for concurrent use; map operations are mutually
// exclusive, but per-world operations on different entries never contend
// beyond the brief lookup.
type Registry struct {
	logger     *slog.Logger
	extensions *ext.Registry

	mu     sync.RWMutex
	worlds map[string]*world.World
}

// New creates an empty registry.
func New(opts ...Option) *Registry {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	r := &Registry{
		logger:     cfg.logger,
		extensions: ext.NewRegistry(cfg.logger),
		worlds:     make(map[string]*world.World),
	}
	for _, e := range cfg.extensions {
		r.extensions.Register(e)
	}

	return r
}

// Add registers w under id. The identifier is trimmed and validated
// (non-empty, [A-Za-z0-9._-]); a duplicate fails with ErrWorldExists and
// leaves the original entry untouched. The world adopts the identifier
// as its display name and the registry's extension fan-out, unless it
// already has its own.
func (r *Registry) Add(id string, w *world.World) error {
	id = normalizeID(id)
	if err := validateID(id); err != nil {
		return err
	}

	r.mu.Lock()
	if _, exists := r.worlds[id]; exists {
		r.mu.Unlock()

		return fmt.Errorf("%w: %q", worlds.ErrWorldExists, id)
	}
	r.worlds[id] = w
	r.mu.Unlock()

	w.Attach(id, r.extensions)
	r.extensions.EmitWorldAdded(context.Background(), id, w)

	r.logger.Debug("world registered",
		slog.String("id", id),
		slog.String("world_id", w.ID().String()),
	)

	return nil
}

// Del removes the entry for id. Fails with ErrWorldNotFound if absent and
// with ErrInvalidState while the world is running.
func (r *Registry) Del(id string) error {
	id = normalizeID(id)

	r.mu.Lock()
	w, ok := r.worlds[id]
	if !ok {
		r.mu.Unlock()

		return fmt.Errorf("%w: %q", worlds.ErrWorldNotFound, id)
	}
	if w.Progress().State == worlds.StateRunning {
		r.mu.Unlock()

		return fmt.Errorf("%w: cannot delete running world %q", worlds.ErrInvalidState, id)
	}
	delete(r.worlds, id)
	r.mu.Unlock()

	r.extensions.EmitWorldRemoved(context.Background(), id)

	r.logger.Debug("world removed", slog.String("id", id))

	return nil
}

// Get returns the world registered under id.
func (r *Registry) Get(id string) (*world.World, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	w, ok := r.worlds[normalizeID(id)]

	return w, ok
}

// List returns a sorted snapshot of the registered identifiers.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make([]string, 0, len(r.worlds))
	for id := range r.worlds {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// StartAll starts every entry currently in StateReady. Entries in any
// other state are skipped silently: bulk start is best-effort, not
// transactional, and partial success is expected.
func (r *Registry) StartAll() {
	started := 0
	for _, w := range r.snapshot() {
		if w.Progress().State != worlds.StateReady {
			continue
		}
		if err := w.Start(); err != nil {
			// Lost the race to another starter.
			continue
		}
		started++
	}

	r.logger.Debug("bulk start", slog.Int("started", started))
}

// Exec starts exactly the named entry. Fails with ErrWorldNotFound if
// absent; start errors from the world (already running, terminal)
// propagate unchanged.
func (r *Registry) Exec(id string) error {
	w, ok := r.Get(id)
	if !ok {
		return fmt.Errorf("%w: %q", worlds.ErrWorldNotFound, id)
	}

	return w.Start()
}

// StopAll sends the cooperative stop signal to every running entry.
// Registry-initiated mass-stops terminate worlds in StateKilled.
// Best-effort and non-blocking: it does not wait for worlds to exit.
func (r *Registry) StopAll() {
	signalled := 0
	for _, w := range r.snapshot() {
		if w.Progress().State != worlds.StateRunning {
			continue
		}
		if err := w.Kill(); err != nil {
			continue
		}
		signalled++
	}

	r.logger.Debug("bulk stop", slog.Int("signalled", signalled))
}

// Kill sends the cooperative stop signal to exactly the named running
// entry, which will terminate in StateKilled once its unit of work
// observes the cancellation. Fails with ErrWorldNotFound if absent and
// with ErrInvalidState if not running.
func (r *Registry) Kill(id string) error {
	w, ok := r.Get(id)
	if !ok {
		return fmt.Errorf("%w: %q", worlds.ErrWorldNotFound, id)
	}

	return w.Kill()
}

// Progress returns a non-blocking lifecycle snapshot for the named entry.
func (r *Registry) Progress(id string) (worlds.Progress, error) {
	w, ok := r.Get(id)
	if !ok {
		return worlds.Progress{}, fmt.Errorf("%w: %q", worlds.ErrWorldNotFound, id)
	}

	return w.Progress(), nil
}

// Await blocks until the named entry reaches a terminal state and returns
// the final snapshot. Fails with ErrWorldNotFound if absent and with
// ErrNotStarted if the world was never started.
func (r *Registry) Await(ctx context.Context, id string) (worlds.Progress, error) {
	w, ok := r.Get(id)
	if !ok {
		return worlds.Progress{}, fmt.Errorf("%w: %q", worlds.ErrWorldNotFound, id)
	}

	return w.Await(ctx)
}

// AwaitAll joins every started world, so outstanding goroutines are never
// leaked past teardown. It returns the first failure observed: a world
// that terminated in StateFailed yields its *world.FailureError. Worlds
// still in StateReady are skipped.
func (r *Registry) AwaitAll(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)
	for _, w := range r.snapshot() {
		if w.Progress().State == worlds.StateReady {
			continue
		}
		g.Go(func() error {
			snap, err := w.Await(ctx)
			if err != nil {
				return err
			}
			if snap.State == worlds.StateFailed {
				return &world.FailureError{World: w.Name(), Reason: snap.Reason}
			}

			return nil
		})
	}

	return g.Wait()
}

// Result blocks until the named entry reaches a terminal state and
// returns its value as T. See world.Result for the retrieval contract.
//
// This is a package-level generic function because Go does not allow
// generic methods on non-generic receiver types.
func Result[T any](ctx context.Context, r *Registry, id string) (T, error) {
	w, ok := r.Get(id)
	if !ok {
		var zero T

		return zero, fmt.Errorf("%w: %q", worlds.ErrWorldNotFound, id)
	}

	return world.Result[T](ctx, w)
}

// snapshot returns the current set of worlds without holding the lock
// during per-world operations.
func (r *Registry) snapshot() []*world.World {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ws := make([]*world.World, 0, len(r.worlds))
	for _, w := range r.worlds {
		ws = append(ws, w)
	}

	return ws
}
