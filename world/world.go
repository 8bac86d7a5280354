package world

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime/debug"
	"sync"
	"time"

	"github.com/xraph/worlds"
	"github.com/xraph/worlds/id"
)

// runFunc is the type-erased unit of work. The typed function passed to
// From is converted to a runFunc at construction time by closing over the
// typed call (the registry stays homogeneous while results stay typed).
type runFunc func(ctx context.Context) (any, error)

// World owns one unit of work, its backing goroutine, and its
// status/result cell. Create one with From or FromFunc; the zero value is
// not usable.
//
// All methods are safe for concurrent use.
type World struct {
	id     id.WorldID
	logger *slog.Logger
	mws    []Middleware
	run    runFunc

	mu         sync.Mutex
	name       string
	emitter    Emitter
	state      worlds.State
	reason     string
	stopTo     worlds.State // terminal label recorded by the first stop request
	cancel     context.CancelFunc
	result     any
	startedAt  time.Time
	finishedAt time.Time

	// done is closed after the result and terminal state are in place.
	done chan struct{}
}

// From creates a World from a typed unit of work. The function runs on a
// dedicated goroutine once Start is called; its context is cancelled when
// the world is stopped or killed. Retrieve the value with [Result].
//
// This is a package-level generic function because Go does not allow
// generic methods on non-generic receiver types.
func From[T any](fn func(ctx context.Context) (T, error), opts ...Option) *World {
	w := newWorld(opts...)
	w.run = func(ctx context.Context) (any, error) {
		v, err := fn(ctx)
		return v, err
	}

	return w
}

// FromFunc creates a World from a unit of work with no meaningful return
// value. The stored result is struct{}{}.
func FromFunc(fn func(ctx context.Context) error, opts ...Option) *World {
	return From(func(ctx context.Context) (struct{}, error) {
		return struct{}{}, fn(ctx)
	}, opts...)
}

func newWorld(opts ...Option) *World {
	w := &World{
		id:     id.NewWorldID(),
		logger: slog.Default(),
		state:  worlds.StateReady,
		done:   make(chan struct{}),
	}
	for _, opt := range opts {
		opt(w)
	}

	return w
}

// ID returns the world's unique handle identifier.
func (w *World) ID() id.WorldID { return w.id }

// Name returns the world's display name. Empty until set via WithName or
// adopted from the registry identifier at registration time.
func (w *World) Name() string {
	w.mu.Lock()
	defer w.mu.Unlock()

	return w.name
}

// Attach assigns a display name and lifecycle emitter to a world that
// does not yet have them. The registry calls this when the world is
// registered; explicit WithName/WithEmitter options take precedence.
func (w *World) Attach(name string, em Emitter) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.name == "" {
		w.name = name
	}
	if w.emitter == nil {
		w.emitter = em
	}
}

// Start launches the backing goroutine. Valid only from StateReady: a
// second Start is rejected with ErrInvalidState, never silently ignored
// (a silent retry would double-spawn). The world is observably
// StateRunning before Start returns.
func (w *World) Start() error {
	w.mu.Lock()
	if w.state != worlds.StateReady {
		state := w.state
		w.mu.Unlock()

		return fmt.Errorf("%w: cannot start world in state %q", worlds.ErrInvalidState, state)
	}

	ctx, cancel := context.WithCancel(context.Background())
	w.cancel = cancel
	w.state = worlds.StateRunning
	w.startedAt = time.Now().UTC()
	emitter := w.emitter
	w.mu.Unlock()

	w.logger.Debug("world starting",
		slog.String("world_id", w.id.String()),
		slog.String("world", w.Name()),
	)
	if emitter != nil {
		emitter.EmitWorldStarted(context.Background(), w)
	}

	go w.runBody(ctx)

	return nil
}

// Stop requests a cooperative stop: the run context is cancelled and the
// world terminates in StateStopped once the unit of work returns. Valid
// only while StateRunning. Non-blocking and advisory: work that never
// observes its context keeps running.
func (w *World) Stop() error { return w.requestStop(worlds.StateStopped) }

// Kill requests a cooperative stop that terminates the world in
// StateKilled. The mechanism is identical to Stop; only the terminal
// label differs. Registry-initiated stops use this path.
func (w *World) Kill() error { return w.requestStop(worlds.StateKilled) }

func (w *World) requestStop(target worlds.State) error {
	w.mu.Lock()
	if w.state != worlds.StateRunning {
		state := w.state
		w.mu.Unlock()

		return fmt.Errorf("%w: cannot stop world in state %q", worlds.ErrInvalidState, state)
	}
	if w.stopTo == "" {
		// The first request decides the terminal label.
		w.stopTo = target
	}
	cancel := w.cancel
	w.mu.Unlock()

	cancel()

	w.logger.Debug("world stop requested",
		slog.String("world_id", w.id.String()),
		slog.String("world", w.Name()),
		slog.String("target", string(target)),
	)

	return nil
}

// Progress returns a non-blocking snapshot of the world's lifecycle.
// Safe to call from any state, concurrently with Start and Stop.
func (w *World) Progress() worlds.Progress {
	w.mu.Lock()
	defer w.mu.Unlock()

	return worlds.Progress{
		State:      w.state,
		Reason:     w.reason,
		StartedAt:  w.startedAt,
		FinishedAt: w.finishedAt,
	}
}

// Await blocks until the world reaches a terminal state and returns the
// final snapshot. Calling Await on a world that was never started fails
// with ErrNotStarted rather than blocking forever. The wait is bounded by
// ctx. Await is read-many: repeated calls return the same snapshot.
func (w *World) Await(ctx context.Context) (worlds.Progress, error) {
	w.mu.Lock()
	started := w.state != worlds.StateReady
	w.mu.Unlock()

	if !started {
		return worlds.Progress{}, worlds.ErrNotStarted
	}

	select {
	case <-w.done:
		return w.Progress(), nil
	case <-ctx.Done():
		return worlds.Progress{}, ctx.Err()
	}
}

// runBody is the backing goroutine. It runs the unit of work through the
// middleware chain inside the fault boundary, then publishes the result
// and terminal state.
func (w *World) runBody(ctx context.Context) {
	start := time.Now()

	var value any
	terminal := func(ctx context.Context) error {
		v, err := w.run(ctx)
		value = v

		return err
	}

	handler := terminal
	if len(w.mws) > 0 {
		chain := Chain(w.mws...)
		handler = func(ctx context.Context) error {
			return chain(ctx, w, terminal)
		}
	}

	err := w.contain(ctx, handler)
	w.finish(value, err, time.Since(start))
}

// contain is the fault boundary at the goroutine entry point. Panics are
// converted to errors and logged with a stack trace; they never cross the
// goroutine boundary.
func (w *World) contain(ctx context.Context, h Handler) (retErr error) {
	defer func() {
		if r := recover(); r != nil {
			w.logger.Error("world panicked",
				slog.String("world_id", w.id.String()),
				slog.String("world", w.Name()),
				slog.Any("panic", r),
				slog.String("stack", string(debug.Stack())),
			)
			retErr = fmt.Errorf("panic: %v", r)
		}
	}()

	return h(ctx)
}

// finish stores the result and publishes the terminal state. The result
// write happens strictly before the terminal state becomes observable, so
// no reader can see a terminal snapshot with an unwritten result.
func (w *World) finish(value any, err error, elapsed time.Duration) {
	now := time.Now().UTC()

	w.mu.Lock()
	w.result = value
	w.finishedAt = now

	final := worlds.StateFinished
	switch {
	case err != nil && !(w.stopTo != "" && isCancellation(err)):
		final = worlds.StateFailed
		w.reason = err.Error()
	case w.stopTo != "":
		final = w.stopTo
	}
	w.state = final
	reason := w.reason
	emitter := w.emitter
	w.mu.Unlock()

	// Emit before releasing waiters so an Await return implies lifecycle
	// hooks have run. Hooks must not block on the world they observe.
	defer close(w.done)

	ctx := context.Background()
	switch final {
	case worlds.StateFailed:
		w.logger.Warn("world failed",
			slog.String("world_id", w.id.String()),
			slog.String("world", w.Name()),
			slog.Duration("elapsed", elapsed),
			slog.String("reason", reason),
		)
		if emitter != nil {
			emitter.EmitWorldFailed(ctx, w, reason)
		}
	case worlds.StateFinished:
		w.logger.Debug("world finished",
			slog.String("world_id", w.id.String()),
			slog.String("world", w.Name()),
			slog.Duration("elapsed", elapsed),
		)
		if emitter != nil {
			emitter.EmitWorldFinished(ctx, w, elapsed)
		}
	default:
		w.logger.Info("world stopped",
			slog.String("world_id", w.id.String()),
			slog.String("world", w.Name()),
			slog.Duration("elapsed", elapsed),
			slog.String("state", string(final)),
		)
		if emitter != nil {
			emitter.EmitWorldStopped(ctx, w, final)
		}
	}
}

// value returns the stored result. Call only after the done channel is
// closed.
func (w *World) value() any {
	w.mu.Lock()
	defer w.mu.Unlock()

	return w.result
}

// isCancellation reports whether err is a context cancellation. A stopped
// world that returns its context error exited voluntarily and is not a
// failure.
func isCancellation(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
