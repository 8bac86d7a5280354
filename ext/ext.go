package ext

import (
	"context"
	"time"

	"github.com/xraph/worlds"
	"github.com/xraph/worlds/world"
)

// Extension is the base interface all extensions must implement.
type Extension interface {
	// Name returns a unique human-readable name for the extension.
	Name() string
}

// WorldAdded is called after a world is registered under an identifier.
type WorldAdded interface {
	OnWorldAdded(ctx context.Context, id string, w *world.World) error
}

// WorldRemoved is called after a world is removed from the registry.
type WorldRemoved interface {
	OnWorldRemoved(ctx context.Context, id string) error
}

// WorldStarted is called when a world's backing goroutine is launched.
type WorldStarted interface {
	OnWorldStarted(ctx context.Context, w *world.World) error
}

// WorldFinished is called after a world's unit of work returns normally.
type WorldFinished interface {
	OnWorldFinished(ctx context.Context, w *world.World, elapsed time.Duration) error
}

// WorldFailed is called when a world's unit of work panics or returns an
// error. The reason is the captured failure description.
type WorldFailed interface {
	OnWorldFailed(ctx context.Context, w *world.World, reason string) error
}

// WorldStopped is called when a world exits after observing a cooperative
// stop request. final is StateStopped or StateKilled depending on which
// call path set the flag.
type WorldStopped interface {
	OnWorldStopped(ctx context.Context, w *world.World, final worlds.State) error
}
