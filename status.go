package worlds

import "time"

// State represents the lifecycle state of a world.
type State string

const (
	// StateReady means the world is registered but has not been started.
	StateReady State = "ready"
	// StateRunning means the backing goroutine is executing the unit of work.
	StateRunning State = "running"
	// StateFinished means the unit of work returned normally.
	StateFinished State = "finished"
	// StateFailed means the unit of work panicked or returned an error.
	StateFailed State = "failed"
	// StateStopped means the world observed a cooperative stop request.
	StateStopped State = "stopped"
	// StateKilled means the world observed a registry-initiated kill request.
	StateKilled State = "killed"
)

// Terminal reports whether s is a final state. Terminal states never
// transition again.
func (s State) Terminal() bool {
	switch s {
	case StateFinished, StateFailed, StateStopped, StateKilled:
		return true
	}
	return false
}

// Progress is a point-in-time snapshot of a world's lifecycle.
// It is safe to copy and retains no reference to the world.
type Progress struct {
	// State is the lifecycle state at snapshot time.
	State State

	// Reason describes the failure. Non-empty only when State is StateFailed.
	Reason string

	// StartedAt is when the backing goroutine was launched.
	// Zero if the world has not been started.
	StartedAt time.Time

	// FinishedAt is when the world reached a terminal state.
	// Zero if the world is not terminal.
	FinishedAt time.Time
}
