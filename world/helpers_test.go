package world_test

import (
	"io"
	"log/slog"
)

// discardLogger silences expected fault-boundary logging in tests that
// exercise failing worlds.
func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
