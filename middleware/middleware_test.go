package middleware_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/xraph/worlds"
	"github.com/xraph/worlds/middleware"
	"github.com/xraph/worlds/world"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestLogging_RecordsStartAndCompletion(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	w := world.From(func(_ context.Context) (int, error) { return 1, nil },
		world.WithName("logged"),
		world.WithMiddleware(middleware.Logging(logger)),
	)
	runThrough(t, w)

	out := buf.String()
	if !strings.Contains(out, "world run started") {
		t.Error("missing start log line")
	}
	if !strings.Contains(out, "world run completed") {
		t.Error("missing completion log line")
	}
	if !strings.Contains(out, "logged") {
		t.Error("log lines missing world name")
	}
}

func TestLogging_RecordsFailure(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	w := world.From(func(_ context.Context) (int, error) {
		return 0, errors.New("kaput")
	},
		world.WithLogger(discardLogger()),
		world.WithMiddleware(middleware.Logging(logger)),
	)
	runThrough(t, w)

	out := buf.String()
	if !strings.Contains(out, "world run failed") {
		t.Error("missing failure log line")
	}
	if !strings.Contains(out, "kaput") {
		t.Error("failure log line missing error")
	}
}

func TestTimeout_FailsSlowWork(t *testing.T) {
	w := world.From(func(ctx context.Context) (int, error) {
		select {
		case <-ctx.Done():
			return 0, ctx.Err()
		case <-time.After(5 * time.Second):
			return 1, nil
		}
	},
		world.WithLogger(discardLogger()),
		world.WithMiddleware(middleware.Timeout(20*time.Millisecond)),
	)
	runThrough(t, w)

	snap := w.Progress()
	if snap.State != worlds.StateFailed {
		t.Fatalf("state = %q, want %q (deadline without a stop request is a failure)", snap.State, worlds.StateFailed)
	}
	if !strings.Contains(snap.Reason, "deadline") {
		t.Errorf("Reason = %q, want a deadline error", snap.Reason)
	}
}

func TestTimeout_FastWorkUnaffected(t *testing.T) {
	w := world.From(func(_ context.Context) (int, error) { return 42, nil },
		world.WithMiddleware(middleware.Timeout(time.Second)),
	)
	runThrough(t, w)

	if got := w.Progress().State; got != worlds.StateFinished {
		t.Errorf("state = %q, want %q", got, worlds.StateFinished)
	}
}

func TestTimeout_NonPositiveDisabled(t *testing.T) {
	w := world.From(func(ctx context.Context) (int, error) {
		if _, ok := ctx.Deadline(); ok {
			return 0, errors.New("unexpected deadline")
		}
		return 1, nil
	}, world.WithMiddleware(middleware.Timeout(0)))
	runThrough(t, w)

	if got := w.Progress().State; got != worlds.StateFinished {
		t.Errorf("state = %q, want %q", got, worlds.StateFinished)
	}
}
