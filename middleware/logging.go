package middleware

import (
	"context"
	"log/slog"
	"time"

	"github.com/xraph/worlds/world"
)

// Logging returns middleware that logs the start and completion of the
// unit of work.
func Logging(logger *slog.Logger) world.Middleware {
	return func(ctx context.Context, w *world.World, next world.Handler) error {
		logger.Info("world run started",
			slog.String("world", w.Name()),
			slog.String("world_id", w.ID().String()),
		)

		start := time.Now()
		err := next(ctx)
		elapsed := time.Since(start)

		if err != nil {
			logger.Error("world run failed",
				slog.String("world", w.Name()),
				slog.String("world_id", w.ID().String()),
				slog.Duration("elapsed", elapsed),
				slog.String("error", err.Error()),
			)
		} else {
			logger.Info("world run completed",
				slog.String("world", w.Name()),
				slog.String("world_id", w.ID().String()),
				slog.Duration("elapsed", elapsed),
			)
		}

		return err
	}
}
