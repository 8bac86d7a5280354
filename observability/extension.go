package observability

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/xraph/worlds"
	"github.com/xraph/worlds/ext"
	"github.com/xraph/worlds/world"
)

// meterName is the instrumentation scope name for worlds metrics.
const meterName = "github.com/xraph/worlds"

// Compile-time interface checks.
var (
	_ ext.Extension     = (*MetricsExtension)(nil)
	_ ext.WorldStarted  = (*MetricsExtension)(nil)
	_ ext.WorldFinished = (*MetricsExtension)(nil)
	_ ext.WorldFailed   = (*MetricsExtension)(nil)
	_ ext.WorldStopped  = (*MetricsExtension)(nil)
)

// MetricsExtension records world lifecycle metrics.
//
// Instruments:
//   - worlds.started (Int64Counter): worlds launched
//   - worlds.completed (Int64Counter): terminal transitions, with a
//     "state" attribute holding the terminal state name
//   - worlds.duration (Float64Histogram): run time in seconds, with the
//     same "state" attribute on finished and failed runs
type MetricsExtension struct {
	started   metric.Int64Counter
	completed metric.Int64Counter
	duration  metric.Float64Histogram
}

// NewMetricsExtension creates a MetricsExtension using the global OTel
// MeterProvider.
func NewMetricsExtension() *MetricsExtension {
	return NewMetricsExtensionWithMeter(otel.Meter(meterName))
}

// NewMetricsExtensionWithMeter creates a MetricsExtension with the provided
// meter. This variant allows injecting a specific MeterProvider for testing.
func NewMetricsExtensionWithMeter(meter metric.Meter) *MetricsExtension {
	started, sErr := meter.Int64Counter(
		"worlds.started",
		metric.WithDescription("Total number of worlds launched"),
		metric.WithUnit("{world}"),
	)
	_ = sErr // noop fallback guaranteed by OTel API contract

	completed, cErr := meter.Int64Counter(
		"worlds.completed",
		metric.WithDescription("Total number of worlds that reached a terminal state"),
		metric.WithUnit("{world}"),
	)
	_ = cErr // noop fallback guaranteed by OTel API contract

	duration, dErr := meter.Float64Histogram(
		"worlds.duration",
		metric.WithDescription("Duration of world runs in seconds"),
		metric.WithUnit("s"),
	)
	_ = dErr // noop fallback guaranteed by OTel API contract

	return &MetricsExtension{
		started:   started,
		completed: completed,
		duration:  duration,
	}
}

// Name implements ext.Extension.
func (m *MetricsExtension) Name() string { return "observability-metrics" }

// OnWorldStarted implements ext.WorldStarted.
func (m *MetricsExtension) OnWorldStarted(ctx context.Context, _ *world.World) error {
	m.started.Add(ctx, 1)
	return nil
}

// OnWorldFinished implements ext.WorldFinished.
func (m *MetricsExtension) OnWorldFinished(ctx context.Context, _ *world.World, elapsed time.Duration) error {
	attrs := metric.WithAttributes(attribute.String("state", string(worlds.StateFinished)))
	m.completed.Add(ctx, 1, attrs)
	m.duration.Record(ctx, elapsed.Seconds(), attrs)
	return nil
}

// OnWorldFailed implements ext.WorldFailed.
func (m *MetricsExtension) OnWorldFailed(ctx context.Context, w *world.World, _ string) error {
	attrs := metric.WithAttributes(attribute.String("state", string(worlds.StateFailed)))
	m.completed.Add(ctx, 1, attrs)

	snap := w.Progress()
	m.duration.Record(ctx, snap.FinishedAt.Sub(snap.StartedAt).Seconds(), attrs)
	return nil
}

// OnWorldStopped implements ext.WorldStopped.
func (m *MetricsExtension) OnWorldStopped(ctx context.Context, _ *world.World, final worlds.State) error {
	m.completed.Add(ctx, 1, metric.WithAttributes(attribute.String("state", string(final))))
	return nil
}
