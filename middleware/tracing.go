package middleware

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/xraph/worlds/world"
)

// tracerName is the instrumentation scope name for worlds tracing.
const tracerName = "github.com/xraph/worlds"

// Tracing returns middleware that wraps the unit of work in an
// OpenTelemetry span. If no TracerProvider is configured globally, the
// default noop tracer is used and this middleware becomes a pass-through
// with zero overhead.
//
// Span attributes include: worlds.world.id and worlds.world.name.
// On error, the span status is set to codes.Error with the error message.
func Tracing() world.Middleware {
	tracer := otel.Tracer(tracerName)
	return TracingWithTracer(tracer)
}

// TracingWithTracer returns tracing middleware using the provided tracer.
// This variant allows injecting a specific TracerProvider for testing or
// when multiple providers are in use.
func TracingWithTracer(tracer trace.Tracer) world.Middleware {
	return func(ctx context.Context, w *world.World, next world.Handler) error {
		ctx, span := tracer.Start(ctx, "worlds.world.run",
			trace.WithAttributes(
				attribute.String("worlds.world.id", w.ID().String()),
				attribute.String("worlds.world.name", w.Name()),
			),
			trace.WithSpanKind(trace.SpanKindInternal),
		)
		defer span.End()

		err := next(ctx)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		} else {
			span.SetStatus(codes.Ok, "")
		}

		return err
	}
}
