// Package observability provides a registry extension that records world
// lifecycle metrics through OpenTelemetry.
//
// Register it on a registry to track start, completion, failure, and stop
// counts plus run durations:
//
//	r := registry.New(registry.WithExtensions(observability.NewMetricsExtension()))
//
// If no global MeterProvider is configured, the OTel API hands back noop
// instruments and the extension records nothing.
package observability
