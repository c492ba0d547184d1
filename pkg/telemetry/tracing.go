package telemetry

import (
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

// DefaultTracerName is used when no tracer name is configured.
const DefaultTracerName = "minidom"

// Tracer returns the tracer for render-pass spans. When tracing is disabled
// it returns a no-op tracer so the engine never reaches the global provider.
func Tracer(enabled bool, name string) trace.Tracer {
	if !enabled {
		return noop.NewTracerProvider().Tracer(DefaultTracerName)
	}
	if name == "" {
		name = DefaultTracerName
	}
	return otel.Tracer(name)
}
