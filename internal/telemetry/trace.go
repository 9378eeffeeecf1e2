package telemetry

import (
	"context"
	"io"

	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
)

// NewTracerProvider builds a TracerProvider that writes spans as JSON lines
// to w. Passing io.Discard (the default when no trace output path is
// configured) makes tracing free: spans are still created and timed, but
// never serialized anywhere observable.
func NewTracerProvider(w io.Writer) (*sdktrace.TracerProvider, error) {
	exporter, err := stdouttrace.New(stdouttrace.WithWriter(w))
	if err != nil {
		return nil, err
	}

	return sdktrace.NewTracerProvider(sdktrace.WithBatcher(exporter)), nil
}

// Shutdown flushes and closes the provider; a nil provider is a no-op.
func Shutdown(ctx context.Context, tp *sdktrace.TracerProvider) error {
	if tp == nil {
		return nil
	}
	return tp.Shutdown(ctx)
}

// instrumentationName is the name under which nroads' own spans are registered.
const instrumentationName = "github.com/mkwasniak/nroads/internal/cli"

// TracerFrom returns the named tracer for the given provider.
func TracerFrom(tp *sdktrace.TracerProvider) trace.Tracer {
	return tp.Tracer(instrumentationName)
}
