// Package telemetry installs the OpenTelemetry tracer provider used by the
// command line tools.
package telemetry

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/sdk/resource"
	"go.opentelemetry.io/otel/sdk/trace"
)

// ErrUnknownExporter is returned for an exporter name Init does not know.
var ErrUnknownExporter = errors.New("unknown trace exporter")

// Config selects where spans go.
type Config struct {
	ServiceName    string
	ServiceVersion string

	// TraceExporter is "stdout" or "none".
	TraceExporter string

	// Writer receives stdout spans; nil means os.Stderr.
	Writer io.Writer
}

// DefaultConfig disables tracing.
func DefaultConfig() Config {
	return Config{ServiceName: "eca", ServiceVersion: "dev", TraceExporter: "none"}
}

// Init installs a global tracer provider and returns its shutdown function,
// which flushes pending spans. With exporter "none" nothing is installed and
// shutdown is a no-op.
func Init(ctx context.Context, cfg Config) (shutdown func(context.Context) error, err error) {
	noop := func(context.Context) error { return nil }

	switch cfg.TraceExporter {
	case "", "none":
		return noop, nil
	case "stdout":
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownExporter, cfg.TraceExporter)
	}

	w := cfg.Writer
	if w == nil {
		w = os.Stderr
	}
	exporter, err := stdouttrace.New(stdouttrace.WithWriter(w), stdouttrace.WithPrettyPrint())
	if err != nil {
		return nil, fmt.Errorf("create exporter: %w", err)
	}

	res := resource.NewWithAttributes(
		"",
		attribute.String("service.name", cfg.ServiceName),
		attribute.String("service.version", cfg.ServiceVersion),
	)
	tp := trace.NewTracerProvider(
		trace.WithSyncer(exporter),
		trace.WithResource(res),
		trace.WithSampler(trace.AlwaysSample()),
	)
	otel.SetTracerProvider(tp)
	return tp.Shutdown, nil
}
