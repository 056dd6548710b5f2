package telemetry

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
)

func TestInitNone(t *testing.T) {
	shutdown, err := Init(context.Background(), DefaultConfig())
	require.NoError(t, err)
	require.NoError(t, shutdown(context.Background()))
}

func TestInitUnknownExporter(t *testing.T) {
	cfg := DefaultConfig()
	cfg.TraceExporter = "jaeger"
	_, err := Init(context.Background(), cfg)
	require.ErrorIs(t, err, ErrUnknownExporter)
}

func TestInitStdoutWritesSpans(t *testing.T) {
	prev := otel.GetTracerProvider()
	t.Cleanup(func() { otel.SetTracerProvider(prev) })

	var buf bytes.Buffer
	cfg := DefaultConfig()
	cfg.TraceExporter = "stdout"
	cfg.Writer = &buf

	shutdown, err := Init(context.Background(), cfg)
	require.NoError(t, err)

	_, span := otel.Tracer("test").Start(context.Background(), "probe")
	span.End()
	require.NoError(t, shutdown(context.Background()))
	require.Contains(t, buf.String(), "probe")
}
