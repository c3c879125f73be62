package telemetry

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/blaisecz/fitbit-sleep/internal/config"
	"go.opentelemetry.io/otel"
)

func TestInitTracer_Noop(t *testing.T) {
	for _, exporter := range []string{ExporterNone, ExporterOTLP} {
		shutdown, err := InitTracer(context.Background(), &config.Config{OtelExporter: exporter}, "test", nil)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", exporter, err)
		}
		if err := shutdown(context.Background()); err != nil {
			t.Fatalf("%s: shutdown failed: %v", exporter, err)
		}
	}
}

func TestInitTracer_Unknown(t *testing.T) {
	if _, err := InitTracer(context.Background(), &config.Config{OtelExporter: "zipkin"}, "test", nil); err == nil {
		t.Fatalf("expected error for unknown exporter")
	}
}

func TestInitTracer_Stdout(t *testing.T) {
	prev := otel.GetTracerProvider()
	t.Cleanup(func() { otel.SetTracerProvider(prev) })

	var buf bytes.Buffer
	shutdown, err := InitTracer(context.Background(), &config.Config{OtelExporter: ExporterStdout}, "fitbit-sleep-test", &buf)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, span := otel.Tracer("test").Start(context.Background(), "LoadDataset")
	span.End()

	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown failed: %v", err)
	}
	if !strings.Contains(buf.String(), "LoadDataset") {
		t.Fatalf("expected span in output, got %q", buf.String())
	}
}
