package telemetry

import (
	"context"
	"encoding/base64"
	"fmt"
	"io"

	"github.com/blaisecz/fitbit-sleep/internal/config"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

const (
	ExporterOTLP   = "otlp"
	ExporterStdout = "stdout"
	ExporterNone   = "none"
)

// InitTracer initializes the global OpenTelemetry tracer provider.
// otlp ships spans to Langfuse and is a no-op when Langfuse is not configured;
// stdout pretty-prints spans to out; none keeps the default noop provider.
func InitTracer(ctx context.Context, cfg *config.Config, serviceName string, out io.Writer) (func(context.Context) error, error) {
	var (
		exporter sdktrace.SpanExporter
		err      error
	)

	switch cfg.OtelExporter {
	case ExporterStdout:
		exporter, err = stdouttrace.New(stdouttrace.WithWriter(out), stdouttrace.WithPrettyPrint())
	case ExporterOTLP, "":
		if !cfg.LangfuseConfigured() {
			return noop, nil
		}
		exporter, err = langfuseExporter(ctx, cfg)
	case ExporterNone:
		return noop, nil
	default:
		return nil, fmt.Errorf("unknown trace exporter %q", cfg.OtelExporter)
	}
	if err != nil {
		return nil, err
	}

	res, err := resource.New(
		ctx,
		resource.WithAttributes(
			attribute.String("service.name", serviceName),
			attribute.String("langfuse.environment", cfg.LangfuseEnv),
		),
	)
	if err != nil {
		return nil, err
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)

	otel.SetTracerProvider(tp)

	return tp.Shutdown, nil
}

func langfuseExporter(ctx context.Context, cfg *config.Config) (sdktrace.SpanExporter, error) {
	// Build Basic auth header from Langfuse public/secret keys.
	creds := cfg.LangfusePublicKey + ":" + cfg.LangfuseSecretKey
	auth := base64.StdEncoding.EncodeToString([]byte(creds))

	endpoint := fmt.Sprintf("%s/api/public/otel/v1/traces", cfg.LangfuseBaseURL)

	return otlptracehttp.New(
		ctx,
		otlptracehttp.WithEndpointURL(endpoint),
		otlptracehttp.WithHeaders(map[string]string{
			"Authorization": "Basic " + auth,
		}),
	)
}

func noop(context.Context) error { return nil }
