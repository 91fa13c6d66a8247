package infrastructure

import (
	"context"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"iplcli/internal/config"
)

const (
	ServiceName    = "ipl-analysis-cli"
	ServiceVersion = "1.0.0"
	tracerName     = "iplcli"
)

// TracingProvider holds the OpenTelemetry tracer for the run. The analyzer
// records one span per pipeline phase and one per analysis step; export is
// to stdout or disabled entirely (the default for normal console runs).
type TracingProvider struct {
	tp     *sdktrace.TracerProvider
	Tracer trace.Tracer
	logger *slog.Logger
}

// InitializeTracing sets up OpenTelemetry tracing per configuration.
// With exporter "none" a noop tracer is returned and nothing is exported.
func InitializeTracing(cfg config.TracingConfig, logger *slog.Logger) (*TracingProvider, error) {
	if logger == nil {
		logger = slog.Default()
	}

	if cfg.Exporter == "none" || cfg.Exporter == "" {
		return &TracingProvider{
			Tracer: noop.NewTracerProvider().Tracer(tracerName),
			logger: logger,
		}, nil
	}

	if cfg.Exporter != "stdout" {
		return nil, fmt.Errorf("unsupported trace exporter: %s", cfg.Exporter)
	}

	exporter, err := stdouttrace.New(stdouttrace.WithPrettyPrint())
	if err != nil {
		return nil, fmt.Errorf("failed to create trace exporter: %w", err)
	}

	res := resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceName(ServiceName),
		semconv.ServiceVersion(ServiceVersion),
	)

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)
	otel.SetTracerProvider(tp)

	logger.Info("tracing initialized", slog.String("exporter", cfg.Exporter))

	return &TracingProvider{
		tp:     tp,
		Tracer: tp.Tracer(tracerName, trace.WithInstrumentationVersion(ServiceVersion)),
		logger: logger,
	}, nil
}

// Shutdown flushes and stops the tracer provider.
func (p *TracingProvider) Shutdown(ctx context.Context) error {
	if p.tp == nil {
		return nil
	}
	if err := p.tp.Shutdown(ctx); err != nil {
		return fmt.Errorf("tracer provider shutdown: %w", err)
	}
	p.logger.InfoContext(ctx, "tracing shutdown complete")
	return nil
}

// StartSpan starts a named span with optional string attributes.
func (p *TracingProvider) StartSpan(ctx context.Context, name string, attrs map[string]string) (context.Context, trace.Span) {
	kvs := make([]attribute.KeyValue, 0, len(attrs))
	for k, v := range attrs {
		kvs = append(kvs, attribute.String(k, v))
	}
	return p.Tracer.Start(ctx, name, trace.WithAttributes(kvs...))
}

// RecordError records an error on the current span
func RecordError(ctx context.Context, err error) {
	span := trace.SpanFromContext(ctx)
	if !span.IsRecording() {
		return
	}

	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
}
