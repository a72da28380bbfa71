package portal

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/skillpath/metal/env"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

// TracerProvider wraps the OpenTelemetry tracer provider
type TracerProvider struct {
	Provider *sdktrace.TracerProvider
	Env      *env.Environment
}

// NewTracerProvider initializes OpenTelemetry with OTLP HTTP exporter
func NewTracerProvider(environment *env.Environment) (*TracerProvider, error) {
	if !environment.Tracing.Enabled {
		slog.Info("OpenTelemetry tracing is disabled")

		return &TracerProvider{Env: environment}, nil
	}

	ctx := context.Background()

	opts := []otlptracehttp.Option{
		otlptracehttp.WithEndpoint(getEndpointHost(environment.Tracing.Endpoint)),
	}

	if environment.App.IsLocal() || environment.App.IsStaging() {
		opts = append(opts, otlptracehttp.WithInsecure())
	}

	exporter, err := otlptracehttp.New(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create OTLP exporter: %w", err)
	}

	res, err := resource.New(
		ctx,
		resource.WithAttributes(
			attribute.String("service.name", environment.App.Name),
			attribute.String("deployment.environment", environment.App.Type),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create resource: %w", err)
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
		sdktrace.WithSampler(sdktrace.AlwaysSample()),
	)

	otel.SetTracerProvider(tp)

	otel.SetTextMapPropagator(
		propagation.NewCompositeTextMapPropagator(
			propagation.TraceContext{},
			propagation.Baggage{},
		),
	)

	slog.Info("OpenTelemetry tracing initialized", "endpoint", environment.Tracing.Endpoint)

	return &TracerProvider{
		Provider: tp,
		Env:      environment,
	}, nil
}

// Shutdown flushes pending spans and stops the provider.
func (tp *TracerProvider) Shutdown() error {
	if tp == nil || tp.Provider == nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := tp.Provider.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shutdown tracer provider: %w", err)
	}

	return nil
}

// getEndpointHost extracts the host:port from a full URL
// e.g., "http://localhost:4318" -> "localhost:4318"
func getEndpointHost(endpoint string) string {
	endpoint = strings.TrimPrefix(endpoint, "http://")

	return strings.TrimPrefix(endpoint, "https://")
}
