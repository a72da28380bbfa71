package env

import (
	"log/slog"
	"os"
)

// TracingEnvironment holds configuration for OpenTelemetry tracing
type TracingEnvironment struct {
	Enabled  bool
	Endpoint string `validate:"omitempty,required_if=Enabled true,url"`
}

// NewTracingEnvironment loads tracing configuration from environment variables
func NewTracingEnvironment() TracingEnvironment {
	enabled := os.Getenv("ENV_TRACING_ENABLED") == "true"
	endpoint := GetEnvVar("ENV_TRACING_OTLP_ENDPOINT")

	if enabled && endpoint == "" {
		endpoint = "http://localhost:4318"
		slog.Warn("tracing enabled but ENV_TRACING_OTLP_ENDPOINT not set", "default", endpoint)
	}

	return TracingEnvironment{
		Enabled:  enabled,
		Endpoint: endpoint,
	}
}
