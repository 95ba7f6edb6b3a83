package instrumentation

import (
	"os"
	"strconv"
)

// Exporter names accepted for metrics and tracing backends.
const (
	ExporterPrometheus = "prometheus"
	ExporterOTLP       = "otlp"
	ExporterStdout     = "stdout"
	ExporterNone       = "none"
)

// Config controls the observability setup.
type Config struct {
	// Enabled turns instrumentation on or off entirely.
	Enabled bool

	// ServiceName identifies this service in telemetry backends.
	ServiceName string

	// ServiceVersion is the build version, set at startup.
	ServiceVersion string

	// MetricsExporter selects the metrics backend: prometheus (default),
	// otlp, or stdout.
	MetricsExporter string

	// TracingExporter selects the tracing backend: none (default), otlp,
	// or stdout.
	TracingExporter string

	// OTLPEndpoint is the collector endpoint for the otlp exporters.
	OTLPEndpoint string

	// OTLPInsecure disables TLS for the otlp exporters.
	OTLPInsecure bool

	// TraceSamplingRate is the head sampling ratio in [0, 1].
	TraceSamplingRate float64
}

// DefaultConfig returns the configuration resolved from the environment.
//
// Environment variables:
//   - OTEL_ENABLED (default "true")
//   - OTEL_METRICS_EXPORTER (default "prometheus")
//   - OTEL_TRACES_EXPORTER (default "none")
//   - OTEL_EXPORTER_OTLP_ENDPOINT
//   - OTEL_EXPORTER_OTLP_INSECURE
//   - OTEL_TRACES_SAMPLER_ARG (default "1.0")
func DefaultConfig() Config {
	config := Config{
		Enabled:           true,
		ServiceName:       "gigbridge",
		ServiceVersion:    "dev",
		MetricsExporter:   ExporterPrometheus,
		TracingExporter:   ExporterNone,
		OTLPEndpoint:      os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT"),
		TraceSamplingRate: 1.0,
	}

	if v := os.Getenv("OTEL_ENABLED"); v != "" {
		if enabled, err := strconv.ParseBool(v); err == nil {
			config.Enabled = enabled
		}
	}
	if v := os.Getenv("OTEL_METRICS_EXPORTER"); v != "" {
		config.MetricsExporter = v
	}
	if v := os.Getenv("OTEL_TRACES_EXPORTER"); v != "" {
		config.TracingExporter = v
	}
	if v := os.Getenv("OTEL_EXPORTER_OTLP_INSECURE"); v != "" {
		if insecure, err := strconv.ParseBool(v); err == nil {
			config.OTLPInsecure = insecure
		}
	}
	if v := os.Getenv("OTEL_TRACES_SAMPLER_ARG"); v != "" {
		if rate, err := strconv.ParseFloat(v, 64); err == nil && rate >= 0 && rate <= 1 {
			config.TraceSamplingRate = rate
		}
	}

	return config
}
