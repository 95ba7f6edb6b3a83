// Package instrumentation provides OpenTelemetry-based observability.
//
// It wires a meter provider (Prometheus scrape endpoint by default, OTLP or
// stdout for development) and an optional tracer provider, plus a Metrics
// recorder covering the two things this server does: MCP tool invocations
// and outbound API operations (Ticketmaster, Surge, Google Calendar).
//
// Instrumentation is configured from OTEL_* environment variables (see
// DefaultConfig) and can be disabled entirely, in which case all recorders
// become no-ops.
package instrumentation
