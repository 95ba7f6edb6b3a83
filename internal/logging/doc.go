// Package logging provides structured logging helpers built on log/slog.
//
// It defines the shared attribute vocabulary (operation, service, tool,
// status, error) so log lines stay greppable across packages, and a Setup
// function that points the default logger at stderr. Stdout is reserved for
// the MCP stdio transport and must never receive log output.
package logging
