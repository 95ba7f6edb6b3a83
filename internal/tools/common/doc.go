// Package common provides shared helpers for MCP tool handlers, primarily
// the instrumentation wrappers that record invocation metrics and structured
// logs around every registered tool.
package common
