package common

import (
	"context"
	"log/slog"
	"time"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/gigbridge/gigbridge/internal/instrumentation"
	"github.com/gigbridge/gigbridge/internal/logging"
	"github.com/gigbridge/gigbridge/internal/server"
)

// ToolHandler is the mcp-go handler signature every tool in this server
// uses. It is an alias so wrapped handlers satisfy the server's handler
// type directly.
type ToolHandler = func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error)

// InstrumentedToolHandler wraps a tool handler with metrics and structured
// logging. It records tool invocation metrics and logs the outcome.
//
// Usage:
//
//	s.AddTool(myTool, common.InstrumentedToolHandler("my_tool", sc, handler))
func InstrumentedToolHandler(toolName string, sc *server.ServerContext, handler ToolHandler) ToolHandler {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		start := time.Now()

		result, err := handler(ctx, request)
		duration := time.Since(start)

		status := instrumentation.StatusSuccess
		if err != nil || (result != nil && result.IsError) {
			status = instrumentation.StatusError
		}

		// Metrics may be nil when instrumentation is disabled; recording on
		// a nil Metrics is a no-op.
		sc.Metrics().RecordToolInvocation(ctx, toolName, status, duration)

		slog.Debug("tool invocation completed",
			logging.Tool(toolName),
			logging.Status(status),
			slog.Duration("duration", duration),
		)

		return result, err
	}
}

// InstrumentedToolHandlerWithService is like InstrumentedToolHandler but also
// records the upstream service and operation for per-service API metrics.
//
// Usage:
//
//	s.AddTool(myTool, common.InstrumentedToolHandlerWithService("my_tool", "surge", "send", sc, handler))
func InstrumentedToolHandlerWithService(toolName, serviceName, operation string, sc *server.ServerContext, handler ToolHandler) ToolHandler {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		start := time.Now()

		result, err := handler(ctx, request)
		duration := time.Since(start)

		status := instrumentation.StatusSuccess
		if err != nil || (result != nil && result.IsError) {
			status = instrumentation.StatusError
		}

		metrics := sc.Metrics()
		metrics.RecordToolInvocation(ctx, toolName, status, duration)
		metrics.RecordAPIOperation(ctx, serviceName, operation, status, duration)

		slog.Debug("tool invocation completed",
			logging.Tool(toolName),
			logging.Service(serviceName),
			logging.Operation(operation),
			logging.Status(status),
			slog.Duration("duration", duration),
		)

		return result, err
	}
}
