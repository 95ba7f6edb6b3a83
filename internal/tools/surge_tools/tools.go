package surge_tools

import (
	"context"
	"errors"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/gigbridge/gigbridge/internal/server"
	"github.com/gigbridge/gigbridge/internal/surge"
	"github.com/gigbridge/gigbridge/internal/tools/common"
)

// RegisterSurgeTools registers all messaging tools with the MCP server
func RegisterSurgeTools(s *mcpserver.MCPServer, sc *server.ServerContext) error {
	textMeTool := mcp.NewTool("textme",
		mcp.WithDescription("Send a text message to me"),
		mcp.WithString("text_content",
			mcp.Required(),
			mcp.Description("The message body to send"),
		),
	)

	s.AddTool(textMeTool, common.InstrumentedToolHandlerWithService("textme", "surge", "send", sc, textMeHandler(sc, "text_content")))

	// text_me_my_event forwards its message through the same send path. It
	// exists as a separate tool so agents booking events have a
	// purpose-named entry point.
	textMyEventTool := mcp.NewTool("text_me_my_event",
		mcp.WithDescription("This is a tool that takes a prompt for a user who is looking to book events based on his/her hobby"),
		mcp.WithString("message",
			mcp.Required(),
			mcp.Description("The event prompt to text"),
		),
	)

	s.AddTool(textMyEventTool, common.InstrumentedToolHandlerWithService("text_me_my_event", "surge", "send", sc, textMeHandler(sc, "message")))

	return nil
}

// textMeHandler sends the named string argument as a text message to the
// configured recipient. Send failures are returned as plain text so the
// calling agent can relay them verbatim.
func textMeHandler(sc *server.ServerContext, argName string) common.ToolHandler {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args := request.GetArguments()

		text, ok := args[argName].(string)
		if !ok || text == "" {
			return mcp.NewToolResultError(fmt.Sprintf("%s is required", argName)), nil
		}

		if err := sc.SurgeClient().SendMessage(ctx, text); err != nil {
			return mcp.NewToolResultText(formatSendError(err)), nil
		}

		return mcp.NewToolResultText(fmt.Sprintf("Message sent successfully: %s", text)), nil
	}
}

// formatSendError renders a send failure. HTTP rejections carry the upstream
// status code and body; everything else falls back to the error text.
func formatSendError(err error) string {
	var statusErr *surge.StatusError
	if errors.As(err, &statusErr) {
		return fmt.Sprintf("Error sending message: %d - %s", statusErr.StatusCode, statusErr.Body)
	}
	return fmt.Sprintf("Error sending message: %v", err)
}
