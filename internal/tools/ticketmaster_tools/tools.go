package ticketmaster_tools

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/gigbridge/gigbridge/internal/server"
	"github.com/gigbridge/gigbridge/internal/ticketmaster"
	"github.com/gigbridge/gigbridge/internal/tools/common"
)

// noEventsFound is the result body when a search matches nothing.
const noEventsFound = "No events found"

// RegisterTicketmasterTools registers all Ticketmaster-related tools with the MCP server
func RegisterTicketmasterTools(s *mcpserver.MCPServer, sc *server.ServerContext) error {
	searchEventsTool := mcp.NewTool("searchevents",
		mcp.WithDescription("Search for events using Ticketmaster API"),
		mcp.WithString("keyword",
			mcp.Required(),
			mcp.Description("Keyword to search events for (artist, team, venue, city, ...)"),
		),
	)

	s.AddTool(searchEventsTool, common.InstrumentedToolHandlerWithService("searchevents", "ticketmaster", "search", sc, searchEventsHandler(sc)))

	return nil
}

// searchEventsHandler returns one pipe-delimited summary line per matching
// event, joined with newlines. Upstream failures are returned as plain text
// so the calling agent can relay them verbatim.
func searchEventsHandler(sc *server.ServerContext) common.ToolHandler {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args := request.GetArguments()

		keyword, ok := args["keyword"].(string)
		if !ok || keyword == "" {
			return mcp.NewToolResultError("keyword is required"), nil
		}

		events, err := sc.TicketmasterClient().Search(ctx, keyword)
		if err != nil {
			return mcp.NewToolResultText(formatSearchError(err)), nil
		}

		if len(events) == 0 {
			return mcp.NewToolResultText(noEventsFound), nil
		}

		lines := make([]string, 0, len(events))
		for _, event := range events {
			lines = append(lines, event.Line())
		}

		return mcp.NewToolResultText(strings.Join(lines, "\n")), nil
	}
}

// formatSearchError renders a search failure. HTTP rejections carry the
// upstream status code and body; everything else falls back to the error
// text.
func formatSearchError(err error) string {
	var statusErr *ticketmaster.StatusError
	if errors.As(err, &statusErr) {
		return fmt.Sprintf("Error searching events: %d - %s", statusErr.StatusCode, statusErr.Body)
	}
	return fmt.Sprintf("Error searching events: %v", err)
}
