package calendar_tools

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/gigbridge/gigbridge/internal/calendar"
	"github.com/gigbridge/gigbridge/internal/server"
	"github.com/gigbridge/gigbridge/internal/ticketmaster"
	"github.com/gigbridge/gigbridge/internal/tools/common"
)

// eventDateTimeLayout is the wall-clock layout of dates in summary lines.
const eventDateTimeLayout = "2006-01-02 15:04"

// ticketedEventDuration is the span assumed for saved Ticketmaster events.
// It is longer than the generic calendar default because ticketed shows
// rarely finish inside two hours.
const ticketedEventDuration = 3 * time.Hour

// invalidFormatMessage is returned when an event line cannot be split into
// its required fields.
const invalidFormatMessage = "❌ Invalid event format. Expected: 'Event Name | Date | Venue | URL'"

// RegisterCalendarTools registers all calendar-related tools with the MCP server
func RegisterCalendarTools(s *mcpserver.MCPServer, sc *server.ServerContext) error {
	saveEventTool := mcp.NewTool("save_ticketmaster_event",
		mcp.WithDescription("Save a Ticketmaster event to Google Calendar with automatic parsing"),
		mcp.WithString("event_info",
			mcp.Required(),
			mcp.Description("Event information string from Ticketmaster search. Format: 'Event Name | Date | Venue | URL'"),
		),
	)

	s.AddTool(saveEventTool, common.InstrumentedToolHandlerWithService("save_ticketmaster_event", "calendar", "insert", sc, saveTicketmasterEventHandler(sc)))

	createEventTool := mcp.NewTool("create_calendar_event",
		mcp.WithDescription("Create a Google Calendar event with explicit times"),
		mcp.WithString("title",
			mcp.Required(),
			mcp.Description("Event title"),
		),
		mcp.WithString("start_datetime",
			mcp.Required(),
			mcp.Description("Event start in 'YYYY-MM-DD HH:MM' format"),
		),
		mcp.WithString("end_datetime",
			mcp.Description("Event end in 'YYYY-MM-DD HH:MM' format (default: 2 hours after start)"),
		),
		mcp.WithString("description",
			mcp.Description("Event description"),
		),
		mcp.WithString("location",
			mcp.Description("Event location"),
		),
		mcp.WithString("timezone",
			mcp.Description("IANA timezone name (default: America/New_York)"),
		),
	)

	s.AddTool(createEventTool, common.InstrumentedToolHandlerWithService("create_calendar_event", "calendar", "insert", sc, createCalendarEventHandler(sc)))

	return nil
}

// saveTicketmasterEventHandler parses a pipe-delimited event line and saves
// it to the primary calendar. All failure modes are reported as plain text
// so the calling agent can relay them verbatim.
func saveTicketmasterEventHandler(sc *server.ServerContext) common.ToolHandler {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args := request.GetArguments()

		eventInfo, ok := args["event_info"].(string)
		if !ok || eventInfo == "" {
			return mcp.NewToolResultError("event_info is required"), nil
		}

		client := sc.CalendarClient()
		if client == nil {
			return mcp.NewToolResultError("Google Calendar client is not initialized; run 'gigbridge auth' and restart the server"), nil
		}

		summary, err := ticketmaster.ParseSummary(eventInfo)
		if err != nil {
			if errors.Is(err, ticketmaster.ErrInvalidFormat) {
				return mcp.NewToolResultText(invalidFormatMessage), nil
			}
			return mcp.NewToolResultText(fmt.Sprintf("❌ Error parsing/saving event: %v", err)), nil
		}

		start, err := time.Parse(eventDateTimeLayout, summary.Date+" "+summary.Time)
		if err != nil {
			return mcp.NewToolResultText(fmt.Sprintf("❌ Error parsing/saving event: %v", err)), nil
		}

		description := "Ticketmaster Event"
		if summary.URL != "" {
			description += "\nTickets: " + summary.URL
		}

		result := client.CreateEvent(ctx, calendar.EventInput{
			Title:       summary.Title,
			Start:       start,
			End:         start.Add(ticketedEventDuration),
			Description: description,
			Location:    summary.Venue,
		})

		if !result.Success {
			return mcp.NewToolResultText(fmt.Sprintf("❌ Failed to save event: %s", result.Message)), nil
		}

		return mcp.NewToolResultText(fmt.Sprintf(
			"🎫 Ticketmaster event saved to calendar!\n%s\n📅 %s at %s\n📍 %s\nView: %s",
			summary.Title, summary.Date, summary.Time, summary.Venue, result.HTMLLink,
		)), nil
	}
}

// createCalendarEventHandler creates a calendar event from explicit fields.
// The end time defaults to two hours after the start.
func createCalendarEventHandler(sc *server.ServerContext) common.ToolHandler {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args := request.GetArguments()

		title, ok := args["title"].(string)
		if !ok || title == "" {
			return mcp.NewToolResultError("title is required"), nil
		}

		startStr, ok := args["start_datetime"].(string)
		if !ok || startStr == "" {
			return mcp.NewToolResultError("start_datetime is required"), nil
		}

		client := sc.CalendarClient()
		if client == nil {
			return mcp.NewToolResultError("Google Calendar client is not initialized; run 'gigbridge auth' and restart the server"), nil
		}

		start, err := time.Parse(eventDateTimeLayout, startStr)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid start_datetime: %v", err)), nil
		}

		input := calendar.EventInput{
			Title: title,
			Start: start,
		}

		if endStr, ok := args["end_datetime"].(string); ok && endStr != "" {
			end, err := time.Parse(eventDateTimeLayout, endStr)
			if err != nil {
				return mcp.NewToolResultError(fmt.Sprintf("invalid end_datetime: %v", err)), nil
			}
			input.End = end
		}

		if description, ok := args["description"].(string); ok {
			input.Description = description
		}
		if location, ok := args["location"].(string); ok {
			input.Location = location
		}
		if timezone, ok := args["timezone"].(string); ok {
			input.TimeZone = timezone
		}

		result := client.CreateEvent(ctx, input)
		if !result.Success {
			return mcp.NewToolResultText(fmt.Sprintf("❌ %s", result.Message)), nil
		}

		return mcp.NewToolResultText(fmt.Sprintf("%s\nView: %s", result.Message, result.HTMLLink)), nil
	}
}
