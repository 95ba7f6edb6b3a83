package calendar_tools

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	calendarapi "google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"

	"github.com/gigbridge/gigbridge/internal/calendar"
	"github.com/gigbridge/gigbridge/internal/config"
	"github.com/gigbridge/gigbridge/internal/server"
)

func newTestServerContext(t *testing.T) *server.ServerContext {
	t.Helper()

	sc, err := server.NewServerContext(context.Background(), &config.Settings{
		Ticketmaster: config.TicketmasterSettings{ConsumerKey: "tm-key"},
		Surge: config.SurgeSettings{
			APIKey:        "surge-key",
			AccountID:     "acct_123",
			MyPhoneNumber: "+15551234567",
			MyFirstName:   "Ada",
			MyLastName:    "Lovelace",
		},
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = sc.Shutdown() })
	return sc
}

// pointAtFakeCalendar wires the server context's calendar client to a fake
// Calendar API endpoint.
func pointAtFakeCalendar(t *testing.T, sc *server.ServerContext, handler http.HandlerFunc) {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	svc, err := calendarapi.NewService(context.Background(),
		option.WithEndpoint(srv.URL),
		option.WithHTTPClient(srv.Client()),
		option.WithoutAuthentication(),
	)
	require.NoError(t, err)

	sc.SetCalendarClient(calendar.NewClientWithService(svc))
}

func toolRequest(name string, args map[string]interface{}) mcp.CallToolRequest {
	return mcp.CallToolRequest{
		Params: mcp.CallToolParams{
			Name:      name,
			Arguments: args,
		},
	}
}

func resultText(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()

	require.NotNil(t, result)
	require.NotEmpty(t, result.Content)
	text, ok := result.Content[0].(mcp.TextContent)
	require.True(t, ok, "result content is %T, want mcp.TextContent", result.Content[0])
	return text.Text
}

func TestRegisterCalendarTools(t *testing.T) {
	sc := newTestServerContext(t)

	mcpSrv := mcpserver.NewMCPServer("test-server", "1.0.0",
		mcpserver.WithToolCapabilities(true),
	)

	require.NoError(t, RegisterCalendarTools(mcpSrv, sc))
}

func TestSaveTicketmasterEventHandler(t *testing.T) {
	sc := newTestServerContext(t)

	var inserted calendarapi.Event
	pointAtFakeCalendar(t, sc, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&inserted))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id": "evt_1", "htmlLink": "https://calendar.google.com/event?eid=evt_1"}`))
	})

	result, err := saveTicketmasterEventHandler(sc)(context.Background(), toolRequest("save_ticketmaster_event", map[string]interface{}{
		"event_info": "Jazz Fest | 2025-09-01 at 20:00 | Blue Note | https://tm.example/jazz",
	}))
	require.NoError(t, err)

	want := "🎫 Ticketmaster event saved to calendar!\n" +
		"Jazz Fest\n" +
		"📅 2025-09-01 at 20:00\n" +
		"📍 Blue Note\n" +
		"View: https://calendar.google.com/event?eid=evt_1"
	assert.Equal(t, want, resultText(t, result))

	assert.Equal(t, "Jazz Fest", inserted.Summary)
	assert.Equal(t, "Blue Note", inserted.Location)
	assert.Equal(t, "Ticketmaster Event\nTickets: https://tm.example/jazz", inserted.Description)
	assert.Equal(t, "2025-09-01T20:00:00", inserted.Start.DateTime)
	// Ticketed events span 3 hours.
	assert.Equal(t, "2025-09-01T23:00:00", inserted.End.DateTime)
}

func TestSaveTicketmasterEventHandlerDefaultsTime(t *testing.T) {
	sc := newTestServerContext(t)

	var inserted calendarapi.Event
	pointAtFakeCalendar(t, sc, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&inserted))
		_, _ = w.Write([]byte(`{"id": "evt_2", "htmlLink": "https://calendar.google.com/event?eid=evt_2"}`))
	})

	result, err := saveTicketmasterEventHandler(sc)(context.Background(), toolRequest("save_ticketmaster_event", map[string]interface{}{
		"event_info": "Open Mic | 2025-09-02 | Cafe Lune | ",
	}))
	require.NoError(t, err)

	text := resultText(t, result)
	assert.Contains(t, text, "📅 2025-09-02 at 19:00")
	assert.Equal(t, "2025-09-02T19:00:00", inserted.Start.DateTime)
	// No URL in the line, so the description carries no ticket link.
	assert.Equal(t, "Ticketmaster Event", inserted.Description)
}

func TestSaveTicketmasterEventHandlerInvalidFormat(t *testing.T) {
	sc := newTestServerContext(t)
	pointAtFakeCalendar(t, sc, func(http.ResponseWriter, *http.Request) {
		t.Error("no API call expected for an invalid event line")
	})

	result, err := saveTicketmasterEventHandler(sc)(context.Background(), toolRequest("save_ticketmaster_event", map[string]interface{}{
		"event_info": "Jazz Fest | 2025-09-01",
	}))
	require.NoError(t, err)

	assert.Equal(t, "❌ Invalid event format. Expected: 'Event Name | Date | Venue | URL'", resultText(t, result))
	assert.False(t, result.IsError)
}

func TestSaveTicketmasterEventHandlerUnparseableDate(t *testing.T) {
	sc := newTestServerContext(t)
	pointAtFakeCalendar(t, sc, func(http.ResponseWriter, *http.Request) {
		t.Error("no API call expected for an unparseable date")
	})

	result, err := saveTicketmasterEventHandler(sc)(context.Background(), toolRequest("save_ticketmaster_event", map[string]interface{}{
		"event_info": "Jazz Fest | TBD | Blue Note | https://tm.example/jazz",
	}))
	require.NoError(t, err)

	assert.Contains(t, resultText(t, result), "❌ Error parsing/saving event:")
}

func TestSaveTicketmasterEventHandlerProviderRejection(t *testing.T) {
	sc := newTestServerContext(t)
	pointAtFakeCalendar(t, sc, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"error": {"code": 403, "message": "quota exceeded"}}`))
	})

	result, err := saveTicketmasterEventHandler(sc)(context.Background(), toolRequest("save_ticketmaster_event", map[string]interface{}{
		"event_info": "Jazz Fest | 2025-09-01 at 20:00 | Blue Note | https://tm.example/jazz",
	}))
	require.NoError(t, err)

	text := resultText(t, result)
	assert.Contains(t, text, "❌ Failed to save event:")
	assert.Contains(t, text, "quota exceeded")
}

func TestSaveTicketmasterEventHandlerMissingClient(t *testing.T) {
	sc := newTestServerContext(t)

	result, err := saveTicketmasterEventHandler(sc)(context.Background(), toolRequest("save_ticketmaster_event", map[string]interface{}{
		"event_info": "Jazz Fest | 2025-09-01 at 20:00 | Blue Note | https://tm.example/jazz",
	}))
	require.NoError(t, err)

	assert.True(t, result.IsError)
}

func TestSaveTicketmasterEventHandlerMissingArgument(t *testing.T) {
	sc := newTestServerContext(t)

	result, err := saveTicketmasterEventHandler(sc)(context.Background(), toolRequest("save_ticketmaster_event", map[string]interface{}{}))
	require.NoError(t, err)

	assert.True(t, result.IsError)
}

func TestCreateCalendarEventHandler(t *testing.T) {
	sc := newTestServerContext(t)

	var inserted calendarapi.Event
	pointAtFakeCalendar(t, sc, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&inserted))
		_, _ = w.Write([]byte(`{"id": "evt_3", "htmlLink": "https://calendar.google.com/event?eid=evt_3"}`))
	})

	result, err := createCalendarEventHandler(sc)(context.Background(), toolRequest("create_calendar_event", map[string]interface{}{
		"title":          "Planning",
		"start_datetime": "2025-08-15 19:00",
		"description":    "Quarterly planning",
		"location":       "HQ",
	}))
	require.NoError(t, err)

	text := resultText(t, result)
	assert.Contains(t, text, "Event 'Planning' created successfully")
	assert.Contains(t, text, "View: https://calendar.google.com/event?eid=evt_3")

	assert.Equal(t, "Planning", inserted.Summary)
	assert.Equal(t, "Quarterly planning", inserted.Description)
	assert.Equal(t, "HQ", inserted.Location)
	// No end given, so the generic 2-hour default applies.
	assert.Equal(t, "2025-08-15T21:00:00", inserted.End.DateTime)
}

func TestCreateCalendarEventHandlerExplicitEnd(t *testing.T) {
	sc := newTestServerContext(t)

	var inserted calendarapi.Event
	pointAtFakeCalendar(t, sc, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&inserted))
		_, _ = w.Write([]byte(`{"id": "evt_4"}`))
	})

	_, err := createCalendarEventHandler(sc)(context.Background(), toolRequest("create_calendar_event", map[string]interface{}{
		"title":          "Workshop",
		"start_datetime": "2025-08-15 09:00",
		"end_datetime":   "2025-08-15 17:00",
		"timezone":       "Europe/Berlin",
	}))
	require.NoError(t, err)

	assert.Equal(t, "2025-08-15T17:00:00", inserted.End.DateTime)
	assert.Equal(t, "Europe/Berlin", inserted.Start.TimeZone)
}

func TestCreateCalendarEventHandlerValidation(t *testing.T) {
	sc := newTestServerContext(t)
	pointAtFakeCalendar(t, sc, func(http.ResponseWriter, *http.Request) {
		t.Error("no API call expected for invalid arguments")
	})

	tests := []struct {
		name string
		args map[string]interface{}
	}{
		{name: "missing title", args: map[string]interface{}{"start_datetime": "2025-08-15 19:00"}},
		{name: "missing start", args: map[string]interface{}{"title": "Planning"}},
		{name: "bad start format", args: map[string]interface{}{"title": "Planning", "start_datetime": "Aug 15"}},
		{name: "bad end format", args: map[string]interface{}{"title": "Planning", "start_datetime": "2025-08-15 19:00", "end_datetime": "later"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := createCalendarEventHandler(sc)(context.Background(), toolRequest("create_calendar_event", tt.args))
			require.NoError(t, err)
			assert.True(t, result.IsError)
		})
	}
}
