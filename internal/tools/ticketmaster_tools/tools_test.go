package ticketmaster_tools

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/gigbridge/gigbridge/internal/config"
	"github.com/gigbridge/gigbridge/internal/server"
	"github.com/gigbridge/gigbridge/internal/ticketmaster"
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
	if err != nil {
		t.Fatalf("Failed to create server context: %v", err)
	}
	t.Cleanup(func() { _ = sc.Shutdown() })
	return sc
}

func pointAtFakeDiscovery(t *testing.T, sc *server.ServerContext, handler http.HandlerFunc) {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := ticketmaster.NewClient("tm-key", ticketmaster.WithBaseURL(srv.URL))
	if err != nil {
		t.Fatalf("Failed to create ticketmaster client: %v", err)
	}
	sc.SetTicketmasterClient(client)
}

func searchRequest(keyword string) mcp.CallToolRequest {
	return mcp.CallToolRequest{
		Params: mcp.CallToolParams{
			Name:      "searchevents",
			Arguments: map[string]interface{}{"keyword": keyword},
		},
	}
}

func resultText(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()

	if result == nil {
		t.Fatal("result is nil")
	}
	if len(result.Content) == 0 {
		t.Fatal("result has no content")
	}
	text, ok := result.Content[0].(mcp.TextContent)
	if !ok {
		t.Fatalf("result content is %T, want mcp.TextContent", result.Content[0])
	}
	return text.Text
}

func TestRegisterTicketmasterTools(t *testing.T) {
	sc := newTestServerContext(t)

	mcpSrv := mcpserver.NewMCPServer("test-server", "1.0.0",
		mcpserver.WithToolCapabilities(true),
	)

	if err := RegisterTicketmasterTools(mcpSrv, sc); err != nil {
		t.Errorf("RegisterTicketmasterTools() error = %v", err)
	}
}

func TestSearchEventsHandlerFormatsLines(t *testing.T) {
	sc := newTestServerContext(t)
	pointAtFakeDiscovery(t, sc, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{
			"_embedded": {
				"events": [
					{
						"name": "Jazz Fest",
						"url": "https://tm.example/jazz",
						"dates": {"start": {"localDate": "2025-09-01", "localTime": "20:00"}},
						"_embedded": {"venues": [{"name": "Blue Note"}]}
					},
					{
						"name": "Open Mic",
						"dates": {"start": {"localDate": "2025-09-02"}},
						"_embedded": {"venues": [{"name": "Cafe Lune"}]}
					}
				]
			}
		}`)
	})

	result, err := searchEventsHandler(sc)(context.Background(), searchRequest("jazz"))
	if err != nil {
		t.Fatalf("handler error = %v", err)
	}

	want := "Jazz Fest | 2025-09-01 at 20:00 | Blue Note | https://tm.example/jazz\n" +
		"Open Mic | 2025-09-02 | Cafe Lune | "
	if got := resultText(t, result); got != want {
		t.Errorf("handler result = %q, want %q", got, want)
	}
}

func TestSearchEventsHandlerNoResults(t *testing.T) {
	sc := newTestServerContext(t)
	pointAtFakeDiscovery(t, sc, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"page": {"totalElements": 0}}`)
	})

	result, err := searchEventsHandler(sc)(context.Background(), searchRequest("obscure"))
	if err != nil {
		t.Fatalf("handler error = %v", err)
	}

	if got := resultText(t, result); got != "No events found" {
		t.Errorf("handler result = %q, want %q", got, "No events found")
	}
}

func TestSearchEventsHandlerUpstreamRejection(t *testing.T) {
	sc := newTestServerContext(t)
	pointAtFakeDiscovery(t, sc, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		fmt.Fprint(w, `{"fault":"invalid key"}`)
	})

	result, err := searchEventsHandler(sc)(context.Background(), searchRequest("jazz"))
	if err != nil {
		t.Fatalf("handler error = %v", err)
	}

	want := `Error searching events: 401 - {"fault":"invalid key"}`
	if got := resultText(t, result); got != want {
		t.Errorf("handler result = %q, want %q", got, want)
	}
	// Upstream failures are reported as plain text, not protocol errors.
	if result.IsError {
		t.Error("result.IsError = true, want false")
	}
}

func TestSearchEventsHandlerMissingKeyword(t *testing.T) {
	sc := newTestServerContext(t)

	tests := []struct {
		name string
		args map[string]interface{}
	}{
		{name: "missing keyword", args: map[string]interface{}{}},
		{name: "empty keyword", args: map[string]interface{}{"keyword": ""}},
		{name: "non-string keyword", args: map[string]interface{}{"keyword": 42}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			request := mcp.CallToolRequest{
				Params: mcp.CallToolParams{
					Name:      "searchevents",
					Arguments: tt.args,
				},
			}

			result, err := searchEventsHandler(sc)(context.Background(), request)
			if err != nil {
				t.Fatalf("handler error = %v", err)
			}
			if !result.IsError {
				t.Error("result.IsError = false, want true")
			}
		})
	}
}
