package calendar

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"golang.org/x/oauth2"
	calendar "google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"

	"github.com/gigbridge/gigbridge/internal/google"
	"github.com/gigbridge/gigbridge/internal/logging"
)

// primaryCalendarID is the calendar all events are inserted into.
const primaryCalendarID = "primary"

// Client wraps the Google Calendar service
type Client struct {
	svc    *calendar.Service
	logger *slog.Logger
}

// NewClient creates a new Calendar client authenticated through the given
// credential provider. Authentication happens here, at construction: the
// provider loads, refreshes, or interactively obtains credentials before the
// client is handed out, so concurrent tool calls never trigger a consent
// flow.
func NewClient(ctx context.Context, provider google.CredentialProvider) (*Client, error) {
	if provider == nil {
		return nil, fmt.Errorf("credential provider cannot be nil")
	}

	ts, err := provider.TokenSource(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to authenticate with Google Calendar: %w", err)
	}

	client := oauth2.NewClient(ctx, ts)

	// Force HTTP/1.1 by disabling HTTP/2
	if transport, ok := client.Transport.(*oauth2.Transport); ok {
		transport.Base = &http.Transport{
			ForceAttemptHTTP2: false,
		}
	}

	svc, err := calendar.NewService(ctx, option.WithHTTPClient(client))
	if err != nil {
		return nil, fmt.Errorf("failed to create Calendar service: %w", err)
	}

	return NewClientWithService(svc), nil
}

// NewClientWithService wires a client around an existing service. Tests use
// it to point the client at a fake API endpoint.
func NewClientWithService(svc *calendar.Service) *Client {
	return &Client{
		svc:    svc,
		logger: logging.WithService(slog.Default(), "calendar"),
	}
}

// CreateEvent inserts an event into the primary calendar with the fixed
// reminder overrides (email 24h before, popup 1h before; provider defaults
// disabled). It always returns a result: provider rejections are captured in
// the result message, never raised.
func (c *Client) CreateEvent(ctx context.Context, input EventInput) *CreateResult {
	if input.TimeZone == "" {
		input.TimeZone = DefaultTimeZone
	}
	if input.End.IsZero() {
		input.End = input.Start.Add(DefaultEventDuration)
	}

	if !input.End.After(input.Start) {
		return &CreateResult{
			Success: false,
			Message: fmt.Sprintf("Failed to create event: end time %s is not after start time %s", input.End.Format("2006-01-02 15:04"), input.Start.Format("2006-01-02 15:04")),
		}
	}

	event := &calendar.Event{
		Summary:     input.Title,
		Location:    input.Location,
		Description: input.Description,
		Start: &calendar.EventDateTime{
			DateTime: input.Start.Format("2006-01-02T15:04:05"),
			TimeZone: input.TimeZone,
		},
		End: &calendar.EventDateTime{
			DateTime: input.End.Format("2006-01-02T15:04:05"),
			TimeZone: input.TimeZone,
		},
		Reminders: &calendar.EventReminders{
			UseDefault: false,
			Overrides: []*calendar.EventReminder{
				{Method: "email", Minutes: emailReminderMinutes},
				{Method: "popup", Minutes: popupReminderMinutes},
			},
			ForceSendFields: []string{"UseDefault"},
		},
	}

	created, err := c.svc.Events.Insert(primaryCalendarID, event).Context(ctx).Do()
	if err != nil {
		c.logger.Error("event insert rejected", logging.Operation("insert"), logging.Err(err))
		return &CreateResult{
			Success: false,
			Message: fmt.Sprintf("Failed to create event: %v", err),
		}
	}

	c.logger.Debug("event created", logging.Operation("insert"), slog.String("event_id", created.Id))

	return &CreateResult{
		Success:  true,
		EventID:  created.Id,
		HTMLLink: created.HtmlLink,
		Message:  fmt.Sprintf("Event '%s' created successfully", input.Title),
	}
}
