package server

import (
	"context"
	"fmt"
	"sync"

	"github.com/gigbridge/gigbridge/internal/calendar"
	"github.com/gigbridge/gigbridge/internal/config"
	"github.com/gigbridge/gigbridge/internal/instrumentation"
	"github.com/gigbridge/gigbridge/internal/surge"
	"github.com/gigbridge/gigbridge/internal/ticketmaster"
)

// ServerContext holds the context for the MCP server
type ServerContext struct {
	ctx            context.Context
	cancel         context.CancelFunc
	settings       *config.Settings
	ticketmaster   *ticketmaster.Client
	surge          *surge.Client
	calendarClient *calendar.Client
	metrics        *instrumentation.Metrics
	mu             sync.RWMutex
	shutdown       bool
}

// NewServerContext creates a new server context with the Ticketmaster and
// Surge clients built from the given settings. The calendar client requires
// an OAuth flow and is injected separately via SetCalendarClient before the
// server starts accepting calls.
func NewServerContext(ctx context.Context, settings *config.Settings) (*ServerContext, error) {
	if settings == nil {
		return nil, fmt.Errorf("settings are required")
	}

	shutdownCtx, cancel := context.WithCancel(ctx)

	tmClient, err := ticketmaster.NewClient(settings.Ticketmaster.ConsumerKey)
	if err != nil {
		cancel()
		return nil, fmt.Errorf("failed to create ticketmaster client: %w", err)
	}

	surgeClient, err := surge.NewClient(settings.Surge.APIKey, settings.Surge.AccountID, surge.Recipient{
		FirstName:   settings.Surge.MyFirstName,
		LastName:    settings.Surge.MyLastName,
		PhoneNumber: settings.Surge.MyPhoneNumber,
	})
	if err != nil {
		cancel()
		return nil, fmt.Errorf("failed to create surge client: %w", err)
	}

	return &ServerContext{
		ctx:          shutdownCtx,
		cancel:       cancel,
		settings:     settings,
		ticketmaster: tmClient,
		surge:        surgeClient,
		shutdown:     false,
	}, nil
}

// Context returns the server context
func (sc *ServerContext) Context() context.Context {
	return sc.ctx
}

// Settings returns the resolved settings
func (sc *ServerContext) Settings() *config.Settings {
	return sc.settings
}

// TicketmasterClient returns the Ticketmaster Discovery client
func (sc *ServerContext) TicketmasterClient() *ticketmaster.Client {
	sc.mu.RLock()
	defer sc.mu.RUnlock()
	return sc.ticketmaster
}

// SetTicketmasterClient sets the Ticketmaster Discovery client
func (sc *ServerContext) SetTicketmasterClient(client *ticketmaster.Client) {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	sc.ticketmaster = client
}

// SurgeClient returns the Surge SMS client
func (sc *ServerContext) SurgeClient() *surge.Client {
	sc.mu.RLock()
	defer sc.mu.RUnlock()
	return sc.surge
}

// SetSurgeClient sets the Surge SMS client
func (sc *ServerContext) SetSurgeClient(client *surge.Client) {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	sc.surge = client
}

// CalendarClient returns the Google Calendar client, or nil if it has not
// been initialized yet
func (sc *ServerContext) CalendarClient() *calendar.Client {
	sc.mu.RLock()
	defer sc.mu.RUnlock()
	return sc.calendarClient
}

// SetCalendarClient sets the Google Calendar client
func (sc *ServerContext) SetCalendarClient(client *calendar.Client) {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	sc.calendarClient = client
}

// Metrics returns the metrics recorder, which may be nil when
// instrumentation is disabled. Recording on a nil Metrics is a no-op.
func (sc *ServerContext) Metrics() *instrumentation.Metrics {
	sc.mu.RLock()
	defer sc.mu.RUnlock()
	return sc.metrics
}

// SetMetrics sets the metrics recorder
func (sc *ServerContext) SetMetrics(metrics *instrumentation.Metrics) {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	sc.metrics = metrics
}

// IsShutdown returns whether the server has been shutdown
func (sc *ServerContext) IsShutdown() bool {
	sc.mu.RLock()
	defer sc.mu.RUnlock()
	return sc.shutdown
}

// Shutdown shuts down the server context
func (sc *ServerContext) Shutdown() error {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	if sc.shutdown {
		return nil
	}

	sc.shutdown = true
	sc.cancel()
	return nil
}
