package server

import (
	"context"
	"testing"

	"github.com/gigbridge/gigbridge/internal/config"
)

func testSettings() *config.Settings {
	return &config.Settings{
		Ticketmaster: config.TicketmasterSettings{
			ConsumerKey: "tm-key",
		},
		Surge: config.SurgeSettings{
			APIKey:        "surge-key",
			AccountID:     "acct_123",
			MyPhoneNumber: "+15551234567",
			MyFirstName:   "Ada",
			MyLastName:    "Lovelace",
		},
	}
}

func TestNewServerContext(t *testing.T) {
	sc, err := NewServerContext(context.Background(), testSettings())
	if err != nil {
		t.Fatalf("NewServerContext() error = %v", err)
	}
	defer func() { _ = sc.Shutdown() }()

	if sc.TicketmasterClient() == nil {
		t.Error("TicketmasterClient() = nil, want client")
	}
	if sc.SurgeClient() == nil {
		t.Error("SurgeClient() = nil, want client")
	}
	if sc.CalendarClient() != nil {
		t.Error("CalendarClient() should be nil before SetCalendarClient")
	}
	if sc.Settings() == nil {
		t.Error("Settings() = nil, want settings")
	}
	if sc.Context() == nil {
		t.Error("Context() = nil, want context")
	}
}

func TestNewServerContextRequiresSettings(t *testing.T) {
	if _, err := NewServerContext(context.Background(), nil); err == nil {
		t.Fatal("NewServerContext(nil settings) expected error, got nil")
	}
}

func TestNewServerContextRejectsIncompleteSettings(t *testing.T) {
	settings := testSettings()
	settings.Surge.APIKey = ""

	if _, err := NewServerContext(context.Background(), settings); err == nil {
		t.Fatal("NewServerContext() with missing Surge key expected error, got nil")
	}
}

func TestServerContextShutdown(t *testing.T) {
	sc, err := NewServerContext(context.Background(), testSettings())
	if err != nil {
		t.Fatalf("NewServerContext() error = %v", err)
	}

	if sc.IsShutdown() {
		t.Error("IsShutdown() = true before Shutdown()")
	}

	if err := sc.Shutdown(); err != nil {
		t.Errorf("Shutdown() error = %v", err)
	}
	if !sc.IsShutdown() {
		t.Error("IsShutdown() = false after Shutdown()")
	}

	select {
	case <-sc.Context().Done():
	default:
		t.Error("Context() not cancelled after Shutdown()")
	}

	// Shutdown is idempotent.
	if err := sc.Shutdown(); err != nil {
		t.Errorf("second Shutdown() error = %v", err)
	}
}
