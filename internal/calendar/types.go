package calendar

import "time"

// Defaults applied by CreateEvent when the caller leaves fields unset.
const (
	// DefaultTimeZone is the fixed timezone applied when none is given.
	DefaultTimeZone = "America/New_York"

	// DefaultEventDuration is the end-time fallback for generic events.
	// The event-line save path uses its own 3-hour span instead, since
	// concrete ticketed events run longer.
	DefaultEventDuration = 2 * time.Hour
)

// Reminder override minutes: one email a day ahead, one popup an hour ahead.
const (
	emailReminderMinutes = 24 * 60
	popupReminderMinutes = 60
)

// EventInput describes a calendar event to create.
type EventInput struct {
	// Title is the event summary line
	Title string

	// Start is the event start time (interpreted in TimeZone)
	Start time.Time

	// End is the event end time; zero means Start + DefaultEventDuration
	End time.Time

	// Description is the event body; optional
	Description string

	// Location is the venue; optional
	Location string

	// TimeZone is an IANA zone name; empty means DefaultTimeZone
	TimeZone string
}

// CreateResult reports the outcome of an event creation. CreateEvent always
// returns a result; provider failures are captured here rather than raised.
type CreateResult struct {
	// Success indicates whether the event was created
	Success bool

	// EventID is the provider-assigned event identifier (on success)
	EventID string

	// HTMLLink is the event's web link (on success)
	HTMLLink string

	// Message is a human-readable outcome description
	Message string
}
