package ticketmaster

import "fmt"

// Default values applied when the Discovery API omits a field.
const (
	DefaultEventName = "Unknown Event"
	DefaultDate      = "TBD"
	DefaultVenue     = "Unknown Venue"
)

// EventSummary is the structured form of one search result. Its string
// projection (Line) is also the input grammar of ParseSummary, so the search
// tool and the calendar-save tool stay coupled through this one type.
type EventSummary struct {
	// Title is the event name
	Title string

	// Date is the local start date (YYYY-MM-DD) or "TBD"
	Date string

	// Time is the local start time (HH:MM, 24h); empty when unknown
	Time string

	// Venue is the name of the first venue
	Venue string

	// URL is the Ticketmaster detail page; empty when unknown
	URL string
}

// StatusError reports a non-2xx response from the Discovery API.
type StatusError struct {
	// Op is the operation that failed (e.g., "search")
	Op string

	// StatusCode is the HTTP status returned by the API
	StatusCode int

	// Body is the raw response body
	Body string
}

// Error implements the error interface
func (e *StatusError) Error() string {
	return fmt.Sprintf("ticketmaster %s: unexpected status %d: %s", e.Op, e.StatusCode, e.Body)
}

// discoveryResponse mirrors the slice of the Discovery API payload this
// client cares about.
type discoveryResponse struct {
	Embedded *struct {
		Events []apiEvent `json:"events"`
	} `json:"_embedded"`
}

type apiEvent struct {
	Name  string `json:"name"`
	URL   string `json:"url"`
	Dates struct {
		Start struct {
			LocalDate string `json:"localDate"`
			LocalTime string `json:"localTime"`
		} `json:"start"`
	} `json:"dates"`
	Embedded struct {
		Venues []struct {
			Name string `json:"name"`
		} `json:"venues"`
	} `json:"_embedded"`
}

// toEventSummary projects an API event into an EventSummary, applying the
// documented defaults for absent fields.
func toEventSummary(e apiEvent) EventSummary {
	summary := EventSummary{
		Title: e.Name,
		Date:  e.Dates.Start.LocalDate,
		Time:  e.Dates.Start.LocalTime,
		URL:   e.URL,
	}

	if summary.Title == "" {
		summary.Title = DefaultEventName
	}
	if summary.Date == "" {
		summary.Date = DefaultDate
	}

	if len(e.Embedded.Venues) > 0 && e.Embedded.Venues[0].Name != "" {
		summary.Venue = e.Embedded.Venues[0].Name
	} else {
		summary.Venue = DefaultVenue
	}

	return summary
}
