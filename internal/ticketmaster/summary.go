package ticketmaster

import (
	"fmt"
	"strings"
)

// separator joins the fields of a summary line. ParseSummary splits on the
// same literal, so a field containing " | " would shift every later field.
const separator = " | "

// DefaultEventTime is substituted when a summary line carries no time or a
// time without a ":". A legitimately scheduled 19:00 event is
// indistinguishable from this fallback; that matches the search output
// contract and is deliberate.
const DefaultEventTime = "19:00"

// ErrInvalidFormat is returned when a summary line has fewer than the three
// required fields.
var ErrInvalidFormat = fmt.Errorf("invalid event format, expected 'Event Name | Date | Venue | URL'")

// Line renders the summary in the wire format consumed by ParseSummary:
//
//	"{title} | {date}[ at {time}] | {venue} | {url}"
//
// The URL field is emitted even when empty, mirroring the search output.
func (s EventSummary) Line() string {
	timePart := ""
	if s.Time != "" {
		timePart = " at " + s.Time
	}
	return fmt.Sprintf("%s%s%s%s%s%s%s%s", s.Title, separator, s.Date, timePart, separator, s.Venue, separator, s.URL)
}

// ParseSummary parses a summary line back into its structured form.
//
// The grammar is forgiving by contract: a missing or colon-less time falls
// back to DefaultEventTime, and the last field counts as a URL iff it
// contains "http". With exactly three fields whose last contains "http",
// venue and URL resolve to the same value; that ambiguity is inherited from
// the line format and intentionally preserved.
func ParseSummary(line string) (EventSummary, error) {
	parts := strings.Split(line, separator)
	if len(parts) < 3 {
		return EventSummary{}, ErrInvalidFormat
	}

	summary := EventSummary{
		Title: strings.TrimSpace(parts[0]),
		Venue: strings.TrimSpace(parts[2]),
	}

	datePart := strings.TrimSpace(parts[1])
	if dateStr, timeStr, found := strings.Cut(datePart, " at "); found {
		summary.Date = strings.TrimSpace(dateStr)
		summary.Time = strings.TrimSpace(timeStr)
	} else {
		summary.Date = datePart
		summary.Time = DefaultEventTime
	}

	if !strings.Contains(summary.Time, ":") {
		summary.Time = DefaultEventTime
	}

	if last := parts[len(parts)-1]; strings.Contains(last, "http") {
		summary.URL = strings.TrimSpace(last)
	}

	return summary, nil
}
