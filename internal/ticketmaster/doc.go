// Package ticketmaster provides a client for the Ticketmaster Discovery API
// and the event summary-line grammar shared with the calendar-save tool.
//
// This package offers:
//   - Keyword search returning up to 10 events per call
//   - Projection of search results into single-line summaries
//   - Parsing of summary lines back into structured events
//
// The summary line format is:
//
//	"{title} | {date}[ at {time}] | {venue} | {url}"
//
// Search output and ParseSummary input share this grammar, so the two tools
// can round-trip events through the host as plain text. In-process callers
// should pass EventSummary values directly instead of re-parsing lines.
//
// Authentication uses a consumer key (apikey query parameter) issued by the
// Ticketmaster developer portal.
//
// Example usage:
//
//	client, err := ticketmaster.NewClient(os.Getenv("TICKETMASTER_CONSUMER_KEY"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	events, err := client.Search(ctx, "jazz")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, event := range events {
//	    fmt.Println(event.Line())
//	}
package ticketmaster
