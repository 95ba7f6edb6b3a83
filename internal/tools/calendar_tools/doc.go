// Package calendar_tools registers the MCP tools that write to Google
// Calendar: save_ticketmaster_event, which parses a pipe-delimited event
// line from a searchevents result, and create_calendar_event for events
// with explicit fields.
package calendar_tools
