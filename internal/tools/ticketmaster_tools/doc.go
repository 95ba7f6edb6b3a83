// Package ticketmaster_tools registers the MCP tools backed by the
// Ticketmaster Discovery API. The searchevents tool returns one
// pipe-delimited summary line per event, the same lines the calendar tools
// accept as input.
package ticketmaster_tools
