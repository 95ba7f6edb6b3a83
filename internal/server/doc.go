// Package server holds the shared runtime state of the MCP server: the
// ServerContext dependency container handed to every tool handler, the
// health checker backing the Kubernetes probe endpoints, and the dedicated
// Prometheus metrics server.
//
// The ServerContext owns one client per upstream service (Ticketmaster
// Discovery, Surge, Google Calendar). The Ticketmaster and Surge clients
// are stateless and built directly from settings; the calendar client is
// authorized once before the server accepts calls and injected via
// SetCalendarClient, so tool handlers never race on the OAuth handshake.
package server
