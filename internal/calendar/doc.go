// Package calendar provides a client for creating Google Calendar events.
//
// Events are always inserted into the user's primary calendar with fixed
// reminder overrides: an email a day ahead and a popup an hour ahead, with
// the calendar's default reminders disabled. CreateEvent never returns an
// error; provider rejections are captured in the CreateResult so tool
// handlers can pass the outcome straight through as text.
//
// Authentication is delegated to a google.CredentialProvider and performed
// once at client construction (see the serve command, which builds the
// client before accepting tool calls).
package calendar
