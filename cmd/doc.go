// Package cmd implements the command-line interface for gigbridge.
//
// This package provides the following commands:
//   - serve: Start the MCP server exposing event, messaging, and calendar tools
//   - auth: Run the Google OAuth consent flow and persist the token
//   - version: Display version information
//
// The serve command is the default command when no subcommand is specified.
package cmd
