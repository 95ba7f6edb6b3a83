// Package surge_tools registers the MCP tools that send text messages
// through the Surge API to the recipient fixed in the server settings.
package surge_tools
