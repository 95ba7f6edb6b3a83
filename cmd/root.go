package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command for the gigbridge application
var rootCmd = &cobra.Command{
	Use:   "gigbridge",
	Short: "MCP server bridging Ticketmaster search, SMS, and Google Calendar",
	Long: `gigbridge is an MCP (Model Context Protocol) server that lets AI
assistants search Ticketmaster events, text the results to a configured
phone number via Surge, and save events to Google Calendar.

Event search results are pipe-delimited lines of the form
'Event Name | Date at Time | Venue | URL', which the calendar tools parse
back into structured events.`,
	SilenceUsage: true,
}

// version will be set by main
var version = "dev"

// SetVersion sets the version for the root command
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}

// Execute is the main entry point for the CLI application
func Execute() {
	rootCmd.SetVersionTemplate(`{{printf "gigbridge version %s\n" .Version}}`)

	// If no subcommand is provided, run the serve command by default
	if len(os.Args) == 1 {
		os.Args = append(os.Args, "serve")
	}

	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Display version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("gigbridge version %s\n", version)
		},
	}
}

func init() {
	rootCmd.AddCommand(newServeCmd())
	rootCmd.AddCommand(newAuthCmd())
	rootCmd.AddCommand(newVersionCmd())
}
