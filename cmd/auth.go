package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gigbridge/gigbridge/internal/google"
)

func newAuthCmd() *cobra.Command {
	var (
		secretsFile string
		tokenFile   string
	)

	cmd := &cobra.Command{
		Use:   "auth",
		Short: "Authorize Google Calendar access",
		Long: `Run the Google OAuth consent flow and persist the resulting token.

The flow prints a consent URL, waits for the authorization code on stdin,
and writes the token to the token file. Once the token exists, 'gigbridge
serve' starts without prompting. Delete the token file to re-authorize with
different scopes or a different account.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := google.Authorize(cmd.Context(), secretsFile, tokenFile); err != nil {
				return fmt.Errorf("authorization failed: %w", err)
			}
			fmt.Printf("Authorization complete. Token saved to %s\n", tokenFile)
			return nil
		},
	}

	cmd.Flags().StringVar(&secretsFile, "secrets-file", google.DefaultSecretsFile, "Path to the Google OAuth client secrets file")
	cmd.Flags().StringVar(&tokenFile, "token-file", google.DefaultTokenFile, "Path to write the OAuth token to")

	return cmd
}
