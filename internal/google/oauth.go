package google

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	calendar "google.golang.org/api/calendar/v3"
)

// Default locations of the OAuth app secrets and the persisted user token,
// relative to the working directory. These match the conventional file names
// downloaded from the Google Cloud Console.
const (
	DefaultSecretsFile = "client_secret.json"
	DefaultTokenFile   = "token.json"
)

// Scopes requested during authorization. If these change, the persisted
// token file must be deleted and the user re-authorized.
var Scopes = []string{calendar.CalendarScope}

// LoadOAuthConfig reads the installed-app client secrets file and returns
// the OAuth2 configuration for the calendar scope.
func LoadOAuthConfig(secretsFile string) (*oauth2.Config, error) {
	data, err := os.ReadFile(secretsFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read client secrets file %s: %w", secretsFile, err)
	}

	conf, err := google.ConfigFromJSON(data, Scopes...)
	if err != nil {
		return nil, fmt.Errorf("failed to parse client secrets file %s: %w", secretsFile, err)
	}

	return conf, nil
}

// readToken loads a persisted OAuth token from disk.
func readToken(tokenFile string) (*oauth2.Token, error) {
	data, err := os.ReadFile(tokenFile)
	if err != nil {
		return nil, err
	}

	var token oauth2.Token
	if err := json.Unmarshal(data, &token); err != nil {
		return nil, fmt.Errorf("failed to parse token file %s: %w", tokenFile, err)
	}

	return &token, nil
}

// writeToken persists an OAuth token to disk with owner-only permissions.
func writeToken(tokenFile string, token *oauth2.Token) error {
	data, err := json.Marshal(token)
	if err != nil {
		return fmt.Errorf("failed to encode token: %w", err)
	}

	if dir := filepath.Dir(tokenFile); dir != "." {
		if err := os.MkdirAll(dir, 0700); err != nil {
			return fmt.Errorf("failed to create token directory: %w", err)
		}
	}

	if err := os.WriteFile(tokenFile, data, 0600); err != nil {
		return fmt.Errorf("failed to write token file %s: %w", tokenFile, err)
	}

	return nil
}

// Authorize runs the interactive authorization flow and persists the
// resulting token. It prints the consent URL to stderr and reads the
// authorization code from stdin.
func Authorize(ctx context.Context, secretsFile, tokenFile string) error {
	conf, err := LoadOAuthConfig(secretsFile)
	if err != nil {
		return err
	}

	token, err := promptForToken(ctx, conf)
	if err != nil {
		return err
	}

	return writeToken(tokenFile, token)
}

// promptForToken drives the out-of-band consent flow on the terminal.
func promptForToken(ctx context.Context, conf *oauth2.Config) (*oauth2.Token, error) {
	authURL := conf.AuthCodeURL("state", oauth2.AccessTypeOffline)
	fmt.Fprintf(os.Stderr, "Open the following URL in your browser and authorize access:\n\n  %s\n\nAuthorization code: ", authURL)

	var code string
	if _, err := fmt.Scan(&code); err != nil {
		return nil, fmt.Errorf("failed to read authorization code: %w", err)
	}

	token, err := conf.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to exchange authorization code: %w", err)
	}

	return token, nil
}
