package google

import (
	"context"
	"fmt"
	"os"

	"golang.org/x/oauth2"
)

// CredentialProvider supplies OAuth tokens for Google APIs. The abstraction
// keeps authentication out of the calendar client so it can be tested with a
// fake provider instead of a browser flow. A provider resolves to one of
// three outcomes: a valid cached token, a transparently refreshed token, or
// an interactive authorization.
type CredentialProvider interface {
	// TokenSource returns a source of valid tokens, refreshing or
	// re-authorizing as needed.
	TokenSource(ctx context.Context) (oauth2.TokenSource, error)

	// HasToken reports whether a persisted token exists.
	HasToken() bool
}

// FileCredentialProvider persists tokens to a local file (token.json) and
// reads app secrets from a local secrets file (client_secret.json).
type FileCredentialProvider struct {
	SecretsFile string
	TokenFile   string

	// Interactive controls whether the provider may fall back to the
	// terminal consent flow when no usable token exists. The serve path
	// enables it so first-run authentication happens eagerly at startup,
	// before any tool call is served.
	Interactive bool
}

// NewFileCredentialProvider creates a provider using the default file
// locations.
func NewFileCredentialProvider(interactive bool) *FileCredentialProvider {
	return &FileCredentialProvider{
		SecretsFile: DefaultSecretsFile,
		TokenFile:   DefaultTokenFile,
		Interactive: interactive,
	}
}

// HasToken reports whether a persisted token file exists.
func (p *FileCredentialProvider) HasToken() bool {
	_, err := os.Stat(p.TokenFile)
	return err == nil
}

// TokenSource loads the persisted token, refreshing and re-persisting it
// when expired. If no usable token exists and Interactive is set, it runs
// the consent flow; otherwise it returns an error instructing the user to
// run the auth command.
func (p *FileCredentialProvider) TokenSource(ctx context.Context) (oauth2.TokenSource, error) {
	conf, err := LoadOAuthConfig(p.SecretsFile)
	if err != nil {
		return nil, err
	}

	token, err := readToken(p.TokenFile)
	if err != nil {
		if !p.Interactive {
			return nil, fmt.Errorf("no Google OAuth token found; run 'gigbridge auth' to authorize")
		}
		token, err = promptForToken(ctx, conf)
		if err != nil {
			return nil, err
		}
		if err := writeToken(p.TokenFile, token); err != nil {
			return nil, err
		}
	}

	ts := conf.TokenSource(ctx, token)

	// Force a token fetch now so an expired token is refreshed (or the
	// interactive flow triggered) at construction time, not on the first
	// tool call.
	fresh, err := ts.Token()
	if err != nil {
		if !p.Interactive {
			return nil, fmt.Errorf("cached Google OAuth token is invalid: %w", err)
		}
		fresh, err = promptForToken(ctx, conf)
		if err != nil {
			return nil, err
		}
		ts = conf.TokenSource(ctx, fresh)
	}

	// Persist refreshed credentials so the next run skips the consent flow.
	if fresh.AccessToken != token.AccessToken || fresh.RefreshToken != token.RefreshToken {
		if err := writeToken(p.TokenFile, fresh); err != nil {
			return nil, err
		}
	}

	return ts, nil
}
