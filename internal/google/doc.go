// Package google handles OAuth2 authentication for Google APIs using the
// installed-application flow.
//
// App client secrets are read from client_secret.json (downloaded from the
// Google Cloud Console) and the user's access/refresh token pair is
// persisted to token.json between runs. Expired tokens are refreshed
// transparently and re-persisted; when no usable token exists, an
// interactive consent flow runs on the terminal.
//
// The CredentialProvider interface decouples consumers (the calendar
// client) from this flow so they can be tested with fake providers.
package google
