package surge

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// DefaultBaseURL is the Surge messages endpoint.
const DefaultBaseURL = "https://api.surge.app/messages"

// Client sends text messages through the Surge API to a fixed recipient.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	accountID  string
	recipient  Recipient
}

// Option customizes a Client.
type Option func(*Client)

// WithBaseURL points the client at a different messages endpoint.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = baseURL
	}
}

// WithHTTPClient replaces the HTTP client used for requests.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// NewClient creates a new Surge client. The recipient profile is fixed for
// the lifetime of the client.
func NewClient(apiKey, accountID string, recipient Recipient, opts ...Option) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("apiKey cannot be empty")
	}
	if accountID == "" {
		return nil, fmt.Errorf("accountID cannot be empty")
	}
	if recipient.PhoneNumber == "" {
		return nil, fmt.Errorf("recipient phone number cannot be empty")
	}

	c := &Client{
		httpClient: http.DefaultClient,
		baseURL:    DefaultBaseURL,
		apiKey:     apiKey,
		accountID:  accountID,
		recipient:  recipient,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Recipient returns the fixed recipient profile of this client
func (c *Client) Recipient() Recipient {
	return c.recipient
}

// SendMessage sends body as a text message to the fixed recipient.
// Fire-and-report: there is no retry and no delivery-status polling.
// Non-2xx responses are returned as a *StatusError carrying status and body.
func (c *Client) SendMessage(ctx context.Context, body string) error {
	payload, err := json.Marshal(messageRequest{
		Body: body,
		Conversation: conversation{
			Contact: contact{
				FirstName:   c.recipient.FirstName,
				LastName:    c.recipient.LastName,
				PhoneNumber: c.recipient.PhoneNumber,
			},
		},
	})
	if err != nil {
		return fmt.Errorf("failed to encode message: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to build message request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Surge-Account", c.accountID)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send message: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(resp.Body)
		return &StatusError{
			Op:         "send",
			StatusCode: resp.StatusCode,
			Body:       string(respBody),
		}
	}

	return nil
}
