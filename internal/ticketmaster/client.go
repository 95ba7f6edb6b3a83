package ticketmaster

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
)

// DefaultBaseURL is the Discovery API event search endpoint.
const DefaultBaseURL = "https://app.ticketmaster.com/discovery/v2/events.json"

// searchPageSize is the fixed number of results requested per search.
const searchPageSize = 10

// Client provides access to the Ticketmaster Discovery API
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
}

// Option customizes a Client.
type Option func(*Client)

// WithBaseURL points the client at a different search endpoint.
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

// NewClient creates a new Discovery API client using the given consumer key
func NewClient(apiKey string, opts ...Option) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("apiKey cannot be empty")
	}

	c := &Client{
		httpClient: http.DefaultClient,
		baseURL:    DefaultBaseURL,
		apiKey:     apiKey,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Search queries the Discovery API for up to 10 events matching the keyword.
// The keyword is passed through URL encoding without further validation.
// Non-2xx responses are returned as a *StatusError carrying status and body.
func (c *Client) Search(ctx context.Context, keyword string) ([]EventSummary, error) {
	query := url.Values{}
	query.Set("size", strconv.Itoa(searchPageSize))
	query.Set("keyword", keyword)
	query.Set("apikey", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+query.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build search request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to search events: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read search response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &StatusError{
			Op:         "search",
			StatusCode: resp.StatusCode,
			Body:       string(body),
		}
	}

	var data discoveryResponse
	if err := json.Unmarshal(body, &data); err != nil {
		return nil, fmt.Errorf("failed to decode search response: %w", err)
	}

	if data.Embedded == nil {
		return nil, nil
	}

	summaries := make([]EventSummary, 0, len(data.Embedded.Events))
	for _, event := range data.Embedded.Events {
		summaries = append(summaries, toEventSummary(event))
	}

	return summaries, nil
}
