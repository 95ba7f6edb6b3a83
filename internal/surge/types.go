package surge

import "fmt"

// Recipient is the fixed contact every outgoing message is addressed to.
// It is loaded once from configuration and immutable for the process
// lifetime.
type Recipient struct {
	FirstName   string
	LastName    string
	PhoneNumber string
}

// StatusError reports a non-2xx response from the Surge API.
type StatusError struct {
	// Op is the operation that failed (e.g., "send")
	Op string

	// StatusCode is the HTTP status returned by the API
	StatusCode int

	// Body is the raw response body
	Body string
}

// Error implements the error interface
func (e *StatusError) Error() string {
	return fmt.Sprintf("surge %s: unexpected status %d: %s", e.Op, e.StatusCode, e.Body)
}

// messageRequest is the wire format of POST /messages.
type messageRequest struct {
	Body         string       `json:"body"`
	Conversation conversation `json:"conversation"`
}

type conversation struct {
	Contact contact `json:"contact"`
}

type contact struct {
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	PhoneNumber string `json:"phone_number"`
}
