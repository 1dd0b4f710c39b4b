// Package email provides outbound transactional-email delivery. It defines
// a small provider-agnostic Client interface, a Resend HTTP implementation,
// and the fixed HTML/plain-text templates used for reply and intake
// notification mail.
package email

import (
	"context"
	"errors"
	"fmt"
)

// Message represents an email to be sent. HTML and Text carry the same
// content in both renderings; providers fall back to Text for clients that
// reject HTML mail.
type Message struct {
	From    string
	To      []string
	ReplyTo string
	Subject string
	HTML    string
	Text    string
}

// Result holds the outcome of a successful send attempt.
type Result struct {
	// ID is the provider-assigned message identifier.
	ID string
}

// Client defines the interface for sending emails. Implementations can be
// swapped between the real provider and a stub in tests; they must be safe
// for concurrent use and honor the context for cancellation.
type Client interface {
	Send(ctx context.Context, msg Message) (*Result, error)
}

// ErrNotConfigured is returned when delivery is attempted without an API key.
var ErrNotConfigured = errors.New("email delivery is not configured")

// APIError is a delivery rejection reported by the provider (invalid
// address, quota exhaustion, authentication failure, ...). Handlers surface
// it to the caller as a delivery failure; it is never retried here.
type APIError struct {
	StatusCode int
	Name       string
	Message    string
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.Name != "" {
		return fmt.Sprintf("email api: %s (%d): %s", e.Name, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("email api: status %d: %s", e.StatusCode, e.Message)
}
