package email

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"
)

// DefaultBaseURL is the public Resend API endpoint.
const DefaultBaseURL = "https://api.resend.com"

// maxErrorBody caps how much of an error response body is read.
const maxErrorBody = 64 << 10

// ResendClient sends mail through the Resend HTTP API
// (POST {base}/emails with a bearer token).
type ResendClient struct {
	// APIKey is the bearer token. An empty key disables delivery.
	APIKey string
	// BaseURL overrides the API endpoint; DefaultBaseURL when empty.
	BaseURL string
	// HTTPClient is the underlying client; a 10s-timeout default is used
	// when nil.
	HTTPClient *http.Client
}

// NewResendClient constructs a ResendClient with a sane default HTTP client.
func NewResendClient(apiKey, baseURL string) *ResendClient {
	return &ResendClient{
		APIKey:     apiKey,
		BaseURL:    baseURL,
		HTTPClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// sendRequest is the wire payload for POST /emails.
type sendRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html,omitempty"`
	Text    string   `json:"text,omitempty"`
	ReplyTo string   `json:"reply_to,omitempty"`
}

// sendResponse is the success payload.
type sendResponse struct {
	ID string `json:"id"`
}

// apiError is the error payload shape the API returns on rejection.
type apiError struct {
	Name    string `json:"name"`
	Message string `json:"message"`
}

// Send submits the message for delivery and returns the provider message id.
//
// Failure modes:
//   - ErrNotConfigured when no API key is set.
//   - *APIError for non-2xx responses (invalid recipient, quota, auth).
//   - The underlying transport error for network failures.
//
// No retry is attempted; callers decide what a failed delivery means.
func (c *ResendClient) Send(ctx context.Context, msg Message) (*Result, error) {
	if strings.TrimSpace(c.APIKey) == "" {
		return nil, ErrNotConfigured
	}

	body, err := json.Marshal(sendRequest{
		From:    msg.From,
		To:      msg.To,
		Subject: msg.Subject,
		HTML:    msg.HTML,
		Text:    msg.Text,
		ReplyTo: msg.ReplyTo,
	})
	if err != nil {
		return nil, err
	}

	base := c.BaseURL
	if base == "" {
		base = DefaultBaseURL
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, strings.TrimRight(base, "/")+"/emails", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.APIKey)
	req.Header.Set("Content-Type", "application/json")

	httpClient := c.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		apiErr := &APIError{StatusCode: resp.StatusCode, Message: strings.TrimSpace(string(raw))}
		var parsed apiError
		if json.Unmarshal(raw, &parsed) == nil && parsed.Message != "" {
			apiErr.Name = parsed.Name
			apiErr.Message = parsed.Message
		}
		return nil, apiErr
	}

	var out sendResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, err
	}
	return &Result{ID: out.ID}, nil
}
