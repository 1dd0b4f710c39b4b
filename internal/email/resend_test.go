package email

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func testMessage() Message {
	return Message{
		From:    "Acme <info@acme.example>",
		To:      []string{"jane@example.com"},
		ReplyTo: "info@acme.example",
		Subject: "Hello",
		HTML:    "<p>hi</p>",
		Text:    "hi",
	}
}

func TestResendSend_NoAPIKey(t *testing.T) {
	c := NewResendClient("", "")
	if _, err := c.Send(context.Background(), testMessage()); !errors.Is(err, ErrNotConfigured) {
		t.Fatalf("expected ErrNotConfigured, got %v", err)
	}
}

func TestResendSend_Success(t *testing.T) {
	var gotAuth, gotPath string
	var gotBody map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotPath = r.URL.Path
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"msg-123"}`))
	}))
	defer srv.Close()

	c := NewResendClient("key-abc", srv.URL)
	res, err := c.Send(context.Background(), testMessage())
	if err != nil {
		t.Fatalf("Send: %v", err)
	}
	if res.ID != "msg-123" {
		t.Fatalf("id = %q", res.ID)
	}
	if gotAuth != "Bearer key-abc" {
		t.Fatalf("auth header = %q", gotAuth)
	}
	if gotPath != "/emails" {
		t.Fatalf("path = %q", gotPath)
	}
	if gotBody["from"] != "Acme <info@acme.example>" || gotBody["reply_to"] != "info@acme.example" {
		t.Fatalf("wire payload: %v", gotBody)
	}
}

func TestResendSend_APIErrorParsed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"name":"validation_error","message":"Invalid to address"}`))
	}))
	defer srv.Close()

	c := NewResendClient("key", srv.URL)
	_, err := c.Send(context.Background(), testMessage())
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *APIError, got %v", err)
	}
	if apiErr.StatusCode != 422 || apiErr.Name != "validation_error" || apiErr.Message != "Invalid to address" {
		t.Fatalf("unexpected APIError: %+v", apiErr)
	}
}

func TestResendSend_APIErrorRawBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("upstream exploded"))
	}))
	defer srv.Close()

	c := NewResendClient("key", srv.URL)
	_, err := c.Send(context.Background(), testMessage())
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *APIError, got %v", err)
	}
	if apiErr.StatusCode != 502 || apiErr.Message != "upstream exploded" {
		t.Fatalf("unexpected APIError: %+v", apiErr)
	}
}

func TestResendSend_ContextCanceled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	c := NewResendClient("key", srv.URL)
	if _, err := c.Send(ctx, testMessage()); err == nil {
		t.Fatalf("expected error for canceled context")
	}
}

func TestAPIError_ErrorString(t *testing.T) {
	withName := &APIError{StatusCode: 401, Name: "unauthorized", Message: "bad key"}
	if got := withName.Error(); got != "email api: unauthorized (401): bad key" {
		t.Fatalf("with name: %q", got)
	}
	bare := &APIError{StatusCode: 500, Message: "boom"}
	if got := bare.Error(); got != "email api: status 500: boom" {
		t.Fatalf("bare: %q", got)
	}
}
