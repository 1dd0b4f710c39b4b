package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestRedact_Email(t *testing.T) {
	got := Redact("contact from jane.doe+tag@example.co.uk today")
	if strings.Contains(got, "jane.doe") || strings.Contains(got, "example.co.uk") {
		t.Fatalf("email leaked: %q", got)
	}
	if !strings.Contains(got, "[REDACTED:email]") {
		t.Fatalf("missing placeholder: %q", got)
	}
}

func TestRedact_UUID(t *testing.T) {
	got := Redact("id=141add05-4415-4938-b5a1-17e0d3171aff done")
	if strings.Contains(got, "141add05") {
		t.Fatalf("uuid leaked: %q", got)
	}
	if !strings.Contains(got, "[REDACTED:id]") {
		t.Fatalf("missing placeholder: %q", got)
	}
}

func TestRedact_Phone(t *testing.T) {
	for _, in := range []string{"call +1 555 123 4567", "tel: 5551234567"} {
		got := Redact(in)
		if strings.Contains(got, "4567") {
			t.Fatalf("phone leaked: %q -> %q", in, got)
		}
	}
}

func TestRedact_EmptyAndClean(t *testing.T) {
	if got := Redact(""); got != "" {
		t.Fatalf("empty changed: %q", got)
	}
	if got := Redact("just words"); got != "just words" {
		t.Fatalf("clean string changed: %q", got)
	}
}

func TestRedactingLogger_AttachesRequestLogger(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestID())
	r.Use(RedactingLogger(RedactOptions{}))
	r.GET("/x", func(c *gin.Context) {
		if LoggerFrom(c) == nil {
			t.Fatalf("no request logger attached")
		}
		c.Status(http.StatusNoContent)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x?email=jane@example.com", nil))
	if w.Code != http.StatusNoContent {
		t.Fatalf("status = %d", w.Code)
	}
}
