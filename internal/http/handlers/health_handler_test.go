package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func newHealthRouter(t *testing.T) (*gin.Engine, *HealthHandlers) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	h := &HealthHandlers{DB: newSubmissionDB(t), Service: "contact-backend"}
	r := gin.New()
	r.GET("/", h.Root)
	r.GET("/health", h.Health)
	return r, h
}

func TestHealth_Connected(t *testing.T) {
	r, _ := newHealthRouter(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var resp HealthResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Database != "connected" {
		t.Fatalf("database = %q", resp.Database)
	}
}

func TestHealth_DisconnectedReturns503(t *testing.T) {
	r, h := newHealthRouter(t)

	sqlDB, err := h.DB.DB()
	if err != nil {
		t.Fatalf("unwrap db: %v", err)
	}
	_ = sqlDB.Close()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	if w.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want 503", w.Code)
	}
	var resp HealthResponse
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	if resp.Database != "disconnected" {
		t.Fatalf("database = %q", resp.Database)
	}
}

func TestRoot_ReportsServiceAndStore(t *testing.T) {
	r, _ := newHealthRouter(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var resp HealthResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Service != "contact-backend" || resp.Database != "connected" {
		t.Fatalf("unexpected: %+v", resp)
	}
}
