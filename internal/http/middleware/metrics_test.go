package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestMetrics_CountsByRouteAndStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(Metrics())
	r.POST("/contact", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	// Baselines first; collectors are process-global.
	baseOK := testutil.ToFloat64(httpReqs.WithLabelValues("POST", "/contact", "200"))
	baseMiss := testutil.ToFloat64(httpReqs.WithLabelValues("GET", "/missing", "404"))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/contact", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("POST /contact -> %d", w.Code)
	}

	// Unmatched route falls back to the raw path label.
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/missing", nil))
	if w.Code != http.StatusNotFound {
		t.Fatalf("GET /missing -> %d", w.Code)
	}

	if got := testutil.ToFloat64(httpReqs.WithLabelValues("POST", "/contact", "200")); got != baseOK+1 {
		t.Fatalf("contact counter = %v, want %v", got, baseOK+1)
	}
	if got := testutil.ToFloat64(httpReqs.WithLabelValues("GET", "/missing", "404")); got != baseMiss+1 {
		t.Fatalf("fallback counter = %v, want %v", got, baseMiss+1)
	}
	if got := testutil.ToFloat64(httpInflight); got != 0 {
		t.Fatalf("inflight gauge = %v after requests finished", got)
	}
}
