package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"
)

// adminKeyHeader carries the shared admin credential on protected routes.
const adminKeyHeader = "X-Admin-Key"

// Authenticator decides whether a request may reach the admin surface.
// Implementations must be safe for concurrent use.
type Authenticator interface {
	// Authenticate reports whether the request is allowed.
	Authenticate(r *http.Request) bool
}

// StaticKeyAuth authenticates requests by comparing the X-Admin-Key header
// against a single configured secret. An empty Key disables the check
// entirely, which keeps deployments without a configured secret open, the
// same as running with no authenticator at all.
type StaticKeyAuth struct {
	Key string
}

// Authenticate implements Authenticator using a constant-time comparison.
func (a StaticKeyAuth) Authenticate(r *http.Request) bool {
	if a.Key == "" {
		return true
	}
	got := r.Header.Get(adminKeyHeader)
	return subtle.ConstantTimeCompare([]byte(got), []byte(a.Key)) == 1
}

// RequireAuth gates a route group behind the given Authenticator. Rejected
// requests receive a JSON 401 carrying the request correlation id. A nil
// authenticator allows every request through.
func RequireAuth(auth Authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		if auth == nil || auth.Authenticate(c.Request) {
			c.Next()
			return
		}
		rid, _ := c.Get(requestIDKey)
		LoggerFrom(c).Warn().
			Str("remote_ip", c.ClientIP()).
			Msg("admin request rejected")
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
			"request_id": asString(rid),
			"code":       "unauthorized",
			"message":    "missing or invalid admin credential",
		})
	}
}
