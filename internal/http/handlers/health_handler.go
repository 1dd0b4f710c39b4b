// Health HTTP handlers.
//
// GET / reports service identity plus store connectivity; GET /health is the
// probe endpoint and degrades to 503 when the store ping fails.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/mechgenz/contact-backend/internal/repo"
)

// HealthResponse reports service and store health.
type HealthResponse struct {
	Status string `json:"status" example:"healthy"`
	// Database is "connected" or "disconnected".
	Database string `json:"database" example:"connected"`
	Service  string `json:"service,omitempty" example:"contact-backend"`
}

// HealthHandlers serves the liveness and readiness endpoints. It pings the
// store directly rather than going through a service; connectivity is the
// only thing these endpoints assert.
type HealthHandlers struct {
	DB      *gorm.DB
	Service string
}

// Root godoc
// @ID          root
// @Summary     Service banner
// @Description Reports the service name and current store connectivity.
// @Tags        Health
// @Produce     json
// @Success     200  {object} handlers.HealthResponse
// @Router      / [get]
func (h *HealthHandlers) Root(c *gin.Context) {
	resp := HealthResponse{Status: "running", Database: "connected", Service: h.Service}
	if err := repo.Ping(c.Request.Context(), h.DB); err != nil {
		resp.Database = "disconnected"
	}
	ok(c, http.StatusOK, resp)
}

// Health godoc
// @ID          health
// @Summary     Health probe
// @Description Returns 200 with database "connected" when the store responds to a ping, 503 otherwise.
// @Tags        Health
// @Produce     json
// @Success     200  {object} handlers.HealthResponse
// @Failure     503  {object} handlers.HealthResponse "Store unreachable"
// @Router      /health [get]
func (h *HealthHandlers) Health(c *gin.Context) {
	if err := repo.Ping(c.Request.Context(), h.DB); err != nil {
		ok(c, http.StatusServiceUnavailable, HealthResponse{
			Status:   "degraded",
			Database: "disconnected",
		})
		return
	}
	ok(c, http.StatusOK, HealthResponse{Status: "healthy", Database: "connected"})
}
