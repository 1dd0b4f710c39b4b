// Package httpapi wires the HTTP transport (Gin) to application services,
// middleware, and route handlers. It centralizes cross-cutting concerns such
// as tracing, correlation IDs, logging/redaction, panic recovery, metrics,
// compression, CORS, security headers, and the admin authentication gate.
//
// Design goals:
//   - Put observability first (OTel + Prometheus)
//   - Safe-by-default middleware ordering (RequestID → logging → recovery)
//   - Deterministic, minimal router setup; all dependencies injected
//   - Production-ready CORS and security header posture
package httpapi

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"gorm.io/gorm"

	"github.com/mechgenz/contact-backend/internal/config"
	"github.com/mechgenz/contact-backend/internal/domain"
	"github.com/mechgenz/contact-backend/internal/email"
	"github.com/mechgenz/contact-backend/internal/http/handlers"
	"github.com/mechgenz/contact-backend/internal/http/middleware"
	"github.com/mechgenz/contact-backend/internal/repo"
	"github.com/mechgenz/contact-backend/internal/services"
)

// submissionRepoShim adapts the repository free functions to the
// services.SubmissionRepo interface expected by SubmissionService. It keeps
// services decoupled from the concrete repo package while reusing the
// existing functions.
type submissionRepoShim struct{}

// CreateSubmission proxies repo.CreateSubmission.
func (submissionRepoShim) CreateSubmission(ctx context.Context, db *gorm.DB, fields domain.JSONMap, email, ip, userAgent string) (*domain.Submission, error) {
	return repo.CreateSubmission(ctx, db, fields, email, ip, userAgent)
}

// CountSubmissions proxies repo.CountSubmissions.
func (submissionRepoShim) CountSubmissions(ctx context.Context, db *gorm.DB) (int64, error) {
	return repo.CountSubmissions(ctx, db)
}

// ListSubmissionsPage proxies repo.ListSubmissionsPage.
func (submissionRepoShim) ListSubmissionsPage(ctx context.Context, db *gorm.DB, offset, limit int) ([]domain.Submission, error) {
	return repo.ListSubmissionsPage(ctx, db, offset, limit)
}

// UpdateSubmissionStatus proxies repo.UpdateSubmissionStatus.
func (submissionRepoShim) UpdateSubmissionStatus(ctx context.Context, db *gorm.DB, id, status string) error {
	return repo.UpdateSubmissionStatus(ctx, db, id, status)
}

// StatusCounts proxies repo.StatusCounts.
func (submissionRepoShim) StatusCounts(ctx context.Context, db *gorm.DB) (map[string]int64, error) {
	return repo.StatusCounts(ctx, db)
}

// LatestSubmissionByEmail proxies repo.LatestSubmissionByEmail.
func (submissionRepoShim) LatestSubmissionByEmail(ctx context.Context, db *gorm.DB, addr string) (*domain.Submission, error) {
	return repo.LatestSubmissionByEmail(ctx, db, addr)
}

// RegisterRoutes attaches all middleware and HTTP endpoints to the given Gin
// engine: observability (tracing, metrics), logging with PII redaction,
// compression, CORS and security headers, health endpoints, the public
// intake route, and the authenticated admin surface.
//
// Middleware order matters:
//  1. OpenTelemetry: trace everything
//  2. RequestID: generate/propagate correlation id
//  3. RedactingLogger: structured logs with PII scrubbing
//  4. Recovery: capture panics after logger
//  5. Body size limiter
//  6. Metrics
//  7. Gzip compression
//  8. CORS and security headers
func RegisterRoutes(r *gin.Engine, db *gorm.DB, mailer email.Client, cfg config.Config) {
	r.HandleMethodNotAllowed = true

	// 1) Trace all HTTP requests
	r.Use(otelgin.Middleware(cfg.OTEL.ServiceName))

	// 2) Correlate requests and logs
	r.Use(middleware.RequestID())

	// 3) Structured logging with redaction (contact payloads carry PII)
	r.Use(middleware.RedactingLogger(middleware.RedactOptions{}))

	// 4) Panic recovery to JSON 500 (with request id)
	r.Use(middleware.Recovery())

	// 5) Global body size limit (1 MiB)
	r.Use(limitBody(1 << 20))

	// 6) Prometheus metrics and /metrics endpoint
	r.Use(middleware.Metrics())
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// 7) Response compression (skip the Prometheus text endpoint)
	r.Use(gzip.Gzip(gzip.DefaultCompression, gzip.WithExcludedPaths([]string{"/metrics"})))

	// 8) CORS posture (safe defaults: allow all if none configured)
	corsCfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "X-Admin-Key"},
		ExposeHeaders:    []string{"X-Request-ID", "Content-Length"},
		AllowCredentials: false, // must remain false with AllowAllOrigins
		MaxAge:           12 * time.Hour,
	}
	if len(cfg.CORS.AllowedOrigins) == 0 {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = cfg.CORS.AllowedOrigins
	}
	r.Use(cors.New(corsCfg))

	// Security headers (HSTS only when enabled and request is HTTPS).
	// Admin responses carry contact PII, so caching is disabled globally.
	r.Use(middleware.SecurityHeaders(middleware.SecurityOptions{
		EnableHSTS:   cfg.Security.EnableHSTS,
		HSTSMaxAge:   cfg.Security.HSTSMaxAge,
		NoStore:      true,
		EnablePolicy: true,
	}))

	// Fallbacks
	r.NoRoute(func(c *gin.Context) {
		handlers.Fail(c, http.StatusNotFound, handlers.ErrCodeNotFound, "route not found")
	})
	r.NoMethod(func(c *gin.Context) {
		handlers.Fail(c, http.StatusMethodNotAllowed, handlers.ErrCodeMethodNotAllowed, "method not allowed")
	})

	// Dependency injection: services ← repo/db/mailer
	identity := email.Identity{
		Name:    cfg.Company.Name,
		Tagline: cfg.Company.Tagline,
		Email:   cfg.Company.Email,
		Phone:   cfg.Company.Phone,
		Address: cfg.Company.Address,
		Website: cfg.Company.Website,
	}
	subSvc := services.NewSubmissionService(db, submissionRepoShim{})
	subSvc.Mailer = mailer
	subSvc.From = cfg.Email.From
	subSvc.AdminTo = cfg.Email.AdminTo
	subSvc.Identity = identity

	replySvc := &services.ReplyService{
		DB:       db,
		Repo:     submissionRepoShim{},
		Mailer:   mailer,
		From:     cfg.Email.From,
		ReplyTo:  cfg.Email.ReplyTo,
		Identity: identity,
	}

	h := handlers.New(subSvc, replySvc)
	health := &handlers.HealthHandlers{DB: db, Service: cfg.OTEL.ServiceName}

	// Liveness/health
	r.GET("/", health.Root)
	r.GET("/health", health.Health)

	// API docs (opt-in)
	if cfg.SwaggerEnabled {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	api := groupWithPrefix(r, cfg.APIBasePath)
	{
		// Public intake
		api.POST("/contact", h.SubmitContact)

		// Admin surface
		admin := api.Group("", middleware.RequireAuth(middleware.StaticKeyAuth{Key: cfg.AdminAPIKey}))
		admin.GET("/submissions", h.ListSubmissions)
		admin.PUT("/submissions/:id/status", h.UpdateSubmissionStatus)
		admin.GET("/stats", h.GetStats)
		admin.POST("/send-reply", h.SendReply)
	}
}

// limitBody returns a Gin middleware that caps the request body size for all
// endpoints to maxBytes using http.MaxBytesReader. Requests exceeding the cap
// will cause downstream body reads to error.
func limitBody(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		c.Next()
	}
}

// groupWithPrefix mounts a group at prefix, treating "/" (or empty) as root.
func groupWithPrefix(r *gin.Engine, prefix string) *gin.RouterGroup {
	if prefix == "" || prefix == "/" {
		return r.Group("")
	}
	return r.Group(prefix)
}
