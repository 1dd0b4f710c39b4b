// Submission HTTP handlers.
//
// This file exposes the contact-form intake endpoint and the admin surface
// over stored submissions:
//   - POST /api/contact                   (public intake)
//   - GET  /api/submissions               (list, paginated, ETag support)
//   - PUT  /api/submissions/{id}/status   (status overwrite)
//   - GET  /api/stats                     (aggregate counts)
//
// Handlers are transport-thin: they validate input, call application
// services, and translate results into HTTP responses.
package handlers

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/mechgenz/contact-backend/internal/domain"
	"github.com/mechgenz/contact-backend/internal/repo"
	"github.com/mechgenz/contact-backend/internal/services"
	"github.com/mechgenz/contact-backend/internal/utils"
)

//
// Service contracts (context-aware)
//

// SubmissionService defines the submission operations consumed by HTTP
// handlers. Implementations should be safe for concurrent use and must honor
// the provided context for cancellation and timeouts.
type SubmissionService interface {
	// Intake persists a new submission with server-observed client metadata.
	Intake(ctx context.Context, fields domain.JSONMap, meta services.ClientMeta) (*domain.Submission, error)
	// ListPage returns a page of submissions (newest first) and the total count.
	ListPage(ctx context.Context, page, limit int) ([]domain.Submission, int64, error)
	// UpdateStatus overwrites a submission's status.
	UpdateStatus(ctx context.Context, id, status string) error
	// Stats returns the total count plus per-status counts.
	Stats(ctx context.Context) (*services.Stats, error)
}

// ReplyService defines the reply-dispatch operation consumed by HTTP
// handlers.
type ReplyService interface {
	// Send dispatches a templated reply and marks the matching submission.
	Send(ctx context.Context, req services.ReplyRequest) (*services.ReplyReceipt, error)
}

//
// Handler wiring
//

// Handlers groups the HTTP endpoints for submissions and replies. It depends
// on abstract service interfaces to keep transport concerns separate from
// business logic.
type Handlers struct {
	subSvc   SubmissionService
	replySvc ReplyService
}

// New constructs a Handlers instance bound to the given services.
func New(subSvc SubmissionService, replySvc ReplyService) *Handlers {
	return &Handlers{subSvc: subSvc, replySvc: replySvc}
}

//
// DTOs
//

// IntakeResponse acknowledges a stored submission.
type IntakeResponse struct {
	Success bool   `json:"success"`
	ID      string `json:"id" example:"141add05-4415-4938-b5a1-17e0d3171aff"`
	// Timestamp is the server-assigned submission time (RFC 3339).
	Timestamp time.Time `json:"timestamp"`
}

// UpdateStatusRequest is the JSON payload for overwriting a status.
type UpdateStatusRequest struct {
	// Status is the new status value; any non-empty string is accepted.
	Status string `json:"status" binding:"required" example:"replied"`
}

// Pagination carries pagination metadata for list responses.
type Pagination struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
	HasNext    bool  `json:"has_next"`
}

// ListSubmissionsResponse wraps a page of submissions and pagination
// information.
type ListSubmissionsResponse struct {
	Submissions []domain.Submission `json:"submissions"`
	Pagination  Pagination          `json:"pagination"`
}

// StatsResponse is the aggregate stats payload.
type StatsResponse struct {
	Success      bool             `json:"success"`
	TotalCount   int64            `json:"total_count"`
	StatusCounts map[string]int64 `json:"status_counts"`
}

//
// Helpers
//

// clampPagination parses and bounds the page and limit query params,
// returning (page, limit). Non-numeric or out-of-range values fall back to
// the defaults rather than erroring.
func clampPagination(c *gin.Context) (page, limit int) {
	const (
		defaultPage  = 1
		defaultLimit = 50
		maxLimit     = 100
	)
	page = utils.AtoiDefault(c.Query("page"), defaultPage)
	if page < 1 {
		page = defaultPage
	}
	limit = utils.AtoiDefault(c.Query("limit"), defaultLimit)
	if limit < 1 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	return
}

//
// Handlers
//

// SubmitContact godoc
// @ID          submitContact
// @Summary     Submit a contact form
// @Description Accepts any JSON object as the form body, attaches server-side metadata, and stores it as a new submission with status "new".
// @Tags        Contact
// @Accept      json
// @Produce     json
//
// @Param       body  body  object  true  "Arbitrary form payload"
//
// @Success     200  {object}  handlers.IntakeResponse
// @Failure     400  {object}  handlers.ErrorResponse  "Body is not a JSON object"
// @Failure     500  {object}  handlers.ErrorResponse  "Store failure"
// @Router      /contact [post]
func (h *Handlers) SubmitContact(c *gin.Context) {
	raw, err := io.ReadAll(c.Request.Body)
	if err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "unable to read request body")
		return
	}
	fields, err := domain.DecodeObject(raw)
	if err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "body must be a JSON object")
		return
	}

	meta := services.ClientMeta{
		IPAddress: c.ClientIP(),
		UserAgent: c.Request.UserAgent(),
	}
	sub, err := h.subSvc.Intake(c.Request.Context(), fields, meta)
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeStoreFailed,
			"failed to store submission: "+err.Error())
		return
	}

	ok(c, http.StatusOK, IntakeResponse{
		Success:   true,
		ID:        sub.ID,
		Timestamp: sub.SubmittedAt,
	})
}

// ListSubmissions godoc
// @ID          listSubmissions
// @Summary     List submissions (paginated)
// @Description Returns a page of submissions, newest first. Supports weak ETag via If-None-Match and may return 304.
// @Tags        Admin
// @Produce     json
//
// @Param       X-Admin-Key    header  string  false "Admin API key (when configured)"
// @Param       If-None-Match  header  string  false "Return 304 if ETag matches"
// @Param       page           query   int     false "Page number"     minimum(1) default(1)
// @Param       limit          query   int     false "Items per page"  minimum(1) maximum(100) default(50)
//
// @Success     200  {object} handlers.ListSubmissionsResponse
// @Header      200  {string} ETag "Weak ETag for current result"
// @Success     304  {string} string "Not Modified"
// @Failure     401  {object} handlers.ErrorResponse "Unauthorized"
// @Failure     500  {object} handlers.ErrorResponse "Internal error"
// @Router      /submissions [get]
func (h *Handlers) ListSubmissions(c *gin.Context) {
	ctx := c.Request.Context()
	page, limit := clampPagination(c)

	// ETag pre-check (best effort).
	var db *gorm.DB
	if svc, isConcrete := h.subSvc.(*services.SubmissionService); isConcrete {
		db = svc.DB
	}
	if db != nil {
		count, maxTS, err := repo.SubmissionsStats(ctx, db)
		if err == nil {
			var ts int64
			if maxTS != nil {
				ts = maxTS.Unix()
			}
			etag := fmt.Sprintf(`W/"submissions:%d:%d"`, count, ts)
			c.Header("ETag", etag)
			if inm := c.GetHeader("If-None-Match"); inm != "" && inm == etag {
				c.Status(http.StatusNotModified)
				return
			}
		}
	}

	items, total, err := h.subSvc.ListPage(ctx, page, limit)
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeListFailed, err.Error())
		return
	}

	totalPages := int((total + int64(limit) - 1) / int64(limit))
	ok(c, http.StatusOK, ListSubmissionsResponse{
		Submissions: items,
		Pagination: Pagination{
			Page:       page,
			Limit:      limit,
			Total:      total,
			TotalPages: totalPages,
			HasNext:    page < totalPages,
		},
	})
}

// UpdateSubmissionStatus godoc
// @ID          updateSubmissionStatus
// @Summary     Update a submission's status
// @Description Overwrites the status of the identified submission and bumps its updated-at timestamp. Status values are not constrained to a fixed set.
// @Tags        Admin
// @Accept      json
// @Produce     json
//
// @Param       X-Admin-Key  header  string  false "Admin API key (when configured)"
// @Param       id           path    string  true  "Submission ID (UUID)" format(uuid)
// @Param       body         body    handlers.UpdateStatusRequest  true  "New status"
//
// @Success     200  {object} map[string]any
// @Failure     400  {object} handlers.ErrorResponse "Missing status"
// @Failure     404  {object} handlers.ErrorResponse "Submission not found"
// @Failure     500  {object} handlers.ErrorResponse "Internal error"
// @Router      /submissions/{id}/status [put]
func (h *Handlers) UpdateSubmissionStatus(c *gin.Context) {
	id := c.Param("id")

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "status is required")
		return
	}

	if err := h.subSvc.UpdateStatus(c.Request.Context(), id, req.Status); err != nil {
		switch {
		case errors.Is(err, services.ErrEmptyStatus):
			fail(c, http.StatusBadRequest, ErrCodeBadRequest, "status is required")
		case errors.Is(err, services.ErrSubmissionNotFound):
			fail(c, http.StatusNotFound, ErrCodeNotFound, "submission not found")
		default:
			fail(c, http.StatusInternalServerError, ErrCodeInternal, err.Error())
		}
		return
	}

	ok(c, http.StatusOK, gin.H{"success": true, "message": "Submission status updated successfully"})
}

// GetStats godoc
// @ID          getStats
// @Summary     Submission statistics
// @Description Returns the total submission count and a per-status breakdown. The per-status counts sum to the total.
// @Tags        Admin
// @Produce     json
//
// @Param       X-Admin-Key  header  string  false "Admin API key (when configured)"
//
// @Success     200  {object} handlers.StatsResponse
// @Failure     401  {object} handlers.ErrorResponse "Unauthorized"
// @Failure     500  {object} handlers.ErrorResponse "Internal error"
// @Router      /stats [get]
func (h *Handlers) GetStats(c *gin.Context) {
	st, err := h.subSvc.Stats(c.Request.Context())
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeStatsFailed, err.Error())
		return
	}
	ok(c, http.StatusOK, StatsResponse{
		Success:      true,
		TotalCount:   st.Total,
		StatusCounts: st.ByStatus,
	})
}
