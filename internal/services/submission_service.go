// Package services – SubmissionService
//
// This file implements the SubmissionService, which governs the lifecycle of
// contact-form submissions: intake (metadata attachment + persistence),
// paginated admin listing, status overwrites, and aggregate statistics.
// Service-level errors (e.g. ErrSubmissionNotFound, ErrEmptyStatus) are
// returned for predictable cases so handlers can map them to HTTP results
// consistently.
package services

import (
	"context"
	"errors"
	"strings"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/mechgenz/contact-backend/internal/domain"
	"github.com/mechgenz/contact-backend/internal/email"
	"github.com/mechgenz/contact-backend/internal/metrics"
	"github.com/mechgenz/contact-backend/internal/repo"
)

// SubmissionRepo defines the repository contract required by
// SubmissionService. Implementations are responsible for persistence of
// submission aggregates.
type SubmissionRepo interface {
	// CreateSubmission inserts a new submission row.
	CreateSubmission(ctx context.Context, db *gorm.DB, fields domain.JSONMap, email, ip, userAgent string) (*domain.Submission, error)

	// CountSubmissions returns the total number of submissions for pagination.
	CountSubmissions(ctx context.Context, db *gorm.DB) (int64, error)

	// ListSubmissionsPage returns a page of submissions, newest first.
	ListSubmissionsPage(ctx context.Context, db *gorm.DB, offset, limit int) ([]domain.Submission, error)

	// UpdateSubmissionStatus overwrites a submission's status.
	UpdateSubmissionStatus(ctx context.Context, db *gorm.DB, id, status string) error

	// StatusCounts returns submission counts grouped by status.
	StatusCounts(ctx context.Context, db *gorm.DB) (map[string]int64, error)
}

// ClientMeta carries the request metadata attached to every submission at
// intake. All of it is server-observed; nothing here comes from the payload.
type ClientMeta struct {
	IPAddress string
	UserAgent string
}

// Stats is the aggregate view served by the admin stats endpoint.
type Stats struct {
	Total    int64            `json:"total_count"`
	ByStatus map[string]int64 `json:"status_counts"`
}

// SubmissionService provides submission-level operations: intake, listing,
// status overwrites, and statistics. It also triggers the best-effort admin
// notification email after a successful intake.
type SubmissionService struct {
	// DB is the GORM handle used for persistence.
	DB *gorm.DB
	// Repo is the submission repository used by this service.
	Repo SubmissionRepo

	// Mailer delivers the intake notification; nil disables notifications.
	Mailer email.Client
	// From is the verified sender identity for notification mail.
	From string
	// AdminTo lists notification recipients; empty disables notifications.
	AdminTo []string
	// Identity is substituted into the notification template.
	Identity email.Identity
}

// NewSubmissionService constructs a SubmissionService bound to db and r.
// Notification settings are optional and can be assigned afterwards.
func NewSubmissionService(db *gorm.DB, r SubmissionRepo) *SubmissionService {
	return &SubmissionService{DB: db, Repo: r}
}

// Intake persists a new submission built from the caller's payload and the
// server-observed client metadata.
//
// Semantics:
//   - Reserved keys (id, status, timestamps, ip, user agent) are stripped
//     from the payload; those fields are always generated server-side.
//   - The payload's "email" field (when a string) is lowercased and stored
//     in the indexed email column for later reply matching.
//   - Status always starts as "new".
//   - No payload shape is enforced: an empty object, or one that only held
//     reserved keys, still persists with an empty fields document.
//   - After a successful insert, the admin notification email is sent on a
//     background goroutine; notification failures are logged and never
//     affect the intake result.
func (s *SubmissionService) Intake(ctx context.Context, fields domain.JSONMap, meta ClientMeta) (*domain.Submission, error) {
	doc := fields.Clone()
	for _, k := range domain.ReservedKeys {
		delete(doc, k)
	}

	addr := strings.ToLower(strings.TrimSpace(doc.String("email")))

	sub, err := s.Repo.CreateSubmission(ctx, s.DB, doc, addr, meta.IPAddress, meta.UserAgent)
	if err != nil {
		return nil, err
	}
	metrics.RecordSubmission()

	if s.Mailer != nil && len(s.AdminTo) > 0 {
		// Best effort: the submission is already stored, a lost notification
		// only delays the admin finding it.
		go s.notify(sub)
	}

	return sub, nil
}

// notify sends the intake notification for sub. It runs detached from the
// request, so it uses a background context and logs failures.
func (s *SubmissionService) notify(sub *domain.Submission) {
	html, text, err := email.RenderIntakeNotification(s.Identity, sub.Fields, sub.SubmittedAt, sub.IPAddress)
	if err != nil {
		log.Error().Err(err).Str("submission_id", sub.ID).Msg("render intake notification")
		return
	}
	name := sub.Fields.String("name")
	if name == "" {
		name = "Unknown"
	}
	msg := email.Message{
		From:    s.From,
		To:      s.AdminTo,
		ReplyTo: sub.Email,
		Subject: "New Contact Form Submission from " + name,
		HTML:    html,
		Text:    text,
	}
	if _, err := s.Mailer.Send(context.Background(), msg); err != nil {
		metrics.RecordEmailFailure("notification")
		log.Warn().Err(err).Str("submission_id", sub.ID).Msg("intake notification failed")
		return
	}
	log.Info().Str("submission_id", sub.ID).Msg("intake notification sent")
}

// ListPage returns a page of submissions, newest first (paginated).
// It applies defaults for invalid page/limit and returns the total count.
func (s *SubmissionService) ListPage(ctx context.Context, page, limit int) ([]domain.Submission, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit <= 0 {
		limit = 50
	}
	offset := (page - 1) * limit

	total, err := s.Repo.CountSubmissions(ctx, s.DB)
	if err != nil {
		return nil, 0, err
	}
	if total == 0 {
		return []domain.Submission{}, 0, nil
	}

	items, err := s.Repo.ListSubmissionsPage(ctx, s.DB, offset, limit)
	return items, total, err
}

// UpdateStatus overwrites the status of the identified submission and bumps
// its updated-at timestamp. The status value itself is not constrained to a
// fixed set; a blank status is rejected with ErrEmptyStatus, an unknown id
// with ErrSubmissionNotFound.
func (s *SubmissionService) UpdateStatus(ctx context.Context, id, status string) error {
	status = strings.TrimSpace(status)
	if status == "" {
		return ErrEmptyStatus
	}
	if err := s.Repo.UpdateSubmissionStatus(ctx, s.DB, id, status); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return ErrSubmissionNotFound
		}
		return err
	}
	metrics.RecordStatusUpdate(status)
	return nil
}

// Stats returns the total submission count together with per-status counts.
// The per-status counts always sum to the total.
func (s *SubmissionService) Stats(ctx context.Context) (*Stats, error) {
	byStatus, err := s.Repo.StatusCounts(ctx, s.DB)
	if err != nil {
		return nil, err
	}
	var total int64
	for _, n := range byStatus {
		total += n
	}
	return &Stats{Total: total, ByStatus: byStatus}, nil
}
