// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for the Submission
// model.
//
// All functions are context-aware and accept a *gorm.DB handle, making them
// safe for use within transactions or connection-scoped operations.
// They follow the "thin repository" approach: no business logic, only CRUD
// persistence and query composition.
//
// Error semantics:
//   - When a submission is not found, functions return gorm.ErrRecordNotFound
//     (also exported here as ErrNotFound for convenience).
//   - On DB errors (constraint violations, connectivity issues, etc.),
//     the raw gorm error is propagated.
package repo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mechgenz/contact-backend/internal/domain"
)

// ErrNotFound is returned when a requested record does not exist.
// It aliases gorm.ErrRecordNotFound for convenience and consistency
// across the service layer and handlers.
var ErrNotFound = gorm.ErrRecordNotFound

// CreateSubmission inserts a new Submission row holding the given document
// and client metadata. The ID is a randomly generated UUID (string), the
// intake timestamp is set to UTC now, and the status starts as "new".
//
// On success, it returns the persisted Submission. On failure, it returns a
// DB error.
func CreateSubmission(ctx context.Context, db *gorm.DB, fields domain.JSONMap, email, ip, userAgent string) (*domain.Submission, error) {
	s := &domain.Submission{
		ID:          uuid.NewString(),
		Email:       email,
		Fields:      fields,
		SubmittedAt: time.Now().UTC(),
		IPAddress:   ip,
		UserAgent:   userAgent,
		Status:      domain.StatusNew,
	}
	if err := db.WithContext(ctx).Create(s).Error; err != nil {
		return nil, err
	}
	return s, nil
}

// CountSubmissions returns the total number of stored submissions.
// On DB error, it returns the error.
func CountSubmissions(ctx context.Context, db *gorm.DB) (int64, error) {
	var total int64
	err := db.WithContext(ctx).
		Model(&domain.Submission{}).
		Count(&total).Error
	return total, err
}

// ListSubmissionsPage returns a paginated slice of submissions ordered by
// intake time descending (most recent first). Use CountSubmissions to obtain
// the total for pagination metadata. On DB error, it returns the error.
//
// The caller is responsible for computing offset and limit (e.g., (page-1)*limit).
func ListSubmissionsPage(ctx context.Context, db *gorm.DB, offset, limit int) ([]domain.Submission, error) {
	var out []domain.Submission
	err := db.WithContext(ctx).
		Order("submitted_at desc").
		Offset(offset).
		Limit(limit).
		Find(&out).Error
	return out, err
}

// GetSubmission fetches a single submission by its ID. If the record does
// not exist, it returns ErrNotFound. On other DB errors, the raw error is
// returned.
func GetSubmission(ctx context.Context, db *gorm.DB, id string) (*domain.Submission, error) {
	var s domain.Submission
	err := db.WithContext(ctx).
		Where("id = ?", id).
		First(&s).Error
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// UpdateSubmissionStatus overwrites the status of the submission identified
// by id and bumps its updated_at timestamp. If no rows are affected (the
// submission is missing), it returns ErrNotFound. On DB error, the raw error
// is returned.
func UpdateSubmissionStatus(ctx context.Context, db *gorm.DB, id, status string) error {
	res := db.WithContext(ctx).
		Model(&domain.Submission{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"status":     status,
			"updated_at": time.Now().UTC(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// LatestSubmissionByEmail fetches the most recent submission whose extracted
// email matches the given address (matched case-insensitively via the
// lowercased email column). Reply dispatch uses this to decide which row to
// mark replied when one address submitted several forms. Returns ErrNotFound
// when no submission matches.
func LatestSubmissionByEmail(ctx context.Context, db *gorm.DB, email string) (*domain.Submission, error) {
	var s domain.Submission
	err := db.WithContext(ctx).
		Where("email = ?", email).
		Order("submitted_at desc").
		First(&s).Error
	if err != nil {
		return nil, err
	}
	return &s, nil
}
