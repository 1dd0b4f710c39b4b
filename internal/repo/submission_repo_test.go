package repo

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	sqlite "github.com/glebarez/sqlite" // pure-Go SQLite
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/mechgenz/contact-backend/internal/domain"
)

func newSubmissionDB(t *testing.T, migrate ...any) *gorm.DB {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), fmt.Sprintf("submission_repo_test_%d.db", time.Now().UnixNano()))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	// Ensure the file handle is released before TempDir cleanup (Windows needs this).
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	if len(migrate) > 0 {
		if err := db.AutoMigrate(migrate...); err != nil {
			t.Fatalf("automigrate: %v", err)
		}
	}
	return db
}

func seedSubmission(t *testing.T, db *gorm.DB, id, email string, at time.Time) {
	t.Helper()
	s := domain.Submission{
		ID:          id,
		Email:       email,
		Fields:      domain.JSONMap{"name": "n-" + id},
		SubmittedAt: at,
		Status:      domain.StatusNew,
	}
	if err := db.Create(&s).Error; err != nil {
		t.Fatalf("seed %s: %v", id, err)
	}
}

func TestCreateSubmission_Error_NoTable(t *testing.T) {
	db := newSubmissionDB(t /* no migrations */)
	sub, err := CreateSubmission(context.Background(), db, domain.JSONMap{"a": "b"}, "", "", "")
	if err == nil || sub != nil {
		t.Fatalf("expected error creating without table, got sub=%v err=%v", sub, err)
	}
}

func TestCreateSubmission_SetsSystemFields(t *testing.T) {
	db := newSubmissionDB(t, &domain.Submission{})

	start := time.Now().UTC().Add(-time.Minute)
	sub, err := CreateSubmission(context.Background(), db,
		domain.JSONMap{"name": "Jane", "message": "hi"},
		"jane@example.com", "203.0.113.9", "curl/8")
	if err != nil {
		t.Fatalf("CreateSubmission: %v", err)
	}
	if sub.ID == "" {
		t.Fatalf("id not generated")
	}
	if sub.Status != domain.StatusNew {
		t.Fatalf("status = %q, want new", sub.Status)
	}
	if sub.SubmittedAt.Before(start) {
		t.Fatalf("SubmittedAt seems unset: %v", sub.SubmittedAt)
	}
	if sub.Email != "jane@example.com" || sub.IPAddress != "203.0.113.9" || sub.UserAgent != "curl/8" {
		t.Fatalf("metadata mismatch: %+v", sub)
	}

	// round-trip, including the JSON document column
	var got domain.Submission
	if err := db.First(&got, "id = ?", sub.ID).Error; err != nil {
		t.Fatalf("load created submission: %v", err)
	}
	if got.Fields.String("name") != "Jane" || got.Fields.String("message") != "hi" {
		t.Fatalf("fields round-trip mismatch: %#v", got.Fields)
	}
}

func TestCreateSubmission_DistinctIDs(t *testing.T) {
	db := newSubmissionDB(t, &domain.Submission{})
	a, err := CreateSubmission(context.Background(), db, domain.JSONMap{"x": "1"}, "", "", "")
	if err != nil {
		t.Fatalf("create a: %v", err)
	}
	b, err := CreateSubmission(context.Background(), db, domain.JSONMap{"x": "1"}, "", "", "")
	if err != nil {
		t.Fatalf("create b: %v", err)
	}
	if a.ID == b.ID {
		t.Fatalf("two submissions share id %q", a.ID)
	}
}

func TestListSubmissionsPage_NewestFirstAndPaged(t *testing.T) {
	db := newSubmissionDB(t, &domain.Submission{})

	base := time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)
	for i := 0; i < 15; i++ {
		seedSubmission(t, db, fmt.Sprintf("s%02d", i), "", base.Add(time.Duration(i)*time.Minute))
	}

	total, err := CountSubmissions(context.Background(), db)
	if err != nil || total != 15 {
		t.Fatalf("CountSubmissions = %d, %v", total, err)
	}

	// First page of 10, newest first.
	page1, err := ListSubmissionsPage(context.Background(), db, 0, 10)
	if err != nil {
		t.Fatalf("page 1: %v", err)
	}
	if len(page1) != 10 {
		t.Fatalf("page 1 len = %d, want 10", len(page1))
	}
	if page1[0].ID != "s14" || page1[9].ID != "s05" {
		t.Fatalf("page 1 order wrong: first=%s last=%s", page1[0].ID, page1[9].ID)
	}

	// Second page holds the remaining 5.
	page2, err := ListSubmissionsPage(context.Background(), db, 10, 10)
	if err != nil {
		t.Fatalf("page 2: %v", err)
	}
	if len(page2) != 5 {
		t.Fatalf("page 2 len = %d, want 5", len(page2))
	}
	if page2[0].ID != "s04" || page2[4].ID != "s00" {
		t.Fatalf("page 2 order wrong: first=%s last=%s", page2[0].ID, page2[4].ID)
	}
}

func TestGetSubmission_NotFound(t *testing.T) {
	db := newSubmissionDB(t, &domain.Submission{})
	if _, err := GetSubmission(context.Background(), db, "nope"); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestUpdateSubmissionStatus_UnknownID(t *testing.T) {
	db := newSubmissionDB(t, &domain.Submission{})
	if err := UpdateSubmissionStatus(context.Background(), db, "missing", "replied"); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestUpdateSubmissionStatus_OverwritesAndBumps(t *testing.T) {
	db := newSubmissionDB(t, &domain.Submission{})
	seedSubmission(t, db, "s1", "", time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC))

	var before domain.Submission
	if err := db.First(&before, "id = ?", "s1").Error; err != nil {
		t.Fatalf("load before: %v", err)
	}

	time.Sleep(10 * time.Millisecond)
	if err := UpdateSubmissionStatus(context.Background(), db, "s1", "in_progress"); err != nil {
		t.Fatalf("UpdateSubmissionStatus: %v", err)
	}

	var after domain.Submission
	if err := db.First(&after, "id = ?", "s1").Error; err != nil {
		t.Fatalf("load after: %v", err)
	}
	if after.Status != "in_progress" {
		t.Fatalf("status = %q, want in_progress", after.Status)
	}
	if !after.UpdatedAt.After(before.UpdatedAt) {
		t.Fatalf("updated_at not bumped: before=%v after=%v", before.UpdatedAt, after.UpdatedAt)
	}
}

func TestLatestSubmissionByEmail_PicksMostRecent(t *testing.T) {
	db := newSubmissionDB(t, &domain.Submission{})

	base := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	seedSubmission(t, db, "old", "dup@example.com", base)
	seedSubmission(t, db, "mid", "dup@example.com", base.Add(time.Hour))
	seedSubmission(t, db, "new", "dup@example.com", base.Add(2*time.Hour))
	seedSubmission(t, db, "other", "someone@example.com", base.Add(3*time.Hour))

	got, err := LatestSubmissionByEmail(context.Background(), db, "dup@example.com")
	if err != nil {
		t.Fatalf("LatestSubmissionByEmail: %v", err)
	}
	if got.ID != "new" {
		t.Fatalf("expected most recent match, got %s", got.ID)
	}
}

func TestLatestSubmissionByEmail_NoMatch(t *testing.T) {
	db := newSubmissionDB(t, &domain.Submission{})
	if _, err := LatestSubmissionByEmail(context.Background(), db, "nobody@example.com"); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
