package repo

import (
	"context"
	"testing"
	"time"

	"github.com/mechgenz/contact-backend/internal/domain"
)

func TestStatusCounts_Empty(t *testing.T) {
	db := newSubmissionDB(t, &domain.Submission{})
	counts, err := StatusCounts(context.Background(), db)
	if err != nil {
		t.Fatalf("StatusCounts: %v", err)
	}
	if len(counts) != 0 {
		t.Fatalf("expected empty map, got %v", counts)
	}
}

func TestStatusCounts_SumEqualsTotal(t *testing.T) {
	db := newSubmissionDB(t, &domain.Submission{})

	base := time.Date(2025, 2, 1, 8, 0, 0, 0, time.UTC)
	seedSubmission(t, db, "a", "", base)
	seedSubmission(t, db, "b", "", base.Add(time.Minute))
	seedSubmission(t, db, "c", "", base.Add(2*time.Minute))
	if err := UpdateSubmissionStatus(context.Background(), db, "c", domain.StatusReplied); err != nil {
		t.Fatalf("mark replied: %v", err)
	}

	counts, err := StatusCounts(context.Background(), db)
	if err != nil {
		t.Fatalf("StatusCounts: %v", err)
	}
	if counts[domain.StatusNew] != 2 || counts[domain.StatusReplied] != 1 {
		t.Fatalf("unexpected counts: %v", counts)
	}

	total, err := CountSubmissions(context.Background(), db)
	if err != nil {
		t.Fatalf("CountSubmissions: %v", err)
	}
	var sum int64
	for _, n := range counts {
		sum += n
	}
	if sum != total {
		t.Fatalf("counts sum %d != total %d", sum, total)
	}
}

func TestSubmissionsStats_EmptyTable(t *testing.T) {
	db := newSubmissionDB(t, &domain.Submission{})
	count, maxTS, err := SubmissionsStats(context.Background(), db)
	if err != nil {
		t.Fatalf("SubmissionsStats: %v", err)
	}
	if count != 0 || maxTS != nil {
		t.Fatalf("expected (0, nil), got (%d, %v)", count, maxTS)
	}
}

func TestSubmissionsStats_CountAndMax(t *testing.T) {
	db := newSubmissionDB(t, &domain.Submission{})
	base := time.Date(2025, 2, 1, 8, 0, 0, 0, time.UTC)
	seedSubmission(t, db, "a", "", base)
	seedSubmission(t, db, "b", "", base.Add(time.Minute))

	count, maxTS, err := SubmissionsStats(context.Background(), db)
	if err != nil {
		t.Fatalf("SubmissionsStats: %v", err)
	}
	if count != 2 {
		t.Fatalf("count = %d, want 2", count)
	}
	if maxTS == nil || maxTS.IsZero() {
		t.Fatalf("expected a max updated_at, got %v", maxTS)
	}
}
