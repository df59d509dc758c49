package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"campus-placement/internal/domain/eligibility"
	"campus-placement/internal/domain/posting"
	"campus-placement/internal/domain/student"
	"campus-placement/internal/infrastructure/cache"

	"github.com/google/uuid"
)

var catalogNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func newCatalogUC(postings *fakePostingRepo, students *fakeStudentRepo) *Catalog {
	uc := NewCatalogUsecase(postings, students, nil, nil)
	uc.now = func() time.Time { return catalogNow }
	return uc
}

func TestCatalog_Search_AppliesCriteria(t *testing.T) {
	postings := &fakePostingRepo{items: []posting.JobPosting{
		{ID: uuid.New(), JobType: posting.JobTypeInternship, ApplicationDeadline: catalogNow.Add(time.Hour)},
		{ID: uuid.New(), JobType: posting.JobTypePermanent, ApplicationDeadline: catalogNow.Add(time.Hour)},
	}}
	uc := newCatalogUC(postings, newFakeStudentRepo())

	got, err := uc.Search(context.Background(), eligibility.Criteria{JobType: "Internship"})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(got) != 1 || got[0].JobType != posting.JobTypeInternship {
		t.Fatalf("criteria not applied: %d results", len(got))
	}
}

func TestCatalog_Search_HistoryViewKeepsExpired(t *testing.T) {
	postings := &fakePostingRepo{items: []posting.JobPosting{
		{ID: uuid.New(), ApplicationDeadline: catalogNow.Add(-time.Hour)},
	}}
	uc := newCatalogUC(postings, newFakeStudentRepo())

	open, err := uc.Search(context.Background(), eligibility.Criteria{})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(open) != 0 {
		t.Fatalf("expired posting leaked into the open view")
	}

	history, err := uc.Search(context.Background(), eligibility.Criteria{IncludeExpired: true})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(history) != 1 {
		t.Fatalf("expired posting missing from the history view")
	}
}

func TestCatalog_Search_ServesRepeatFromCache(t *testing.T) {
	postings := &fakePostingRepo{items: []posting.JobPosting{
		{ID: uuid.New(), ApplicationDeadline: catalogNow.Add(time.Hour)},
	}}
	uc := NewCatalogUsecase(postings, newFakeStudentRepo(), newFakeCache(), nil)
	uc.now = func() time.Time { return catalogNow }

	first, err := uc.Search(context.Background(), eligibility.Criteria{})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(first) != 1 {
		t.Fatalf("unexpected result size %d", len(first))
	}

	// A catalog change without invalidation must not be visible while the
	// entry lives.
	postings.items = nil
	second, err := uc.Search(context.Background(), eligibility.Criteria{})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(second) != 1 {
		t.Fatalf("repeat search bypassed the cache: %d results", len(second))
	}
}

func TestCatalog_Search_DegradedCacheDoesNotStall(t *testing.T) {
	postings := &fakePostingRepo{items: []posting.JobPosting{
		{ID: uuid.New(), ApplicationDeadline: catalogNow.Add(time.Hour)},
	}}
	uc := NewCatalogUsecase(postings, newFakeStudentRepo(), &cache.Redis{}, nil)
	uc.now = func() time.Time { return catalogNow }

	start := time.Now()
	got, err := uc.Search(context.Background(), eligibility.Criteria{})
	elapsed := time.Since(start)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("unexpected result size %d", len(got))
	}
	// With the cache bypassed there is no rebuild lock to wait on.
	if elapsed >= 150*time.Millisecond {
		t.Fatalf("search stalled for %v with a degraded cache", elapsed)
	}
}

func TestCatalog_EligibleFor_UnknownProfile(t *testing.T) {
	uc := newCatalogUC(&fakePostingRepo{}, newFakeStudentRepo())

	if _, err := uc.EligibleFor(context.Background(), "4HG23CS999"); !errors.Is(err, ErrProfileNotFound) {
		t.Fatalf("expected ErrProfileNotFound, got %v", err)
	}
}

func TestCatalog_EligibleFor_BindsToProfile(t *testing.T) {
	students := newFakeStudentRepo(student.Profile{
		USN:    "4HG23CS045",
		Branch: "Computer Science",
		CGPA:   8.2,
	})
	postings := &fakePostingRepo{items: []posting.JobPosting{
		{ID: uuid.New(), MinCGPA: 7.0, AllowedBranches: []string{"Computer Science"}, ApplicationDeadline: catalogNow.Add(time.Hour)},
		{ID: uuid.New(), MinCGPA: 9.0, ApplicationDeadline: catalogNow.Add(time.Hour)},
	}}
	uc := newCatalogUC(postings, students)

	got, err := uc.EligibleFor(context.Background(), "4HG23CS045")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(got) != 1 || got[0].MinCGPA != 7.0 {
		t.Fatalf("eligibility binding wrong: %d results", len(got))
	}
}
