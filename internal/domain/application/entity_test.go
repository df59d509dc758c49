package application

import (
	"testing"
	"time"

	"campus-placement/internal/domain/posting"

	"github.com/google/uuid"
)

func catalog(n int) []posting.JobPosting {
	out := make([]posting.JobPosting, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, posting.JobPosting{ID: uuid.New(), JobTitle: "role", CompanyName: "Acme"})
	}
	return out
}

func TestAvailableFor_SetDifference(t *testing.T) {
	postings := catalog(3)
	existing := []Application{
		{StudentUSN: "4HG23CS045", JobID: postings[1].ID},
	}

	got := AvailableFor("4HG23CS045", postings, existing)
	if len(got) != 2 {
		t.Fatalf("expected 2 available postings, got %d", len(got))
	}
	if got[0].ID != postings[0].ID || got[1].ID != postings[2].ID {
		t.Fatalf("catalog order not preserved")
	}
}

func TestAvailableFor_IgnoresOtherStudents(t *testing.T) {
	postings := catalog(2)
	existing := []Application{
		{StudentUSN: "4HG22EE001", JobID: postings[0].ID},
	}

	got := AvailableFor("4HG23CS045", postings, existing)
	if len(got) != 2 {
		t.Fatalf("another student's application must not shrink availability, got %d", len(got))
	}
}

func TestAvailableFor_ComplementCoversCatalog(t *testing.T) {
	postings := catalog(5)
	existing := []Application{
		{StudentUSN: "4HG23CS045", JobID: postings[0].ID},
		{StudentUSN: "4HG23CS045", JobID: postings[3].ID},
	}

	available := AvailableFor("4HG23CS045", postings, existing)

	seen := map[uuid.UUID]int{}
	for _, p := range available {
		seen[p.ID]++
	}
	for _, a := range existing {
		seen[a.JobID]++
	}
	if len(seen) != len(postings) {
		t.Fatalf("available + applied covers %d postings, want %d", len(seen), len(postings))
	}
	for id, n := range seen {
		if n != 1 {
			t.Fatalf("posting %s appears %d times across the partition", id, n)
		}
	}
}

func TestNew_SnapshotsPostingFields(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	p := posting.JobPosting{ID: uuid.New(), JobTitle: "SDE I", CompanyName: "Acme", City: "Bengaluru"}

	a := New("4HG23CS045", p, now)
	if a.Status != StatusPending {
		t.Fatalf("status = %q, want Pending", a.Status)
	}
	if !a.AppliedAt.Equal(now) {
		t.Fatalf("appliedAt = %v, want %v", a.AppliedAt, now)
	}
	if a.JobTitle != "SDE I" || a.CompanyName != "Acme" || a.City != "Bengaluru" {
		t.Fatalf("snapshot fields not captured: %+v", a)
	}
}
