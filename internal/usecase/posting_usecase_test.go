package usecase

import (
	"context"
	"errors"
	"testing"
	"time"
)

var postingNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func validPostingInput() PostingInput {
	return PostingInput{
		JobTitle:            "Backend Engineer",
		JobType:             "Permanent",
		WorkMode:            "Onsite",
		City:                "Bengaluru",
		State:               "Karnataka",
		NumberOfPositions:   3,
		AllowedBranches:     []string{"Computer Science"},
		RequiredSkills:      []string{"Go", "SQL"},
		MinCGPA:             7.0,
		ApplicationDeadline: postingNow.Add(30 * 24 * time.Hour),
	}
}

func TestPostings_Create(t *testing.T) {
	repo := &fakePostingRepo{}
	uc := NewPostingUsecase(repo, nil)
	uc.now = func() time.Time { return postingNow }

	p, err := uc.Create(context.Background(), "Acme Corp", validPostingInput())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if p.ID.String() == "00000000-0000-0000-0000-000000000000" {
		t.Fatal("posting got no id")
	}
	if p.CompanyName != "Acme Corp" {
		t.Fatalf("owner not taken from caller: %q", p.CompanyName)
	}
	if !p.CreatedAt.Equal(postingNow) {
		t.Fatalf("created at = %v, want %v", p.CreatedAt, postingNow)
	}
	if len(repo.items) != 1 {
		t.Fatalf("posting not persisted")
	}
}

func TestPostings_Create_RejectsInvalidInput(t *testing.T) {
	uc := NewPostingUsecase(&fakePostingRepo{}, nil)

	cases := []struct {
		name   string
		mutate func(*PostingInput)
	}{
		{"empty title", func(in *PostingInput) { in.JobTitle = " " }},
		{"unknown job type", func(in *PostingInput) { in.JobType = "Gig" }},
		{"unknown work mode", func(in *PostingInput) { in.WorkMode = "Floating" }},
		{"zero positions", func(in *PostingInput) { in.NumberOfPositions = 0 }},
		{"cgpa above scale", func(in *PostingInput) { in.MinCGPA = 10.5 }},
		{"missing deadline", func(in *PostingInput) { in.ApplicationDeadline = time.Time{} }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := validPostingInput()
			tc.mutate(&in)
			if _, err := uc.Create(context.Background(), "Acme Corp", in); !errors.Is(err, ErrInvalidInput) {
				t.Fatalf("expected ErrInvalidInput, got %v", err)
			}
		})
	}
}

func TestPostings_Update_OwnershipEnforced(t *testing.T) {
	repo := &fakePostingRepo{}
	uc := NewPostingUsecase(repo, nil)
	uc.now = func() time.Time { return postingNow }

	created, err := uc.Create(context.Background(), "Acme Corp", validPostingInput())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	in := validPostingInput()
	in.JobTitle = "Senior Backend Engineer"

	if _, err := uc.Update(context.Background(), "Globex", created.ID, in); !errors.Is(err, ErrNotPostingOwner) {
		t.Fatalf("expected ErrNotPostingOwner, got %v", err)
	}

	updated, err := uc.Update(context.Background(), "acme corp", created.ID, in)
	if err != nil {
		t.Fatalf("owner update failed: %v", err)
	}
	if updated.JobTitle != "Senior Backend Engineer" {
		t.Fatalf("update not applied: %q", updated.JobTitle)
	}
	if updated.ID != created.ID || !updated.CreatedAt.Equal(created.CreatedAt) {
		t.Fatal("identity fields must survive an update")
	}
	if updated.CompanyName != "Acme Corp" {
		t.Fatalf("owner name changed on update: %q", updated.CompanyName)
	}
}

func TestPostings_Delete(t *testing.T) {
	repo := &fakePostingRepo{}
	uc := NewPostingUsecase(repo, nil)
	uc.now = func() time.Time { return postingNow }

	created, err := uc.Create(context.Background(), "Acme Corp", validPostingInput())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	if err := uc.Delete(context.Background(), "Globex", created.ID); !errors.Is(err, ErrNotPostingOwner) {
		t.Fatalf("expected ErrNotPostingOwner, got %v", err)
	}
	if err := uc.Delete(context.Background(), "Acme Corp", created.ID); err != nil {
		t.Fatalf("owner delete failed: %v", err)
	}
	if err := uc.Delete(context.Background(), "Acme Corp", created.ID); !errors.Is(err, ErrPostingNotFound) {
		t.Fatalf("expected ErrPostingNotFound after delete, got %v", err)
	}
}
