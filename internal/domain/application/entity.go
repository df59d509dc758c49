package application

import (
	"time"

	"campus-placement/internal/domain/posting"

	"github.com/google/uuid"
)

type Status string

const (
	StatusPending  Status = "Pending"
	StatusAccepted Status = "Accepted"
	StatusRejected Status = "Rejected"
)

// Application is identified by the (StudentUSN, JobID) pair; at most one may exist
// per pair. JobTitle, CompanyName and City are snapshots taken at apply time and do
// not track later edits to the posting.
type Application struct {
	StudentUSN  string
	JobID       uuid.UUID
	JobTitle    string
	CompanyName string
	City        string
	Status      Status
	AppliedAt   time.Time
}

// AvailableFor returns the postings the student has not applied to yet, preserving
// catalog order. Together with the applied subset it partitions the input exactly.
func AvailableFor(usn string, postings []posting.JobPosting, existing []Application) []posting.JobPosting {
	applied := make(map[uuid.UUID]struct{}, len(existing))
	for _, a := range existing {
		if a.StudentUSN != usn {
			continue
		}
		applied[a.JobID] = struct{}{}
	}

	out := make([]posting.JobPosting, 0, len(postings))
	for _, p := range postings {
		if _, ok := applied[p.ID]; ok {
			continue
		}
		out = append(out, p)
	}
	return out
}

// New builds a pending application for the posting, capturing the denormalized
// snapshot fields.
func New(usn string, p posting.JobPosting, now time.Time) Application {
	return Application{
		StudentUSN:  usn,
		JobID:       p.ID,
		JobTitle:    p.JobTitle,
		CompanyName: p.CompanyName,
		City:        p.City,
		Status:      StatusPending,
		AppliedAt:   now.UTC(),
	}
}
