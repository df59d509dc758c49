package dto

import (
	"time"

	"campus-placement/internal/domain/application"

	"github.com/google/uuid"
)

type ApplicationResponse struct {
	StudentUSN  string    `json:"student_usn"`
	JobID       uuid.UUID `json:"job_id"`
	JobTitle    string    `json:"job_title"`
	CompanyName string    `json:"company_name"`
	City        string    `json:"city"`
	Status      string    `json:"status"`
	AppliedAt   string    `json:"applied_at"`
}

func NewApplicationResponse(a application.Application) ApplicationResponse {
	return ApplicationResponse{
		StudentUSN:  a.StudentUSN,
		JobID:       a.JobID,
		JobTitle:    a.JobTitle,
		CompanyName: a.CompanyName,
		City:        a.City,
		Status:      string(a.Status),
		AppliedAt:   a.AppliedAt.UTC().Format(time.RFC3339),
	}
}

func NewApplicationResponses(apps []application.Application) []ApplicationResponse {
	out := make([]ApplicationResponse, 0, len(apps))
	for _, a := range apps {
		out = append(out, NewApplicationResponse(a))
	}
	return out
}
