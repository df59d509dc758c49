package dto

import (
	"time"

	"campus-placement/internal/domain/posting"

	"github.com/google/uuid"
)

type PostingResponse struct {
	ID                  uuid.UUID `json:"id"`
	CompanyName         string    `json:"company_name"`
	JobTitle            string    `json:"job_title"`
	JobType             string    `json:"job_type"`
	WorkMode            string    `json:"work_mode"`
	City                string    `json:"city"`
	State               string    `json:"state"`
	Salary              string    `json:"salary"`
	NumberOfPositions   int       `json:"number_of_positions"`
	DegreeRequired      string    `json:"degree_required"`
	AllowedBranches     []string  `json:"allowed_branches"`
	RequiredSkills      []string  `json:"required_skills"`
	GraduationYear      int       `json:"graduation_year"`
	MinCGPA             float64   `json:"min_cgpa"`
	BacklogAllowed      bool      `json:"backlog_allowed"`
	ApplicationDeadline string    `json:"application_deadline"`
	CreatedAt           string    `json:"created_at"`
}

func NewPostingResponse(p posting.JobPosting) PostingResponse {
	return PostingResponse{
		ID:                  p.ID,
		CompanyName:         p.CompanyName,
		JobTitle:            p.JobTitle,
		JobType:             string(p.JobType),
		WorkMode:            string(p.WorkMode),
		City:                p.City,
		State:               p.State,
		Salary:              p.Salary,
		NumberOfPositions:   p.NumberOfPositions,
		DegreeRequired:      p.DegreeRequired,
		AllowedBranches:     p.AllowedBranches,
		RequiredSkills:      p.RequiredSkills,
		GraduationYear:      p.GraduationYear,
		MinCGPA:             p.MinCGPA,
		BacklogAllowed:      p.BacklogAllowed,
		ApplicationDeadline: p.ApplicationDeadline.UTC().Format(time.RFC3339),
		CreatedAt:           p.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func NewPostingResponses(postings []posting.JobPosting) []PostingResponse {
	out := make([]PostingResponse, 0, len(postings))
	for _, p := range postings {
		out = append(out, NewPostingResponse(p))
	}
	return out
}
