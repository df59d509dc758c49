package dto

import (
	"time"

	"campus-placement/internal/domain/student"
)

type StudentProfileResponse struct {
	USN             string   `json:"usn"`
	Name            string   `json:"name"`
	Email           string   `json:"email"`
	Phone           string   `json:"phone"`
	CollegeName     string   `json:"college_name"`
	Branch          string   `json:"branch"`
	CurrentSemester int      `json:"current_semester"`
	CGPA            float64  `json:"cgpa"`
	GraduationYear  int      `json:"graduation_year"`
	Skills          []string `json:"skills"`
	Interest        string   `json:"interest"`
	ApprovalState   string   `json:"approval_state"`
	ApprovedBy      string   `json:"approved_by,omitempty"`
	ApprovedAt      string   `json:"approved_at,omitempty"`
}

type DepartmentStudentsResponse struct {
	Department string                   `json:"department"`
	Code       string                   `json:"code"`
	Students   []StudentProfileResponse `json:"students"`
}

func NewStudentProfileResponse(p student.Profile) StudentProfileResponse {
	approvedAt := ""
	if p.ApprovedAt != nil {
		approvedAt = p.ApprovedAt.UTC().Format(time.RFC3339)
	}
	return StudentProfileResponse{
		USN:             p.USN,
		Name:            p.Name,
		Email:           p.Email,
		Phone:           p.Phone,
		CollegeName:     p.CollegeName,
		Branch:          p.Branch,
		CurrentSemester: p.CurrentSemester,
		CGPA:            p.CGPA,
		GraduationYear:  p.GraduationYear,
		Skills:          p.Skills,
		Interest:        p.Interest,
		ApprovalState:   string(p.State),
		ApprovedBy:      p.ApprovedBy,
		ApprovedAt:      approvedAt,
	}
}

func NewStudentProfileResponses(profiles []student.Profile) []StudentProfileResponse {
	out := make([]StudentProfileResponse, 0, len(profiles))
	for _, p := range profiles {
		out = append(out, NewStudentProfileResponse(p))
	}
	return out
}
