package student

import "time"

type ApprovalState string

const (
	StatePending  ApprovalState = "Pending"
	StateApproved ApprovalState = "Approved"
)

type Profile struct {
	USN             string
	Name            string
	Email           string
	Phone           string
	CollegeName     string
	Branch          string
	CurrentSemester int
	CGPA            float64
	GraduationYear  int
	Skills          []string
	Interest        string

	State      ApprovalState
	ApprovedBy string
	ApprovedAt *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (p Profile) Approved() bool {
	return p.State == StateApproved
}
