package posting

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

type JobType string

const (
	JobTypePermanent  JobType = "Permanent"
	JobTypeContract   JobType = "Contract"
	JobTypePartTime   JobType = "Part-time"
	JobTypeInternship JobType = "Internship"
)

type WorkMode string

const (
	WorkModeOnsite WorkMode = "Onsite"
	WorkModeRemote WorkMode = "Remote"
	WorkModeHybrid WorkMode = "Hybrid"
)

var ErrInvalidJobType = errors.New("invalid job type")
var ErrInvalidWorkMode = errors.New("invalid work mode")

type JobPosting struct {
	ID          uuid.UUID
	CompanyName string
	JobTitle    string
	JobType     JobType
	WorkMode    WorkMode
	City        string
	State       string
	Salary      string

	NumberOfPositions int

	DegreeRequired      string
	AllowedBranches     []string
	RequiredSkills      []string
	GraduationYear      int
	MinCGPA             float64
	BacklogAllowed      bool
	ApplicationDeadline time.Time

	CreatedAt time.Time
}

// Open reports whether the posting still accepts applications: a posting whose
// deadline is strictly before now is closed but stays visible in history views.
func (p JobPosting) Open(now time.Time) bool {
	return !p.ApplicationDeadline.Before(now)
}

func ParseJobType(s string) (JobType, error) {
	switch t := JobType(strings.TrimSpace(s)); t {
	case JobTypePermanent, JobTypeContract, JobTypePartTime, JobTypeInternship:
		return t, nil
	}
	return "", ErrInvalidJobType
}

func ParseWorkMode(s string) (WorkMode, error) {
	switch m := WorkMode(strings.TrimSpace(s)); m {
	case WorkModeOnsite, WorkModeRemote, WorkModeHybrid:
		return m, nil
	}
	return "", ErrInvalidWorkMode
}
