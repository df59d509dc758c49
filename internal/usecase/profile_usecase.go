package usecase

import (
	"context"
	"errors"
	"strings"

	"campus-placement/internal/domain/department"
	"campus-placement/internal/domain/student"
	"campus-placement/internal/repository"
)

type ProfileInput struct {
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
}

type ProfileUsecase interface {
	Get(ctx context.Context, usn string) (student.Profile, error)
	Save(ctx context.Context, usn string, in ProfileInput) (student.Profile, error)
}

type Profiles struct {
	students repository.StudentRepository
}

func NewProfileUsecase(students repository.StudentRepository) *Profiles {
	return &Profiles{students: students}
}

func (u *Profiles) Get(ctx context.Context, usn string) (student.Profile, error) {
	prof, err := u.students.GetByUSN(ctx, strings.TrimSpace(usn))
	if err != nil {
		if errors.Is(err, repository.ErrStudentNotFound) {
			return student.Profile{}, ErrProfileNotFound
		}
		return student.Profile{}, err
	}
	return prof, nil
}

// Save creates the profile on first submission and applies self-edits afterwards.
// Approval state is untouched either way: an approved profile stays approved
// across edits.
func (u *Profiles) Save(ctx context.Context, usn string, in ProfileInput) (student.Profile, error) {
	usn = strings.TrimSpace(usn)
	if _, err := department.ParseUSN(usn); err != nil {
		return student.Profile{}, ErrInvalidInput
	}
	if strings.TrimSpace(in.Name) == "" || strings.TrimSpace(in.Email) == "" {
		return student.Profile{}, ErrInvalidInput
	}
	if in.CurrentSemester < 1 || in.CurrentSemester > 8 {
		return student.Profile{}, ErrInvalidInput
	}
	if in.CGPA < 0 || in.CGPA > 10 {
		return student.Profile{}, ErrInvalidInput
	}

	skills := make([]string, 0, len(in.Skills))
	for _, s := range in.Skills {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		skills = append(skills, s)
	}

	p := student.Profile{
		USN:             usn,
		Name:            strings.TrimSpace(in.Name),
		Email:           strings.TrimSpace(in.Email),
		Phone:           strings.TrimSpace(in.Phone),
		CollegeName:     strings.TrimSpace(in.CollegeName),
		Branch:          strings.TrimSpace(in.Branch),
		CurrentSemester: in.CurrentSemester,
		CGPA:            in.CGPA,
		GraduationYear:  in.GraduationYear,
		Skills:          skills,
		Interest:        strings.TrimSpace(in.Interest),
	}

	if err := u.students.Upsert(ctx, p); err != nil {
		return student.Profile{}, err
	}
	return u.students.GetByUSN(ctx, usn)
}
