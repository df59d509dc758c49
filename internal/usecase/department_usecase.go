package usecase

import (
	"context"
	"sort"

	"campus-placement/internal/domain/department"
	"campus-placement/internal/domain/student"
	"campus-placement/internal/repository"
)

// DepartmentView is the derived partition of the student body that belongs to one
// department, keyed by the USN code segment. It is computed per request, never
// persisted.
type DepartmentView struct {
	Name     string
	Code     string
	Students []student.Profile
}

type DepartmentUsecase interface {
	Students(ctx context.Context, departmentName string) (DepartmentView, error)
	ApprovedStudents(ctx context.Context, departmentName string) (DepartmentView, error)
}

type Departments struct {
	students repository.StudentRepository
}

func NewDepartmentUsecase(students repository.StudentRepository) *Departments {
	return &Departments{students: students}
}

func (u *Departments) Students(ctx context.Context, departmentName string) (DepartmentView, error) {
	return u.partition(ctx, departmentName, false)
}

// ApprovedStudents returns the approved subset, sorted by USN.
func (u *Departments) ApprovedStudents(ctx context.Context, departmentName string) (DepartmentView, error) {
	return u.partition(ctx, departmentName, true)
}

func (u *Departments) partition(ctx context.Context, departmentName string, approvedOnly bool) (DepartmentView, error) {
	code, err := department.ResolveCode(departmentName)
	if err != nil {
		return DepartmentView{}, err
	}

	all, err := u.students.List(ctx)
	if err != nil {
		return DepartmentView{}, err
	}

	members := make([]student.Profile, 0)
	for _, s := range all {
		if !department.Matches(s.USN, code) {
			continue
		}
		if approvedOnly && !s.Approved() {
			continue
		}
		members = append(members, s)
	}
	sort.Slice(members, func(i, j int) bool { return members[i].USN < members[j].USN })

	return DepartmentView{Name: departmentName, Code: code, Students: members}, nil
}
