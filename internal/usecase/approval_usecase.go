package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"campus-placement/internal/domain/department"
	"campus-placement/internal/domain/student"
	"campus-placement/internal/repository"
)

var ErrNotDepartmentStudent = errors.New("student does not belong to the caller's department")

type ApprovalUsecase interface {
	Approve(ctx context.Context, usn, reviewer, callerDepartment string) (student.Profile, error)
}

type Approvals struct {
	students repository.StudentRepository
	cache    Cache
	notifier DashboardNotifier
	now      func() time.Time
}

func NewApprovalUsecase(students repository.StudentRepository, cache Cache, notifier DashboardNotifier) *Approvals {
	return &Approvals{students: students, cache: cache, notifier: notifier, now: time.Now}
}

// Approve marks the profile approved on behalf of callerDepartment. Re-approving
// an approved profile succeeds without changing the recorded reviewer or
// timestamp; under a concurrent race the first writer wins and everyone reads
// that writer's audit pair back.
func (u *Approvals) Approve(ctx context.Context, usn, reviewer, callerDepartment string) (student.Profile, error) {
	usn = strings.TrimSpace(usn)
	reviewer = strings.TrimSpace(reviewer)
	if usn == "" || reviewer == "" {
		return student.Profile{}, ErrInvalidInput
	}

	code, err := department.ResolveCode(callerDepartment)
	if err != nil {
		return student.Profile{}, err
	}
	if !department.Matches(usn, code) {
		return student.Profile{}, ErrNotDepartmentStudent
	}

	prof, err := u.students.GetByUSN(ctx, usn)
	if err != nil {
		if errors.Is(err, repository.ErrStudentNotFound) {
			return student.Profile{}, ErrProfileNotFound
		}
		return student.Profile{}, err
	}

	next, changed := student.Approve(prof, reviewer, u.now())
	if !changed {
		return next, nil
	}

	applied, err := u.students.ApproveIfPending(ctx, usn, next.ApprovedBy, *next.ApprovedAt)
	if err != nil {
		return student.Profile{}, err
	}
	if !applied {
		// Lost the race to another reviewer; their approval stands.
		return u.students.GetByUSN(ctx, usn)
	}

	if u.cache != nil {
		_ = u.cache.Delete(ctx, DepartmentDashboardCacheKey(code))
	}
	if u.notifier != nil {
		u.notifier.NotifyDashboardUpdated("department", code)
	}

	return next, nil
}
