package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"campus-placement/internal/domain/department"
	"campus-placement/internal/domain/posting"
	"campus-placement/internal/domain/student"
)

var dashNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func TestDashboards_DepartmentMetrics_PartitionsByUSN(t *testing.T) {
	students := newFakeStudentRepo(
		student.Profile{USN: "4HG23CS045", State: student.StateApproved},
		student.Profile{USN: "4HG23CS046", State: student.StatePending},
		student.Profile{USN: "4HG22EE001", State: student.StateApproved},
	)
	postings := &fakePostingRepo{items: []posting.JobPosting{
		{CompanyName: "Acme", NumberOfPositions: 3, ApplicationDeadline: dashNow.Add(time.Hour)},
		{CompanyName: "Globex", NumberOfPositions: 1, ApplicationDeadline: dashNow.Add(-time.Hour)},
	}}

	uc := NewDashboardUsecase(students, postings, nil, nil)
	uc.now = func() time.Time { return dashNow }

	m, err := uc.DepartmentMetrics(context.Background(), "CSE")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	// The EE student belongs to another partition.
	if m.TotalStudents != 2 || m.ApprovedCount != 1 || m.PendingCount != 1 {
		t.Fatalf("student counts wrong: %+v", m)
	}
	if m.ActivePostings != 1 || m.DistinctCompanies != 2 || m.TotalPositions != 4 {
		t.Fatalf("posting counts wrong: %+v", m)
	}
	if m.ApprovedCount+m.PendingCount != m.TotalStudents {
		t.Fatalf("aggregate consistency violated: %+v", m)
	}
}

func TestDashboards_DepartmentMetrics_EmptyDepartmentFails(t *testing.T) {
	uc := NewDashboardUsecase(newFakeStudentRepo(), &fakePostingRepo{}, nil, nil)

	if _, err := uc.DepartmentMetrics(context.Background(), " "); !errors.Is(err, department.ErrNoDepartment) {
		t.Fatalf("expected ErrNoDepartment, got %v", err)
	}
}

func TestDashboards_CompanyMetrics_OwnPostingsOnly(t *testing.T) {
	postings := &fakePostingRepo{items: []posting.JobPosting{
		{CompanyName: "Acme", NumberOfPositions: 2, ApplicationDeadline: dashNow.Add(time.Hour)},
		{CompanyName: "Acme", NumberOfPositions: 3, ApplicationDeadline: dashNow.Add(-time.Hour)},
		{CompanyName: "Globex", NumberOfPositions: 9, ApplicationDeadline: dashNow.Add(time.Hour)},
	}}

	uc := NewDashboardUsecase(newFakeStudentRepo(), postings, nil, nil)
	uc.now = func() time.Time { return dashNow }

	m, err := uc.CompanyMetrics(context.Background(), "Acme")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if m.ActivePostings != 1 || m.TotalPositions != 5 || m.DistinctCompanies != 1 {
		t.Fatalf("company metrics wrong: %+v", m)
	}
	if m.TotalStudents != 0 {
		t.Fatalf("company dashboard must not count students: %+v", m)
	}
}
