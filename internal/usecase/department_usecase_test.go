package usecase

import (
	"context"
	"errors"
	"testing"

	"campus-placement/internal/domain/department"
	"campus-placement/internal/domain/student"
)

func TestDepartments_Students_PartitionsByUSN(t *testing.T) {
	repo := newFakeStudentRepo(
		student.Profile{USN: "4HG23CS045", State: student.StateApproved},
		student.Profile{USN: "4HG23CS001", State: student.StatePending},
		student.Profile{USN: "4HG23ME010", State: student.StateApproved},
	)
	uc := NewDepartmentUsecase(repo)

	view, err := uc.Students(context.Background(), "CSE")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if view.Code != "CS" {
		t.Fatalf("department code = %q, want CS", view.Code)
	}
	if len(view.Students) != 2 {
		t.Fatalf("partition size = %d, want 2", len(view.Students))
	}
	if view.Students[0].USN != "4HG23CS001" {
		t.Fatalf("students not ordered by USN: %q first", view.Students[0].USN)
	}
}

func TestDepartments_ApprovedStudents(t *testing.T) {
	repo := newFakeStudentRepo(
		student.Profile{USN: "4HG23CS045", State: student.StateApproved},
		student.Profile{USN: "4HG23CS001", State: student.StatePending},
	)
	uc := NewDepartmentUsecase(repo)

	view, err := uc.ApprovedStudents(context.Background(), "CSE")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(view.Students) != 1 || view.Students[0].USN != "4HG23CS045" {
		t.Fatalf("approved filter wrong: %+v", view.Students)
	}
}

func TestDepartments_Students_EmptyName(t *testing.T) {
	uc := NewDepartmentUsecase(newFakeStudentRepo())
	if _, err := uc.Students(context.Background(), "  "); !errors.Is(err, department.ErrNoDepartment) {
		t.Fatalf("expected ErrNoDepartment, got %v", err)
	}
}
