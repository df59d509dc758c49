package repository

import (
	"context"
	"errors"
	"time"

	"campus-placement/internal/database"
	"campus-placement/internal/domain/student"

	"github.com/jackc/pgx/v5"
)

var ErrStudentNotFound = errors.New("student not found")

type StudentRepository interface {
	Upsert(ctx context.Context, p student.Profile) error
	GetByUSN(ctx context.Context, usn string) (student.Profile, error)
	List(ctx context.Context) ([]student.Profile, error)
	// ApproveIfPending flips the approval flag and records the audit pair in one
	// statement, so concurrent approvals cannot interleave: only the first caller
	// sees applied=true.
	ApproveIfPending(ctx context.Context, usn, reviewer string, at time.Time) (bool, error)
}

type PostgresStudentRepository struct {
	db database.DB
}

func NewPostgresStudentRepository(db database.DB) *PostgresStudentRepository {
	return &PostgresStudentRepository{db: db}
}

const studentColumns = `usn, name, email, phone, college_name, branch, current_semester,
	cgpa, graduation_year, skills, interest, is_approved,
	COALESCE(approved_by, ''), approved_at, created_at, updated_at`

// Upsert creates the profile on first submission and updates the self-editable
// fields afterwards. Approval state is deliberately left alone: a self-edit never
// clears an approval.
func (r *PostgresStudentRepository) Upsert(ctx context.Context, p student.Profile) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO student_profiles
			(usn, name, email, phone, college_name, branch, current_semester, cgpa, graduation_year, skills, interest)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		ON CONFLICT (usn) DO UPDATE SET
			name = EXCLUDED.name,
			email = EXCLUDED.email,
			phone = EXCLUDED.phone,
			college_name = EXCLUDED.college_name,
			branch = EXCLUDED.branch,
			current_semester = EXCLUDED.current_semester,
			cgpa = EXCLUDED.cgpa,
			graduation_year = EXCLUDED.graduation_year,
			skills = EXCLUDED.skills,
			interest = EXCLUDED.interest,
			updated_at = now()`,
		p.USN, p.Name, p.Email, p.Phone, p.CollegeName, p.Branch, p.CurrentSemester,
		p.CGPA, p.GraduationYear, p.Skills, p.Interest,
	)
	return err
}

func (r *PostgresStudentRepository) GetByUSN(ctx context.Context, usn string) (student.Profile, error) {
	row := r.db.QueryRow(ctx, `SELECT `+studentColumns+` FROM student_profiles WHERE usn = $1`, usn)

	p, err := scanStudent(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return student.Profile{}, ErrStudentNotFound
		}
		return student.Profile{}, err
	}
	return p, nil
}

func (r *PostgresStudentRepository) List(ctx context.Context) ([]student.Profile, error) {
	rows, err := r.db.Query(ctx, `SELECT `+studentColumns+` FROM student_profiles ORDER BY usn`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]student.Profile, 0)
	for rows.Next() {
		p, err := scanStudent(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresStudentRepository) ApproveIfPending(ctx context.Context, usn, reviewer string, at time.Time) (bool, error) {
	affected, err := r.db.Exec(ctx, `
		UPDATE student_profiles
		SET is_approved = TRUE, approved_by = $2, approved_at = $3, updated_at = now()
		WHERE usn = $1 AND is_approved = FALSE`,
		usn, reviewer, at.UTC(),
	)
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanStudent(row scanner) (student.Profile, error) {
	var p student.Profile
	var approved bool
	err := row.Scan(
		&p.USN, &p.Name, &p.Email, &p.Phone, &p.CollegeName, &p.Branch, &p.CurrentSemester,
		&p.CGPA, &p.GraduationYear, &p.Skills, &p.Interest, &approved,
		&p.ApprovedBy, &p.ApprovedAt, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return student.Profile{}, err
	}
	if approved {
		p.State = student.StateApproved
	} else {
		p.State = student.StatePending
	}
	return p, nil
}
