package repository

import (
	"context"

	"campus-placement/internal/database"
	"campus-placement/internal/domain/application"
)

type ApplicationRepository interface {
	// Insert is the storage half of the duplicate-application guard: it must be an
	// atomic insert-if-absent on the (student_usn, job_id) key and report false
	// when the pair already exists, so two concurrent submits cannot both succeed.
	Insert(ctx context.Context, a application.Application) (bool, error)
	ListByStudent(ctx context.Context, usn string) ([]application.Application, error)
	ListByCompany(ctx context.Context, companyName string) ([]application.Application, error)
}

type PostgresApplicationRepository struct {
	db database.DB
}

func NewPostgresApplicationRepository(db database.DB) *PostgresApplicationRepository {
	return &PostgresApplicationRepository{db: db}
}

const applicationColumns = `student_usn, job_id, job_title, company_name, COALESCE(city, ''), status, applied_at`

func (r *PostgresApplicationRepository) Insert(ctx context.Context, a application.Application) (bool, error) {
	affected, err := r.db.Exec(ctx, `
		INSERT INTO applications (student_usn, job_id, job_title, company_name, city, status, applied_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (student_usn, job_id) DO NOTHING`,
		a.StudentUSN, a.JobID, a.JobTitle, a.CompanyName, a.City, string(a.Status), a.AppliedAt,
	)
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

func (r *PostgresApplicationRepository) ListByStudent(ctx context.Context, usn string) ([]application.Application, error) {
	return r.list(ctx, `SELECT `+applicationColumns+` FROM applications WHERE student_usn = $1 ORDER BY applied_at, job_id`, usn)
}

func (r *PostgresApplicationRepository) ListByCompany(ctx context.Context, companyName string) ([]application.Application, error) {
	return r.list(ctx, `SELECT `+applicationColumns+` FROM applications WHERE company_name = $1 ORDER BY applied_at, job_id`, companyName)
}

func (r *PostgresApplicationRepository) list(ctx context.Context, query string, args ...any) ([]application.Application, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]application.Application, 0)
	for rows.Next() {
		var a application.Application
		var status string
		if err := rows.Scan(&a.StudentUSN, &a.JobID, &a.JobTitle, &a.CompanyName, &a.City, &status, &a.AppliedAt); err != nil {
			return nil, err
		}
		a.Status = application.Status(status)
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
