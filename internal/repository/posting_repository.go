package repository

import (
	"context"
	"errors"

	"campus-placement/internal/database"
	"campus-placement/internal/domain/posting"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var ErrPostingNotFound = errors.New("posting not found")

type PostingRepository interface {
	Create(ctx context.Context, p posting.JobPosting) error
	Update(ctx context.Context, p posting.JobPosting) error
	Delete(ctx context.Context, id uuid.UUID) error
	GetByID(ctx context.Context, id uuid.UUID) (posting.JobPosting, error)
	List(ctx context.Context) ([]posting.JobPosting, error)
	ListByCompany(ctx context.Context, companyName string) ([]posting.JobPosting, error)
}

type PostgresPostingRepository struct {
	db database.DB
}

func NewPostgresPostingRepository(db database.DB) *PostgresPostingRepository {
	return &PostgresPostingRepository{db: db}
}

const postingColumns = `id, company_name, job_title, job_type, work_mode,
	COALESCE(city, ''), COALESCE(state, ''), COALESCE(salary, ''), number_of_positions,
	COALESCE(degree_required, ''), allowed_branches, required_skills, graduation_year,
	min_cgpa, backlog_allowed, application_deadline, created_at`

func (r *PostgresPostingRepository) Create(ctx context.Context, p posting.JobPosting) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO job_postings
			(id, company_name, job_title, job_type, work_mode, city, state, salary, number_of_positions,
			 degree_required, allowed_branches, required_skills, graduation_year, min_cgpa, backlog_allowed,
			 application_deadline)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`,
		p.ID, p.CompanyName, p.JobTitle, string(p.JobType), string(p.WorkMode), p.City, p.State, p.Salary,
		p.NumberOfPositions, p.DegreeRequired, p.AllowedBranches, p.RequiredSkills, p.GraduationYear,
		p.MinCGPA, p.BacklogAllowed, p.ApplicationDeadline,
	)
	return err
}

func (r *PostgresPostingRepository) Update(ctx context.Context, p posting.JobPosting) error {
	affected, err := r.db.Exec(ctx, `
		UPDATE job_postings SET
			job_title = $2, job_type = $3, work_mode = $4, city = $5, state = $6, salary = $7,
			number_of_positions = $8, degree_required = $9, allowed_branches = $10, required_skills = $11,
			graduation_year = $12, min_cgpa = $13, backlog_allowed = $14, application_deadline = $15
		WHERE id = $1`,
		p.ID, p.JobTitle, string(p.JobType), string(p.WorkMode), p.City, p.State, p.Salary,
		p.NumberOfPositions, p.DegreeRequired, p.AllowedBranches, p.RequiredSkills,
		p.GraduationYear, p.MinCGPA, p.BacklogAllowed, p.ApplicationDeadline,
	)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrPostingNotFound
	}
	return nil
}

func (r *PostgresPostingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	affected, err := r.db.Exec(ctx, `DELETE FROM job_postings WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrPostingNotFound
	}
	return nil
}

func (r *PostgresPostingRepository) GetByID(ctx context.Context, id uuid.UUID) (posting.JobPosting, error) {
	row := r.db.QueryRow(ctx, `SELECT `+postingColumns+` FROM job_postings WHERE id = $1`, id)

	p, err := scanPosting(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return posting.JobPosting{}, ErrPostingNotFound
		}
		return posting.JobPosting{}, err
	}
	return p, nil
}

// List returns the whole catalog in creation order; filtering is the eligibility
// engine's job, not a SQL concern.
func (r *PostgresPostingRepository) List(ctx context.Context) ([]posting.JobPosting, error) {
	return r.list(ctx, `SELECT `+postingColumns+` FROM job_postings ORDER BY created_at, id`)
}

func (r *PostgresPostingRepository) ListByCompany(ctx context.Context, companyName string) ([]posting.JobPosting, error) {
	return r.list(ctx, `SELECT `+postingColumns+` FROM job_postings WHERE company_name = $1 ORDER BY created_at, id`, companyName)
}

func (r *PostgresPostingRepository) list(ctx context.Context, query string, args ...any) ([]posting.JobPosting, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]posting.JobPosting, 0)
	for rows.Next() {
		p, err := scanPosting(rows)
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

func scanPosting(row scanner) (posting.JobPosting, error) {
	var p posting.JobPosting
	var jobType, workMode string
	err := row.Scan(
		&p.ID, &p.CompanyName, &p.JobTitle, &jobType, &workMode,
		&p.City, &p.State, &p.Salary, &p.NumberOfPositions,
		&p.DegreeRequired, &p.AllowedBranches, &p.RequiredSkills, &p.GraduationYear,
		&p.MinCGPA, &p.BacklogAllowed, &p.ApplicationDeadline, &p.CreatedAt,
	)
	if err != nil {
		return posting.JobPosting{}, err
	}
	p.JobType = posting.JobType(jobType)
	p.WorkMode = posting.WorkMode(workMode)
	return p, nil
}
