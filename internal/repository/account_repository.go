package repository

import (
	"context"
	"errors"
	"time"

	"campus-placement/internal/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var ErrAccountNotFound = errors.New("account not found")

const (
	RoleStudent    = "student"
	RoleDepartment = "department"
	RoleCompany    = "company"
)

// Account is a login credential row. Subject carries the identity the engine
// actually works with: the USN for students, the department name for department
// staff, the company name for company users.
type Account struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	Role         string
	Subject      string
	CreatedAt    time.Time
}

type AccountRepository interface {
	Create(ctx context.Context, a Account) error
	GetByEmail(ctx context.Context, email string) (Account, error)
}

type PostgresAccountRepository struct {
	db database.DB
}

func NewPostgresAccountRepository(db database.DB) *PostgresAccountRepository {
	return &PostgresAccountRepository{db: db}
}

func (r *PostgresAccountRepository) Create(ctx context.Context, a Account) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO accounts (id, email, password_hash, role, subject)
		VALUES ($1, $2, $3, $4, $5)`,
		a.ID, a.Email, a.PasswordHash, a.Role, a.Subject,
	)
	return err
}

func (r *PostgresAccountRepository) GetByEmail(ctx context.Context, email string) (Account, error) {
	row := r.db.QueryRow(ctx,
		`SELECT id, email, password_hash, role, subject, created_at FROM accounts WHERE email = $1`, email)

	var a Account
	if err := row.Scan(&a.ID, &a.Email, &a.PasswordHash, &a.Role, &a.Subject, &a.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Account{}, ErrAccountNotFound
		}
		return Account{}, err
	}
	return a, nil
}
