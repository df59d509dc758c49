package database

import (
	"context"
	"database/sql"
)

// DB is the storage surface the repositories run on. There is deliberately no
// transaction handle here: every write in the engine is a single statement
// whose rows-affected count doubles as its concurrency guard, so repositories
// only need Exec to report how many rows a statement touched.
type DB interface {
	Ping(ctx context.Context) error
	Close() error

	Exec(ctx context.Context, query string, args ...any) (int64, error)
	Query(ctx context.Context, query string, args ...any) (Rows, error)
	QueryRow(ctx context.Context, query string, args ...any) Row

	// SQLDB exposes the stdlib handle the migration runner needs.
	SQLDB() *sql.DB
}

type Rows interface {
	Close()
	Next() bool
	Scan(dest ...any) error
	Err() error
}

type Row interface {
	Scan(dest ...any) error
}
