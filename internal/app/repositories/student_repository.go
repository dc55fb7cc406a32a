package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
)

// StudentRepository handles database operations for students
type StudentRepository struct {
	db DBTX
}

// NewStudentRepository creates a new student repository
func NewStudentRepository(db DBTX) *StudentRepository {
	return &StudentRepository{
		db: db,
	}
}

// WithTx returns a copy of the repository bound to the given transaction
func (r *StudentRepository) WithTx(tx pgx.Tx) *StudentRepository {
	return &StudentRepository{db: tx}
}

// CreateIfAbsent inserts a student row for the email unless one already
// exists. Students are created lazily on first signup, so a concurrent
// insert for the same email is not an error.
func (r *StudentRepository) CreateIfAbsent(ctx context.Context, email string) error {
	query := `
		INSERT INTO students (email)
		VALUES ($1)
		ON CONFLICT (email) DO NOTHING
	`

	if _, err := r.db.Exec(ctx, query, email); err != nil {
		return fmt.Errorf("error creating student: %w", err)
	}

	return nil
}

// EmailExists checks if a student row exists for the email
func (r *StudentRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM students WHERE email = $1)`, email).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking student existence: %w", err)
	}

	return exists, nil
}
