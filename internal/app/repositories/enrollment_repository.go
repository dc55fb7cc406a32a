package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/mergington/highschool/internal/pkg/apperrors"
)

// EnrollmentRepository handles database operations for enrollments
type EnrollmentRepository struct {
	db DBTX
}

// NewEnrollmentRepository creates a new EnrollmentRepository
func NewEnrollmentRepository(db DBTX) *EnrollmentRepository {
	return &EnrollmentRepository{db: db}
}

// WithTx returns a copy of the repository bound to the given transaction
func (r *EnrollmentRepository) WithTx(tx pgx.Tx) *EnrollmentRepository {
	return &EnrollmentRepository{db: tx}
}

// GetEmailsByActivityIDs retrieves the enrolled student emails for multiple
// activities in one query, each roster ordered by signup time.
func (r *EnrollmentRepository) GetEmailsByActivityIDs(ctx context.Context, activityIDs []int64) (map[int64][]string, error) {
	rosters := make(map[int64][]string)
	if len(activityIDs) == 0 {
		return rosters, nil
	}

	query := squirrel.Select("activity_id", "student_email").
		From("enrollments").
		Where(squirrel.Eq{"activity_id": activityIDs}).
		OrderBy("created_at ASC", "id ASC").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var activityID int64
		var email string
		if err := rows.Scan(&activityID, &email); err != nil {
			return nil, fmt.Errorf("error scanning row: %w", err)
		}
		rosters[activityID] = append(rosters[activityID], email)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error reading rows: %w", err)
	}

	return rosters, nil
}

// CountByActivityID retrieves the number of enrollments for a specific activity
func (r *EnrollmentRepository) CountByActivityID(ctx context.Context, activityID int64) (int, error) {
	query := squirrel.Select("COUNT(*)").
		From("enrollments").
		Where("activity_id = ?", activityID).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return 0, fmt.Errorf("error building SQL: %w", err)
	}

	var count int
	err = r.db.QueryRow(ctx, sql, args...).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error executing query: %w", err)
	}

	return count, nil
}

// Exists checks if an enrollment exists for the (activity, student) pair
func (r *EnrollmentRepository) Exists(ctx context.Context, activityID int64, email string) (bool, error) {
	query := squirrel.Select("1").
		From("enrollments").
		Where("activity_id = ? AND student_email = ?", activityID, email).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return false, fmt.Errorf("error building SQL: %w", err)
	}

	var exists int
	err = r.db.QueryRow(ctx, sql, args...).Scan(&exists)
	if err != nil {
		if err == pgx.ErrNoRows {
			return false, nil
		}
		return false, fmt.Errorf("error executing query: %w", err)
	}

	return true, nil
}

// Add creates an enrollment for the (activity, student) pair
func (r *EnrollmentRepository) Add(ctx context.Context, activityID int64, email string) (int64, error) {
	query := squirrel.Insert("enrollments").
		Columns("activity_id", "student_email").
		Values(activityID, email).
		Suffix("RETURNING id").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return 0, fmt.Errorf("error building SQL: %w", err)
	}

	var id int64
	err = r.db.QueryRow(ctx, sql, args...).Scan(&id)
	if err != nil {
		// Surface the raw pg error so callers can detect the unique
		// constraint backstop on (activity_id, student_email).
		return 0, err
	}

	return id, nil
}

// Remove deletes the enrollment for the (activity, student) pair
func (r *EnrollmentRepository) Remove(ctx context.Context, activityID int64, email string) error {
	query := squirrel.Delete("enrollments").
		Where("activity_id = ? AND student_email = ?", activityID, email).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("error building SQL: %w", err)
	}

	result, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error executing query: %w", err)
	}

	if result.RowsAffected() == 0 {
		return apperrors.ErrNotEnrolled
	}

	return nil
}
