package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/mergington/highschool/internal/app/models"
	"github.com/mergington/highschool/internal/pkg/apperrors"
)

// ActivityRepository handles database operations for activities
type ActivityRepository struct {
	db DBTX
}

// NewActivityRepository creates a new activity repository
func NewActivityRepository(db DBTX) *ActivityRepository {
	return &ActivityRepository{
		db: db,
	}
}

// WithTx returns a copy of the repository bound to the given transaction
func (r *ActivityRepository) WithTx(tx pgx.Tx) *ActivityRepository {
	return &ActivityRepository{db: tx}
}

// Create creates a new activity
func (r *ActivityRepository) Create(ctx context.Context, activity *models.Activity) error {
	query := `
		INSERT INTO activities (name, description, schedule, max_participants)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		activity.Name, activity.Description, activity.Schedule, activity.MaxParticipants,
	).Scan(&activity.ID)
	if err != nil {
		return fmt.Errorf("error creating activity: %w", err)
	}

	return nil
}

// Count returns the number of activity rows
func (r *ActivityRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM activities`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting activities: %w", err)
	}

	return count, nil
}

// GetAll retrieves all activities ordered by id
func (r *ActivityRepository) GetAll(ctx context.Context) ([]*models.Activity, error) {
	query := `
		SELECT id, name, description, schedule, max_participants
		FROM activities
		ORDER BY id
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var activities []*models.Activity
	for rows.Next() {
		var activity models.Activity
		if err := rows.Scan(
			&activity.ID,
			&activity.Name,
			&activity.Description,
			&activity.Schedule,
			&activity.MaxParticipants,
		); err != nil {
			return nil, err
		}
		activities = append(activities, &activity)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return activities, nil
}

// GetByNameForUpdate retrieves an activity by its unique name and locks the
// row for the duration of the surrounding transaction. Signups serialize on
// this lock so concurrent checks cannot jointly exceed the capacity.
func (r *ActivityRepository) GetByNameForUpdate(ctx context.Context, name string) (*models.Activity, error) {
	query := `
		SELECT id, name, description, schedule, max_participants
		FROM activities
		WHERE name = $1
		FOR UPDATE
	`

	var activity models.Activity
	err := r.db.QueryRow(ctx, query, name).Scan(
		&activity.ID,
		&activity.Name,
		&activity.Description,
		&activity.Schedule,
		&activity.MaxParticipants,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewCustomError(apperrors.ErrActivityNotFound,
				fmt.Sprintf("activity %q not found", name))
		}
		return nil, fmt.Errorf("error retrieving activity: %w", err)
	}

	return &activity, nil
}
