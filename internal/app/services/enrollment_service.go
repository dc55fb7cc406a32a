package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/mergington/highschool/internal/app/models"
	"github.com/mergington/highschool/internal/pkg/apperrors"
	"github.com/mergington/highschool/internal/pkg/dberrors"
)

// EnrollmentStore provides read access and transactional scopes over the
// activity, student and enrollment tables. The concrete implementation
// lives in the repositories package.
type EnrollmentStore interface {
	// Activities returns every activity.
	Activities(ctx context.Context) ([]*models.Activity, error)
	// RosterByActivityIDs returns enrolled emails per activity, in signup order.
	RosterByActivityIDs(ctx context.Context, activityIDs []int64) (map[int64][]string, error)
	// InTransaction runs fn inside a single database transaction; fn's
	// writes become durable together or not at all.
	InTransaction(ctx context.Context, fn func(ctx context.Context, tx EnrollmentTx) error) error
}

// EnrollmentTx is the set of operations available inside a transaction
// scope opened by EnrollmentStore.InTransaction.
type EnrollmentTx interface {
	// ActivityByNameForUpdate resolves an activity by name and locks its row
	// until the transaction ends.
	ActivityByNameForUpdate(ctx context.Context, name string) (*models.Activity, error)
	// EnrollmentExists reports whether the (activity, student) pair is enrolled.
	EnrollmentExists(ctx context.Context, activityID int64, email string) (bool, error)
	// RosterCount returns the current number of enrollments for the activity.
	RosterCount(ctx context.Context, activityID int64) (int, error)
	// EnsureStudent creates the student row if this email has never been
	// seen; reports whether a row was created.
	EnsureStudent(ctx context.Context, email string) (bool, error)
	// AddEnrollment inserts the enrollment row.
	AddEnrollment(ctx context.Context, activityID int64, email string) (int64, error)
	// RemoveEnrollment deletes the enrollment row, or returns
	// apperrors.ErrNotEnrolled when none exists.
	RemoveEnrollment(ctx context.Context, activityID int64, email string) error
}

// EnrollmentService exposes the activity enrollment operations
type EnrollmentService interface {
	// ListActivities returns every activity with its roster populated.
	ListActivities(ctx context.Context) ([]*models.Activity, error)
	// SignUp enrolls the student email in the named activity.
	SignUp(ctx context.Context, activityName, email string) error
	// Unregister removes the student email from the named activity.
	Unregister(ctx context.Context, activityName, email string) error
}

type enrollmentService struct {
	store  EnrollmentStore
	logger zerolog.Logger
}

// NewEnrollmentService creates a new enrollment service instance
func NewEnrollmentService(store EnrollmentStore, logger zerolog.Logger) EnrollmentService {
	return &enrollmentService{
		store:  store,
		logger: logger,
	}
}

// validateEmail ensures the email is present. The format is deliberately
// not validated; emails are opaque identifiers.
func validateEmail(email string) error {
	if strings.TrimSpace(email) == "" {
		return fmt.Errorf("%w: email is required", apperrors.ErrValidationFailed)
	}
	return nil
}

// ListActivities returns every activity annotated with its current roster.
// Rosters reflect committed enrollments only.
func (s *enrollmentService) ListActivities(ctx context.Context) ([]*models.Activity, error) {
	activities, err := s.store.Activities(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving activities: %w", err)
	}

	activityIDs := make([]int64, 0, len(activities))
	for _, activity := range activities {
		activityIDs = append(activityIDs, activity.ID)
	}

	rosters, err := s.store.RosterByActivityIDs(ctx, activityIDs)
	if err != nil {
		return nil, fmt.Errorf("error retrieving rosters: %w", err)
	}

	for _, activity := range activities {
		roster := rosters[activity.ID]
		if roster == nil {
			roster = []string{}
		}
		activity.Participants = roster
	}

	return activities, nil
}

// SignUp enrolls a student in an activity. The preconditions are checked in
// order inside a single transaction, with the activity row locked, so
// concurrent signups can neither duplicate an enrollment nor exceed the
// configured capacity. The student row and the enrollment row are created
// in the same transaction.
func (s *enrollmentService) SignUp(ctx context.Context, activityName, email string) error {
	if err := validateEmail(email); err != nil {
		return err
	}

	err := s.store.InTransaction(ctx, func(ctx context.Context, tx EnrollmentTx) error {
		activity, err := tx.ActivityByNameForUpdate(ctx, activityName)
		if err != nil {
			return err
		}

		enrolled, err := tx.EnrollmentExists(ctx, activity.ID, email)
		if err != nil {
			return fmt.Errorf("error checking enrollment: %w", err)
		}
		if enrolled {
			return apperrors.ErrAlreadySignedUp
		}

		// MaxParticipants == 0 means no capacity configured; the check is
		// skipped and the activity accepts any number of signups.
		if activity.MaxParticipants > 0 {
			count, err := tx.RosterCount(ctx, activity.ID)
			if err != nil {
				return fmt.Errorf("error counting roster: %w", err)
			}
			if count >= activity.MaxParticipants {
				return apperrors.ErrActivityFull
			}
		}

		created, err := tx.EnsureStudent(ctx, email)
		if err != nil {
			return fmt.Errorf("error creating student: %w", err)
		}
		if created {
			s.logger.Debug().Str("email", email).Msg("Created student record on first signup")
		}

		if _, err := tx.AddEnrollment(ctx, activity.ID, email); err != nil {
			// Unique constraint backstop for races the existence check missed.
			if dberrors.IsDuplicateConstraintError(err, dberrors.ConstraintEnrollmentUnique) {
				return apperrors.ErrAlreadySignedUp
			}
			return fmt.Errorf("error creating enrollment: %w", err)
		}

		return nil
	})
	if err != nil {
		return err
	}

	s.logger.Info().Str("activity", activityName).Str("email", email).Msg("Student signed up")
	return nil
}

// Unregister removes a student's enrollment from an activity. The lookup
// and delete run in one transaction so the enrollment state cannot change
// between them.
func (s *enrollmentService) Unregister(ctx context.Context, activityName, email string) error {
	if err := validateEmail(email); err != nil {
		return err
	}

	err := s.store.InTransaction(ctx, func(ctx context.Context, tx EnrollmentTx) error {
		activity, err := tx.ActivityByNameForUpdate(ctx, activityName)
		if err != nil {
			return err
		}

		if err := tx.RemoveEnrollment(ctx, activity.ID, email); err != nil {
			if errors.Is(err, apperrors.ErrNotEnrolled) {
				return apperrors.ErrNotEnrolled
			}
			return fmt.Errorf("error removing enrollment: %w", err)
		}

		return nil
	})
	if err != nil {
		return err
	}

	s.logger.Info().Str("activity", activityName).Str("email", email).Msg("Student unregistered")
	return nil
}
