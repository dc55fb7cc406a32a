package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/mergington/highschool/internal/app/models"
	"github.com/mergington/highschool/internal/app/services"
	"github.com/mergington/highschool/internal/db"
)

// Store implements services.EnrollmentStore on top of the repositories and
// the transactional database handle. Reads go straight to the pool;
// InTransaction rebinds the repositories to a single transaction so the
// service's check-then-act sequences are atomic.
type Store struct {
	database *db.PostgresDB
	repos    *Repositories
}

var (
	_ services.EnrollmentStore = (*Store)(nil)
	_ services.EnrollmentTx    = (*storeTx)(nil)
)

// NewStore creates a store over the given database handle
func NewStore(database *db.PostgresDB) *Store {
	return &Store{
		database: database,
		repos:    NewRepositories(database.Pool),
	}
}

// Activities returns every activity
func (s *Store) Activities(ctx context.Context) ([]*models.Activity, error) {
	return s.repos.ActivityRepository.GetAll(ctx)
}

// RosterByActivityIDs returns enrolled emails per activity in signup order
func (s *Store) RosterByActivityIDs(ctx context.Context, activityIDs []int64) (map[int64][]string, error) {
	return s.repos.EnrollmentRepository.GetEmailsByActivityIDs(ctx, activityIDs)
}

// InTransaction runs fn with the repositories bound to one transaction
func (s *Store) InTransaction(ctx context.Context, fn func(ctx context.Context, tx services.EnrollmentTx) error) error {
	return s.database.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		return fn(ctx, &storeTx{
			activities:  s.repos.ActivityRepository.WithTx(tx),
			students:    s.repos.StudentRepository.WithTx(tx),
			enrollments: s.repos.EnrollmentRepository.WithTx(tx),
		})
	})
}

// storeTx implements services.EnrollmentTx over transaction-bound repositories
type storeTx struct {
	activities  *ActivityRepository
	students    *StudentRepository
	enrollments *EnrollmentRepository
}

func (t *storeTx) ActivityByNameForUpdate(ctx context.Context, name string) (*models.Activity, error) {
	return t.activities.GetByNameForUpdate(ctx, name)
}

func (t *storeTx) EnrollmentExists(ctx context.Context, activityID int64, email string) (bool, error) {
	return t.enrollments.Exists(ctx, activityID, email)
}

func (t *storeTx) RosterCount(ctx context.Context, activityID int64) (int, error) {
	return t.enrollments.CountByActivityID(ctx, activityID)
}

func (t *storeTx) EnsureStudent(ctx context.Context, email string) (bool, error) {
	exists, err := t.students.EmailExists(ctx, email)
	if err != nil {
		return false, err
	}
	if exists {
		return false, nil
	}
	if err := t.students.CreateIfAbsent(ctx, email); err != nil {
		return false, err
	}
	return true, nil
}

func (t *storeTx) AddEnrollment(ctx context.Context, activityID int64, email string) (int64, error) {
	return t.enrollments.Add(ctx, activityID, email)
}

func (t *storeTx) RemoveEnrollment(ctx context.Context, activityID int64, email string) error {
	return t.enrollments.Remove(ctx, activityID, email)
}
