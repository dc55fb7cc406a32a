package services

import (
	"context"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mergington/highschool/internal/app/models"
	"github.com/mergington/highschool/internal/pkg/apperrors"
	"github.com/mergington/highschool/internal/pkg/dberrors"
)

// fakeStore is an in-memory EnrollmentStore that also serves as its own
// transaction scope.
type fakeStore struct {
	activities []*models.Activity
	rosters    map[int64][]string
	students   map[string]bool

	addErr error
	nextID int64
}

func newFakeStore(activities ...*models.Activity) *fakeStore {
	return &fakeStore{
		activities: activities,
		rosters:    make(map[int64][]string),
		students:   make(map[string]bool),
	}
}

func (f *fakeStore) Activities(ctx context.Context) ([]*models.Activity, error) {
	return f.activities, nil
}

func (f *fakeStore) RosterByActivityIDs(ctx context.Context, activityIDs []int64) (map[int64][]string, error) {
	rosters := make(map[int64][]string)
	for _, id := range activityIDs {
		if roster, ok := f.rosters[id]; ok {
			rosters[id] = roster
		}
	}
	return rosters, nil
}

func (f *fakeStore) InTransaction(ctx context.Context, fn func(ctx context.Context, tx EnrollmentTx) error) error {
	return fn(ctx, f)
}

func (f *fakeStore) ActivityByNameForUpdate(ctx context.Context, name string) (*models.Activity, error) {
	for _, activity := range f.activities {
		if activity.Name == name {
			return activity, nil
		}
	}
	return nil, apperrors.NewCustomError(apperrors.ErrActivityNotFound,
		fmt.Sprintf("activity %q not found", name))
}

func (f *fakeStore) EnrollmentExists(ctx context.Context, activityID int64, email string) (bool, error) {
	for _, enrolled := range f.rosters[activityID] {
		if enrolled == email {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeStore) RosterCount(ctx context.Context, activityID int64) (int, error) {
	return len(f.rosters[activityID]), nil
}

func (f *fakeStore) EnsureStudent(ctx context.Context, email string) (bool, error) {
	if f.students[email] {
		return false, nil
	}
	f.students[email] = true
	return true, nil
}

func (f *fakeStore) AddEnrollment(ctx context.Context, activityID int64, email string) (int64, error) {
	if f.addErr != nil {
		return 0, f.addErr
	}
	f.rosters[activityID] = append(f.rosters[activityID], email)
	f.nextID++
	return f.nextID, nil
}

func (f *fakeStore) RemoveEnrollment(ctx context.Context, activityID int64, email string) error {
	roster := f.rosters[activityID]
	for i, enrolled := range roster {
		if enrolled == email {
			f.rosters[activityID] = append(roster[:i], roster[i+1:]...)
			return nil
		}
	}
	return apperrors.ErrNotEnrolled
}

func chessClub() *models.Activity {
	return &models.Activity{
		ID:              1,
		Name:            "Chess Club",
		Description:     "Learn strategies and compete in chess tournaments",
		Schedule:        "Fridays, 3:30 PM - 5:00 PM",
		MaxParticipants: 12,
	}
}

func newService(store EnrollmentStore) EnrollmentService {
	return NewEnrollmentService(store, zerolog.Nop())
}

func TestListActivitiesPopulatesRosters(t *testing.T) {
	store := newFakeStore(
		chessClub(),
		&models.Activity{ID: 2, Name: "Art Club", MaxParticipants: 15},
	)
	store.rosters[1] = []string{"a@mergington.edu", "b@mergington.edu"}

	service := newService(store)

	activities, err := service.ListActivities(context.Background())
	require.NoError(t, err)
	require.Len(t, activities, 2)

	assert.Equal(t, []string{"a@mergington.edu", "b@mergington.edu"}, activities[0].Participants)
	// An empty roster is an empty slice, not nil, so it serializes as []
	assert.NotNil(t, activities[1].Participants)
	assert.Empty(t, activities[1].Participants)
}

func TestSignUpSuccess(t *testing.T) {
	store := newFakeStore(chessClub())
	service := newService(store)

	err := service.SignUp(context.Background(), "Chess Club", "a@x.edu")
	require.NoError(t, err)

	assert.True(t, store.students["a@x.edu"], "student record should be created on first signup")
	assert.Equal(t, []string{"a@x.edu"}, store.rosters[1])
}

func TestSignUpUnknownActivity(t *testing.T) {
	store := newFakeStore(chessClub())
	service := newService(store)

	err := service.SignUp(context.Background(), "Knitting Circle", "a@x.edu")
	require.ErrorIs(t, err, apperrors.ErrActivityNotFound)

	// The failed precondition must not leave any side effects behind
	assert.Empty(t, store.students)
	assert.Empty(t, store.rosters[1])
}

func TestSignUpDuplicateRejected(t *testing.T) {
	store := newFakeStore(chessClub())
	service := newService(store)

	require.NoError(t, service.SignUp(context.Background(), "Chess Club", "a@x.edu"))

	err := service.SignUp(context.Background(), "Chess Club", "a@x.edu")
	require.ErrorIs(t, err, apperrors.ErrAlreadySignedUp)
	assert.Equal(t, []string{"a@x.edu"}, store.rosters[1], "roster must be unchanged")
}

func TestSignUpCapacityExceeded(t *testing.T) {
	store := newFakeStore(chessClub())
	service := newService(store)

	for i := 0; i < 12; i++ {
		email := fmt.Sprintf("student%d@mergington.edu", i)
		require.NoError(t, service.SignUp(context.Background(), "Chess Club", email))
	}

	err := service.SignUp(context.Background(), "Chess Club", "late@mergington.edu")
	require.ErrorIs(t, err, apperrors.ErrActivityFull)
	assert.Len(t, store.rosters[1], 12)
}

func TestSignUpZeroCapacityMeansUnlimited(t *testing.T) {
	store := newFakeStore(&models.Activity{ID: 7, Name: "Open Mic", MaxParticipants: 0})
	service := newService(store)

	for i := 0; i < 40; i++ {
		email := fmt.Sprintf("student%d@mergington.edu", i)
		require.NoError(t, service.SignUp(context.Background(), "Open Mic", email))
	}

	assert.Len(t, store.rosters[7], 40)
}

func TestSignUpRequiresEmail(t *testing.T) {
	store := newFakeStore(chessClub())
	service := newService(store)

	for _, email := range []string{"", "   "} {
		err := service.SignUp(context.Background(), "Chess Club", email)
		require.ErrorIs(t, err, apperrors.ErrValidationFailed)
	}
	assert.Empty(t, store.students)
}

func TestSignUpUniqueConstraintBackstop(t *testing.T) {
	// A concurrent signup that slipped past the existence check surfaces
	// as a unique violation on insert and is reported as a duplicate.
	store := newFakeStore(chessClub())
	store.addErr = &pgconn.PgError{
		Code:           "23505",
		ConstraintName: dberrors.ConstraintEnrollmentUnique,
	}
	service := newService(store)

	err := service.SignUp(context.Background(), "Chess Club", "a@x.edu")
	require.ErrorIs(t, err, apperrors.ErrAlreadySignedUp)
}

func TestUnregisterRoundTrip(t *testing.T) {
	store := newFakeStore(chessClub())
	service := newService(store)

	require.NoError(t, service.SignUp(context.Background(), "Chess Club", "a@x.edu"))
	require.NoError(t, service.Unregister(context.Background(), "Chess Club", "a@x.edu"))
	assert.Empty(t, store.rosters[1])

	err := service.Unregister(context.Background(), "Chess Club", "a@x.edu")
	require.ErrorIs(t, err, apperrors.ErrNotEnrolled)
}

func TestUnregisterWithoutSignup(t *testing.T) {
	store := newFakeStore(chessClub())
	service := newService(store)

	err := service.Unregister(context.Background(), "Chess Club", "ghost@x.edu")
	require.ErrorIs(t, err, apperrors.ErrNotEnrolled)
}

func TestUnregisterUnknownActivity(t *testing.T) {
	store := newFakeStore(chessClub())
	service := newService(store)

	err := service.Unregister(context.Background(), "Knitting Circle", "a@x.edu")
	require.ErrorIs(t, err, apperrors.ErrActivityNotFound)
}

func TestUnregisterRequiresEmail(t *testing.T) {
	store := newFakeStore(chessClub())
	service := newService(store)

	err := service.Unregister(context.Background(), "Chess Club", "")
	require.ErrorIs(t, err, apperrors.ErrValidationFailed)
}
