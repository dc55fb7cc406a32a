package seed

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/mergington/highschool/internal/app/models"
	"github.com/mergington/highschool/internal/app/repositories"
)

// DefaultActivities is the bootstrap catalogue of extracurricular
// activities. It is only inserted when the activities table is empty, and
// it is exported so test fixtures can build on the same data.
var DefaultActivities = []models.Activity{
	{
		Name:            "Chess Club",
		Description:     "Learn strategies and compete in chess tournaments",
		Schedule:        "Fridays, 3:30 PM - 5:00 PM",
		MaxParticipants: 12,
	},
	{
		Name:            "Programming Class",
		Description:     "Learn programming fundamentals and build software projects",
		Schedule:        "Tuesdays and Thursdays, 3:30 PM - 4:30 PM",
		MaxParticipants: 20,
	},
	{
		Name:            "Gym Class",
		Description:     "Physical education and sports activities",
		Schedule:        "Mondays, Wednesdays, Fridays, 2:00 PM - 3:00 PM",
		MaxParticipants: 30,
	},
	{
		Name:            "Soccer Team",
		Description:     "Join the school soccer team and compete in matches",
		Schedule:        "Tuesdays and Thursdays, 4:00 PM - 5:30 PM",
		MaxParticipants: 22,
	},
	{
		Name:            "Basketball Team",
		Description:     "Practice and play basketball with the school team",
		Schedule:        "Wednesdays and Fridays, 3:30 PM - 5:00 PM",
		MaxParticipants: 15,
	},
	{
		Name:            "Art Club",
		Description:     "Explore your creativity through painting and drawing",
		Schedule:        "Thursdays, 3:30 PM - 5:00 PM",
		MaxParticipants: 15,
	},
	{
		Name:            "Drama Club",
		Description:     "Act, direct, and produce plays and performances",
		Schedule:        "Mondays and Wednesdays, 4:00 PM - 5:30 PM",
		MaxParticipants: 20,
	},
	{
		Name:            "Math Club",
		Description:     "Solve challenging problems and participate in math competitions",
		Schedule:        "Tuesdays, 3:30 PM - 4:30 PM",
		MaxParticipants: 10,
	},
	{
		Name:            "Debate Team",
		Description:     "Develop public speaking and argumentation skills",
		Schedule:        "Fridays, 4:00 PM - 5:30 PM",
		MaxParticipants: 12,
	},
}

// CreateDefaultActivities seeds the activity catalogue on first run. The
// seed only happens when the activities table is empty; an already
// populated table is left untouched.
func CreateDefaultActivities(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	activityRepo := repositories.NewActivityRepository(dbPool)

	count, err := activityRepo.Count(ctx)
	if err != nil {
		lgr.Error().Err(err).Msg("Error counting activities before seed")
		return err
	}

	if count > 0 {
		lgr.Debug().Int("count", count).Msg("Activities already present, skipping seed")
		return nil
	}

	lgr.Info().Int("activities", len(DefaultActivities)).Msg("Seeding default activities...")

	var finalErr error
	for i := range DefaultActivities {
		activity := DefaultActivities[i]
		if err := activityRepo.Create(ctx, &activity); err != nil {
			lgr.Error().Err(err).Str("activity", activity.Name).Msg("Error seeding activity")
			finalErr = errors.Join(finalErr, err)
		}
	}

	return finalErr
}
