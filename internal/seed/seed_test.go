package seed

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultActivitiesCatalogue(t *testing.T) {
	require.Len(t, DefaultActivities, 9)

	names := make(map[string]bool, len(DefaultActivities))
	for _, activity := range DefaultActivities {
		assert.NotEmpty(t, activity.Name)
		assert.NotEmpty(t, activity.Description)
		assert.NotEmpty(t, activity.Schedule)
		assert.Greater(t, activity.MaxParticipants, 0)

		assert.False(t, names[activity.Name], "duplicate activity name %q", activity.Name)
		names[activity.Name] = true
	}
}

func TestDefaultActivitiesWellKnownEntries(t *testing.T) {
	byName := make(map[string]int, len(DefaultActivities))
	for _, activity := range DefaultActivities {
		byName[activity.Name] = activity.MaxParticipants
	}

	assert.Equal(t, 12, byName["Chess Club"])
	assert.Equal(t, 20, byName["Programming Class"])
	assert.Equal(t, 30, byName["Gym Class"])
	assert.Equal(t, 10, byName["Math Club"])
}
