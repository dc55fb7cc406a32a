package dto

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mergington/highschool/internal/app/models"
)

func TestNewActivityMap(t *testing.T) {
	activities := []*models.Activity{
		{
			ID:              1,
			Name:            "Chess Club",
			Description:     "Learn strategies and compete in chess tournaments",
			Schedule:        "Fridays, 3:30 PM - 5:00 PM",
			MaxParticipants: 12,
			Participants:    []string{"a@x.edu", "b@x.edu"},
		},
		{
			ID:   2,
			Name: "Art Club",
		},
	}

	result := NewActivityMap(activities)
	require.Len(t, result, 2)

	chess := result["Chess Club"]
	assert.Equal(t, "Learn strategies and compete in chess tournaments", chess.Description)
	assert.Equal(t, "Fridays, 3:30 PM - 5:00 PM", chess.Schedule)
	assert.Equal(t, 12, chess.MaxParticipants)
	assert.Equal(t, []string{"a@x.edu", "b@x.edu"}, chess.Participants)

	// A nil roster becomes an empty slice so it serializes as []
	art := result["Art Club"]
	require.NotNil(t, art.Participants)
	assert.Empty(t, art.Participants)

	raw, err := json.Marshal(art)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"participants":[]`)
}

func TestNewActivityMapEmpty(t *testing.T) {
	result := NewActivityMap(nil)
	assert.NotNil(t, result)
	assert.Empty(t, result)
}
