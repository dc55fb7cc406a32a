package dto

import "github.com/mergington/highschool/internal/app/models"

// ActivityDetail is the public shape of one activity in the listing
type ActivityDetail struct {
	Description     string   `json:"description" example:"Learn strategies and compete in chess tournaments"`
	Schedule        string   `json:"schedule" example:"Fridays, 3:30 PM - 5:00 PM"`
	MaxParticipants int      `json:"max_participants" example:"12"`
	Participants    []string `json:"participants"`
}

// ActivityMap maps activity names to their details, the wire format of the
// activity listing endpoint.
type ActivityMap map[string]ActivityDetail

// NewActivityMap builds the listing response from domain activities
func NewActivityMap(activities []*models.Activity) ActivityMap {
	result := make(ActivityMap, len(activities))
	for _, activity := range activities {
		participants := activity.Participants
		if participants == nil {
			participants = []string{}
		}
		result[activity.Name] = ActivityDetail{
			Description:     activity.Description,
			Schedule:        activity.Schedule,
			MaxParticipants: activity.MaxParticipants,
			Participants:    participants,
		}
	}
	return result
}
