package models

// Activity represents an extracurricular offering students can join.
// Activities are created once at bootstrap from the seed catalogue and are
// immutable afterwards; clients address them by their unique name rather
// than the surrogate id.
type Activity struct {
	ID              int64  `json:"id" db:"id" example:"1"`
	Name            string `json:"name" db:"name" example:"Chess Club"`
	Description     string `json:"description" db:"description" example:"Learn strategies and compete in chess tournaments"`
	Schedule        string `json:"schedule" db:"schedule" example:"Fridays, 3:30 PM - 5:00 PM"`
	MaxParticipants int    `json:"maxParticipants" db:"max_participants" example:"12"` // 0 means no capacity configured (unlimited)

	// Relations (populated when needed)
	Participants []string `json:"participants,omitempty"` // Enrolled student emails in signup order
}
