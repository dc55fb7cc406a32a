package models

import "time"

// Student defines the student model based on the 'students' table.
// Students are created lazily the first time an email signs up for an
// activity; the email is the primary key and is treated as an opaque
// identifier.
type Student struct {
	Email     string    `json:"email" db:"email" example:"michael@mergington.edu"`
	Name      string    `json:"name,omitempty" db:"name" example:"Michael Brown"`
	Grade     string    `json:"grade,omitempty" db:"grade" example:"10"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}
