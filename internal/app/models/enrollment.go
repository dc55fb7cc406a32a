package models

import "time"

// Enrollment represents one student's membership in one activity.
// At most one enrollment may exist per (activity, student) pair, enforced
// by a unique constraint on (activity_id, student_email).
type Enrollment struct {
	ID           int64     `json:"id" db:"id" example:"1"`
	StudentEmail string    `json:"studentEmail" db:"student_email" example:"michael@mergington.edu"`
	ActivityID   int64     `json:"activityId" db:"activity_id" example:"1"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
}
