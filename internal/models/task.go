package models

import "time"

// Task is one entry of a user's activity log
type Task struct {
	ID         string    `json:"id"`
	UserID     string    `json:"user_id"`
	Title      *string   `json:"title"`
	Mood       *string   `json:"mood"`
	StartTime  *string   `json:"start_time"`  // HH:MM, no date or zone
	FinishTime *string   `json:"finish_time"` // HH:MM, no date or zone
	CreatedAt  time.Time `json:"created_at"`
}

// Length limits for free-text task fields, in characters
const (
	MaxTitleLength = 200
	MaxMoodLength  = 64
)

// CreateTaskRequest is the body of POST /api/v1/users/:user_id/tasks
type CreateTaskRequest struct {
	Title      *string `json:"title" binding:"omitempty,max=200"`
	Mood       *string `json:"mood" binding:"omitempty,max=64"`
	StartTime  *string `json:"start_time" binding:"omitempty,hhmm"`
	FinishTime *string `json:"finish_time" binding:"omitempty,hhmm"`
}

// UpdateTaskRequest is the body of PATCH /api/v1/users/:user_id/tasks/:id.
// Absent fields are left untouched; null clears the stored value.
type UpdateTaskRequest struct {
	Title      NullableString `json:"title"`
	Mood       NullableString `json:"mood"`
	StartTime  NullableString `json:"start_time"`
	FinishTime NullableString `json:"finish_time"`
}

// StringPtr returns a pointer to s
func StringPtr(s string) *string {
	return &s
}
