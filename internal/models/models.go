// package models defines the data model for the mlbase platform store
package models

import (
	"time"
)

// JobStatus is the lifecycle state of a data ingestion job.
// Jobs move pending -> in_progress -> completed or failed; the store does
// not police transitions, so re-applying a terminal state is allowed.
type JobStatus string

const (
	JobStatusPending    JobStatus = "pending"
	JobStatusInProgress JobStatus = "in_progress"
	JobStatusCompleted  JobStatus = "completed"
	JobStatusFailed     JobStatus = "failed"
)

// String returns the status as stored in the database.
func (s JobStatus) String() string { return string(s) }

// Terminal reports whether the status is one of the two end states.
func (s JobStatus) Terminal() bool {
	return s == JobStatusCompleted || s == JobStatusFailed
}

// User is a platform user account. Tasks reference users by id.
type User struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Task is a unit of work assigned to a user. A nil CompletionTime means the
// task is not yet complete.
type Task struct {
	ID             int64      `json:"id"`
	Title          string     `json:"title"`
	UserID         int64      `json:"user_id"`
	CompletionTime *time.Time `json:"completion_time,omitempty"`
}

// TaskWithUser is a task joined with its owning user's name, as returned by
// the task listing.
type TaskWithUser struct {
	Task
	UserName string `json:"user_name"`
}

// Model is a registered ML model version. Description and RegisteredBy are
// optional; an empty string is stored as NULL.
type Model struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Version      string    `json:"version"`
	Description  string    `json:"description,omitempty"`
	ModelURI     string    `json:"model_uri"`
	RegisteredAt time.Time `json:"registered_at"`
	RegisteredBy string    `json:"registered_by,omitempty"`
}

// IngestionJob tracks the ingestion of one external data source.
// CompletedAt is set exactly when the job reaches a terminal status.
type IngestionJob struct {
	ID            int64      `json:"id"`
	DataSourceURI string     `json:"data_source_uri"`
	Status        JobStatus  `json:"status"`
	CreatedAt     time.Time  `json:"created_at"`
	CompletedAt   *time.Time `json:"completed_at,omitempty"`
}
