package model

import "time"

// Priority is the urgency level of a task.
type Priority string

const (
	PriorityLow    Priority = "Low"
	PriorityMedium Priority = "Medium"
	PriorityHigh   Priority = "High"
)

// Status is the progress state of a task.
type Status string

const (
	StatusPending    Status = "Pending"
	StatusInProgress Status = "InProgress"
	StatusCompleted  Status = "Completed"
)

// Task represents a unit of work owned by both a project and a user.
type Task struct {
	TaskID         int       `json:"task_id"`
	Name           string    `json:"name"`
	Description    string    `json:"description"`
	DueDate        time.Time `json:"due_date"`
	Priority       Priority  `json:"priority"`
	Status         Status    `json:"status"`
	OwnerUserID    int       `json:"owner_user_id"`
	OwnerProjectID int       `json:"owner_project_id"`
}

// IsCompleted returns true if the task has reached its terminal status.
func (t *Task) IsCompleted() bool {
	return t.Status == StatusCompleted
}
