package model

import "time"

// Comment is a remark left by a user on a task.
type Comment struct {
	CommentID int       `json:"comment_id"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
	TaskID    int       `json:"task_id"`
	UserID    int       `json:"user_id"`
}
