package model

import "time"

// Notification is a message addressed to a user.
type Notification struct {
	NotificationID int       `json:"notification_id"`
	Text           string    `json:"text"`
	CreatedAt      time.Time `json:"created_at"`
	UserID         int       `json:"user_id"`
}
