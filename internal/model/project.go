package model

import "time"

// Project represents a project owned by a user. Dates carry date-only
// precision; time-of-day components are ignored by every derived query.
type Project struct {
	ProjectID   int       `json:"project_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	StartDate   time.Time `json:"start_date"`
	EndDate     time.Time `json:"end_date"`
	OwnerUserID int       `json:"owner_user_id"`
}
