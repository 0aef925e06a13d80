package model

import "time"

// AuditEvent records one successful mutation of the core. The event ID is
// generated (UUID), unlike entity IDs which are always caller-assigned.
type AuditEvent struct {
	ID       string    `json:"id"`
	Op       string    `json:"op"`
	Entity   string    `json:"entity"`
	EntityID int       `json:"entity_id"`
	At       time.Time `json:"at"`
}
