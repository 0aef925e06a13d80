// Package model defines the domain entities of the crewdesk core.
//
// Every entity carries a client-assigned integer identifier: the core never
// generates primary keys, it only checks them. Relationships between
// entities are expressed as integer foreign keys (OwnerUserID, TaskID, ...)
// resolved by lookup at write time, never as embedded object graphs.
//
// # Entities
//
//   - User: account with username, credentials and profile fields
//   - Role: assignable role, linked to users through the user↔role table
//   - Project: owned by a user, owns tasks
//   - Task: owned by a project and a user, owns comments and attachments
//   - Category: taxonomy label, linked to tasks through the task↔category table
//   - Comment, Attachment, Notification: annotations on tasks and users
//
// # JSON Serialization
//
// All models use json struct tags; the storage engines persist entities as
// JSON documents and any future transport reuses the same encoding:
//
//	type Role struct {
//	    RoleID   int    `json:"role_id"`
//	    RoleName string `json:"role_name"`
//	}
package model
