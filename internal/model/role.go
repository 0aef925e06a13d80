package model

// Role represents an assignable role. Roles have no behavior of their own;
// they only participate in the user↔role association.
type Role struct {
	RoleID   int    `json:"role_id"`
	RoleName string `json:"role_name"`
}
