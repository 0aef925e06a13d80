package model

// User represents a user account. The password is stored and compared as
// plain text; see IdentityService.Authenticate for why that is kept.
type User struct {
	UserID   int    `json:"user_id"`
	UserName string `json:"user_name"`
	Password string `json:"password"`
	Email    string `json:"email"`
	FullName string `json:"full_name"`
}

// UserWithRoles is the joined row returned by IdentityService.WithRoles.
type UserWithRoles struct {
	UserID    int      `json:"user_id"`
	FullName  string   `json:"full_name"`
	Email     string   `json:"email"`
	RoleNames []string `json:"role_names"`
}
