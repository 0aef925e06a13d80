package model

// Category is a taxonomy label. Categories never own tasks; they are linked
// to them only through the task↔category association table.
type Category struct {
	CategoryID int    `json:"category_id"`
	Name       string `json:"name"`
}
