package model

// Pair is one row of an association table: an unordered link between two
// entity IDs with no identity of its own. The same pair may appear more
// than once; the association tables carry no uniqueness constraint.
type Pair struct {
	LeftID  int `json:"left_id"`
	RightID int `json:"right_id"`
}
