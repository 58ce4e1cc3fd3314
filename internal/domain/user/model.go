package user

// User represents a user profile row. Fields are nullable free text;
// nothing is validated or deduplicated.
type User struct {
	ID      int64   `json:"id"`
	Name    *string `json:"name"`
	Email   *string `json:"email"`
	Country *string `json:"country"`
}

// CreateParams defines the payload for creating a user. Absent fields
// are stored as NULL.
type CreateParams struct {
	Name    *string `json:"name"`
	Email   *string `json:"email"`
	Country *string `json:"country"`
}
