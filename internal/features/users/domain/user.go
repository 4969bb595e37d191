package domain

// User is the logged-in account profile.
type User struct {
	// ID is the server-assigned identifier.
	ID string `json:"_id"`
	// Name is the display name.
	Name string `json:"name"`
	// Email is the account email.
	Email string `json:"email"`
	// IsAdmin grants access to the admin surfaces.
	IsAdmin bool `json:"isAdmin"`
}

// UserUpdate carries a profile edit.
type UserUpdate struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required,email"`
}
