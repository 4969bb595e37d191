package domain

// Category is a product category managed from the admin console.
type Category struct {
	// ID is the server-assigned identifier.
	ID string `json:"_id"`
	// Name is the category display name.
	Name string `json:"name"`
}

// CategoryInput carries a category create or rename submission.
type CategoryInput struct {
	Name string `json:"name" validate:"required"`
}
