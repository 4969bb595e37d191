package domain

// Brand is a product brand managed from the admin console.
type Brand struct {
	// ID is the server-assigned identifier.
	ID string `json:"_id"`
	// Name is the brand display name.
	Name string `json:"name"`
}

// BrandInput carries a brand create or rename submission.
type BrandInput struct {
	Name string `json:"name" validate:"required"`
}
