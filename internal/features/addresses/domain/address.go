package domain

// Address is a saved shipping address. Addresses are immutable once created:
// placed orders snapshot them, so edits would silently rewrite history.
// Users add a new address instead.
type Address struct {
	// ID is the server-assigned identifier.
	ID string `json:"_id"`
	// UserID references the owning user.
	UserID string `json:"user"`
	// Type labels the address, e.g. "Home" or "Work".
	Type        string `json:"type"`
	Street      string `json:"street"`
	City        string `json:"city"`
	State       string `json:"state"`
	PostalCode  string `json:"postalCode"`
	Country     string `json:"country"`
	PhoneNumber string `json:"phoneNumber"`
}

// AddressInput carries a new-address submission.
type AddressInput struct {
	UserID      string `json:"user" validate:"required"`
	Type        string `json:"type" validate:"required"`
	Street      string `json:"street" validate:"required"`
	City        string `json:"city" validate:"required"`
	State       string `json:"state" validate:"required"`
	PostalCode  string `json:"postalCode" validate:"required"`
	Country     string `json:"country" validate:"required"`
	PhoneNumber string `json:"phoneNumber" validate:"required,e164"`
}
