package domain

import (
	productdomain "storefront-client/internal/features/products/domain"
)

// CartItem is one line of a user's cart. Product resolves to nil when the
// referenced product has been deleted server-side; every computation and
// render must tolerate that, never crash on it.
type CartItem struct {
	// ID is the server-assigned identifier.
	ID string `json:"_id"`
	// UserID references the owning user.
	UserID string `json:"user"`
	// Product is the embedded product record, nil when unresolvable.
	Product *productdomain.Product `json:"product"`
	// Quantity is the positive number of units.
	Quantity int `json:"quantity"`
}

// CartItemInput carries an add-to-cart submission.
type CartItemInput struct {
	UserID    string `json:"user" validate:"required"`
	ProductID string `json:"product" validate:"required"`
	Quantity  int    `json:"quantity" validate:"gt=0"`
}
