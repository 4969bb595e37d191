package domain

import (
	productdomain "storefront-client/internal/features/products/domain"
)

// WishlistItem is one saved product with an optional personal note. Product
// resolves to nil when the referenced product has been deleted server-side.
type WishlistItem struct {
	// ID is the server-assigned identifier.
	ID string `json:"_id"`
	// UserID references the owning user.
	UserID string `json:"user"`
	// Product is the embedded product record, nil when unresolvable.
	Product *productdomain.Product `json:"product"`
	// Note is the user's free-text annotation, possibly empty.
	Note string `json:"note"`
}

// WishlistItemInput carries an add-to-wishlist submission.
type WishlistItemInput struct {
	UserID    string `json:"user" validate:"required"`
	ProductID string `json:"product" validate:"required"`
	Note      string `json:"note"`
}
