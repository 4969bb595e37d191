// Package ports defines the boundary of the wishlist feature.
package ports

import (
	"context"

	"storefront-client/internal/features/wishlist/domain"
)

// WishlistGateway abstracts the remote wishlist API.
type WishlistGateway interface {
	// FetchByUser returns every wishlist item of one user.
	FetchByUser(ctx context.Context, userID string) ([]domain.WishlistItem, error)
	// Add saves a product to the wishlist.
	Add(ctx context.Context, input domain.WishlistItemInput) (*domain.WishlistItem, error)
	// UpdateNote changes the annotation of an existing item.
	UpdateNote(ctx context.Context, itemID, note string) (*domain.WishlistItem, error)
	// Remove deletes one wishlist item.
	Remove(ctx context.Context, itemID string) error
}
