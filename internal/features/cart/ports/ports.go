// Package ports defines the boundary of the cart feature.
package ports

import (
	"context"

	"storefront-client/internal/features/cart/domain"
)

// CartGateway abstracts the remote cart API.
type CartGateway interface {
	// FetchByUser returns the full cart of one user.
	FetchByUser(ctx context.Context, userID string) ([]domain.CartItem, error)
	// AddItem creates a cart line and returns the server's representation.
	AddItem(ctx context.Context, input domain.CartItemInput) (*domain.CartItem, error)
	// UpdateQuantity changes the unit count of an existing line.
	UpdateQuantity(ctx context.Context, itemID string, quantity int) (*domain.CartItem, error)
	// RemoveItem deletes one cart line.
	RemoveItem(ctx context.Context, itemID string) error
	// Clear deletes every line of a user's cart.
	Clear(ctx context.Context, userID string) error
}
