package adapters

import (
	"context"

	"storefront-client/internal/core/httpclient"
	"storefront-client/internal/features/wishlist/domain"
)

// HTTPWishlistGateway implements ports.WishlistGateway against the storefront
// REST API.
type HTTPWishlistGateway struct {
	client *httpclient.Client
}

// NewHTTPWishlistGateway creates a new HTTPWishlistGateway.
func NewHTTPWishlistGateway(client *httpclient.Client) *HTTPWishlistGateway {
	return &HTTPWishlistGateway{client: client}
}

// FetchByUser retrieves every wishlist item of one user.
func (g *HTTPWishlistGateway) FetchByUser(ctx context.Context, userID string) ([]domain.WishlistItem, error) {
	var items []domain.WishlistItem
	if err := g.client.Get(ctx, "/wishlist/user/"+userID, nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// Add saves a product to the wishlist.
func (g *HTTPWishlistGateway) Add(ctx context.Context, input domain.WishlistItemInput) (*domain.WishlistItem, error) {
	var item domain.WishlistItem
	if err := g.client.Post(ctx, "/wishlist", input, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

type notePatch struct {
	Note string `json:"note"`
}

// UpdateNote changes the annotation of an existing item.
func (g *HTTPWishlistGateway) UpdateNote(ctx context.Context, itemID, note string) (*domain.WishlistItem, error) {
	var item domain.WishlistItem
	if err := g.client.Patch(ctx, "/wishlist/"+itemID, notePatch{Note: note}, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

// Remove deletes one wishlist item.
func (g *HTTPWishlistGateway) Remove(ctx context.Context, itemID string) error {
	return g.client.Delete(ctx, "/wishlist/"+itemID, nil)
}
