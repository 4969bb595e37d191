package adapters

import (
	"context"

	"storefront-client/internal/core/httpclient"
	"storefront-client/internal/features/cart/domain"
)

// HTTPCartGateway implements ports.CartGateway against the storefront REST API.
type HTTPCartGateway struct {
	client *httpclient.Client
}

// NewHTTPCartGateway creates a new HTTPCartGateway.
func NewHTTPCartGateway(client *httpclient.Client) *HTTPCartGateway {
	return &HTTPCartGateway{client: client}
}

// FetchByUser retrieves the full cart of one user.
func (g *HTTPCartGateway) FetchByUser(ctx context.Context, userID string) ([]domain.CartItem, error) {
	var items []domain.CartItem
	if err := g.client.Get(ctx, "/cart/user/"+userID, nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// AddItem creates a cart line.
func (g *HTTPCartGateway) AddItem(ctx context.Context, input domain.CartItemInput) (*domain.CartItem, error) {
	var item domain.CartItem
	if err := g.client.Post(ctx, "/cart", input, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

type quantityPatch struct {
	Quantity int `json:"quantity"`
}

// UpdateQuantity changes the unit count of an existing line.
func (g *HTTPCartGateway) UpdateQuantity(ctx context.Context, itemID string, quantity int) (*domain.CartItem, error) {
	var item domain.CartItem
	if err := g.client.Patch(ctx, "/cart/"+itemID, quantityPatch{Quantity: quantity}, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

// RemoveItem deletes one cart line.
func (g *HTTPCartGateway) RemoveItem(ctx context.Context, itemID string) error {
	return g.client.Delete(ctx, "/cart/"+itemID, nil)
}

// Clear deletes every line of a user's cart.
func (g *HTTPCartGateway) Clear(ctx context.Context, userID string) error {
	return g.client.Delete(ctx, "/cart/user/"+userID, nil)
}
