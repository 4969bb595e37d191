package adapters

import (
	"context"

	"storefront-client/internal/core/httpclient"
	"storefront-client/internal/features/addresses/domain"
)

// HTTPAddressGateway implements ports.AddressGateway against the storefront
// REST API.
type HTTPAddressGateway struct {
	client *httpclient.Client
}

// NewHTTPAddressGateway creates a new HTTPAddressGateway.
func NewHTTPAddressGateway(client *httpclient.Client) *HTTPAddressGateway {
	return &HTTPAddressGateway{client: client}
}

// FetchByUser retrieves every saved address of one user.
func (g *HTTPAddressGateway) FetchByUser(ctx context.Context, userID string) ([]domain.Address, error) {
	var addresses []domain.Address
	if err := g.client.Get(ctx, "/address/user/"+userID, nil, &addresses); err != nil {
		return nil, err
	}
	return addresses, nil
}

// Add saves a new address.
func (g *HTTPAddressGateway) Add(ctx context.Context, input domain.AddressInput) (*domain.Address, error) {
	var address domain.Address
	if err := g.client.Post(ctx, "/address", input, &address); err != nil {
		return nil, err
	}
	return &address, nil
}
