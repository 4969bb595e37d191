package adapters

import (
	"context"

	"storefront-client/internal/core/httpclient"
	"storefront-client/internal/features/brands/domain"
)

// HTTPBrandGateway implements ports.BrandGateway against the storefront REST API.
type HTTPBrandGateway struct {
	client *httpclient.Client
}

// NewHTTPBrandGateway creates a new HTTPBrandGateway.
func NewHTTPBrandGateway(client *httpclient.Client) *HTTPBrandGateway {
	return &HTTPBrandGateway{client: client}
}

// FetchAll retrieves every brand.
func (g *HTTPBrandGateway) FetchAll(ctx context.Context) ([]domain.Brand, error) {
	var brands []domain.Brand
	if err := g.client.Get(ctx, "/brands", nil, &brands); err != nil {
		return nil, err
	}
	return brands, nil
}

// Add creates a brand.
func (g *HTTPBrandGateway) Add(ctx context.Context, input domain.BrandInput) (*domain.Brand, error) {
	var brand domain.Brand
	if err := g.client.Post(ctx, "/brands", input, &brand); err != nil {
		return nil, err
	}
	return &brand, nil
}

// Update renames a brand.
func (g *HTTPBrandGateway) Update(ctx context.Context, id string, input domain.BrandInput) (*domain.Brand, error) {
	var brand domain.Brand
	if err := g.client.Put(ctx, "/brands/"+id, input, &brand); err != nil {
		return nil, err
	}
	return &brand, nil
}

// Delete removes a brand permanently.
func (g *HTTPBrandGateway) Delete(ctx context.Context, id string) error {
	return g.client.Delete(ctx, "/brands/"+id, nil)
}
