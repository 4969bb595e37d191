package adapters

import (
	"context"

	"storefront-client/internal/core/httpclient"
	"storefront-client/internal/features/categories/domain"
)

// HTTPCategoryGateway implements ports.CategoryGateway against the storefront
// REST API.
type HTTPCategoryGateway struct {
	client *httpclient.Client
}

// NewHTTPCategoryGateway creates a new HTTPCategoryGateway.
func NewHTTPCategoryGateway(client *httpclient.Client) *HTTPCategoryGateway {
	return &HTTPCategoryGateway{client: client}
}

// FetchAll retrieves every category.
func (g *HTTPCategoryGateway) FetchAll(ctx context.Context) ([]domain.Category, error) {
	var categories []domain.Category
	if err := g.client.Get(ctx, "/categories", nil, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

// Add creates a category.
func (g *HTTPCategoryGateway) Add(ctx context.Context, input domain.CategoryInput) (*domain.Category, error) {
	var category domain.Category
	if err := g.client.Post(ctx, "/categories", input, &category); err != nil {
		return nil, err
	}
	return &category, nil
}

// Update renames a category.
func (g *HTTPCategoryGateway) Update(ctx context.Context, id string, input domain.CategoryInput) (*domain.Category, error) {
	var category domain.Category
	if err := g.client.Put(ctx, "/categories/"+id, input, &category); err != nil {
		return nil, err
	}
	return &category, nil
}

// Delete removes a category permanently.
func (g *HTTPCategoryGateway) Delete(ctx context.Context, id string) error {
	return g.client.Delete(ctx, "/categories/"+id, nil)
}
