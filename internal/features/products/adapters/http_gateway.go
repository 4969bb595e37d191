package adapters

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"storefront-client/internal/core/httpclient"
	"storefront-client/internal/features/products/domain"
)

// HTTPProductGateway implements ports.ProductGateway against the storefront
// REST API.
type HTTPProductGateway struct {
	// client is the shared authenticated transport client.
	client *httpclient.Client
}

// NewHTTPProductGateway creates a new HTTPProductGateway.
func NewHTTPProductGateway(client *httpclient.Client) *HTTPProductGateway {
	return &HTTPProductGateway{client: client}
}

// listEnvelope is the paginated response wrapper for product listings.
type listEnvelope struct {
	Data       []domain.Product `json:"data"`
	Pagination struct {
		Total int `json:"total"`
	} `json:"pagination"`
}

// buildQuery translates the filter specification into the wire query.
// Multi-valued fields repeat the key; a false IncludeDeleted sends an
// explicit isDeleted=false so non-admin listings never see soft-deleted
// records.
func buildQuery(filters domain.Filters) url.Values {
	q := url.Values{}

	for _, brand := range filters.Brands {
		q.Add("brand", brand)
	}
	for _, category := range filters.Categories {
		q.Add("category", category)
	}

	if filters.Pagination.Page > 0 {
		q.Set("page", strconv.Itoa(filters.Pagination.Page))
		q.Set("limit", strconv.Itoa(filters.Pagination.Limit))
	}

	if filters.Sort.Field != "" {
		q.Set("sort", filters.Sort.Field)
		q.Set("order", filters.Sort.Order)
	}

	if filters.User != "" {
		q.Set("user", filters.User)
	}

	if !filters.IncludeDeleted {
		q.Set("isDeleted", "false")
	}

	return q
}

// FetchAll retrieves one page of products and the total match count from the
// same response envelope.
func (g *HTTPProductGateway) FetchAll(ctx context.Context, filters domain.Filters) (domain.Page, error) {
	var envelope listEnvelope
	if err := g.client.Get(ctx, "/products", buildQuery(filters), &envelope); err != nil {
		return domain.Page{}, err
	}

	return domain.Page{Items: envelope.Data, Total: envelope.Pagination.Total}, nil
}

// FetchByID retrieves a single product.
func (g *HTTPProductGateway) FetchByID(ctx context.Context, id string) (*domain.Product, error) {
	var product domain.Product
	if err := g.client.Get(ctx, "/products/"+id, nil, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

// Add creates a product.
func (g *HTTPProductGateway) Add(ctx context.Context, input domain.ProductInput) (*domain.Product, error) {
	var product domain.Product
	if err := g.client.Post(ctx, "/products", input, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

// Update replaces a product's fields.
func (g *HTTPProductGateway) Update(ctx context.Context, update domain.ProductUpdate) (*domain.Product, error) {
	var product domain.Product
	path := fmt.Sprintf("/products/%s", update.ID)
	if err := g.client.Patch(ctx, path, update, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

// SoftDelete marks a product deleted; the server returns the soft-deleted
// representation.
func (g *HTTPProductGateway) SoftDelete(ctx context.Context, id string) (*domain.Product, error) {
	var product domain.Product
	if err := g.client.Delete(ctx, "/products/"+id, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

// Undelete clears a product's deleted flag.
func (g *HTTPProductGateway) Undelete(ctx context.Context, id string) (*domain.Product, error) {
	var product domain.Product
	if err := g.client.Patch(ctx, "/products/undelete/"+id, nil, &product); err != nil {
		return nil, err
	}
	return &product, nil
}
