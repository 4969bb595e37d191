package ports

import (
	"context"

	"storefront-client/internal/features/products/domain"
)

// ProductGateway translates product domain operations into storefront API
// calls. This is a Secondary Port (Driven Port).
type ProductGateway interface {
	// FetchAll retrieves one page of products matching the filter specification.
	FetchAll(ctx context.Context, filters domain.Filters) (domain.Page, error)
	// FetchByID retrieves a single product.
	FetchByID(ctx context.Context, id string) (*domain.Product, error)
	// Add creates a product and returns the server's representation.
	Add(ctx context.Context, input domain.ProductInput) (*domain.Product, error)
	// Update replaces a product's fields and returns the updated record.
	Update(ctx context.Context, update domain.ProductUpdate) (*domain.Product, error)
	// SoftDelete marks a product deleted and returns the updated record.
	SoftDelete(ctx context.Context, id string) (*domain.Product, error)
	// Undelete clears the deleted flag and returns the updated record.
	Undelete(ctx context.Context, id string) (*domain.Product, error)
}
