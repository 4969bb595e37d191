package ports

import (
	"context"

	"storefront-client/internal/features/brands/domain"
)

// BrandGateway translates brand operations into storefront API calls.
type BrandGateway interface {
	// FetchAll retrieves every brand.
	FetchAll(ctx context.Context) ([]domain.Brand, error)
	// Add creates a brand and returns the server's representation.
	Add(ctx context.Context, input domain.BrandInput) (*domain.Brand, error)
	// Update renames a brand.
	Update(ctx context.Context, id string, input domain.BrandInput) (*domain.Brand, error)
	// Delete removes a brand permanently.
	Delete(ctx context.Context, id string) error
}
