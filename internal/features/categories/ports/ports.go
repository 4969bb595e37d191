package ports

import (
	"context"

	"storefront-client/internal/features/categories/domain"
)

// CategoryGateway translates category operations into storefront API calls.
type CategoryGateway interface {
	FetchAll(ctx context.Context) ([]domain.Category, error)
	Add(ctx context.Context, input domain.CategoryInput) (*domain.Category, error)
	Update(ctx context.Context, id string, input domain.CategoryInput) (*domain.Category, error)
	Delete(ctx context.Context, id string) error
}
