// Package ports defines the boundary of the orders feature.
package ports

import (
	"context"

	"storefront-client/internal/features/orders/domain"
	productdomain "storefront-client/internal/features/products/domain"
)

// OrderGateway abstracts the remote order API.
type OrderGateway interface {
	// Create places an order and returns the server's representation.
	Create(ctx context.Context, input domain.OrderInput) (*domain.Order, error)
	// FetchByUser returns every order of one user.
	FetchByUser(ctx context.Context, userID string) ([]domain.Order, error)
	// FetchAll returns one page of all orders. Admin only.
	FetchAll(ctx context.Context, pagination productdomain.Pagination) ([]domain.Order, int, error)
	// UpdateStatus changes the fulfilment state of an order. Admin only.
	UpdateStatus(ctx context.Context, orderID string, status domain.OrderStatus) (*domain.Order, error)
}
