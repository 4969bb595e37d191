// Package ports defines the boundary of the addresses feature.
package ports

import (
	"context"

	"storefront-client/internal/features/addresses/domain"
)

// AddressGateway abstracts the remote address API. There is no update or
// delete: addresses are append-only.
type AddressGateway interface {
	// FetchByUser returns every saved address of one user.
	FetchByUser(ctx context.Context, userID string) ([]domain.Address, error)
	// Add saves a new address.
	Add(ctx context.Context, input domain.AddressInput) (*domain.Address, error)
}
