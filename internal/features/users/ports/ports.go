// Package ports defines the boundary of the users feature.
package ports

import (
	"context"

	"storefront-client/internal/features/users/domain"
)

// UserGateway abstracts the remote user API.
type UserGateway interface {
	// FetchByID returns one user's profile.
	FetchByID(ctx context.Context, userID string) (*domain.User, error)
	// Update edits a user's profile.
	Update(ctx context.Context, userID string, update domain.UserUpdate) (*domain.User, error)
}
