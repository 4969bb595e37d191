package adapters

import (
	"context"

	"storefront-client/internal/core/httpclient"
	"storefront-client/internal/features/users/domain"
)

// HTTPUserGateway implements ports.UserGateway against the storefront REST
// API.
type HTTPUserGateway struct {
	client *httpclient.Client
}

// NewHTTPUserGateway creates a new HTTPUserGateway.
func NewHTTPUserGateway(client *httpclient.Client) *HTTPUserGateway {
	return &HTTPUserGateway{client: client}
}

// FetchByID retrieves one user's profile.
func (g *HTTPUserGateway) FetchByID(ctx context.Context, userID string) (*domain.User, error) {
	var user domain.User
	if err := g.client.Get(ctx, "/users/"+userID, nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Update edits a user's profile.
func (g *HTTPUserGateway) Update(ctx context.Context, userID string, update domain.UserUpdate) (*domain.User, error) {
	var user domain.User
	if err := g.client.Patch(ctx, "/users/"+userID, update, &user); err != nil {
		return nil, err
	}
	return &user, nil
}
