package adapters

import (
	"context"
	"net/url"
	"strconv"

	"storefront-client/internal/core/httpclient"
	"storefront-client/internal/features/orders/domain"
	productdomain "storefront-client/internal/features/products/domain"
)

// HTTPOrderGateway implements ports.OrderGateway against the storefront REST
// API.
type HTTPOrderGateway struct {
	client *httpclient.Client
}

// NewHTTPOrderGateway creates a new HTTPOrderGateway.
func NewHTTPOrderGateway(client *httpclient.Client) *HTTPOrderGateway {
	return &HTTPOrderGateway{client: client}
}

// listEnvelope is the paginated response wrapper for the admin order listing.
type listEnvelope struct {
	Data       []domain.Order `json:"data"`
	Pagination struct {
		Total int `json:"total"`
	} `json:"pagination"`
}

// Create places an order.
func (g *HTTPOrderGateway) Create(ctx context.Context, input domain.OrderInput) (*domain.Order, error) {
	var order domain.Order
	if err := g.client.Post(ctx, "/orders", input, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

// FetchByUser retrieves every order of one user.
func (g *HTTPOrderGateway) FetchByUser(ctx context.Context, userID string) ([]domain.Order, error) {
	var orders []domain.Order
	if err := g.client.Get(ctx, "/orders/user/"+userID, nil, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// FetchAll retrieves one page of all orders and the total match count.
func (g *HTTPOrderGateway) FetchAll(ctx context.Context, pagination productdomain.Pagination) ([]domain.Order, int, error) {
	q := url.Values{}
	if pagination.Page > 0 {
		q.Set("page", strconv.Itoa(pagination.Page))
		q.Set("limit", strconv.Itoa(pagination.Limit))
	}

	var envelope listEnvelope
	if err := g.client.Get(ctx, "/orders", q, &envelope); err != nil {
		return nil, 0, err
	}
	return envelope.Data, envelope.Pagination.Total, nil
}

// UpdateStatus changes the fulfilment state of an order.
func (g *HTTPOrderGateway) UpdateStatus(ctx context.Context, orderID string, status domain.OrderStatus) (*domain.Order, error) {
	var order domain.Order
	patch := domain.StatusPatch{Status: status}
	if err := g.client.Patch(ctx, "/orders/"+orderID, patch, &order); err != nil {
		return nil, err
	}
	return &order, nil
}
