package store

import (
	"context"
	"errors"
	"testing"

	"storefront-client/internal/core/lifecycle"
	addressdomain "storefront-client/internal/features/addresses/domain"
	"storefront-client/internal/features/orders/domain"
	productdomain "storefront-client/internal/features/products/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeGateway struct {
	create       func(ctx context.Context, input domain.OrderInput) (*domain.Order, error)
	fetchByUser  func(ctx context.Context, userID string) ([]domain.Order, error)
	fetchAll     func(ctx context.Context, pagination productdomain.Pagination) ([]domain.Order, int, error)
	updateStatus func(ctx context.Context, orderID string, status domain.OrderStatus) (*domain.Order, error)
}

func (f *fakeGateway) Create(ctx context.Context, input domain.OrderInput) (*domain.Order, error) {
	return f.create(ctx, input)
}

func (f *fakeGateway) FetchByUser(ctx context.Context, userID string) ([]domain.Order, error) {
	return f.fetchByUser(ctx, userID)
}

func (f *fakeGateway) FetchAll(ctx context.Context, pagination productdomain.Pagination) ([]domain.Order, int, error) {
	return f.fetchAll(ctx, pagination)
}

func (f *fakeGateway) UpdateStatus(ctx context.Context, orderID string, status domain.OrderStatus) (*domain.Order, error) {
	return f.updateStatus(ctx, orderID, status)
}

func sampleInput() domain.OrderInput {
	return domain.OrderInput{
		UserID: "u1",
		Items: []domain.OrderItem{
			{Product: productdomain.Product{ID: "p1", Price: 100}, Quantity: 2},
		},
		Address:     addressdomain.Address{ID: "a1", City: "Pune"},
		PaymentMode: "COD",
		Total:       240,
	}
}

// TestOrderStore_CreateSetsCurrentOrder verifies a placed order lands in
// both the current-order slot and the collection.
func TestOrderStore_CreateSetsCurrentOrder(t *testing.T) {
	placed := domain.Order{ID: "o1", UserID: "u1", Status: domain.StatusPending, Total: 240}
	s := NewOrderStore(&fakeGateway{
		create: func(_ context.Context, input domain.OrderInput) (*domain.Order, error) {
			assert.Equal(t, "COD", input.PaymentMode)
			return &placed, nil
		},
	})

	order, err := s.Create(context.Background(), sampleInput())
	require.NoError(t, err)
	assert.Equal(t, "o1", order.ID)

	require.NotNil(t, s.CurrentOrder())
	assert.Equal(t, domain.StatusPending, s.CurrentOrder().Status)
	orders, total := s.Orders()
	assert.Len(t, orders, 1)
	assert.Equal(t, 0, total, "admin total untouched by a placement")
	assert.Equal(t, lifecycle.StatusFulfilled, s.CreateStatus())

	s.ResetCurrentOrder()
	assert.Nil(t, s.CurrentOrder())
}

// TestOrderStore_CreateFailureLeavesNoOrder verifies a rejected placement
// sets no current order.
func TestOrderStore_CreateFailureLeavesNoOrder(t *testing.T) {
	boom := errors.New("insufficient stock")
	s := NewOrderStore(&fakeGateway{
		create: func(context.Context, domain.OrderInput) (*domain.Order, error) {
			return nil, boom
		},
	})

	_, err := s.Create(context.Background(), sampleInput())
	require.Error(t, err)

	assert.Nil(t, s.CurrentOrder())
	assert.Equal(t, lifecycle.StatusRejected, s.CreateStatus())
	assert.Equal(t, boom, s.Err())
}

// TestOrderStore_FetchAllKeepsPageAndTotalTogether verifies the admin page
// and its total arrive atomically.
func TestOrderStore_FetchAllKeepsPageAndTotalTogether(t *testing.T) {
	s := NewOrderStore(&fakeGateway{
		fetchAll: func(_ context.Context, pagination productdomain.Pagination) ([]domain.Order, int, error) {
			assert.Equal(t, 2, pagination.Page)
			return []domain.Order{{ID: "o3"}, {ID: "o4"}}, 42, nil
		},
	})

	require.NoError(t, s.FetchAll(context.Background(), productdomain.Pagination{Page: 2, Limit: 2}))

	orders, total := s.Orders()
	assert.Len(t, orders, 2)
	assert.Equal(t, 42, total)
}

// TestOrderStore_UpdateStatusUpserts verifies a status change merges in
// place when the order is loaded and inserts when it is not.
func TestOrderStore_UpdateStatusUpserts(t *testing.T) {
	dispatched := domain.Order{ID: "o1", Status: domain.StatusDispatched}
	offPage := domain.Order{ID: "o9", Status: domain.StatusDelivered}
	s := NewOrderStore(&fakeGateway{
		fetchByUser: func(context.Context, string) ([]domain.Order, error) {
			return []domain.Order{{ID: "o1", Status: domain.StatusPending}}, nil
		},
		updateStatus: func(_ context.Context, orderID string, _ domain.OrderStatus) (*domain.Order, error) {
			if orderID == "o1" {
				return &dispatched, nil
			}
			return &offPage, nil
		},
	})
	require.NoError(t, s.FetchByUser(context.Background(), "u1"))

	require.NoError(t, s.UpdateStatus(context.Background(), "o1", domain.StatusDispatched))
	orders, _ := s.Orders()
	require.Len(t, orders, 1)
	assert.Equal(t, domain.StatusDispatched, orders[0].Status)

	require.NoError(t, s.UpdateStatus(context.Background(), "o9", domain.StatusDelivered))
	orders, _ = s.Orders()
	require.Len(t, orders, 2)
	assert.Equal(t, "o9", orders[1].ID)
}
