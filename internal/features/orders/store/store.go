// Package store holds the order state container. Besides the usual
// collection it keeps a "current order" slot: the order just placed, which
// the confirmation view reads and then releases.
package store

import (
	"context"
	"sync"

	"storefront-client/internal/core/collections"
	"storefront-client/internal/core/lifecycle"
	"storefront-client/internal/core/logger"
	"storefront-client/internal/features/orders/domain"
	"storefront-client/internal/features/orders/ports"
	productdomain "storefront-client/internal/features/products/domain"

	"go.uber.org/zap"
)

func orderKey(o domain.Order) string { return o.ID }

// OrderStore is the observable holder of order state.
type OrderStore struct {
	gateway ports.OrderGateway
	logger  *zap.Logger
	changed *lifecycle.Broadcaster

	create lifecycle.Tracker
	fetch  lifecycle.Tracker
	update lifecycle.Tracker

	mu      sync.RWMutex
	items   []domain.Order
	total   int
	current *domain.Order
	lastErr error
}

// NewOrderStore creates an OrderStore backed by the given gateway.
func NewOrderStore(gateway ports.OrderGateway) *OrderStore {
	return &OrderStore{
		gateway: gateway,
		logger:  logger.Get(),
		changed: lifecycle.NewBroadcaster(),
	}
}

// Create places an order. On success the result becomes the current order
// and joins the collection.
func (s *OrderStore) Create(ctx context.Context, input domain.OrderInput) (*domain.Order, error) {
	ticket := s.create.Begin()
	s.changed.Notify()

	order, err := s.gateway.Create(ctx, input)
	if err != nil {
		s.settleRejected(&s.create, ticket, "create order", err)
		return nil, err
	}

	if s.create.Fulfill(ticket, func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		s.current = order
		s.items = append(s.items, *order)
	}) {
		s.changed.Notify()
	}
	return order, nil
}

// FetchByUser replaces the collection with one user's orders. A stale
// response is discarded.
func (s *OrderStore) FetchByUser(ctx context.Context, userID string) error {
	ticket := s.fetch.Begin()
	s.changed.Notify()

	orders, err := s.gateway.FetchByUser(ctx, userID)
	if err != nil {
		s.settleRejected(&s.fetch, ticket, "fetch orders", err)
		return err
	}

	if s.fetch.Fulfill(ticket, func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		s.items = orders
		s.total = len(orders)
	}) {
		s.changed.Notify()
	}
	return nil
}

// FetchAll replaces the collection with one admin page of all orders.
func (s *OrderStore) FetchAll(ctx context.Context, pagination productdomain.Pagination) error {
	ticket := s.fetch.Begin()
	s.changed.Notify()

	orders, total, err := s.gateway.FetchAll(ctx, pagination)
	if err != nil {
		s.settleRejected(&s.fetch, ticket, "fetch all orders", err)
		return err
	}

	if s.fetch.Fulfill(ticket, func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		s.items = orders
		s.total = total
	}) {
		s.changed.Notify()
	}
	return nil
}

// UpdateStatus changes an order's fulfilment state, merging the result into
// the collection. An order missing locally is inserted rather than dropped.
func (s *OrderStore) UpdateStatus(ctx context.Context, orderID string, status domain.OrderStatus) error {
	ticket := s.update.Begin()
	s.changed.Notify()

	order, err := s.gateway.UpdateStatus(ctx, orderID, status)
	if err != nil {
		s.settleRejected(&s.update, ticket, "update order status", err)
		return err
	}

	if s.update.Fulfill(ticket, func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		s.items = collections.Upsert(s.items, *order, orderKey)
		if s.current != nil && s.current.ID == order.ID {
			s.current = order
		}
	}) {
		s.changed.Notify()
	}
	return nil
}

func (s *OrderStore) settleRejected(tracker *lifecycle.Tracker, ticket lifecycle.Ticket, op string, err error) {
	if tracker.Reject(ticket, err) {
		s.mu.Lock()
		s.lastErr = err
		s.mu.Unlock()
		s.logger.Warn("Order operation rejected", zap.String("operation", op), zap.Error(err))
		s.changed.Notify()
	}
}

// Orders returns a copy of the current collection and the total match count
// read together, so a caller never pairs one page with another page's total.
func (s *OrderStore) Orders() ([]domain.Order, int) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]domain.Order, len(s.items))
	copy(items, s.items)
	return items, s.total
}

// CurrentOrder returns the most recently placed order, nil when none.
func (s *OrderStore) CurrentOrder() *domain.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.current == nil {
		return nil
	}
	order := *s.current
	return &order
}

// ResetCurrentOrder releases the current-order slot, typically after the
// confirmation view has rendered it.
func (s *OrderStore) ResetCurrentOrder() {
	s.mu.Lock()
	s.current = nil
	s.mu.Unlock()
	s.changed.Notify()
}

// Err returns the error recorded by the most recent rejected operation.
func (s *OrderStore) Err() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastErr
}

// ClearErrors forgets the last recorded error.
func (s *OrderStore) ClearErrors() {
	s.mu.Lock()
	s.lastErr = nil
	s.mu.Unlock()
	s.changed.Notify()
}

// CreateStatus reports the order-placement lifecycle.
func (s *OrderStore) CreateStatus() lifecycle.Status { return s.create.Status() }

// FetchStatus reports the fetch lifecycle.
func (s *OrderStore) FetchStatus() lifecycle.Status { return s.fetch.Status() }

// UpdateStatusState reports the status-update lifecycle.
func (s *OrderStore) UpdateStatusState() lifecycle.Status { return s.update.Status() }

// ResetCreateStatus returns the order-placement status to idle.
func (s *OrderStore) ResetCreateStatus() { s.create.Reset(); s.changed.Notify() }

// ResetUpdateStatus returns the status-update status to idle.
func (s *OrderStore) ResetUpdateStatus() { s.update.Reset(); s.changed.Notify() }

// Watch returns a channel closed on the next visible change of the store.
func (s *OrderStore) Watch() <-chan struct{} { return s.changed.Watch() }
