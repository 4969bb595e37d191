// Package store holds the cart state container. The cart drives the checkout
// flow, so each mutation family gets its own lifecycle tracker: a page can
// disable just the "add" button while a removal is still free to run.
package store

import (
	"context"
	"sync"

	"storefront-client/internal/core/collections"
	"storefront-client/internal/core/lifecycle"
	"storefront-client/internal/core/logger"
	"storefront-client/internal/features/cart/domain"
	"storefront-client/internal/features/cart/ports"

	"go.uber.org/zap"
)

func cartItemKey(i domain.CartItem) string { return i.ID }

// CartStore is the observable holder of one user's cart state.
type CartStore struct {
	gateway ports.CartGateway
	logger  *zap.Logger
	changed *lifecycle.Broadcaster

	fetch  lifecycle.Tracker
	add    lifecycle.Tracker
	update lifecycle.Tracker
	remove lifecycle.Tracker
	clear  lifecycle.Tracker

	mu      sync.RWMutex
	items   []domain.CartItem
	lastErr error
}

// NewCartStore creates a CartStore backed by the given gateway.
func NewCartStore(gateway ports.CartGateway) *CartStore {
	return &CartStore{
		gateway: gateway,
		logger:  logger.Get(),
		changed: lifecycle.NewBroadcaster(),
	}
}

// FetchByUser replaces the cart collection with the user's server-side cart.
// A stale response is discarded.
func (s *CartStore) FetchByUser(ctx context.Context, userID string) error {
	ticket := s.fetch.Begin()
	s.changed.Notify()

	items, err := s.gateway.FetchByUser(ctx, userID)
	if err != nil {
		s.settleRejected(&s.fetch, ticket, "fetch cart", err)
		return err
	}

	if s.fetch.Fulfill(ticket, func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		s.items = items
	}) {
		s.changed.Notify()
	}
	return nil
}

// AddItem creates a cart line and merges the server's representation. The
// server collapses duplicate adds into the existing line, so the result is
// upserted rather than blindly appended.
func (s *CartStore) AddItem(ctx context.Context, input domain.CartItemInput) error {
	ticket := s.add.Begin()
	s.changed.Notify()

	item, err := s.gateway.AddItem(ctx, input)
	if err != nil {
		s.settleRejected(&s.add, ticket, "add cart item", err)
		return err
	}

	if s.add.Fulfill(ticket, func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		s.items = collections.Upsert(s.items, *item, cartItemKey)
	}) {
		s.changed.Notify()
	}
	return nil
}

// UpdateQuantity changes the unit count of a line, merging the result.
func (s *CartStore) UpdateQuantity(ctx context.Context, itemID string, quantity int) error {
	ticket := s.update.Begin()
	s.changed.Notify()

	item, err := s.gateway.UpdateQuantity(ctx, itemID, quantity)
	if err != nil {
		s.settleRejected(&s.update, ticket, "update cart quantity", err)
		return err
	}

	if s.update.Fulfill(ticket, func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		s.items = collections.Upsert(s.items, *item, cartItemKey)
	}) {
		s.changed.Notify()
	}
	return nil
}

// RemoveItem deletes one cart line, locally and on the server.
func (s *CartStore) RemoveItem(ctx context.Context, itemID string) error {
	ticket := s.remove.Begin()
	s.changed.Notify()

	if err := s.gateway.RemoveItem(ctx, itemID); err != nil {
		s.settleRejected(&s.remove, ticket, "remove cart item", err)
		return err
	}

	if s.remove.Fulfill(ticket, func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		s.items = collections.RemoveByKey(s.items, itemID, cartItemKey)
	}) {
		s.changed.Notify()
	}
	return nil
}

// Clear empties the user's cart. The local collection is dropped only once
// the server confirms.
func (s *CartStore) Clear(ctx context.Context, userID string) error {
	ticket := s.clear.Begin()
	s.changed.Notify()

	if err := s.gateway.Clear(ctx, userID); err != nil {
		s.settleRejected(&s.clear, ticket, "clear cart", err)
		return err
	}

	if s.clear.Fulfill(ticket, func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		s.items = nil
	}) {
		s.changed.Notify()
	}
	return nil
}

func (s *CartStore) settleRejected(tracker *lifecycle.Tracker, ticket lifecycle.Ticket, op string, err error) {
	if tracker.Reject(ticket, err) {
		s.mu.Lock()
		s.lastErr = err
		s.mu.Unlock()
		s.logger.Warn("Cart operation rejected", zap.String("operation", op), zap.Error(err))
		s.changed.Notify()
	}
}

// Items returns a copy of the current cart lines.
func (s *CartStore) Items() []domain.CartItem {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]domain.CartItem, len(s.items))
	copy(items, s.items)
	return items
}

// Totals derives the current pricing snapshot under the given delivery rules.
// It is computed fresh on every call, never cached.
func (s *CartStore) Totals(freeThreshold, flatFee float64) domain.Totals {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return domain.ComputeTotals(s.items, freeThreshold, flatFee)
}

// Err returns the error recorded by the most recent rejected operation.
func (s *CartStore) Err() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastErr
}

// ClearErrors forgets the last recorded error.
func (s *CartStore) ClearErrors() {
	s.mu.Lock()
	s.lastErr = nil
	s.mu.Unlock()
	s.changed.Notify()
}

// FetchStatus reports the fetch lifecycle.
func (s *CartStore) FetchStatus() lifecycle.Status { return s.fetch.Status() }

// AddStatus reports the add-item lifecycle.
func (s *CartStore) AddStatus() lifecycle.Status { return s.add.Status() }

// UpdateStatus reports the quantity-update lifecycle.
func (s *CartStore) UpdateStatus() lifecycle.Status { return s.update.Status() }

// RemoveStatus reports the remove-item lifecycle.
func (s *CartStore) RemoveStatus() lifecycle.Status { return s.remove.Status() }

// ClearStatus reports the clear-cart lifecycle.
func (s *CartStore) ClearStatus() lifecycle.Status { return s.clear.Status() }

// ResetAddStatus returns the add-item status to idle.
func (s *CartStore) ResetAddStatus() { s.add.Reset(); s.changed.Notify() }

// ResetUpdateStatus returns the quantity-update status to idle.
func (s *CartStore) ResetUpdateStatus() { s.update.Reset(); s.changed.Notify() }

// ResetRemoveStatus returns the remove-item status to idle.
func (s *CartStore) ResetRemoveStatus() { s.remove.Reset(); s.changed.Notify() }

// ResetClearStatus returns the clear-cart status to idle.
func (s *CartStore) ResetClearStatus() { s.clear.Reset(); s.changed.Notify() }

// Watch returns a channel closed on the next visible change of the store.
func (s *CartStore) Watch() <-chan struct{} { return s.changed.Watch() }
