// Package store holds the wishlist state container.
package store

import (
	"context"
	"sync"

	"storefront-client/internal/core/collections"
	"storefront-client/internal/core/lifecycle"
	"storefront-client/internal/core/logger"
	"storefront-client/internal/features/wishlist/domain"
	"storefront-client/internal/features/wishlist/ports"

	"go.uber.org/zap"
)

func wishlistItemKey(i domain.WishlistItem) string { return i.ID }

// WishlistStore is the observable holder of one user's wishlist state.
type WishlistStore struct {
	gateway ports.WishlistGateway
	logger  *zap.Logger
	changed *lifecycle.Broadcaster

	fetch  lifecycle.Tracker
	add    lifecycle.Tracker
	update lifecycle.Tracker
	remove lifecycle.Tracker

	mu      sync.RWMutex
	items   []domain.WishlistItem
	lastErr error
}

// NewWishlistStore creates a WishlistStore backed by the given gateway.
func NewWishlistStore(gateway ports.WishlistGateway) *WishlistStore {
	return &WishlistStore{
		gateway: gateway,
		logger:  logger.Get(),
		changed: lifecycle.NewBroadcaster(),
	}
}

// FetchByUser replaces the wishlist collection. A stale response is discarded.
func (s *WishlistStore) FetchByUser(ctx context.Context, userID string) error {
	ticket := s.fetch.Begin()
	s.changed.Notify()

	items, err := s.gateway.FetchByUser(ctx, userID)
	if err != nil {
		s.settleRejected(&s.fetch, ticket, "fetch wishlist", err)
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

// Add saves a product to the wishlist and merges the server's representation.
func (s *WishlistStore) Add(ctx context.Context, input domain.WishlistItemInput) error {
	ticket := s.add.Begin()
	s.changed.Notify()

	item, err := s.gateway.Add(ctx, input)
	if err != nil {
		s.settleRejected(&s.add, ticket, "add wishlist item", err)
		return err
	}

	if s.add.Fulfill(ticket, func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		s.items = collections.Upsert(s.items, *item, wishlistItemKey)
	}) {
		s.changed.Notify()
	}
	return nil
}

// UpdateNote changes the annotation of an item, merging the result.
func (s *WishlistStore) UpdateNote(ctx context.Context, itemID, note string) error {
	ticket := s.update.Begin()
	s.changed.Notify()

	item, err := s.gateway.UpdateNote(ctx, itemID, note)
	if err != nil {
		s.settleRejected(&s.update, ticket, "update wishlist note", err)
		return err
	}

	if s.update.Fulfill(ticket, func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		s.items = collections.Upsert(s.items, *item, wishlistItemKey)
	}) {
		s.changed.Notify()
	}
	return nil
}

// Remove deletes one wishlist item, locally and on the server.
func (s *WishlistStore) Remove(ctx context.Context, itemID string) error {
	ticket := s.remove.Begin()
	s.changed.Notify()

	if err := s.gateway.Remove(ctx, itemID); err != nil {
		s.settleRejected(&s.remove, ticket, "remove wishlist item", err)
		return err
	}

	if s.remove.Fulfill(ticket, func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		s.items = collections.RemoveByKey(s.items, itemID, wishlistItemKey)
	}) {
		s.changed.Notify()
	}
	return nil
}

func (s *WishlistStore) settleRejected(tracker *lifecycle.Tracker, ticket lifecycle.Ticket, op string, err error) {
	if tracker.Reject(ticket, err) {
		s.mu.Lock()
		s.lastErr = err
		s.mu.Unlock()
		s.logger.Warn("Wishlist operation rejected", zap.String("operation", op), zap.Error(err))
		s.changed.Notify()
	}
}

// Items returns a copy of the current wishlist.
func (s *WishlistStore) Items() []domain.WishlistItem {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]domain.WishlistItem, len(s.items))
	copy(items, s.items)
	return items
}

// Contains reports whether the given product is on the wishlist. Items whose
// product no longer resolves never match.
func (s *WishlistStore) Contains(productID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, item := range s.items {
		if item.Product != nil && item.Product.ID == productID {
			return true
		}
	}
	return false
}

// Err returns the error recorded by the most recent rejected operation.
func (s *WishlistStore) Err() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastErr
}

// ClearErrors forgets the last recorded error.
func (s *WishlistStore) ClearErrors() {
	s.mu.Lock()
	s.lastErr = nil
	s.mu.Unlock()
	s.changed.Notify()
}

// FetchStatus reports the fetch lifecycle.
func (s *WishlistStore) FetchStatus() lifecycle.Status { return s.fetch.Status() }

// AddStatus reports the add-item lifecycle.
func (s *WishlistStore) AddStatus() lifecycle.Status { return s.add.Status() }

// UpdateStatus reports the note-update lifecycle.
func (s *WishlistStore) UpdateStatus() lifecycle.Status { return s.update.Status() }

// RemoveStatus reports the remove-item lifecycle.
func (s *WishlistStore) RemoveStatus() lifecycle.Status { return s.remove.Status() }

// ResetAddStatus returns the add-item status to idle.
func (s *WishlistStore) ResetAddStatus() { s.add.Reset(); s.changed.Notify() }

// ResetUpdateStatus returns the note-update status to idle.
func (s *WishlistStore) ResetUpdateStatus() { s.update.Reset(); s.changed.Notify() }

// ResetRemoveStatus returns the remove-item status to idle.
func (s *WishlistStore) ResetRemoveStatus() { s.remove.Reset(); s.changed.Notify() }

// Watch returns a channel closed on the next visible change of the store.
func (s *WishlistStore) Watch() <-chan struct{} { return s.changed.Watch() }
