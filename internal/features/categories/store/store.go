// Package store holds the category state container. It follows the same
// lifecycle convention as the brand store: one tracker for fetches, one for
// mutations, and data untouched by failures.
package store

import (
	"context"
	"sync"

	"storefront-client/internal/core/collections"
	"storefront-client/internal/core/lifecycle"
	"storefront-client/internal/core/logger"
	"storefront-client/internal/features/categories/domain"
	"storefront-client/internal/features/categories/ports"

	"go.uber.org/zap"
)

func categoryKey(c domain.Category) string { return c.ID }

// CategoryStore is the observable holder of category state.
type CategoryStore struct {
	gateway ports.CategoryGateway
	logger  *zap.Logger
	changed *lifecycle.Broadcaster

	fetch  lifecycle.Tracker
	mutate lifecycle.Tracker

	mu      sync.RWMutex
	items   []domain.Category
	lastErr error
}

// NewCategoryStore creates a CategoryStore backed by the given gateway.
func NewCategoryStore(gateway ports.CategoryGateway) *CategoryStore {
	return &CategoryStore{
		gateway: gateway,
		logger:  logger.Get(),
		changed: lifecycle.NewBroadcaster(),
	}
}

// FetchAll replaces the category collection. A stale response is discarded.
func (s *CategoryStore) FetchAll(ctx context.Context) error {
	ticket := s.fetch.Begin()
	s.changed.Notify()

	categories, err := s.gateway.FetchAll(ctx)
	if err != nil {
		s.settleRejected(&s.fetch, ticket, "fetch categories", err)
		return err
	}

	if s.fetch.Fulfill(ticket, func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		s.items = categories
	}) {
		s.changed.Notify()
	}
	return nil
}

// Add creates a category and appends the server's representation.
func (s *CategoryStore) Add(ctx context.Context, input domain.CategoryInput) error {
	ticket := s.mutate.Begin()
	s.changed.Notify()

	category, err := s.gateway.Add(ctx, input)
	if err != nil {
		s.settleRejected(&s.mutate, ticket, "add category", err)
		return err
	}

	if s.mutate.Fulfill(ticket, func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		s.items = append(s.items, *category)
	}) {
		s.changed.Notify()
	}
	return nil
}

// Update renames a category, merging the result into the collection.
func (s *CategoryStore) Update(ctx context.Context, id string, input domain.CategoryInput) error {
	ticket := s.mutate.Begin()
	s.changed.Notify()

	category, err := s.gateway.Update(ctx, id, input)
	if err != nil {
		s.settleRejected(&s.mutate, ticket, "update category", err)
		return err
	}

	if s.mutate.Fulfill(ticket, func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		s.items = collections.Upsert(s.items, *category, categoryKey)
	}) {
		s.changed.Notify()
	}
	return nil
}

// Delete removes a category permanently, locally and on the server.
func (s *CategoryStore) Delete(ctx context.Context, id string) error {
	ticket := s.mutate.Begin()
	s.changed.Notify()

	if err := s.gateway.Delete(ctx, id); err != nil {
		s.settleRejected(&s.mutate, ticket, "delete category", err)
		return err
	}

	if s.mutate.Fulfill(ticket, func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		s.items = collections.RemoveByKey(s.items, id, categoryKey)
	}) {
		s.changed.Notify()
	}
	return nil
}

func (s *CategoryStore) settleRejected(tracker *lifecycle.Tracker, ticket lifecycle.Ticket, op string, err error) {
	if tracker.Reject(ticket, err) {
		s.mu.Lock()
		s.lastErr = err
		s.mu.Unlock()
		s.logger.Warn("Category operation rejected", zap.String("operation", op), zap.Error(err))
		s.changed.Notify()
	}
}

// Categories returns a copy of the current collection.
func (s *CategoryStore) Categories() []domain.Category {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]domain.Category, len(s.items))
	copy(items, s.items)
	return items
}

// Err returns the error recorded by the most recent rejected operation.
func (s *CategoryStore) Err() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastErr
}

// FetchStatus reports the fetch lifecycle.
func (s *CategoryStore) FetchStatus() lifecycle.Status { return s.fetch.Status() }

// MutateStatus reports the add/update/delete lifecycle.
func (s *CategoryStore) MutateStatus() lifecycle.Status { return s.mutate.Status() }

// ResetFetchStatus returns the fetch status to idle.
func (s *CategoryStore) ResetFetchStatus() { s.fetch.Reset(); s.changed.Notify() }

// ResetMutateStatus returns the mutate status to idle.
func (s *CategoryStore) ResetMutateStatus() { s.mutate.Reset(); s.changed.Notify() }

// Watch returns a channel closed on the next visible change of the store.
func (s *CategoryStore) Watch() <-chan struct{} { return s.changed.Watch() }
