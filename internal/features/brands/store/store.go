// Package store holds the brand state container.
package store

import (
	"context"
	"sync"

	"storefront-client/internal/core/collections"
	"storefront-client/internal/core/lifecycle"
	"storefront-client/internal/core/logger"
	"storefront-client/internal/features/brands/domain"
	"storefront-client/internal/features/brands/ports"

	"go.uber.org/zap"
)

func brandKey(b domain.Brand) string { return b.ID }

// BrandStore is the observable holder of brand state.
type BrandStore struct {
	gateway ports.BrandGateway
	logger  *zap.Logger
	changed *lifecycle.Broadcaster

	fetch  lifecycle.Tracker
	mutate lifecycle.Tracker

	mu      sync.RWMutex
	items   []domain.Brand
	lastErr error
}

// NewBrandStore creates a BrandStore backed by the given gateway.
func NewBrandStore(gateway ports.BrandGateway) *BrandStore {
	return &BrandStore{
		gateway: gateway,
		logger:  logger.Get(),
		changed: lifecycle.NewBroadcaster(),
	}
}

// FetchAll replaces the brand collection. A stale response is discarded.
func (s *BrandStore) FetchAll(ctx context.Context) error {
	ticket := s.fetch.Begin()
	s.changed.Notify()

	brands, err := s.gateway.FetchAll(ctx)
	if err != nil {
		s.settleRejected(&s.fetch, ticket, "fetch brands", err)
		return err
	}

	if s.fetch.Fulfill(ticket, func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		s.items = brands
	}) {
		s.changed.Notify()
	}
	return nil
}

// Add creates a brand and appends the server's representation.
func (s *BrandStore) Add(ctx context.Context, input domain.BrandInput) error {
	ticket := s.mutate.Begin()
	s.changed.Notify()

	brand, err := s.gateway.Add(ctx, input)
	if err != nil {
		s.settleRejected(&s.mutate, ticket, "add brand", err)
		return err
	}

	if s.mutate.Fulfill(ticket, func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		s.items = append(s.items, *brand)
	}) {
		s.changed.Notify()
	}
	return nil
}

// Update renames a brand and reconciles the returned record into the
// collection, inserting it when missing.
func (s *BrandStore) Update(ctx context.Context, id string, input domain.BrandInput) error {
	ticket := s.mutate.Begin()
	s.changed.Notify()

	brand, err := s.gateway.Update(ctx, id, input)
	if err != nil {
		s.settleRejected(&s.mutate, ticket, "update brand", err)
		return err
	}

	if s.mutate.Fulfill(ticket, func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		s.items = collections.Upsert(s.items, *brand, brandKey)
	}) {
		s.changed.Notify()
	}
	return nil
}

// Delete removes a brand permanently, locally and on the server.
func (s *BrandStore) Delete(ctx context.Context, id string) error {
	ticket := s.mutate.Begin()
	s.changed.Notify()

	if err := s.gateway.Delete(ctx, id); err != nil {
		s.settleRejected(&s.mutate, ticket, "delete brand", err)
		return err
	}

	if s.mutate.Fulfill(ticket, func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		s.items = collections.RemoveByKey(s.items, id, brandKey)
	}) {
		s.changed.Notify()
	}
	return nil
}

func (s *BrandStore) settleRejected(tracker *lifecycle.Tracker, ticket lifecycle.Ticket, op string, err error) {
	if tracker.Reject(ticket, err) {
		s.mu.Lock()
		s.lastErr = err
		s.mu.Unlock()
		s.logger.Warn("Brand operation rejected", zap.String("operation", op), zap.Error(err))
		s.changed.Notify()
	}
}

// Brands returns a copy of the current collection.
func (s *BrandStore) Brands() []domain.Brand {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]domain.Brand, len(s.items))
	copy(items, s.items)
	return items
}

// Err returns the error recorded by the most recent rejected operation.
func (s *BrandStore) Err() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastErr
}

// FetchStatus reports the fetch lifecycle.
func (s *BrandStore) FetchStatus() lifecycle.Status { return s.fetch.Status() }

// MutateStatus reports the add/update/delete lifecycle.
func (s *BrandStore) MutateStatus() lifecycle.Status { return s.mutate.Status() }

// ResetFetchStatus returns the fetch status to idle.
func (s *BrandStore) ResetFetchStatus() { s.fetch.Reset(); s.changed.Notify() }

// ResetMutateStatus returns the mutate status to idle.
func (s *BrandStore) ResetMutateStatus() { s.mutate.Reset(); s.changed.Notify() }

// Watch returns a channel closed on the next visible change of the store.
func (s *BrandStore) Watch() <-chan struct{} { return s.changed.Watch() }
