// Package store holds the address state container. Addresses are append-only,
// which keeps this store the simplest of the family: fetch and add.
package store

import (
	"context"
	"sync"

	"storefront-client/internal/core/lifecycle"
	"storefront-client/internal/core/logger"
	"storefront-client/internal/features/addresses/domain"
	"storefront-client/internal/features/addresses/ports"

	"go.uber.org/zap"
)

// AddressStore is the observable holder of one user's saved addresses.
type AddressStore struct {
	gateway ports.AddressGateway
	logger  *zap.Logger
	changed *lifecycle.Broadcaster

	fetch lifecycle.Tracker
	add   lifecycle.Tracker

	mu      sync.RWMutex
	items   []domain.Address
	lastErr error
}

// NewAddressStore creates an AddressStore backed by the given gateway.
func NewAddressStore(gateway ports.AddressGateway) *AddressStore {
	return &AddressStore{
		gateway: gateway,
		logger:  logger.Get(),
		changed: lifecycle.NewBroadcaster(),
	}
}

// FetchByUser replaces the address collection. A stale response is discarded.
func (s *AddressStore) FetchByUser(ctx context.Context, userID string) error {
	ticket := s.fetch.Begin()
	s.changed.Notify()

	addresses, err := s.gateway.FetchByUser(ctx, userID)
	if err != nil {
		s.settleRejected(&s.fetch, ticket, "fetch addresses", err)
		return err
	}

	if s.fetch.Fulfill(ticket, func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		s.items = addresses
	}) {
		s.changed.Notify()
	}
	return nil
}

// Add saves a new address and appends the server's representation.
func (s *AddressStore) Add(ctx context.Context, input domain.AddressInput) error {
	ticket := s.add.Begin()
	s.changed.Notify()

	address, err := s.gateway.Add(ctx, input)
	if err != nil {
		s.settleRejected(&s.add, ticket, "add address", err)
		return err
	}

	if s.add.Fulfill(ticket, func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		s.items = append(s.items, *address)
	}) {
		s.changed.Notify()
	}
	return nil
}

func (s *AddressStore) settleRejected(tracker *lifecycle.Tracker, ticket lifecycle.Ticket, op string, err error) {
	if tracker.Reject(ticket, err) {
		s.mu.Lock()
		s.lastErr = err
		s.mu.Unlock()
		s.logger.Warn("Address operation rejected", zap.String("operation", op), zap.Error(err))
		s.changed.Notify()
	}
}

// Addresses returns a copy of the current collection.
func (s *AddressStore) Addresses() []domain.Address {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]domain.Address, len(s.items))
	copy(items, s.items)
	return items
}

// Err returns the error recorded by the most recent rejected operation.
func (s *AddressStore) Err() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastErr
}

// FetchStatus reports the fetch lifecycle.
func (s *AddressStore) FetchStatus() lifecycle.Status { return s.fetch.Status() }

// AddStatus reports the add lifecycle.
func (s *AddressStore) AddStatus() lifecycle.Status { return s.add.Status() }

// ResetAddStatus returns the add status to idle.
func (s *AddressStore) ResetAddStatus() { s.add.Reset(); s.changed.Notify() }

// Watch returns a channel closed on the next visible change of the store.
func (s *AddressStore) Watch() <-chan struct{} { return s.changed.Watch() }
