// Package store holds the logged-in user's profile state. Unlike the
// collection stores this one is a single slot.
package store

import (
	"context"
	"sync"

	"storefront-client/internal/core/lifecycle"
	"storefront-client/internal/core/logger"
	"storefront-client/internal/features/users/domain"
	"storefront-client/internal/features/users/ports"

	"go.uber.org/zap"
)

// UserStore is the observable holder of the logged-in user's profile.
type UserStore struct {
	gateway ports.UserGateway
	logger  *zap.Logger
	changed *lifecycle.Broadcaster

	fetch  lifecycle.Tracker
	update lifecycle.Tracker

	mu      sync.RWMutex
	profile *domain.User
	lastErr error
}

// NewUserStore creates a UserStore backed by the given gateway.
func NewUserStore(gateway ports.UserGateway) *UserStore {
	return &UserStore{
		gateway: gateway,
		logger:  logger.Get(),
		changed: lifecycle.NewBroadcaster(),
	}
}

// FetchByID loads the profile into the slot. A stale response is discarded.
func (s *UserStore) FetchByID(ctx context.Context, userID string) error {
	ticket := s.fetch.Begin()
	s.changed.Notify()

	user, err := s.gateway.FetchByID(ctx, userID)
	if err != nil {
		s.settleRejected(&s.fetch, ticket, "fetch user", err)
		return err
	}

	if s.fetch.Fulfill(ticket, func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		s.profile = user
	}) {
		s.changed.Notify()
	}
	return nil
}

// Update edits the profile and replaces the slot with the server's result.
func (s *UserStore) Update(ctx context.Context, userID string, update domain.UserUpdate) error {
	ticket := s.update.Begin()
	s.changed.Notify()

	user, err := s.gateway.Update(ctx, userID, update)
	if err != nil {
		s.settleRejected(&s.update, ticket, "update user", err)
		return err
	}

	if s.update.Fulfill(ticket, func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		s.profile = user
	}) {
		s.changed.Notify()
	}
	return nil
}

func (s *UserStore) settleRejected(tracker *lifecycle.Tracker, ticket lifecycle.Ticket, op string, err error) {
	if tracker.Reject(ticket, err) {
		s.mu.Lock()
		s.lastErr = err
		s.mu.Unlock()
		s.logger.Warn("User operation rejected", zap.String("operation", op), zap.Error(err))
		s.changed.Notify()
	}
}

// Profile returns the loaded profile, nil when none.
func (s *UserStore) Profile() *domain.User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.profile == nil {
		return nil
	}
	user := *s.profile
	return &user
}

// Err returns the error recorded by the most recent rejected operation.
func (s *UserStore) Err() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastErr
}

// ClearErrors forgets the last recorded error.
func (s *UserStore) ClearErrors() {
	s.mu.Lock()
	s.lastErr = nil
	s.mu.Unlock()
	s.changed.Notify()
}

// FetchStatus reports the fetch lifecycle.
func (s *UserStore) FetchStatus() lifecycle.Status { return s.fetch.Status() }

// UpdateStatus reports the profile-edit lifecycle.
func (s *UserStore) UpdateStatus() lifecycle.Status { return s.update.Status() }

// ResetUpdateStatus returns the profile-edit status to idle.
func (s *UserStore) ResetUpdateStatus() { s.update.Reset(); s.changed.Notify() }

// Watch returns a channel closed on the next visible change of the store.
func (s *UserStore) Watch() <-chan struct{} { return s.changed.Watch() }
