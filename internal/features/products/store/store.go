// Package store holds the product state container: the last-known product
// page, the selected product, and one lifecycle tracker per operation family.
// Failed operations settle status and error only; previously fetched data is
// never cleared by a failure.
package store

import (
	"context"
	"sync"

	"storefront-client/internal/core/collections"
	"storefront-client/internal/core/lifecycle"
	"storefront-client/internal/core/logger"
	"storefront-client/internal/features/products/domain"
	"storefront-client/internal/features/products/ports"

	"go.uber.org/zap"
)

func productKey(p domain.Product) string { return p.ID }

// ProductStore is the observable holder of product state.
type ProductStore struct {
	gateway ports.ProductGateway
	logger  *zap.Logger
	changed *lifecycle.Broadcaster

	// Independent trackers so each operation family reports status without
	// clobbering the others. The listing and the detail slot get separate
	// trackers: the ticket guard orders settlements against one slot, and a
	// detail fetch must never be able to overtake and void a listing fetch.
	fetch  lifecycle.Tracker
	detail lifecycle.Tracker
	add    lifecycle.Tracker
	update lifecycle.Tracker
	mutate lifecycle.Tracker

	mu           sync.RWMutex
	items        []domain.Product
	totalResults int
	selected     *domain.Product
	lastErr      error
}

// NewProductStore creates a ProductStore backed by the given gateway.
func NewProductStore(gateway ports.ProductGateway) *ProductStore {
	return &ProductStore{
		gateway: gateway,
		logger:  logger.Get(),
		changed: lifecycle.NewBroadcaster(),
	}
}

// FetchAll replaces the collection and the total count from one response. The
// two fields are written together under one lock, so readers never observe a
// torn page. A stale response (one overtaken by a later fetch) is discarded.
func (s *ProductStore) FetchAll(ctx context.Context, filters domain.Filters) error {
	ticket := s.fetch.Begin()
	s.changed.Notify()

	page, err := s.gateway.FetchAll(ctx, filters)
	if err != nil {
		s.settleRejected(&s.fetch, ticket, "fetch products", err)
		return err
	}

	if s.fetch.Fulfill(ticket, func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		s.items = page.Items
		s.totalResults = page.Total
	}) {
		s.changed.Notify()
	}
	return nil
}

// FetchByID replaces the selected slot; the collection is untouched.
func (s *ProductStore) FetchByID(ctx context.Context, id string) error {
	ticket := s.detail.Begin()
	s.changed.Notify()

	product, err := s.gateway.FetchByID(ctx, id)
	if err != nil {
		s.settleRejected(&s.detail, ticket, "fetch product", err)
		return err
	}

	if s.detail.Fulfill(ticket, func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		s.selected = product
	}) {
		s.changed.Notify()
	}
	return nil
}

// Add creates a product and appends the server's representation to the
// collection. The pagination total is left alone; the drift until the next
// fetch is an accepted limitation.
func (s *ProductStore) Add(ctx context.Context, input domain.ProductInput) error {
	ticket := s.add.Begin()
	s.changed.Notify()

	product, err := s.gateway.Add(ctx, input)
	if err != nil {
		s.settleRejected(&s.add, ticket, "add product", err)
		return err
	}

	if s.add.Fulfill(ticket, func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		s.items = append(s.items, *product)
	}) {
		s.changed.Notify()
	}
	return nil
}

// Update submits a full-record update and reconciles the returned record into
// the collection, inserting it when the current page does not contain it.
func (s *ProductStore) Update(ctx context.Context, update domain.ProductUpdate) error {
	ticket := s.update.Begin()
	s.changed.Notify()

	product, err := s.gateway.Update(ctx, update)
	if err != nil {
		s.settleRejected(&s.update, ticket, "update product", err)
		return err
	}

	if s.update.Fulfill(ticket, func() {
		s.upsertLocked(*product)
	}) {
		s.changed.Notify()
	}
	return nil
}

// SoftDelete marks a product deleted; the record stays in the collection with
// its flag raised, so admin listings keep showing it.
func (s *ProductStore) SoftDelete(ctx context.Context, id string) error {
	return s.mutateFlag(ctx, id, s.gateway.SoftDelete, "soft delete product")
}

// Undelete reverses a soft delete.
func (s *ProductStore) Undelete(ctx context.Context, id string) error {
	return s.mutateFlag(ctx, id, s.gateway.Undelete, "undelete product")
}

func (s *ProductStore) mutateFlag(ctx context.Context, id string, call func(context.Context, string) (*domain.Product, error), op string) error {
	ticket := s.mutate.Begin()
	s.changed.Notify()

	product, err := call(ctx, id)
	if err != nil {
		s.settleRejected(&s.mutate, ticket, op, err)
		return err
	}

	if s.mutate.Fulfill(ticket, func() {
		s.upsertLocked(*product)
	}) {
		s.changed.Notify()
	}
	return nil
}

func (s *ProductStore) upsertLocked(product domain.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = collections.Upsert(s.items, product, productKey)
	if s.selected != nil && s.selected.ID == product.ID {
		s.selected = &product
	}
}

func (s *ProductStore) settleRejected(tracker *lifecycle.Tracker, ticket lifecycle.Ticket, op string, err error) {
	if tracker.Reject(ticket, err) {
		s.mu.Lock()
		s.lastErr = err
		s.mu.Unlock()
		s.logger.Warn("Product operation rejected", zap.String("operation", op), zap.Error(err))
		s.changed.Notify()
	}
}

// Page returns the current collection and the total match count read under a
// single lock, so both always reflect the same response.
func (s *ProductStore) Page() ([]domain.Product, int) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]domain.Product, len(s.items))
	copy(items, s.items)
	return items, s.totalResults
}

// Products returns a copy of the current collection.
func (s *ProductStore) Products() []domain.Product {
	items, _ := s.Page()
	return items
}

// TotalResults returns the server's total match count for the last fetch.
func (s *ProductStore) TotalResults() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.totalResults
}

// Selected returns a copy of the selected product, or nil.
func (s *ProductStore) Selected() *domain.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.selected == nil {
		return nil
	}
	selected := *s.selected
	return &selected
}

// ClearSelected empties the selected slot, typically on detail-view unmount.
func (s *ProductStore) ClearSelected() {
	s.mu.Lock()
	s.selected = nil
	s.mu.Unlock()
	s.changed.Notify()
}

// Err returns the error recorded by the most recent rejected operation.
func (s *ProductStore) Err() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastErr
}

// ClearErrors drops the recorded error, typically after it has been shown once.
func (s *ProductStore) ClearErrors() {
	s.mu.Lock()
	s.lastErr = nil
	s.mu.Unlock()
	s.changed.Notify()
}

// FetchStatus reports the listing fetch lifecycle.
func (s *ProductStore) FetchStatus() lifecycle.Status { return s.fetch.Status() }

// DetailStatus reports the detail fetch lifecycle.
func (s *ProductStore) DetailStatus() lifecycle.Status { return s.detail.Status() }

// AddStatus reports the add operation lifecycle.
func (s *ProductStore) AddStatus() lifecycle.Status { return s.add.Status() }

// UpdateStatus reports the update operation lifecycle.
func (s *ProductStore) UpdateStatus() lifecycle.Status { return s.update.Status() }

// MutateStatus reports the delete/undelete operation lifecycle.
func (s *ProductStore) MutateStatus() lifecycle.Status { return s.mutate.Status() }

// ResetFetchStatus returns the listing fetch status to idle.
func (s *ProductStore) ResetFetchStatus() { s.fetch.Reset(); s.changed.Notify() }

// ResetDetailStatus returns the detail fetch status to idle.
func (s *ProductStore) ResetDetailStatus() { s.detail.Reset(); s.changed.Notify() }

// ResetAddStatus returns the add status to idle.
func (s *ProductStore) ResetAddStatus() { s.add.Reset(); s.changed.Notify() }

// ResetUpdateStatus returns the update status to idle.
func (s *ProductStore) ResetUpdateStatus() { s.update.Reset(); s.changed.Notify() }

// ResetMutateStatus returns the delete/undelete status to idle.
func (s *ProductStore) ResetMutateStatus() { s.mutate.Reset(); s.changed.Notify() }

// Watch returns a channel closed on the next visible change of the store.
func (s *ProductStore) Watch() <-chan struct{} { return s.changed.Watch() }
