package store

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"storefront-client/internal/core/lifecycle"
	"storefront-client/internal/features/products/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeGateway implements ports.ProductGateway with programmable behavior.
type fakeGateway struct {
	fetchAll   func(ctx context.Context, filters domain.Filters) (domain.Page, error)
	fetchByID  func(ctx context.Context, id string) (*domain.Product, error)
	add        func(ctx context.Context, input domain.ProductInput) (*domain.Product, error)
	update     func(ctx context.Context, update domain.ProductUpdate) (*domain.Product, error)
	softDelete func(ctx context.Context, id string) (*domain.Product, error)
	undelete   func(ctx context.Context, id string) (*domain.Product, error)
}

func (f *fakeGateway) FetchAll(ctx context.Context, filters domain.Filters) (domain.Page, error) {
	return f.fetchAll(ctx, filters)
}
func (f *fakeGateway) FetchByID(ctx context.Context, id string) (*domain.Product, error) {
	return f.fetchByID(ctx, id)
}
func (f *fakeGateway) Add(ctx context.Context, input domain.ProductInput) (*domain.Product, error) {
	return f.add(ctx, input)
}
func (f *fakeGateway) Update(ctx context.Context, update domain.ProductUpdate) (*domain.Product, error) {
	return f.update(ctx, update)
}
func (f *fakeGateway) SoftDelete(ctx context.Context, id string) (*domain.Product, error) {
	return f.softDelete(ctx, id)
}
func (f *fakeGateway) Undelete(ctx context.Context, id string) (*domain.Product, error) {
	return f.undelete(ctx, id)
}

func laptops(n int) []domain.Product {
	items := make([]domain.Product, n)
	for i := range items {
		items[i] = domain.Product{ID: fmt.Sprintf("p%d", i+1), Title: fmt.Sprintf("Laptop %d", i+1)}
	}
	return items
}

// TestProductStore_FetchAll_PageAndTotalTogether verifies the collection and
// the total count always reflect the same response.
func TestProductStore_FetchAll_PageAndTotalTogether(t *testing.T) {
	gw := &fakeGateway{
		fetchAll: func(_ context.Context, filters domain.Filters) (domain.Page, error) {
			// 15 matching laptops, pages of 12.
			if filters.Pagination.Page == 1 {
				return domain.Page{Items: laptops(12), Total: 15}, nil
			}
			return domain.Page{Items: laptops(3), Total: 15}, nil
		},
	}
	s := NewProductStore(gw)

	filters := domain.Filters{
		Categories: []string{"Laptops"},
		Pagination: domain.Pagination{Page: 1, Limit: 12},
	}
	require.NoError(t, s.FetchAll(context.Background(), filters))

	items, total := s.Page()
	assert.Len(t, items, 12)
	assert.Equal(t, 15, total)
	assert.Equal(t, lifecycle.StatusFulfilled, s.FetchStatus())

	filters.Pagination.Page = 2
	require.NoError(t, s.FetchAll(context.Background(), filters))

	items, total = s.Page()
	assert.Len(t, items, 3)
	assert.Equal(t, 15, total)
}

// TestProductStore_FetchAll_FailureKeepsData verifies a failed refresh leaves
// the previously fetched collection intact and only settles status and error.
func TestProductStore_FetchAll_FailureKeepsData(t *testing.T) {
	calls := 0
	gw := &fakeGateway{
		fetchAll: func(context.Context, domain.Filters) (domain.Page, error) {
			calls++
			if calls == 1 {
				return domain.Page{Items: laptops(2), Total: 2}, nil
			}
			return domain.Page{}, errors.New("gateway timeout")
		},
	}
	s := NewProductStore(gw)

	require.NoError(t, s.FetchAll(context.Background(), domain.Filters{}))
	require.Error(t, s.FetchAll(context.Background(), domain.Filters{}))

	items, total := s.Page()
	assert.Len(t, items, 2)
	assert.Equal(t, 2, total)
	assert.Equal(t, lifecycle.StatusRejected, s.FetchStatus())
	assert.EqualError(t, s.Err(), "gateway timeout")
}

// TestProductStore_OverlappingFetches verifies that when a later fetch
// settles before an earlier one, the earlier response is discarded.
func TestProductStore_OverlappingFetches(t *testing.T) {
	firstStarted := make(chan struct{})
	releaseFirst := make(chan struct{})

	gw := &fakeGateway{
		fetchAll: func(_ context.Context, filters domain.Filters) (domain.Page, error) {
			if filters.Categories[0] == "stale" {
				close(firstStarted)
				<-releaseFirst
				return domain.Page{Items: laptops(1), Total: 1}, nil
			}
			return domain.Page{Items: laptops(5), Total: 5}, nil
		},
	}
	s := NewProductStore(gw)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		s.FetchAll(context.Background(), domain.Filters{Categories: []string{"stale"}})
	}()

	<-firstStarted
	require.NoError(t, s.FetchAll(context.Background(), domain.Filters{Categories: []string{"fresh"}}))

	close(releaseFirst)
	wg.Wait()

	items, total := s.Page()
	assert.Len(t, items, 5, "stale response must not overwrite the fresher one")
	assert.Equal(t, 5, total)
	assert.Equal(t, lifecycle.StatusFulfilled, s.FetchStatus())
}

// TestProductStore_DetailFetchDuringListingFetch verifies the listing and
// the selected slot settle on independent trackers: a detail fetch that
// completes while a listing fetch is still in flight must not cause the
// listing's response to be discarded as stale.
func TestProductStore_DetailFetchDuringListingFetch(t *testing.T) {
	listingStarted := make(chan struct{})
	releaseListing := make(chan struct{})

	gw := &fakeGateway{
		fetchAll: func(context.Context, domain.Filters) (domain.Page, error) {
			close(listingStarted)
			<-releaseListing
			return domain.Page{Items: laptops(5), Total: 5}, nil
		},
		fetchByID: func(_ context.Context, id string) (*domain.Product, error) {
			return &domain.Product{ID: id, Title: "Detail"}, nil
		},
	}
	s := NewProductStore(gw)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		s.FetchAll(context.Background(), domain.Filters{})
	}()

	<-listingStarted
	require.NoError(t, s.FetchByID(context.Background(), "p9"))

	close(releaseListing)
	wg.Wait()

	items, total := s.Page()
	assert.Len(t, items, 5, "detail fetch must not void the listing response")
	assert.Equal(t, 5, total)
	require.NotNil(t, s.Selected())
	assert.Equal(t, "p9", s.Selected().ID)
	assert.Equal(t, lifecycle.StatusFulfilled, s.FetchStatus())
	assert.Equal(t, lifecycle.StatusFulfilled, s.DetailStatus())
}

// TestProductStore_Add_AppendsServerRecord verifies the collection reflects
// the server's normalized representation, not the client input.
func TestProductStore_Add_AppendsServerRecord(t *testing.T) {
	gw := &fakeGateway{
		add: func(_ context.Context, input domain.ProductInput) (*domain.Product, error) {
			return &domain.Product{ID: "srv-1", Title: input.Title, Price: input.Price}, nil
		},
	}
	s := NewProductStore(gw)

	require.NoError(t, s.Add(context.Background(), domain.ProductInput{Title: "Keyboard", Price: 30}))

	items := s.Products()
	require.Len(t, items, 1)
	assert.Equal(t, "srv-1", items[0].ID)
	assert.Equal(t, lifecycle.StatusFulfilled, s.AddStatus())

	s.ResetAddStatus()
	assert.Equal(t, lifecycle.StatusIdle, s.AddStatus())
}

// TestProductStore_Update_UpsertsOnMiss verifies an update for a record
// outside the loaded page is inserted rather than silently dropped.
func TestProductStore_Update_UpsertsOnMiss(t *testing.T) {
	gw := &fakeGateway{
		fetchAll: func(context.Context, domain.Filters) (domain.Page, error) {
			return domain.Page{Items: laptops(2), Total: 2}, nil
		},
		update: func(_ context.Context, update domain.ProductUpdate) (*domain.Product, error) {
			return &domain.Product{ID: update.ID, Title: update.Title}, nil
		},
	}
	s := NewProductStore(gw)
	require.NoError(t, s.FetchAll(context.Background(), domain.Filters{}))

	// In-page update replaces in place.
	require.NoError(t, s.Update(context.Background(), domain.ProductUpdate{
		ID:           "p1",
		ProductInput: domain.ProductInput{Title: "Renamed"},
	}))
	items := s.Products()
	require.Len(t, items, 2)
	assert.Equal(t, "Renamed", items[0].Title)

	// Off-page update is merged in, not dropped.
	require.NoError(t, s.Update(context.Background(), domain.ProductUpdate{
		ID:           "p99",
		ProductInput: domain.ProductInput{Title: "Off Page"},
	}))
	items = s.Products()
	require.Len(t, items, 3)
	assert.Equal(t, "p99", items[2].ID)
	assert.Equal(t, lifecycle.StatusFulfilled, s.UpdateStatus())
}

// TestProductStore_SoftDeleteAndUndelete verifies the flag flips in place and
// the record stays visible for admin listings.
func TestProductStore_SoftDeleteAndUndelete(t *testing.T) {
	gw := &fakeGateway{
		fetchAll: func(context.Context, domain.Filters) (domain.Page, error) {
			return domain.Page{Items: laptops(1), Total: 1}, nil
		},
		softDelete: func(_ context.Context, id string) (*domain.Product, error) {
			return &domain.Product{ID: id, Title: "Laptop 1", IsDeleted: true}, nil
		},
		undelete: func(_ context.Context, id string) (*domain.Product, error) {
			return &domain.Product{ID: id, Title: "Laptop 1", IsDeleted: false}, nil
		},
	}
	s := NewProductStore(gw)
	require.NoError(t, s.FetchAll(context.Background(), domain.Filters{}))

	require.NoError(t, s.SoftDelete(context.Background(), "p1"))
	items := s.Products()
	require.Len(t, items, 1)
	assert.True(t, items[0].IsDeleted)

	require.NoError(t, s.Undelete(context.Background(), "p1"))
	items = s.Products()
	require.Len(t, items, 1)
	assert.False(t, items[0].IsDeleted)
	assert.Equal(t, lifecycle.StatusFulfilled, s.MutateStatus())
}

// TestProductStore_FetchByID verifies the selected slot is independent of the
// collection.
func TestProductStore_FetchByID(t *testing.T) {
	gw := &fakeGateway{
		fetchByID: func(_ context.Context, id string) (*domain.Product, error) {
			return &domain.Product{ID: id, Title: "Detail"}, nil
		},
	}
	s := NewProductStore(gw)

	require.NoError(t, s.FetchByID(context.Background(), "p7"))

	selected := s.Selected()
	require.NotNil(t, selected)
	assert.Equal(t, "p7", selected.ID)
	assert.Empty(t, s.Products())

	s.ClearSelected()
	assert.Nil(t, s.Selected())
}
