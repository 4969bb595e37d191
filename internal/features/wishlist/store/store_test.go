package store

import (
	"context"
	"testing"

	productdomain "storefront-client/internal/features/products/domain"
	"storefront-client/internal/features/wishlist/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeGateway struct {
	fetchByUser func(ctx context.Context, userID string) ([]domain.WishlistItem, error)
	add         func(ctx context.Context, input domain.WishlistItemInput) (*domain.WishlistItem, error)
	updateNote  func(ctx context.Context, itemID, note string) (*domain.WishlistItem, error)
	remove      func(ctx context.Context, itemID string) error
}

func (f *fakeGateway) FetchByUser(ctx context.Context, userID string) ([]domain.WishlistItem, error) {
	return f.fetchByUser(ctx, userID)
}

func (f *fakeGateway) Add(ctx context.Context, input domain.WishlistItemInput) (*domain.WishlistItem, error) {
	return f.add(ctx, input)
}

func (f *fakeGateway) UpdateNote(ctx context.Context, itemID, note string) (*domain.WishlistItem, error) {
	return f.updateNote(ctx, itemID, note)
}

func (f *fakeGateway) Remove(ctx context.Context, itemID string) error {
	return f.remove(ctx, itemID)
}

// TestWishlistStore_UpdateNoteMergesInPlace verifies a note edit replaces
// the item without reordering the list.
func TestWishlistStore_UpdateNoteMergesInPlace(t *testing.T) {
	annotated := domain.WishlistItem{
		ID:      "w1",
		Product: &productdomain.Product{ID: "p1"},
		Note:    "birthday gift",
	}
	s := NewWishlistStore(&fakeGateway{
		fetchByUser: func(context.Context, string) ([]domain.WishlistItem, error) {
			return []domain.WishlistItem{
				{ID: "w1", Product: &productdomain.Product{ID: "p1"}},
				{ID: "w2", Product: &productdomain.Product{ID: "p2"}},
			}, nil
		},
		updateNote: func(_ context.Context, itemID, note string) (*domain.WishlistItem, error) {
			assert.Equal(t, "w1", itemID)
			assert.Equal(t, "birthday gift", note)
			return &annotated, nil
		},
	})
	require.NoError(t, s.FetchByUser(context.Background(), "u1"))

	require.NoError(t, s.UpdateNote(context.Background(), "w1", "birthday gift"))

	items := s.Items()
	require.Len(t, items, 2)
	assert.Equal(t, "w1", items[0].ID)
	assert.Equal(t, "birthday gift", items[0].Note)
}

// TestWishlistStore_ContainsSkipsUnresolvable verifies membership checks
// ignore items whose product reference is gone.
func TestWishlistStore_ContainsSkipsUnresolvable(t *testing.T) {
	s := NewWishlistStore(&fakeGateway{
		fetchByUser: func(context.Context, string) ([]domain.WishlistItem, error) {
			return []domain.WishlistItem{
				{ID: "w1", Product: nil},
				{ID: "w2", Product: &productdomain.Product{ID: "p2"}},
			}, nil
		},
	})
	require.NoError(t, s.FetchByUser(context.Background(), "u1"))

	assert.True(t, s.Contains("p2"))
	assert.False(t, s.Contains("p1"))
}

// TestWishlistStore_RemoveDropsLocally verifies a confirmed removal shrinks
// the collection.
func TestWishlistStore_RemoveDropsLocally(t *testing.T) {
	s := NewWishlistStore(&fakeGateway{
		fetchByUser: func(context.Context, string) ([]domain.WishlistItem, error) {
			return []domain.WishlistItem{
				{ID: "w1", Product: &productdomain.Product{ID: "p1"}},
			}, nil
		},
		remove: func(_ context.Context, itemID string) error {
			assert.Equal(t, "w1", itemID)
			return nil
		},
	})
	require.NoError(t, s.FetchByUser(context.Background(), "u1"))

	require.NoError(t, s.Remove(context.Background(), "w1"))
	assert.Empty(t, s.Items())
}
