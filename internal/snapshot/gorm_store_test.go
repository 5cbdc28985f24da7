package snapshot

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/smallbiznis/stockroom/internal/inventory/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newGormTestStore(t *testing.T) *GormStore {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	store, err := NewGormStore(db)
	require.NoError(t, err)
	return store
}

func TestGormStoreLoadEmpty(t *testing.T) {
	store := newGormTestStore(t)

	state, ok, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, state)
}

func TestGormStoreRoundTrip(t *testing.T) {
	store := newGormTestStore(t)
	ctx := context.Background()

	state := State{
		Products: []domain.Product{
			{ID: 1, SKU: "BEV001", Name: "Coca Cola 500ml", Category: "Beverages", Quantity: 45, Price: 1.99, ReorderLevel: 20},
		},
		Vendors: []domain.Vendor{
			{ID: 1, Name: "Beverage Distributors Inc", Email: "contact@bevdist.com", PaymentTerms: "Net 30"},
		},
		Orders: []domain.Order{
			{
				ID:          1,
				OrderNumber: "PO-001234",
				VendorID:    1,
				VendorName:  "Beverage Distributors Inc",
				Date:        time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC),
				Items: []domain.OrderItem{
					{ProductID: 1, ProductName: "Coca Cola 500ml", Quantity: 50, Price: 1.99},
				},
				TotalAmount: 99.50,
				Status:      domain.StatusPending,
			},
		},
	}

	require.NoError(t, store.Save(ctx, state))

	got, ok, err := store.Load(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, state, *got)
}

func TestGormStoreSaveOverwrites(t *testing.T) {
	store := newGormTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, State{Products: []domain.Product{{ID: 1, SKU: "BEV001"}}}))
	require.NoError(t, store.Save(ctx, State{Products: []domain.Product{{ID: 2, SKU: "SNK001"}}}))

	got, ok, err := store.Load(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	require.Len(t, got.Products, 1)
	assert.Equal(t, "SNK001", got.Products[0].SKU)
}
