package metrics

import (
	"testing"

	"github.com/smallbiznis/stockroom/internal/inventory/domain"
	"github.com/stretchr/testify/assert"
)

func TestIsLowStock(t *testing.T) {
	assert.True(t, IsLowStock(domain.Product{Quantity: 8, ReorderLevel: 10}))
	assert.True(t, IsLowStock(domain.Product{Quantity: 10, ReorderLevel: 10}))
	assert.False(t, IsLowStock(domain.Product{Quantity: 11, ReorderLevel: 10}))
	assert.False(t, IsLowStock(domain.Product{Quantity: 45, ReorderLevel: 20}))
}

func TestLowStockAndValueScenario(t *testing.T) {
	products := []domain.Product{
		{SKU: "BEV001", Quantity: 45, ReorderLevel: 20, Price: 1.99},
		{SKU: "DRY001", Quantity: 8, ReorderLevel: 10, Price: 3.99},
	}

	low := LowStock(products)
	assert.Len(t, low, 1)
	assert.Equal(t, "DRY001", low[0].SKU)

	// 45*1.99 + 8*3.99 = 89.55 + 31.92 = 121.47
	assert.InDelta(t, 121.47, InventoryValue(products), 1e-9)
}

func TestInventoryValueEmpty(t *testing.T) {
	assert.Zero(t, InventoryValue(nil))
	assert.Zero(t, InventoryValue([]domain.Product{}))
}

func TestPendingOrders(t *testing.T) {
	orders := []domain.Order{
		{Status: domain.StatusPending},
		{Status: domain.StatusCompleted},
		{Status: domain.StatusPending},
		{Status: domain.StatusCancelled},
	}
	assert.Equal(t, 2, PendingOrders(orders))
	assert.Equal(t, 1, CountByStatus(orders, domain.StatusCompleted))
	assert.Equal(t, 0, CountByStatus(orders, domain.StatusProcessing))
}

func TestSalesValue(t *testing.T) {
	orders := []domain.Order{
		{TotalAmount: 99.50},
		{TotalAmount: 12.25},
	}
	assert.InDelta(t, 111.75, SalesValue(orders), 1e-9)
}

func TestCategoryDistribution(t *testing.T) {
	products := []domain.Product{
		{Category: "Snacks"},
		{Category: "Beverages"},
		{Category: "Snacks"},
		{Category: "Dairy"},
	}

	got := CategoryDistribution(products)
	assert.Equal(t, []domain.CategoryCount{
		{Category: "Beverages", Count: 1},
		{Category: "Dairy", Count: 1},
		{Category: "Snacks", Count: 2},
	}, got)
}

func TestRecommendedOrder(t *testing.T) {
	p := domain.Product{Quantity: 8, ReorderLevel: 10}
	assert.Equal(t, 12, RecommendedOrder(p))

	// At the boundary the recommendation equals the reorder level.
	assert.Equal(t, 10, RecommendedOrder(domain.Product{Quantity: 10, ReorderLevel: 10}))
}
