// Package metrics holds the derived-metric functions behind the
// dashboard and reports. All of them are pure computations over a
// collection snapshot, recomputed on every read; the collections are
// small and single-tenant so no caching is kept.
package metrics

import (
	"sort"

	"github.com/smallbiznis/stockroom/internal/inventory/domain"
)

// IsLowStock reports whether p sits at or below its reorder level.
func IsLowStock(p domain.Product) bool {
	return p.Quantity <= p.ReorderLevel
}

// LowStock returns the low-stock subset of products, order preserved.
func LowStock(products []domain.Product) []domain.Product {
	out := make([]domain.Product, 0)
	for _, p := range products {
		if IsLowStock(p) {
			out = append(out, p)
		}
	}
	return out
}

// InventoryValue is the total value of stock on hand.
func InventoryValue(products []domain.Product) float64 {
	var total float64
	for _, p := range products {
		total += float64(p.Quantity) * p.Price
	}
	return total
}

// CountByStatus counts orders in the given status.
func CountByStatus(orders []domain.Order, status domain.OrderStatus) int {
	count := 0
	for _, o := range orders {
		if o.Status == status {
			count++
		}
	}
	return count
}

// PendingOrders counts orders still awaiting processing.
func PendingOrders(orders []domain.Order) int {
	return CountByStatus(orders, domain.StatusPending)
}

// SalesValue is the total amount across all orders.
func SalesValue(orders []domain.Order) float64 {
	var total float64
	for _, o := range orders {
		total += o.TotalAmount
	}
	return total
}

// CategoryDistribution groups products by category, sorted by category name.
func CategoryDistribution(products []domain.Product) []domain.CategoryCount {
	counts := make(map[string]int)
	for _, p := range products {
		counts[p.Category]++
	}

	out := make([]domain.CategoryCount, 0, len(counts))
	for category, count := range counts {
		out = append(out, domain.CategoryCount{Category: category, Count: count})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Category < out[j].Category })
	return out
}

// RecommendedOrder is the restock quantity suggested for a low-stock
// product: twice the reorder level minus what is on hand. Callers gate
// on IsLowStock first, which keeps the result non-negative.
func RecommendedOrder(p domain.Product) int {
	return p.ReorderLevel*2 - p.Quantity
}
