// Package seed bootstraps a small demo dataset so the dashboard is
// usable out of the box when no snapshot exists yet.
package seed

import (
	"context"
	"time"

	"github.com/smallbiznis/stockroom/internal/inventory/domain"
	"github.com/smallbiznis/stockroom/internal/inventory/store"
)

func demoProducts() []domain.Product {
	return []domain.Product{
		{ID: 1, SKU: "BEV001", Name: "Coca Cola 500ml", Category: "Beverages", Quantity: 45, Price: 1.99, ReorderLevel: 20},
		{ID: 2, SKU: "SNK001", Name: "Lays Classic Chips", Category: "Snacks", Quantity: 12, Price: 2.49, ReorderLevel: 15},
		{ID: 3, SKU: "DRY001", Name: "Milk 1L", Category: "Dairy", Quantity: 8, Price: 3.99, ReorderLevel: 10},
		{ID: 4, SKU: "HOU001", Name: "Paper Towels", Category: "Household", Quantity: 25, Price: 4.99, ReorderLevel: 10},
		{ID: 5, SKU: "SNK002", Name: "Doritos Nacho", Category: "Snacks", Quantity: 18, Price: 2.99, ReorderLevel: 15},
	}
}

func demoVendors() []domain.Vendor {
	return []domain.Vendor{
		{ID: 1, Name: "Beverage Distributors Inc", Email: "contact@bevdist.com", Phone: "+1-555-0101", Address: "123 Main St, City, State 12345", Category: "Beverages", PaymentTerms: "Net 30"},
		{ID: 2, Name: "Snack World Supply", Email: "sales@snackworld.com", Phone: "+1-555-0102", Address: "456 Oak Ave, City, State 12345", Category: "Snacks", PaymentTerms: "Net 45"},
		{ID: 3, Name: "Fresh Dairy Co", Email: "info@freshdairy.com", Phone: "+1-555-0103", Address: "789 Pine Rd, City, State 12345", Category: "Dairy", PaymentTerms: "Net 15"},
	}
}

func demoOrders(now time.Time) []domain.Order {
	return []domain.Order{
		{
			ID:          1,
			OrderNumber: "PO-001234",
			VendorID:    1,
			VendorName:  "Beverage Distributors Inc",
			Date:        now,
			Items: []domain.OrderItem{
				{ProductID: 1, ProductName: "Coca Cola 500ml", Quantity: 50, Price: 1.99},
			},
			TotalAmount: 99.50,
			Status:      domain.StatusPending,
		},
	}
}

// Apply populates the store with the demo dataset.
func Apply(ctx context.Context, st *store.Store) {
	now := time.Now().UTC()
	for _, p := range demoProducts() {
		st.AddProduct(ctx, p)
	}
	for _, v := range demoVendors() {
		st.AddVendor(ctx, v)
	}
	for _, o := range demoOrders(now) {
		st.AddOrder(ctx, o)
	}
}
