package report

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/smallbiznis/stockroom/internal/inventory/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testTime = time.Date(2026, 8, 31, 14, 30, 0, 0, time.UTC)

func testProducts() []domain.Product {
	return []domain.Product{
		{ID: 1, SKU: "BEV001", Name: "Coca Cola 500ml", Category: "Beverages", Quantity: 45, Price: 1.99, ReorderLevel: 20},
		{ID: 2, SKU: "DRY001", Name: "Milk 1L", Category: "Dairy", Quantity: 8, Price: 3.99, ReorderLevel: 10},
	}
}

func readAll(t *testing.T, r io.Reader) []byte {
	payload, err := io.ReadAll(r)
	require.NoError(t, err)
	return payload
}

func TestFileName(t *testing.T) {
	assert.Equal(t, "inventory-report-2026-08-31.pdf", FileName(TypeInventory, testTime))
	assert.Equal(t, "low-stock-report-2026-08-31.pdf", FileName(TypeLowStock, testTime))
}

func TestValidType(t *testing.T) {
	for _, valid := range []string{TypeInventory, TypeSales, TypeVendor, TypeLowStock} {
		assert.True(t, ValidType(valid), valid)
	}
	assert.False(t, ValidType("payroll"))
	assert.False(t, ValidType(""))
}

func TestInventoryReport(t *testing.T) {
	p := New()

	doc, err := p.Inventory(context.Background(), testProducts(), testTime)
	require.NoError(t, err)

	payload := readAll(t, doc)
	assert.NotEmpty(t, payload)
	assert.Equal(t, "%PDF", string(payload[:4]))
}

func TestSalesReport(t *testing.T) {
	p := New()

	orders := []domain.Order{
		{
			ID:          1,
			OrderNumber: "PO-001234",
			VendorName:  "Beverage Distributors Inc",
			Date:        testTime,
			Items:       []domain.OrderItem{{ProductID: 1, ProductName: "Coca Cola 500ml", Quantity: 50, Price: 1.99}},
			TotalAmount: 99.50,
			Status:      domain.StatusPending,
		},
	}

	doc, err := p.Sales(context.Background(), orders, testTime)
	require.NoError(t, err)
	assert.NotEmpty(t, readAll(t, doc))
}

func TestVendorReport(t *testing.T) {
	p := New()

	vendors := []domain.Vendor{
		{ID: 1, Name: "Fresh Dairy Co", Category: "Dairy", Email: "info@freshdairy.com", Phone: "+1-555-0103", PaymentTerms: "Net 15"},
	}

	doc, err := p.Vendors(context.Background(), vendors, testTime)
	require.NoError(t, err)
	assert.NotEmpty(t, readAll(t, doc))
}

func TestLowStockReport(t *testing.T) {
	p := New()

	doc, err := p.LowStock(context.Background(), testProducts(), testTime)
	require.NoError(t, err)
	assert.NotEmpty(t, readAll(t, doc))
}

func TestLowStockReportEmptyState(t *testing.T) {
	p := New()

	products := []domain.Product{
		{ID: 1, SKU: "BEV001", Name: "Coca Cola 500ml", Quantity: 45, ReorderLevel: 20},
	}

	doc, err := p.LowStock(context.Background(), products, testTime)
	require.NoError(t, err)
	assert.NotEmpty(t, readAll(t, doc))
}

func TestCapitalize(t *testing.T) {
	assert.Equal(t, "Pending", capitalize("pending"))
	assert.Equal(t, "Cancelled", capitalize("cancelled"))
	assert.Equal(t, "", capitalize(""))
}
