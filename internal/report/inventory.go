package report

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/smallbiznis/stockroom/internal/inventory/domain"
	"github.com/smallbiznis/stockroom/internal/inventory/metrics"
)

// Inventory renders the full stock listing with per-product valuation
// and stock status.
func (p *PDFProvider) Inventory(ctx context.Context, products []domain.Product, now time.Time) (io.Reader, error) {
	_ = ctx
	m := newDocument()

	addHeader(m, "INVENTORY REPORT", headerBlue, now)
	spacerRow(m)

	addSummaryTitle(m)
	addSummaryLine(m, fmt.Sprintf("Total Products: %d", len(products)))
	addSummaryLine(m, "Total Inventory Value: "+money(metrics.InventoryValue(products)))
	addSummaryLine(m, fmt.Sprintf("Low Stock Items: %d", len(metrics.LowStock(products))))
	spacerRow(m)

	m.AddRow(8,
		headerCell(2, "SKU", headerBlue),
		headerCell(3, "Product Name", headerBlue),
		headerCell(2, "Category", headerBlue),
		headerCell(1, "Quantity", headerBlue),
		headerCell(1, "Price", headerBlue),
		headerCell(2, "Total Value", headerBlue),
		headerCell(1, "Status", headerBlue),
	)

	for _, product := range products {
		status := "In Stock"
		if metrics.IsLowStock(product) {
			status = "Low Stock"
		}
		m.AddRow(7,
			bodyCell(2, product.SKU),
			bodyCell(3, product.Name),
			bodyCell(2, product.Category),
			bodyCell(1, fmt.Sprintf("%d", product.Quantity)),
			bodyCell(1, money(product.Price)),
			bodyCell(2, money(float64(product.Quantity)*product.Price)),
			bodyCell(1, status),
		)
	}

	return render(m)
}
