package report

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/smallbiznis/stockroom/internal/inventory/domain"
	"github.com/smallbiznis/stockroom/internal/inventory/metrics"
)

// LowStock renders the restock worklist: every product at or below its
// reorder level with the recommended order quantity.
func (p *PDFProvider) LowStock(ctx context.Context, products []domain.Product, now time.Time) (io.Reader, error) {
	_ = ctx
	lowStock := metrics.LowStock(products)
	m := newDocument()

	addHeader(m, "LOW STOCK ALERT REPORT", alertRed, now)
	spacerRow(m)

	addSummaryTitle(m)
	addSummaryLine(m, fmt.Sprintf("Items Requiring Reorder: %d", len(lowStock)))
	spacerRow(m)

	if len(lowStock) == 0 {
		m.AddRow(8,
			bodyCell(12, "No items require reordering at this time."),
		)
		return render(m)
	}

	m.AddRow(8,
		headerCell(2, "SKU", alertRed),
		headerCell(3, "Product Name", alertRed),
		headerCell(2, "Category", alertRed),
		headerCell(2, "Current Stock", alertRed),
		headerCell(2, "Reorder Level", alertRed),
		headerCell(1, "Recommended Order", alertRed),
	)

	for _, product := range lowStock {
		m.AddRow(7,
			bodyCell(2, product.SKU),
			bodyCell(3, product.Name),
			bodyCell(2, product.Category),
			bodyCell(2, fmt.Sprintf("%d", product.Quantity)),
			bodyCell(2, fmt.Sprintf("%d", product.ReorderLevel)),
			bodyCell(1, fmt.Sprintf("%d", metrics.RecommendedOrder(product))),
		)
	}

	return render(m)
}
