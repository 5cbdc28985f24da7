package report

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/smallbiznis/stockroom/internal/inventory/domain"
	"github.com/smallbiznis/stockroom/internal/inventory/metrics"
)

// Sales renders the purchase order listing with value and status totals.
func (p *PDFProvider) Sales(ctx context.Context, orders []domain.Order, now time.Time) (io.Reader, error) {
	_ = ctx
	m := newDocument()

	addHeader(m, "SALES REPORT", headerBlue, now)
	spacerRow(m)

	addSummaryTitle(m)
	addSummaryLine(m, fmt.Sprintf("Total Orders: %d", len(orders)))
	addSummaryLine(m, "Total Sales Value: "+money(metrics.SalesValue(orders)))
	addSummaryLine(m, fmt.Sprintf("Pending Orders: %d", metrics.CountByStatus(orders, domain.StatusPending)))
	addSummaryLine(m, fmt.Sprintf("Completed Orders: %d", metrics.CountByStatus(orders, domain.StatusCompleted)))
	spacerRow(m)

	m.AddRow(8,
		headerCell(2, "Order #", headerBlue),
		headerCell(3, "Vendor", headerBlue),
		headerCell(2, "Date", headerBlue),
		headerCell(1, "Items", headerBlue),
		headerCell(2, "Amount", headerBlue),
		headerCell(2, "Status", headerBlue),
	)

	for _, order := range orders {
		m.AddRow(7,
			bodyCell(2, order.OrderNumber),
			bodyCell(3, order.VendorName),
			bodyCell(2, order.Date.Format("Jan 02, 2006")),
			bodyCell(1, fmt.Sprintf("%d", len(order.Items))),
			bodyCell(2, money(order.TotalAmount)),
			bodyCell(2, capitalize(string(order.Status))),
		)
	}

	return render(m)
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
