package report

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/smallbiznis/stockroom/internal/inventory/domain"
)

// Vendors renders the supplier directory.
func (p *PDFProvider) Vendors(ctx context.Context, vendors []domain.Vendor, now time.Time) (io.Reader, error) {
	_ = ctx
	m := newDocument()

	addHeader(m, "VENDOR REPORT", headerBlue, now)
	spacerRow(m)

	addSummaryTitle(m)
	addSummaryLine(m, fmt.Sprintf("Total Vendors: %d", len(vendors)))
	spacerRow(m)

	m.AddRow(8,
		headerCell(3, "Vendor Name", headerBlue),
		headerCell(2, "Category", headerBlue),
		headerCell(3, "Email", headerBlue),
		headerCell(2, "Phone", headerBlue),
		headerCell(2, "Payment Terms", headerBlue),
	)

	for _, vendor := range vendors {
		m.AddRow(7,
			bodyCell(3, vendor.Name),
			bodyCell(2, vendor.Category),
			bodyCell(3, vendor.Email),
			bodyCell(2, vendor.Phone),
			bodyCell(2, vendor.PaymentTerms),
		)
	}

	return render(m)
}
