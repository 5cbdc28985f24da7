// Package report renders the tabular PDF reports served by the reports
// view. Each generator consumes a collection snapshot at call time and
// is stateless; one call per report type.
package report

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"time"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/smallbiznis/stockroom/internal/inventory/domain"
	"go.uber.org/fx"
)

const (
	TypeInventory = "inventory"
	TypeSales     = "sales"
	TypeVendor    = "vendor"
	TypeLowStock  = "low-stock"
)

// ValidType reports whether t names a known report type.
func ValidType(t string) bool {
	switch t {
	case TypeInventory, TypeSales, TypeVendor, TypeLowStock:
		return true
	default:
		return false
	}
}

// FileName builds the download name for a report generated at now:
// <type>-report-<yyyy-MM-dd>.pdf.
func FileName(reportType string, now time.Time) string {
	return fmt.Sprintf("%s-report-%s.pdf", reportType, now.Format("2006-01-02"))
}

// Provider renders one PDF document per report type.
type Provider interface {
	Inventory(ctx context.Context, products []domain.Product, now time.Time) (io.Reader, error)
	Sales(ctx context.Context, orders []domain.Order, now time.Time) (io.Reader, error)
	Vendors(ctx context.Context, vendors []domain.Vendor, now time.Time) (io.Reader, error)
	LowStock(ctx context.Context, products []domain.Product, now time.Time) (io.Reader, error)
}

// Module provides the PDF report generator.
var Module = fx.Module("report",
	fx.Provide(New),
)

type PDFProvider struct{}

func New() Provider {
	return &PDFProvider{}
}

var (
	headerBlue = props.Color{Red: 37, Green: 99, Blue: 235}
	alertRed   = props.Color{Red: 220, Green: 38, Blue: 38}
	mutedGray  = props.Color{Red: 100, Green: 100, Blue: 100}
)

func newDocument() core.Maroto {
	cfg := config.NewBuilder().
		WithPageNumber(props.PageNumber{
			Pattern: "Page {current} of {total}",
			Place:   props.RightBottom,
		}).
		Build()

	return maroto.New(cfg)
}

// addHeader writes the centered report title and generation timestamp.
func addHeader(m core.Maroto, title string, color props.Color, now time.Time) {
	m.AddRow(12,
		text.NewCol(12, title, props.Text{
			Size:  20,
			Style: fontstyle.Bold,
			Align: align.Center,
			Color: &color,
		}),
	)
	m.AddRow(8,
		text.NewCol(12, "Generated on: "+now.Format("January 02, 2006 15:04"), props.Text{
			Size:  10,
			Align: align.Center,
			Color: &mutedGray,
		}),
	)
}

func addSummaryTitle(m core.Maroto) {
	m.AddRow(8,
		text.NewCol(12, "Summary", props.Text{
			Size:  12,
			Style: fontstyle.Bold,
		}),
	)
}

func addSummaryLine(m core.Maroto, line string) {
	m.AddRow(6,
		text.NewCol(12, line, props.Text{Size: 10}),
	)
}

func headerCell(size int, label string, color props.Color) core.Col {
	return text.NewCol(size, label, props.Text{
		Style: fontstyle.Bold,
		Size:  9,
		Color: &color,
	})
}

func bodyCell(size int, value string) core.Col {
	return text.NewCol(size, value, props.Text{Size: 9})
}

func spacerRow(m core.Maroto) {
	m.AddRow(4, col.New(12))
}

func money(v float64) string {
	return fmt.Sprintf("$%.2f", v)
}

func render(m core.Maroto) (io.Reader, error) {
	doc, err := m.Generate()
	if err != nil {
		return nil, err
	}
	return bytes.NewReader(doc.GetBytes()), nil
}
