package server

import (
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	inventorydomain "github.com/smallbiznis/stockroom/internal/inventory/domain"
	"github.com/smallbiznis/stockroom/internal/report"
	"go.uber.org/zap"
)

// DownloadReport renders the requested report over the current state
// and serves it as a PDF attachment. Generation failures are logged
// here and mapped to a plain 500.
func (s *Server) DownloadReport(c *gin.Context) {
	reportType := strings.TrimSpace(c.Param("type"))
	if !report.ValidType(reportType) {
		AbortWithError(c, inventorydomain.ErrNotFound)
		return
	}

	ctx := c.Request.Context()
	now := time.Now()

	var (
		doc io.Reader
		err error
	)
	switch reportType {
	case report.TypeInventory:
		var products []inventorydomain.Product
		products, err = s.inventorySvc.ListProducts(ctx, inventorydomain.ListProductsRequest{})
		if err == nil {
			doc, err = s.reports.Inventory(ctx, products, now)
		}
	case report.TypeSales:
		var orders []inventorydomain.Order
		orders, err = s.inventorySvc.ListOrders(ctx, inventorydomain.ListOrdersRequest{})
		if err == nil {
			doc, err = s.reports.Sales(ctx, orders, now)
		}
	case report.TypeVendor:
		var vendors []inventorydomain.Vendor
		vendors, err = s.inventorySvc.ListVendors(ctx, inventorydomain.ListVendorsRequest{})
		if err == nil {
			doc, err = s.reports.Vendors(ctx, vendors, now)
		}
	case report.TypeLowStock:
		var products []inventorydomain.Product
		products, err = s.inventorySvc.ListProducts(ctx, inventorydomain.ListProductsRequest{})
		if err == nil {
			doc, err = s.reports.LowStock(ctx, products, now)
		}
	}
	if err != nil {
		s.log.Error("generate report", zap.String("type", reportType), zap.Error(err))
		AbortWithError(c, ErrInternal)
		return
	}

	payload, err := io.ReadAll(doc)
	if err != nil {
		s.log.Error("read report", zap.String("type", reportType), zap.Error(err))
		AbortWithError(c, ErrInternal)
		return
	}

	s.metrics.ReportsGenerated.WithLabelValues(reportType).Inc()

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", report.FileName(reportType, now)))
	c.Data(http.StatusOK, "application/pdf", payload)
}
