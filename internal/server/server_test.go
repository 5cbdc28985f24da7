package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/bwmarrin/snowflake"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/smallbiznis/stockroom/internal/config"
	inventoryservice "github.com/smallbiznis/stockroom/internal/inventory/service"
	"github.com/smallbiznis/stockroom/internal/inventory/store"
	"github.com/smallbiznis/stockroom/internal/report"
	"github.com/smallbiznis/stockroom/internal/snapshot"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func newTestServer(t *testing.T) *Server {
	gin.SetMode(gin.TestMode)

	logger := zaptest.NewLogger(t)
	node, err := snowflake.NewNode(1)
	require.NoError(t, err)

	st := store.New(store.Params{Log: logger, Snapshots: snapshot.NoopStore{}})
	svc := inventoryservice.New(inventoryservice.Params{Log: logger, GenID: node, Store: st})

	metrics := &Metrics{
		ReportsGenerated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "stockroom",
			Name:      "reports_generated_total",
		}, []string{"type"}),
	}

	return NewServer(ServerParams{
		Gin:          NewEngine(logger),
		Cfg:          config.Config{AppName: "stockroom", Environment: "test"},
		Log:          logger,
		InventorySvc: svc,
		Reports:      report.New(),
		Metrics:      metrics,
	})
}

func doRequest(s *Server, method, path, body string) *httptest.ResponseRecorder {
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	s.Engine().ServeHTTP(w, req)
	return w
}

func TestHealth(t *testing.T) {
	s := newTestServer(t)

	w := doRequest(s, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestProductLifecycle(t *testing.T) {
	s := newTestServer(t)

	w := doRequest(s, http.MethodPost, "/api/products",
		`{"sku":"BEV001","name":"Coca Cola 500ml","category":"Beverages","quantity":45,"price":1.99,"reorderLevel":20}`)
	require.Equal(t, http.StatusOK, w.Code)

	var created struct {
		Data struct {
			ID string `json:"id"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	require.NotEmpty(t, created.Data.ID)

	w = doRequest(s, http.MethodGet, "/api/products?search=cola", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "BEV001")

	w = doRequest(s, http.MethodPatch, "/api/products/"+created.Data.ID, `{"quantity":5}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"quantity":5`)
	assert.Contains(t, w.Body.String(), `"price":1.99`)

	w = doRequest(s, http.MethodDelete, "/api/products/"+created.Data.ID, "")
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = doRequest(s, http.MethodGet, "/api/products", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), "BEV001")
}

func TestCreateProductValidationError(t *testing.T) {
	s := newTestServer(t)

	w := doRequest(s, http.MethodPost, "/api/products", `{"name":"No SKU"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "validation_error")
}

func TestUpdateMissingProductReturns404(t *testing.T) {
	s := newTestServer(t)

	w := doRequest(s, http.MethodPatch, "/api/products/12345", `{"quantity":5}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDashboard(t *testing.T) {
	s := newTestServer(t)

	w := doRequest(s, http.MethodPost, "/api/products",
		`{"sku":"DRY001","name":"Milk 1L","category":"Dairy","quantity":8,"price":3.99,"reorderLevel":10}`)
	require.Equal(t, http.StatusOK, w.Code)

	w = doRequest(s, http.MethodGet, "/api/dashboard", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"totalProducts":1`)
	assert.Contains(t, w.Body.String(), `"lowStockCount":1`)
}

func TestDownloadReport(t *testing.T) {
	s := newTestServer(t)

	w := doRequest(s, http.MethodGet, "/api/reports/inventory", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "inventory-report-")
	assert.Contains(t, w.Header().Get("Content-Disposition"), ".pdf")
	assert.NotEmpty(t, w.Body.Bytes())
}

func TestDownloadUnknownReportType(t *testing.T) {
	s := newTestServer(t)

	w := doRequest(s, http.MethodGet, "/api/reports/payroll", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestOrderStatusEndpoint(t *testing.T) {
	s := newTestServer(t)

	w := doRequest(s, http.MethodPost, "/api/vendors",
		`{"name":"Fresh Dairy Co","email":"info@freshdairy.com","paymentTerms":"Net 15"}`)
	require.Equal(t, http.StatusOK, w.Code)
	var vendor struct {
		Data struct {
			ID string `json:"id"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &vendor))

	w = doRequest(s, http.MethodPost, "/api/products",
		`{"sku":"DRY001","name":"Milk 1L","price":3.99}`)
	require.Equal(t, http.StatusOK, w.Code)
	var product struct {
		Data struct {
			ID string `json:"id"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &product))

	w = doRequest(s, http.MethodPost, "/api/orders",
		`{"vendorId":"`+vendor.Data.ID+`","items":[{"productId":"`+product.Data.ID+`","quantity":2}]}`)
	require.Equal(t, http.StatusOK, w.Code)
	var order struct {
		Data struct {
			ID string `json:"id"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &order))

	w = doRequest(s, http.MethodPost, "/api/orders/"+order.Data.ID+"/status", `{"status":"processing"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"processing"`)

	// completed orders reject further transitions
	w = doRequest(s, http.MethodPost, "/api/orders/"+order.Data.ID+"/status", `{"status":"completed"}`)
	require.Equal(t, http.StatusOK, w.Code)
	w = doRequest(s, http.MethodPost, "/api/orders/"+order.Data.ID+"/status", `{"status":"pending"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
