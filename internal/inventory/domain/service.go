package domain

import (
	"context"
	"errors"
)

type ListProductsRequest struct {
	Search   string
	Category string
}

type CreateProductRequest struct {
	SKU          string
	Name         string
	Category     string
	Quantity     int
	Price        float64
	ReorderLevel int
}

type ListVendorsRequest struct {
	Search string
}

type CreateVendorRequest struct {
	Name         string
	Email        string
	Phone        string
	Address      string
	Category     string
	PaymentTerms string
}

type ListOrdersRequest struct {
	Search string
	Status string
}

type CreateOrderItem struct {
	ProductID string
	Quantity  int
}

type CreateOrderRequest struct {
	VendorID string
	Items    []CreateOrderItem
}

// DashboardResponse carries the derived metrics behind the dashboard view.
type DashboardResponse struct {
	TotalProducts  int             `json:"totalProducts"`
	TotalOrders    int             `json:"totalOrders"`
	PendingOrders  int             `json:"pendingOrders"`
	InventoryValue float64         `json:"inventoryValue"`
	LowStockCount  int             `json:"lowStockCount"`
	LowStock       []Product       `json:"lowStock"`
	Categories     []CategoryCount `json:"categories"`
}

// CategoryCount is one bar of the category distribution chart.
type CategoryCount struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
}

// Service is the form-layer surface over the inventory store: it
// validates input, generates identities, assembles orders and applies
// the order-status transition policy the store itself does not enforce.
type Service interface {
	ListProducts(ctx context.Context, req ListProductsRequest) ([]Product, error)
	CreateProduct(ctx context.Context, req CreateProductRequest) (Product, error)
	UpdateProduct(ctx context.Context, id string, patch ProductPatch) (Product, error)
	DeleteProduct(ctx context.Context, id string) error

	ListVendors(ctx context.Context, req ListVendorsRequest) ([]Vendor, error)
	CreateVendor(ctx context.Context, req CreateVendorRequest) (Vendor, error)
	UpdateVendor(ctx context.Context, id string, patch VendorPatch) (Vendor, error)
	DeleteVendor(ctx context.Context, id string) error

	ListOrders(ctx context.Context, req ListOrdersRequest) ([]Order, error)
	CreateOrder(ctx context.Context, req CreateOrderRequest) (Order, error)
	UpdateOrderStatus(ctx context.Context, id string, status OrderStatus) (Order, error)

	Dashboard(ctx context.Context) (DashboardResponse, error)
}

var (
	ErrInvalidID           = errors.New("invalid_id")
	ErrInvalidSKU          = errors.New("invalid_sku")
	ErrInvalidName         = errors.New("invalid_name")
	ErrInvalidEmail        = errors.New("invalid_email")
	ErrInvalidQuantity     = errors.New("invalid_quantity")
	ErrInvalidPrice        = errors.New("invalid_price")
	ErrInvalidReorderLevel = errors.New("invalid_reorder_level")
	ErrInvalidPaymentTerms = errors.New("invalid_payment_terms")
	ErrInvalidVendor       = errors.New("invalid_vendor")
	ErrInvalidItems        = errors.New("invalid_items")
	ErrInvalidStatus       = errors.New("invalid_status")
	ErrInvalidTransition   = errors.New("invalid_transition")
	ErrNotFound            = errors.New("not_found")
)
