package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
)

// Product is a stocked item. The SKU is user-assigned and distinct from
// the internal identity; duplicate SKUs are not rejected.
type Product struct {
	ID           snowflake.ID `json:"id"`
	SKU          string       `json:"sku"`
	Name         string       `json:"name"`
	Category     string       `json:"category"`
	Quantity     int          `json:"quantity"`
	Price        float64      `json:"price"`
	ReorderLevel int          `json:"reorderLevel"`
}

// Vendor is a supplier purchase orders are placed against.
type Vendor struct {
	ID           snowflake.ID `json:"id"`
	Name         string       `json:"name"`
	Email        string       `json:"email"`
	Phone        string       `json:"phone"`
	Address      string       `json:"address"`
	Category     string       `json:"category"`
	PaymentTerms string       `json:"paymentTerms"`
}

// PaymentTermsOptions is the fixed set of vendor payment terms.
var PaymentTermsOptions = []string{
	"Net 15",
	"Net 30",
	"Net 45",
	"Net 60",
	"Due on Receipt",
}

// ValidPaymentTerms reports whether terms is one of PaymentTermsOptions.
func ValidPaymentTerms(terms string) bool {
	for _, t := range PaymentTermsOptions {
		if t == terms {
			return true
		}
	}
	return false
}

type OrderStatus string

const (
	StatusPending    OrderStatus = "pending"
	StatusProcessing OrderStatus = "processing"
	StatusCompleted  OrderStatus = "completed"
	StatusCancelled  OrderStatus = "cancelled"
)

// Valid reports whether s is a known order status.
func (s OrderStatus) Valid() bool {
	switch s {
	case StatusPending, StatusProcessing, StatusCompleted, StatusCancelled:
		return true
	default:
		return false
	}
}

// Terminal reports whether no transition out of s exists.
func (s OrderStatus) Terminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// CanTransition reports whether the status may move from s to next.
// Re-applying the current status is accepted so repeated updates stay
// idempotent. pending may move to processing, completed or cancelled;
// processing may move to completed or cancelled.
func (s OrderStatus) CanTransition(next OrderStatus) bool {
	if s == next {
		return true
	}
	switch s {
	case StatusPending:
		return next == StatusProcessing || next == StatusCompleted || next == StatusCancelled
	case StatusProcessing:
		return next == StatusCompleted || next == StatusCancelled
	default:
		return false
	}
}

// OrderItem is a line of a purchase order. Product name and unit price
// are copied from the product at order-creation time so later edits or
// deletions never alter order history.
type OrderItem struct {
	ProductID   snowflake.ID `json:"productId"`
	ProductName string       `json:"productName"`
	Quantity    int          `json:"quantity"`
	Price       float64      `json:"price"`
}

// Order is a purchase order. Orders are immutable after creation except
// for their status; TotalAmount is computed once at creation and never
// recomputed.
type Order struct {
	ID          snowflake.ID `json:"id"`
	OrderNumber string       `json:"orderNumber"`
	VendorID    snowflake.ID `json:"vendorId"`
	VendorName  string       `json:"vendorName"`
	Date        time.Time    `json:"date"`
	Items       []OrderItem  `json:"items"`
	TotalAmount float64      `json:"totalAmount"`
	Status      OrderStatus  `json:"status"`
}
