package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/smallbiznis/stockroom/internal/inventory/domain"
	"github.com/smallbiznis/stockroom/internal/inventory/metrics"
	"github.com/smallbiznis/stockroom/internal/inventory/store"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

type Params struct {
	fx.In

	Log   *zap.Logger
	GenID *snowflake.Node
	Store *store.Store
}

type Service struct {
	log   *zap.Logger
	genID *snowflake.Node
	store *store.Store
	now   func() time.Time
}

func New(p Params) domain.Service {
	return &Service{
		log:   p.Log.Named("inventory.service"),
		genID: p.GenID,
		store: p.Store,
		now:   time.Now,
	}
}

func (s *Service) ListProducts(ctx context.Context, req domain.ListProductsRequest) ([]domain.Product, error) {
	_ = ctx
	search := strings.ToLower(strings.TrimSpace(req.Search))
	category := strings.TrimSpace(req.Category)

	out := make([]domain.Product, 0)
	for _, p := range s.store.Products() {
		if category != "" && p.Category != category {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(p.Name), search) &&
			!strings.Contains(strings.ToLower(p.SKU), search) &&
			!strings.Contains(strings.ToLower(p.Category), search) {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

func (s *Service) CreateProduct(ctx context.Context, req domain.CreateProductRequest) (domain.Product, error) {
	sku := strings.TrimSpace(req.SKU)
	if sku == "" {
		return domain.Product{}, domain.ErrInvalidSKU
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return domain.Product{}, domain.ErrInvalidName
	}
	if req.Quantity < 0 {
		return domain.Product{}, domain.ErrInvalidQuantity
	}
	if req.Price < 0 {
		return domain.Product{}, domain.ErrInvalidPrice
	}
	if req.ReorderLevel < 0 {
		return domain.Product{}, domain.ErrInvalidReorderLevel
	}

	product := domain.Product{
		ID:           s.genID.Generate(),
		SKU:          sku,
		Name:         name,
		Category:     strings.TrimSpace(req.Category),
		Quantity:     req.Quantity,
		Price:        req.Price,
		ReorderLevel: req.ReorderLevel,
	}
	s.store.AddProduct(ctx, product)
	return product, nil
}

func (s *Service) UpdateProduct(ctx context.Context, id string, patch domain.ProductPatch) (domain.Product, error) {
	productID, err := s.parseID(id)
	if err != nil {
		return domain.Product{}, err
	}
	if _, ok := s.store.FindProduct(productID); !ok {
		return domain.Product{}, domain.ErrNotFound
	}

	if patch.SKU != nil && strings.TrimSpace(*patch.SKU) == "" {
		return domain.Product{}, domain.ErrInvalidSKU
	}
	if patch.Name != nil && strings.TrimSpace(*patch.Name) == "" {
		return domain.Product{}, domain.ErrInvalidName
	}
	if patch.Quantity != nil && *patch.Quantity < 0 {
		return domain.Product{}, domain.ErrInvalidQuantity
	}
	if patch.Price != nil && *patch.Price < 0 {
		return domain.Product{}, domain.ErrInvalidPrice
	}
	if patch.ReorderLevel != nil && *patch.ReorderLevel < 0 {
		return domain.Product{}, domain.ErrInvalidReorderLevel
	}

	s.store.UpdateProduct(ctx, productID, patch)
	product, _ := s.store.FindProduct(productID)
	return product, nil
}

// DeleteProduct removes the product. Deleting an absent id is an
// accepted no-op; orders keep their denormalized product snapshots.
func (s *Service) DeleteProduct(ctx context.Context, id string) error {
	productID, err := s.parseID(id)
	if err != nil {
		return err
	}
	s.store.DeleteProduct(ctx, productID)
	return nil
}

func (s *Service) ListVendors(ctx context.Context, req domain.ListVendorsRequest) ([]domain.Vendor, error) {
	_ = ctx
	search := strings.ToLower(strings.TrimSpace(req.Search))

	out := make([]domain.Vendor, 0)
	for _, v := range s.store.Vendors() {
		if search != "" &&
			!strings.Contains(strings.ToLower(v.Name), search) &&
			!strings.Contains(strings.ToLower(v.Email), search) &&
			!strings.Contains(strings.ToLower(v.Category), search) {
			continue
		}
		out = append(out, v)
	}
	return out, nil
}

func (s *Service) CreateVendor(ctx context.Context, req domain.CreateVendorRequest) (domain.Vendor, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return domain.Vendor{}, domain.ErrInvalidName
	}
	email := strings.TrimSpace(req.Email)
	if email == "" || !strings.Contains(email, "@") {
		return domain.Vendor{}, domain.ErrInvalidEmail
	}
	terms := strings.TrimSpace(req.PaymentTerms)
	if !domain.ValidPaymentTerms(terms) {
		return domain.Vendor{}, domain.ErrInvalidPaymentTerms
	}

	vendor := domain.Vendor{
		ID:           s.genID.Generate(),
		Name:         name,
		Email:        email,
		Phone:        strings.TrimSpace(req.Phone),
		Address:      strings.TrimSpace(req.Address),
		Category:     strings.TrimSpace(req.Category),
		PaymentTerms: terms,
	}
	s.store.AddVendor(ctx, vendor)
	return vendor, nil
}

func (s *Service) UpdateVendor(ctx context.Context, id string, patch domain.VendorPatch) (domain.Vendor, error) {
	vendorID, err := s.parseID(id)
	if err != nil {
		return domain.Vendor{}, err
	}
	if _, ok := s.store.FindVendor(vendorID); !ok {
		return domain.Vendor{}, domain.ErrNotFound
	}

	if patch.Name != nil && strings.TrimSpace(*patch.Name) == "" {
		return domain.Vendor{}, domain.ErrInvalidName
	}
	if patch.Email != nil && !strings.Contains(*patch.Email, "@") {
		return domain.Vendor{}, domain.ErrInvalidEmail
	}
	if patch.PaymentTerms != nil && !domain.ValidPaymentTerms(*patch.PaymentTerms) {
		return domain.Vendor{}, domain.ErrInvalidPaymentTerms
	}

	s.store.UpdateVendor(ctx, vendorID, patch)
	vendor, _ := s.store.FindVendor(vendorID)
	return vendor, nil
}

// DeleteVendor removes the vendor. Orders referencing it keep the
// denormalized vendor name; nothing cascades.
func (s *Service) DeleteVendor(ctx context.Context, id string) error {
	vendorID, err := s.parseID(id)
	if err != nil {
		return err
	}
	s.store.DeleteVendor(ctx, vendorID)
	return nil
}

func (s *Service) ListOrders(ctx context.Context, req domain.ListOrdersRequest) ([]domain.Order, error) {
	_ = ctx
	search := strings.ToLower(strings.TrimSpace(req.Search))
	status := strings.TrimSpace(req.Status)

	out := make([]domain.Order, 0)
	for _, o := range s.store.Orders() {
		if status != "" && status != "all" && string(o.Status) != status {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(o.OrderNumber), search) &&
			!strings.Contains(strings.ToLower(o.VendorName), search) {
			continue
		}
		out = append(out, o)
	}
	return out, nil
}

// CreateOrder assembles a purchase order from current state: vendor
// name and per-item product names and prices are copied at creation
// time, and the total amount is computed once. Later product or vendor
// edits never touch the order.
func (s *Service) CreateOrder(ctx context.Context, req domain.CreateOrderRequest) (domain.Order, error) {
	vendorID, err := s.parseID(req.VendorID)
	if err != nil {
		return domain.Order{}, domain.ErrInvalidVendor
	}
	vendor, ok := s.store.FindVendor(vendorID)
	if !ok {
		return domain.Order{}, domain.ErrInvalidVendor
	}
	if len(req.Items) == 0 {
		return domain.Order{}, domain.ErrInvalidItems
	}

	items := make([]domain.OrderItem, 0, len(req.Items))
	var total float64
	for _, item := range req.Items {
		productID, err := s.parseID(item.ProductID)
		if err != nil {
			return domain.Order{}, domain.ErrInvalidItems
		}
		product, ok := s.store.FindProduct(productID)
		if !ok {
			return domain.Order{}, domain.ErrInvalidItems
		}
		if item.Quantity < 1 {
			return domain.Order{}, domain.ErrInvalidQuantity
		}
		items = append(items, domain.OrderItem{
			ProductID:   product.ID,
			ProductName: product.Name,
			Quantity:    item.Quantity,
			Price:       product.Price,
		})
		total += float64(item.Quantity) * product.Price
	}

	now := s.now()
	order := domain.Order{
		ID:          s.genID.Generate(),
		OrderNumber: orderNumber(now),
		VendorID:    vendor.ID,
		VendorName:  vendor.Name,
		Date:        now,
		Items:       items,
		TotalAmount: total,
		Status:      domain.StatusPending,
	}
	s.store.AddOrder(ctx, order)
	return order, nil
}

// UpdateOrderStatus applies the transition policy: pending may move to
// processing, completed or cancelled; processing to completed or
// cancelled; completed and cancelled are terminal. Re-applying the
// current status is an idempotent no-op. The store below accepts any
// status; the policy lives here only.
func (s *Service) UpdateOrderStatus(ctx context.Context, id string, status domain.OrderStatus) (domain.Order, error) {
	orderID, err := s.parseID(id)
	if err != nil {
		return domain.Order{}, err
	}
	if !status.Valid() {
		return domain.Order{}, domain.ErrInvalidStatus
	}

	order, ok := s.store.FindOrder(orderID)
	if !ok {
		return domain.Order{}, domain.ErrNotFound
	}
	if !order.Status.CanTransition(status) {
		return domain.Order{}, domain.ErrInvalidTransition
	}

	s.store.UpdateOrderStatus(ctx, orderID, status)
	order, _ = s.store.FindOrder(orderID)
	return order, nil
}

func (s *Service) Dashboard(ctx context.Context) (domain.DashboardResponse, error) {
	_ = ctx
	products := s.store.Products()
	orders := s.store.Orders()

	lowStock := metrics.LowStock(products)
	return domain.DashboardResponse{
		TotalProducts:  len(products),
		TotalOrders:    len(orders),
		PendingOrders:  metrics.PendingOrders(orders),
		InventoryValue: metrics.InventoryValue(products),
		LowStockCount:  len(lowStock),
		LowStock:       lowStock,
		Categories:     metrics.CategoryDistribution(products),
	}, nil
}

func (s *Service) parseID(value string) (snowflake.ID, error) {
	id, err := snowflake.ParseString(strings.TrimSpace(value))
	if err != nil {
		return 0, domain.ErrInvalidID
	}
	return id, nil
}

// orderNumber derives the human-readable purchase order number from the
// creation timestamp: PO- plus the last six digits of the epoch millis.
func orderNumber(t time.Time) string {
	return fmt.Sprintf("PO-%06d", t.UnixMilli()%1_000_000)
}
