// Package store holds the application state: the product, vendor and
// order collections. It is the single source of truth; every read the
// HTTP surface serves derives from it.
//
// The store applies mutations verbatim. It performs no validation, no
// SKU deduplication and no status-transition checks; that discipline
// lives in the service layer above it. Missing ids degrade silently to
// no-ops. Every mutation synchronously writes the snapshot through the
// persistence port; a failed write is logged and the in-memory state
// stays authoritative.
package store

import (
	"context"
	"sync"

	"github.com/bwmarrin/snowflake"
	"github.com/smallbiznis/stockroom/internal/inventory/domain"
	"github.com/smallbiznis/stockroom/internal/snapshot"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

type Params struct {
	fx.In

	Log       *zap.Logger
	Snapshots snapshot.Store
}

type Store struct {
	mu        sync.RWMutex
	log       *zap.Logger
	snapshots snapshot.Store

	products []domain.Product
	vendors  []domain.Vendor
	orders   []domain.Order
}

func New(p Params) *Store {
	return &Store{
		log:       p.Log.Named("inventory.store"),
		snapshots: p.Snapshots,
		products:  []domain.Product{},
		vendors:   []domain.Vendor{},
		orders:    []domain.Order{},
	}
}

// Restore replaces the whole state from a loaded snapshot without
// writing it back.
func (s *Store) Restore(state snapshot.State) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.products = append([]domain.Product{}, state.Products...)
	s.vendors = append([]domain.Vendor{}, state.Vendors...)
	s.orders = cloneOrders(state.Orders)
}

// State returns a deep copy of the three collections.
func (s *Store) State() snapshot.State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.stateLocked()
}

func (s *Store) stateLocked() snapshot.State {
	return snapshot.State{
		Products: append([]domain.Product{}, s.products...),
		Vendors:  append([]domain.Vendor{}, s.vendors...),
		Orders:   cloneOrders(s.orders),
	}
}

// Products returns a copy of the product collection.
func (s *Store) Products() []domain.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.Product{}, s.products...)
}

// Vendors returns a copy of the vendor collection.
func (s *Store) Vendors() []domain.Vendor {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.Vendor{}, s.vendors...)
}

// Orders returns a deep copy of the order collection.
func (s *Store) Orders() []domain.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneOrders(s.orders)
}

// FindProduct looks a product up by id.
func (s *Store) FindProduct(id snowflake.ID) (domain.Product, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.products {
		if p.ID == id {
			return p, true
		}
	}
	return domain.Product{}, false
}

// FindVendor looks a vendor up by id.
func (s *Store) FindVendor(id snowflake.ID) (domain.Vendor, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, v := range s.vendors {
		if v.ID == id {
			return v, true
		}
	}
	return domain.Vendor{}, false
}

// FindOrder looks an order up by id.
func (s *Store) FindOrder(id snowflake.ID) (domain.Order, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, o := range s.orders {
		if o.ID == id {
			return cloneOrder(o), true
		}
	}
	return domain.Order{}, false
}

// AddProduct appends to the product collection. The caller supplies the
// identity; SKUs are not deduplicated.
func (s *Store) AddProduct(ctx context.Context, p domain.Product) {
	s.mu.Lock()
	s.products = append(s.products, p)
	state := s.stateLocked()
	s.mu.Unlock()
	s.persist(ctx, state)
}

// UpdateProduct merges the patch onto the matching product. No-op when
// the id is not found.
func (s *Store) UpdateProduct(ctx context.Context, id snowflake.ID, patch domain.ProductPatch) {
	s.mu.Lock()
	changed := false
	for i := range s.products {
		if s.products[i].ID == id {
			patch.Apply(&s.products[i])
			changed = true
			break
		}
	}
	state := s.stateLocked()
	s.mu.Unlock()
	if changed {
		s.persist(ctx, state)
	}
}

// DeleteProduct removes the matching product. No-op when the id is not
// found. Orders referencing the product keep their denormalized copies.
func (s *Store) DeleteProduct(ctx context.Context, id snowflake.ID) {
	s.mu.Lock()
	changed := false
	for i := range s.products {
		if s.products[i].ID == id {
			s.products = append(s.products[:i], s.products[i+1:]...)
			changed = true
			break
		}
	}
	state := s.stateLocked()
	s.mu.Unlock()
	if changed {
		s.persist(ctx, state)
	}
}

// AddVendor appends to the vendor collection.
func (s *Store) AddVendor(ctx context.Context, v domain.Vendor) {
	s.mu.Lock()
	s.vendors = append(s.vendors, v)
	state := s.stateLocked()
	s.mu.Unlock()
	s.persist(ctx, state)
}

// UpdateVendor merges the patch onto the matching vendor. No-op when
// the id is not found.
func (s *Store) UpdateVendor(ctx context.Context, id snowflake.ID, patch domain.VendorPatch) {
	s.mu.Lock()
	changed := false
	for i := range s.vendors {
		if s.vendors[i].ID == id {
			patch.Apply(&s.vendors[i])
			changed = true
			break
		}
	}
	state := s.stateLocked()
	s.mu.Unlock()
	if changed {
		s.persist(ctx, state)
	}
}

// DeleteVendor removes the matching vendor. No-op when the id is not
// found. Orders keep the denormalized vendor name.
func (s *Store) DeleteVendor(ctx context.Context, id snowflake.ID) {
	s.mu.Lock()
	changed := false
	for i := range s.vendors {
		if s.vendors[i].ID == id {
			s.vendors = append(s.vendors[:i], s.vendors[i+1:]...)
			changed = true
			break
		}
	}
	state := s.stateLocked()
	s.mu.Unlock()
	if changed {
		s.persist(ctx, state)
	}
}

// AddOrder appends a fully-formed order. The caller has already
// computed the total and denormalized names and prices; the store
// recomputes nothing.
func (s *Store) AddOrder(ctx context.Context, o domain.Order) {
	s.mu.Lock()
	s.orders = append(s.orders, cloneOrder(o))
	state := s.stateLocked()
	s.mu.Unlock()
	s.persist(ctx, state)
}

// UpdateOrderStatus overwrites the status of the matching order
// unconditionally; the transition policy lives in the service layer.
// No-op when the id is not found.
func (s *Store) UpdateOrderStatus(ctx context.Context, id snowflake.ID, status domain.OrderStatus) {
	s.mu.Lock()
	changed := false
	for i := range s.orders {
		if s.orders[i].ID == id {
			s.orders[i].Status = status
			changed = true
			break
		}
	}
	state := s.stateLocked()
	s.mu.Unlock()
	if changed {
		s.persist(ctx, state)
	}
}

func (s *Store) persist(ctx context.Context, state snapshot.State) {
	if err := s.snapshots.Save(ctx, state); err != nil {
		s.log.Error("save snapshot", zap.Error(err))
	}
}

func cloneOrders(orders []domain.Order) []domain.Order {
	out := make([]domain.Order, len(orders))
	for i, o := range orders {
		out[i] = cloneOrder(o)
	}
	return out
}

func cloneOrder(o domain.Order) domain.Order {
	o.Items = append([]domain.OrderItem{}, o.Items...)
	return o
}
