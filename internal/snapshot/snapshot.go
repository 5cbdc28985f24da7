package snapshot

import (
	"context"

	"github.com/smallbiznis/stockroom/internal/inventory/domain"
)

// Namespace is the fixed key the whole application state is persisted under.
const Namespace = "inventory-storage"

// State is the persisted snapshot: the three collections verbatim, as
// they exist in memory. There is no versioning and no migration logic.
type State struct {
	Products []domain.Product `json:"products"`
	Vendors  []domain.Vendor  `json:"vendors"`
	Orders   []domain.Order   `json:"orders"`
}

// Store is the persistence port for the application state. Load reads
// the snapshot once at startup; Save overwrites it on every mutation.
// The second Load result reports whether a snapshot existed.
type Store interface {
	Load(ctx context.Context) (*State, bool, error)
	Save(ctx context.Context, state State) error
}

// NoopStore discards snapshots. Used when persistence is disabled and in tests.
type NoopStore struct{}

func (NoopStore) Load(ctx context.Context) (*State, bool, error) { return nil, false, nil }

func (NoopStore) Save(ctx context.Context, state State) error { return nil }
