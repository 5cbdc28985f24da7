package inventory

import (
	"context"

	"github.com/smallbiznis/stockroom/internal/config"
	"github.com/smallbiznis/stockroom/internal/inventory/service"
	"github.com/smallbiznis/stockroom/internal/inventory/store"
	"github.com/smallbiznis/stockroom/internal/seed"
	"github.com/smallbiznis/stockroom/internal/snapshot"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

var Module = fx.Module("inventory",
	fx.Provide(store.New),
	fx.Provide(service.New),
	fx.Invoke(bootstrap),
)

// bootstrap reads the persisted snapshot once at startup. An empty
// snapshot triggers the demo seed when enabled.
func bootstrap(cfg config.Config, log *zap.Logger, snaps snapshot.Store, st *store.Store) error {
	ctx := context.Background()

	state, ok, err := snaps.Load(ctx)
	if err != nil {
		return err
	}
	if ok && state != nil {
		st.Restore(*state)
		log.Info("snapshot restored",
			zap.Int("products", len(state.Products)),
			zap.Int("vendors", len(state.Vendors)),
			zap.Int("orders", len(state.Orders)),
		)
		return nil
	}

	if cfg.SeedDemoData {
		seed.Apply(ctx, st)
		log.Info("demo data seeded")
	}
	return nil
}
