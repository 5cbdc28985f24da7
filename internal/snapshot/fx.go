package snapshot

import (
	"context"

	"github.com/redis/go-redis/v9"
	"github.com/smallbiznis/stockroom/internal/config"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// Module provides the snapshot store for the configured backend.
var Module = fx.Module("snapshot",
	fx.Provide(New),
)

type Params struct {
	fx.In

	Lc  fx.Lifecycle
	Cfg config.Config
	DB  *gorm.DB
}

func New(p Params) (Store, error) {
	switch p.Cfg.SnapshotBackend {
	case config.SnapshotBackendRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     p.Cfg.RedisAddr,
			Password: p.Cfg.RedisPassword,
			DB:       p.Cfg.RedisDB,
		})
		p.Lc.Append(fx.Hook{
			OnStop: func(ctx context.Context) error {
				_ = ctx
				return client.Close()
			},
		})
		return NewRedisStore(client), nil
	case config.SnapshotBackendNone:
		return NoopStore{}, nil
	default:
		return NewGormStore(p.DB)
	}
}
