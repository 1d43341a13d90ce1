package bootstrap

import (
	"context"
	"fmt"

	"github.com/jhoicas/bloodbank-api/internal/domain/repository"
	"github.com/jhoicas/bloodbank-api/internal/infrastructure/filestore"
	"github.com/jhoicas/bloodbank-api/internal/infrastructure/memory"
	"github.com/jhoicas/bloodbank-api/internal/infrastructure/postgres"
	"github.com/jhoicas/bloodbank-api/internal/infrastructure/redisstore"
	"github.com/jhoicas/bloodbank-api/pkg/config"
	"github.com/jhoicas/bloodbank-api/pkg/logger"
)

// OpenStore abre el backend de persistencia indicado por STORAGE_DRIVER.
// El closer libera conexiones; nunca es nil.
func OpenStore(ctx context.Context, cfg *config.Config, log *logger.Logger) (repository.KeyValueStore, func(), error) {
	noop := func() {}
	switch cfg.Storage.Driver {
	case config.StorageMemory:
		log.Warn().Msg("storage en memoria: los datos se pierden al reiniciar")
		return memory.NewKVStore(), noop, nil

	case config.StorageFile:
		store, err := filestore.NewKVStore(cfg.Storage.Dir)
		if err != nil {
			return nil, noop, err
		}
		log.Info().Str("dir", cfg.Storage.Dir).Msg("storage en archivos")
		return store, noop, nil

	case config.StorageRedis:
		client := redisstore.NewClient(cfg.Redis)
		if err := redisstore.Ping(ctx, client); err != nil {
			_ = client.Close()
			return nil, noop, fmt.Errorf("conexión a Redis %s: %w", cfg.Redis.Addr, err)
		}
		log.Info().Str("addr", cfg.Redis.Addr).Str("prefix", cfg.Redis.KeyPrefix).Msg("storage en Redis")
		return redisstore.NewKVStore(client, cfg.Redis.KeyPrefix), func() { _ = client.Close() }, nil

	case config.StoragePostgres:
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			return nil, noop, fmt.Errorf("conexión a PostgreSQL: %w", err)
		}
		store := postgres.NewKVStore(pool)
		if err := store.EnsureSchema(ctx); err != nil {
			pool.Close()
			return nil, noop, err
		}
		log.Info().Msg("storage en PostgreSQL")
		return store, pool.Close, nil
	}
	return nil, noop, fmt.Errorf("storage driver desconocido %q", cfg.Storage.Driver)
}
