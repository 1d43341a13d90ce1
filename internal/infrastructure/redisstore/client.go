package redisstore

import (
	"context"

	"github.com/go-redis/redis/v8"

	"github.com/jhoicas/bloodbank-api/pkg/config"
)

// NewClient crea el cliente Redis a partir de la configuración.
func NewClient(cfg config.RedisConfig) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
}

// Ping prueba la conexión.
func Ping(ctx context.Context, client *redis.Client) error {
	return client.Ping(ctx).Err()
}
