package services

import (
	"context"
	"errors"
	"log/slog"

	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
	"github.com/satoshiokita/reversi/internal/config"
)

// Services contains the connections to the external services.
// Only the connection needed by the configured game store is set.
type Services struct {
	Postgres *sqlx.DB
	Redis    *redis.Client
}

// InitServices connects to the services required by cfg.Store.
func InitServices(ctx context.Context, cfg *config.ServerConfig) (*Services, error) {
	services := &Services{}

	switch cfg.Store {
	case config.StoreRedis:
		redis, err := InitRedis(ctx, cfg.RedisURL)
		if err != nil {
			return nil, err
		}
		services.Redis = redis
	case config.StorePostgres:
		postgres, err := InitPostgres(ctx, cfg.PostgresURL)
		if err != nil {
			return nil, err
		}
		services.Postgres = postgres
	}

	slog.Info("Services initialized", "store", cfg.Store)

	return services, nil
}

// Close closes all open connections.
func (s *Services) Close() error {
	var errs []error

	if s.Redis != nil {
		errs = append(errs, s.Redis.Close())
	}

	if s.Postgres != nil {
		errs = append(errs, s.Postgres.Close())
	}

	return errors.Join(errs...)
}
