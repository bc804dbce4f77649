package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/satoshiokita/reversi/internal/config"
	"github.com/satoshiokita/reversi/internal/models"
	"github.com/satoshiokita/reversi/internal/services"
)

// ErrGameNotFound is returned when no game is stored under an ID.
var ErrGameNotFound = errors.New("game not found")

// GameStore keeps the current position of running games.
type GameStore interface {
	Save(ctx context.Context, snapshot models.GameSnapshot) error
	Load(ctx context.Context, id string) (models.GameSnapshot, error)
	Delete(ctx context.Context, id string) error
}

// NewGameStore creates the store selected by cfg.Store.
func NewGameStore(ctx context.Context, cfg *config.ServerConfig, services *services.Services) (GameStore, error) {
	switch cfg.Store {
	case config.StoreMemory:
		return NewMemoryGameStore(), nil
	case config.StoreRedis:
		return NewRedisGameStore(services.Redis), nil
	case config.StorePostgres:
		store := NewPostgresGameStore(services.Postgres)
		if err := store.Migrate(ctx); err != nil {
			return nil, err
		}
		return store, nil
	default:
		return nil, fmt.Errorf("unknown game store: %s", cfg.Store)
	}
}
