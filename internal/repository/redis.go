package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/satoshiokita/reversi/internal/models"
)

const (
	gamesKeyPrefix = "games:"
	gamesTTL       = 24 * time.Hour
)

// RedisGameStore keeps games in Redis. Idle games expire after gamesTTL.
type RedisGameStore struct {
	redis *redis.Client
}

func NewRedisGameStore(client *redis.Client) *RedisGameStore {
	return &RedisGameStore{redis: client}
}

func gameKey(id string) string {
	return gamesKeyPrefix + id
}

func (s *RedisGameStore) Save(ctx context.Context, snapshot models.GameSnapshot) error {
	jsonData, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("error marshaling game: %w", err)
	}

	if err = s.redis.Set(ctx, gameKey(snapshot.ID), jsonData, gamesTTL).Err(); err != nil {
		return fmt.Errorf("error storing game: %w", err)
	}

	return nil
}

func (s *RedisGameStore) Load(ctx context.Context, id string) (models.GameSnapshot, error) {
	jsonData, err := s.redis.Get(ctx, gameKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return models.GameSnapshot{}, ErrGameNotFound
	}
	if err != nil {
		return models.GameSnapshot{}, fmt.Errorf("error getting game: %w", err)
	}

	var snapshot models.GameSnapshot
	if err = json.Unmarshal(jsonData, &snapshot); err != nil {
		return models.GameSnapshot{}, fmt.Errorf("error unmarshaling game: %w", err)
	}

	return snapshot, nil
}

func (s *RedisGameStore) Delete(ctx context.Context, id string) error {
	deleted, err := s.redis.Del(ctx, gameKey(id)).Result()
	if err != nil {
		return fmt.Errorf("error deleting game: %w", err)
	}

	if deleted == 0 {
		return ErrGameNotFound
	}

	return nil
}
