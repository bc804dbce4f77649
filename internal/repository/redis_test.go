package repository

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/satoshiokita/reversi/internal/engine"
	"github.com/satoshiokita/reversi/internal/models"
	"github.com/satoshiokita/reversi/internal/services"
	"github.com/stretchr/testify/require"
)

func newMiniredisGameStore(t *testing.T) (*RedisGameStore, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)

	client, err := services.InitRedis(context.Background(), "redis://"+mr.Addr())
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	return NewRedisGameStore(client), mr
}

func TestRedisGameStore(t *testing.T) {
	store, _ := newMiniredisGameStore(t)
	testGameStore(t, store)
}

func TestRedisGameStore_KeyAndTTL(t *testing.T) {
	ctx := context.Background()
	store, mr := newMiniredisGameStore(t)

	id := uuid.New().String()
	snapshot := models.NewGameSnapshot(id, engine.NewGame())
	require.NoError(t, store.Save(ctx, snapshot))

	require.Equal(t, []string{"games:" + id}, mr.Keys())
	require.Equal(t, gamesTTL, mr.TTL("games:"+id))

	raw, err := mr.Get("games:" + id)
	require.NoError(t, err)

	var stored models.GameSnapshot
	require.NoError(t, json.Unmarshal([]byte(raw), &stored))
	require.Equal(t, snapshot.Board, stored.Board)

	// Saving again refreshes the expiry.
	mr.FastForward(gamesTTL / 2)
	require.NoError(t, store.Save(ctx, snapshot))
	require.Equal(t, gamesTTL, mr.TTL("games:"+id))

	mr.FastForward(gamesTTL)
	_, err = store.Load(ctx, id)
	require.ErrorIs(t, err, ErrGameNotFound)
}

func TestRedisGameStore_CorruptValue(t *testing.T) {
	store, mr := newMiniredisGameStore(t)

	id := uuid.New().String()
	require.NoError(t, mr.Set("games:"+id, "{"))

	_, err := store.Load(context.Background(), id)
	require.Error(t, err)
	require.NotErrorIs(t, err, ErrGameNotFound)
}

func TestRedisGameStore_ConnectionError(t *testing.T) {
	store, mr := newMiniredisGameStore(t)
	mr.Close()

	ctx := context.Background()
	id := uuid.New().String()

	require.Error(t, store.Save(ctx, models.NewGameSnapshot(id, engine.NewGame())))

	_, err := store.Load(ctx, id)
	require.Error(t, err)
	require.NotErrorIs(t, err, ErrGameNotFound)
}
