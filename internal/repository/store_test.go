package repository

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/satoshiokita/reversi/internal/engine"
	"github.com/satoshiokita/reversi/internal/models"
	"github.com/stretchr/testify/require"
)

func requireSnapshotEqual(t *testing.T, expected, actual models.GameSnapshot) {
	t.Helper()

	require.Equal(t, expected.ID, actual.ID)
	require.Equal(t, expected.Board, actual.Board)
	require.Equal(t, expected.SearchLevel, actual.SearchLevel)

	// Postgres keeps microseconds only.
	require.WithinDuration(t, expected.UpdatedAt, actual.UpdatedAt, time.Millisecond)
}

// testGameStore runs the behavior every GameStore backend shares.
func testGameStore(t *testing.T, store GameStore) {
	t.Helper()

	ctx := context.Background()
	id := uuid.New().String()
	otherID := uuid.New().String()

	_, err := store.Load(ctx, id)
	require.ErrorIs(t, err, ErrGameNotFound)
	require.ErrorIs(t, store.Delete(ctx, id), ErrGameNotFound)

	game := engine.NewGame(engine.WithSearchLevel(3))
	snapshot := models.NewGameSnapshot(id, game)
	require.NoError(t, store.Save(ctx, snapshot))

	other := models.NewGameSnapshot(otherID, engine.NewGame())
	require.NoError(t, store.Save(ctx, other))

	loaded, err := store.Load(ctx, id)
	require.NoError(t, err)
	requireSnapshotEqual(t, snapshot, loaded)

	restored, err := loaded.Game()
	require.NoError(t, err)
	require.True(t, restored.Board().Equal(game.Board()))
	require.Equal(t, 3, restored.SearchLevel())

	// Saving under an existing ID replaces the stored game.
	_, err = game.PlayHuman(2, 3)
	require.NoError(t, err)
	updated := models.NewGameSnapshot(id, game)
	require.NoError(t, store.Save(ctx, updated))

	loaded, err = store.Load(ctx, id)
	require.NoError(t, err)
	requireSnapshotEqual(t, updated, loaded)
	require.NotEqual(t, snapshot.Board, loaded.Board)

	require.NoError(t, store.Delete(ctx, id))

	_, err = store.Load(ctx, id)
	require.ErrorIs(t, err, ErrGameNotFound)
	require.ErrorIs(t, store.Delete(ctx, id), ErrGameNotFound)

	loaded, err = store.Load(ctx, otherID)
	require.NoError(t, err)
	requireSnapshotEqual(t, other, loaded)

	require.NoError(t, store.Delete(ctx, otherID))
}
