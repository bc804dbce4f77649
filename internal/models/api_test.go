package models

import (
	"testing"

	"github.com/satoshiokita/reversi/internal/engine"
	"github.com/satoshiokita/reversi/internal/othello"
	"github.com/stretchr/testify/require"
)

func TestGameSnapshot(t *testing.T) {
	game := engine.NewGame(engine.WithSearchLevel(3))
	_, err := game.PlayHuman(2, 3)
	require.NoError(t, err)

	snapshot := NewGameSnapshot("some-id", game)
	require.Equal(t, "some-id", snapshot.ID)
	require.Equal(t, 3, snapshot.SearchLevel)
	require.False(t, snapshot.UpdatedAt.IsZero())

	restored, err := snapshot.Game()
	require.NoError(t, err)
	require.True(t, game.Board().Equal(restored.Board()))
	require.Equal(t, 3, restored.SearchLevel())
}

func TestGameSnapshotInvalidBoard(t *testing.T) {
	snapshot := GameSnapshot{ID: "broken", Board: "nope"}

	_, err := snapshot.Game()
	require.Error(t, err)
}

func TestMoveRequest_Coord(t *testing.T) {
	req := MoveRequest{Move: "d3"}
	coord, err := req.Coord()
	require.NoError(t, err)
	require.Equal(t, othello.Coord{X: 3, Y: 2}, coord)

	req = MoveRequest{}
	_, err = req.Coord()
	require.Error(t, err)

	req = MoveRequest{Move: "z9"}
	_, err = req.Coord()
	require.ErrorIs(t, err, othello.ErrInvalidCoordinate)
}

func TestNewGameRequest_Validate(t *testing.T) {
	require.NoError(t, (&NewGameRequest{}).Validate(8))
	require.NoError(t, (&NewGameRequest{SearchLevel: 8}).Validate(8))
	require.NoError(t, (&NewGameRequest{SearchLevel: 1}).Validate(8))
	require.EqualError(t, (&NewGameRequest{SearchLevel: 9}).Validate(8), "search_level must be between 0 (default) and 8")
	require.EqualError(t, (&NewGameRequest{SearchLevel: -1}).Validate(8), "search_level must be between 0 (default) and 8")
}

func TestNewGameState(t *testing.T) {
	state := NewGameState("id", engine.NewGame())

	require.Equal(t, "id", state.ID)
	require.Equal(t, "black", state.Turn)
	require.Equal(t, 2, state.Black)
	require.Equal(t, 2, state.White)
	require.Equal(t, []string{"d3", "c4", "f5", "e6"}, state.LegalMoves)
	require.Len(t, state.Rows, 8)
	require.Equal(t, "...ox...", state.Rows[3])
	require.False(t, state.Over)
	require.Empty(t, state.Winner)
}

func TestNewPlyResponses(t *testing.T) {
	responses := NewPlyResponses([]engine.Ply{
		{Color: othello.Black, Move: othello.Coord{X: 2, Y: 3}, Flipped: []othello.Coord{{X: 3, Y: 3}}},
		{Color: othello.White, Pass: true},
	})

	require.Equal(t, []PlyResponse{
		{Color: "black", Move: "c4", Flipped: []string{"d4"}},
		{Color: "white", Pass: true, Flipped: []string{}},
	}, responses)
}
