package othello

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// boardFromRows builds a board from 8 rows of 'x', 'o' and '.' characters.
func boardFromRows(t *testing.T, turn Cell, rows ...string) *Board {
	t.Helper()
	require.Len(t, rows, Size)

	s := ""
	for _, row := range rows {
		require.Len(t, row, Size)
		s += row
	}

	if turn == White {
		s += "-w"
	} else {
		s += "-b"
	}

	board, err := NewBoardFromString(s)
	require.NoError(t, err)
	return board
}

func TestBoard_IsLegalStart(t *testing.T) {
	board := NewBoardStart()

	legal := []Coord{{3, 2}, {2, 3}, {5, 4}, {4, 5}}
	require.Equal(t, legal, board.LegalMoves())
	require.Equal(t, 4, board.CountLegalMoves())
	require.True(t, board.HasAnyLegalMove())

	for _, c := range legal {
		require.True(t, board.IsLegal(c.X, c.Y), "move %s should be legal", c)
	}

	// corners, occupied center squares and off-board squares
	for _, c := range []Coord{{0, 0}, {7, 7}, {3, 3}, {4, 4}, {-1, 3}, {8, 3}} {
		require.False(t, board.IsLegal(c.X, c.Y), "move %v should be illegal", c)
	}
}

func TestBoard_FlippableCellsOpening(t *testing.T) {
	board := NewBoardStart()

	require.True(t, board.IsLegal(2, 3))
	require.Equal(t, []Coord{{3, 3}}, board.FlippableCells(2, 3))
}

func TestBoard_FlippableCellsMultipleDirections(t *testing.T) {
	board := boardFromRows(t, Black,
		"x.x.x...",
		".ooo....",
		"xo.oo...",
		".ooo....",
		"x.x.x...",
		"........",
		"........",
		"........",
	)

	flipped := board.FlippableCells(2, 2)

	// Every direction except east closes on a black disc.
	require.ElementsMatch(t, []Coord{
		{1, 1}, {2, 1}, {3, 1},
		{1, 2},
		{1, 3}, {2, 3}, {3, 3},
	}, flipped)
	require.NotContains(t, flipped, Coord{3, 2})
	require.NotContains(t, flipped, Coord{4, 2})
}

func TestBoard_FlippableCellsOpenLines(t *testing.T) {
	// Lines running off the board or into an empty square do not capture.
	board := boardFromRows(t, Black,
		"oo......",
		"........",
		"..oo.x..",
		"........",
		"........",
		"........",
		"........",
		"........",
	)

	require.Empty(t, board.FlippableCells(2, 0))
	require.False(t, board.IsLegal(2, 0))

	require.Empty(t, board.FlippableCells(1, 2))
	require.False(t, board.IsLegal(1, 2))

	closed := boardFromRows(t, Black,
		"........",
		"........",
		".oox....",
		"........",
		"........",
		"........",
		"........",
		"........",
	)
	require.Equal(t, []Coord{{1, 2}, {2, 2}}, closed.FlippableCells(0, 2))
}

func TestBoard_FlippableCellsOccupied(t *testing.T) {
	board := NewBoardStart()
	require.Nil(t, board.FlippableCells(3, 3))
	require.Nil(t, board.FlippableCells(-1, -1))
}

func TestBoard_NoLegalMoves(t *testing.T) {
	board := boardFromRows(t, White,
		"xxxxxxxx",
		"xxxxxxxx",
		"xxxxxxxx",
		"xxx..xxx",
		"xxxxxxxx",
		"xxxxxxxx",
		"xxxxxxxx",
		"xxxxxxxx",
	)

	require.Equal(t, 0, board.CountLegalMoves())
	require.False(t, board.HasAnyLegalMove())
	require.Empty(t, board.LegalMoves())

	for y := range Size {
		for x := range Size {
			require.False(t, board.IsLegal(x, y))
		}
	}

	require.False(t, board.CanMove(Black))
}

func TestBoard_CanMove(t *testing.T) {
	board := NewBoardStart()

	require.True(t, board.CanMove(Black))
	require.True(t, board.CanMove(White))
	require.False(t, board.CanMove(Empty))
}
