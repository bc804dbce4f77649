package othello

import (
	"fmt"
	"strings"
)

// Coord is a square on the board. X is the column, Y is the row.
type Coord struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Valid checks if the coordinate lies on the board.
func (c Coord) Valid() bool {
	return onBoard(c.X, c.Y)
}

// String returns the field notation of the coordinate, e.g. "c4".
func (c Coord) String() string {
	if !c.Valid() {
		return "??"
	}
	return string([]byte{byte('a' + c.X), byte('1' + c.Y)})
}

// ParseCoord converts a field notation (e.g. "a1", "h8") to a coordinate.
func ParseCoord(field string) (Coord, error) {
	if len(field) != 2 {
		return Coord{}, fmt.Errorf("%w: invalid field length: %q", ErrInvalidCoordinate, field)
	}

	field = strings.ToLower(field)

	if !('a' <= field[0] && field[0] <= 'h' && '1' <= field[1] && field[1] <= '8') {
		return Coord{}, fmt.Errorf("%w: invalid field: %q", ErrInvalidCoordinate, field)
	}

	return Coord{X: int(field[0] - 'a'), Y: int(field[1] - '1')}, nil
}

// FlipRecord holds everything needed to take back one applied move.
type FlipRecord struct {
	// Move is the square the disc was placed on.
	Move Coord

	// Color is the color of the placed disc.
	Color Cell

	// Flipped lists the discs that changed to Color, grouped per direction.
	Flipped []Coord
}

// ApplyMove plays (x, y) for the side to move, flips the enclosed discs and passes the turn.
// The board is left untouched when an error is returned.
func (b *Board) ApplyMove(x, y int) (FlipRecord, error) {
	if !onBoard(x, y) {
		return FlipRecord{}, fmt.Errorf("%w: (%d,%d)", ErrInvalidCoordinate, x, y)
	}

	color := b.turn
	flipped := b.flippable(x, y, color)
	if len(flipped) == 0 {
		return FlipRecord{}, fmt.Errorf("%w: %s for %s", ErrIllegalMove, Coord{X: x, Y: y}, color)
	}

	b.set(x, y, color)
	for _, c := range flipped {
		b.set(c.X, c.Y, color)
	}
	b.ToggleTurn()

	return FlipRecord{
		Move:    Coord{X: x, Y: y},
		Color:   color,
		Flipped: flipped,
	}, nil
}

// UndoMove reverts the move described by record. Records must be undone in the
// reverse order they were applied; a record that does not match the board panics.
func (b *Board) UndoMove(record FlipRecord) {
	opponent := record.Color.Opponent()

	if opponent == Empty || b.turn != opponent || !record.Move.Valid() ||
		b.get(record.Move.X, record.Move.Y) != record.Color {
		panic(fmt.Sprintf("undo of %s by %s does not match board %s", record.Move, record.Color, b))
	}

	for _, c := range record.Flipped {
		if b.get(c.X, c.Y) != record.Color {
			panic(fmt.Sprintf("undo of %s: flipped square %s is not %s", record.Move, c, record.Color))
		}
		b.set(c.X, c.Y, opponent)
	}

	b.set(record.Move.X, record.Move.Y, Empty)
	b.turn = record.Color
}
