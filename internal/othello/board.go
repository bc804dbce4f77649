package othello

import (
	"fmt"
	"strings"
)

// Size is the width and height of the board.
const Size = 8

// Cell is the content of a single square.
type Cell uint8

const (
	Empty Cell = iota
	Black
	White
)

// Opponent returns the other color. Empty has no opponent.
func (c Cell) Opponent() Cell {
	switch c {
	case Black:
		return White
	case White:
		return Black
	default:
		return Empty
	}
}

func (c Cell) String() string {
	switch c {
	case Black:
		return "black"
	case White:
		return "white"
	default:
		return "empty"
	}
}

// Tally counts the squares per content.
type Tally struct {
	Black int
	White int
	Empty int
}

// Board represents an Othello board with cell contents and turn information.
type Board struct {
	cells [Size][Size]Cell
	turn  Cell
}

// NewBoardStart creates a new board with the starting position.
func NewBoardStart() *Board {
	b := &Board{}
	b.Reset()
	return b
}

// NewBoardEmpty creates a board without any discs, black to move.
func NewBoardEmpty() *Board {
	return &Board{turn: Black}
}

// NewBoardFromString creates a new board from the representation returned by String.
func NewBoardFromString(s string) (*Board, error) {
	if len(s) != Size*Size+2 {
		return nil, fmt.Errorf("board string must be %d characters long, got %d", Size*Size+2, len(s))
	}

	b := &Board{}

	for i := range Size * Size {
		switch s[i] {
		case 'x':
			b.cells[i/Size][i%Size] = Black
		case 'o':
			b.cells[i/Size][i%Size] = White
		case '.':
		default:
			return nil, fmt.Errorf("invalid square character %q at index %d", s[i], i)
		}
	}

	switch s[Size*Size:] {
	case "-b":
		b.turn = Black
	case "-w":
		b.turn = White
	default:
		return nil, fmt.Errorf("invalid turn: %s", s[Size*Size:])
	}

	return b, nil
}

// Reset puts the board back in the starting position with black to move.
func (b *Board) Reset() {
	b.cells = [Size][Size]Cell{}
	b.cells[3][3] = White
	b.cells[3][4] = Black
	b.cells[4][3] = Black
	b.cells[4][4] = White
	b.turn = Black
}

func onBoard(x, y int) bool {
	return 0 <= x && x < Size && 0 <= y && y < Size
}

// Get returns the content of square (x, y).
func (b *Board) Get(x, y int) (Cell, error) {
	if !onBoard(x, y) {
		return Empty, fmt.Errorf("%w: (%d,%d)", ErrInvalidCoordinate, x, y)
	}
	return b.cells[y][x], nil
}

// Cells returns a copy of all squares, indexed as [y][x].
func (b *Board) Cells() [Size][Size]Cell {
	return b.cells
}

// get is Get without range checks.
func (b *Board) get(x, y int) Cell {
	return b.cells[y][x]
}

func (b *Board) set(x, y int, c Cell) {
	b.cells[y][x] = c
}

// Turn returns the color to move.
func (b *Board) Turn() Cell {
	return b.turn
}

// ToggleTurn hands the move to the other color.
func (b *Board) ToggleTurn() {
	b.turn = b.turn.Opponent()
}

// Tally counts black, white and empty squares.
func (b *Board) Tally() Tally {
	var t Tally
	for y := range Size {
		for x := range Size {
			switch b.cells[y][x] {
			case Black:
				t.Black++
			case White:
				t.White++
			default:
				t.Empty++
			}
		}
	}
	return t
}

// Clone returns an independent copy of the board.
func (b *Board) Clone() *Board {
	clone := *b
	return &clone
}

// Equal checks if two boards have the same squares and turn.
func (b *Board) Equal(other *Board) bool {
	return b.cells == other.cells && b.turn == other.turn
}

// ASCIIArtLines returns the ascii art lines for the board. Legal moves are shown as dots.
func (b *Board) ASCIIArtLines() []string {
	lines := make([]string, Size+2)

	lines[0] = "+-a-b-c-d-e-f-g-h-+"
	for y := range Size {
		var line strings.Builder
		fmt.Fprintf(&line, "%d ", y+1)

		for x := range Size {
			switch {
			case b.cells[y][x] == White:
				line.WriteString("○ ")
			case b.cells[y][x] == Black:
				line.WriteString("● ")
			case b.IsLegal(x, y):
				line.WriteString("· ")
			default:
				line.WriteString("  ")
			}
		}

		lines[y+1] = line.String() + "|"
	}

	lines[Size+1] = "+-----------------+"

	return lines
}

// Print prints the board to the console. This is used for debugging.
func (b *Board) Print() {
	for _, line := range b.ASCIIArtLines() {
		fmt.Println(line)
	}
}

// String returns the string representation of the board.
func (b *Board) String() string {
	var sb strings.Builder
	sb.Grow(Size*Size + 2)

	for y := range Size {
		for x := range Size {
			switch b.cells[y][x] {
			case Black:
				sb.WriteByte('x')
			case White:
				sb.WriteByte('o')
			default:
				sb.WriteByte('.')
			}
		}
	}

	if b.turn == White {
		sb.WriteString("-w")
	} else {
		sb.WriteString("-b")
	}

	return sb.String()
}
