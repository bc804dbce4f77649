package othello

// directions holds the 8 compass steps as (dx, dy).
var directions = [8][2]int{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

// captureLength returns how many opponent discs are enclosed when color plays
// on (x, y) and walks in direction (dx, dy). Zero means the direction does not
// capture anything.
func (b *Board) captureLength(x, y, dx, dy int, color Cell) int {
	opponent := color.Opponent()

	s := 1
	for {
		curx, cury := x+dx*s, y+dy*s
		if !onBoard(curx, cury) {
			return 0
		}

		switch b.get(curx, cury) {
		case opponent:
			s++
		case color:
			return s - 1
		default:
			return 0
		}
	}
}

// legalFor checks if color may play on (x, y).
func (b *Board) legalFor(x, y int, color Cell) bool {
	if !onBoard(x, y) || b.get(x, y) != Empty {
		return false
	}

	for _, dir := range directions {
		if b.captureLength(x, y, dir[0], dir[1], color) > 0 {
			return true
		}
	}

	return false
}

// IsLegal checks if the side to move may play on (x, y).
func (b *Board) IsLegal(x, y int) bool {
	return b.legalFor(x, y, b.turn)
}

// FlippableCells returns the discs that would flip if the side to move played on (x, y).
// It returns nil for illegal moves.
func (b *Board) FlippableCells(x, y int) []Coord {
	return b.flippable(x, y, b.turn)
}

func (b *Board) flippable(x, y int, color Cell) []Coord {
	if !onBoard(x, y) || b.get(x, y) != Empty {
		return nil
	}

	var flipped []Coord
	for _, dir := range directions {
		dx, dy := dir[0], dir[1]
		n := b.captureLength(x, y, dx, dy, color)
		for dist := 1; dist <= n; dist++ {
			flipped = append(flipped, Coord{X: x + dx*dist, Y: y + dy*dist})
		}
	}

	return flipped
}

// CanMove checks if color has at least one legal move, regardless of whose turn it is.
func (b *Board) CanMove(color Cell) bool {
	for y := range Size {
		for x := range Size {
			if b.legalFor(x, y, color) {
				return true
			}
		}
	}
	return false
}

// HasAnyLegalMove checks if the side to move has a legal move.
func (b *Board) HasAnyLegalMove() bool {
	return b.CanMove(b.turn)
}

// CountLegalMoves returns the number of legal moves for the side to move.
func (b *Board) CountLegalMoves() int {
	count := 0
	for y := range Size {
		for x := range Size {
			if b.IsLegal(x, y) {
				count++
			}
		}
	}
	return count
}

// LegalMoves returns the legal moves for the side to move in row-major order.
func (b *Board) LegalMoves() []Coord {
	moves := make([]Coord, 0, Size)
	for y := range Size {
		for x := range Size {
			if b.IsLegal(x, y) {
				moves = append(moves, Coord{X: x, Y: y})
			}
		}
	}
	return moves
}
