package othello

import "errors"

var (
	// ErrInvalidCoordinate is returned for squares outside the 8x8 board.
	ErrInvalidCoordinate = errors.New("invalid coordinate")

	// ErrIllegalMove is returned when a square is occupied or captures nothing.
	ErrIllegalMove = errors.New("illegal move")
)
