package engine

import "github.com/satoshiokita/reversi/internal/othello"

// placeWeights scores each square. Corners cannot be flipped, squares next to
// them give the corner away.
var placeWeights = [othello.Size][othello.Size]int{
	{120, -20, 20, 5, 5, 20, -20, 120},
	{-20, -40, -5, -5, -5, -5, -40, -20},
	{20, -5, 15, 3, 3, 15, -5, 20},
	{5, -5, 3, 3, 3, 3, -5, 5},
	{5, -5, 3, 3, 3, 3, -5, 5},
	{20, -5, 15, 3, 3, 15, -5, 20},
	{-20, -40, -5, -5, -5, -5, -40, -20},
	{120, -20, 20, 5, 5, 20, -20, 120},
}

// Evaluate returns the positional score of the board. Higher is better for
// White, the side the computer plays and the maximizing side of Search.
func Evaluate(board *othello.Board) int {
	cells := board.Cells()

	sum := 0
	for y := range othello.Size {
		for x := range othello.Size {
			switch cells[y][x] {
			case othello.Black:
				sum += placeWeights[y][x]
			case othello.White:
				sum -= placeWeights[y][x]
			}
		}
	}
	return -sum
}
