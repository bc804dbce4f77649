package engine

import (
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/satoshiokita/reversi/internal/othello"
)

// DefaultSearchLevel is the search depth used when none is configured.
const DefaultSearchLevel = 2

// Result is the outcome of a search.
type Result struct {
	// Move is the chosen move, only meaningful if HasMove is set.
	Move othello.Coord

	// HasMove is false when the search stopped at the root: depth 0 or no legal move.
	HasMove bool

	// Score is the minimax value of the root.
	Score int

	// Nodes is the number of visited positions.
	Nodes uint64
}

// searcher explores the game tree by mutating the board and undoing every move.
type searcher struct {
	board *othello.Board
	nodes uint64
}

// Search runs a depth-limited minimax on board with White maximizing at the root.
// The board is modified during the search and restored before returning.
func Search(board *othello.Board, depth int) Result {
	startTime := time.Now()
	s := &searcher{board: board}

	s.nodes++
	if depth <= 0 || !board.HasAnyLegalMove() {
		return Result{Score: Evaluate(board), Nodes: s.nodes}
	}

	result := Result{HasMove: true, Score: math.MinInt}
	for _, move := range board.LegalMoves() {
		score := s.child(move, false, depth)

		// Strictly greater, so the first move in row-major order wins ties.
		if score > result.Score {
			result.Score = score
			result.Move = move
		}
	}
	result.Nodes = s.nodes

	slog.Debug("search finished",
		"depth", depth,
		"move", result.Move.String(),
		"score", result.Score,
		"nodes", result.Nodes,
		"elapsed", time.Since(startTime),
	)

	return result
}

// BestMove returns the move Search would pick, or false if there is none.
func BestMove(board *othello.Board, depth int) (othello.Coord, bool) {
	result := Search(board, depth)
	return result.Move, result.HasMove
}

// child plays move, evaluates the resulting position and takes the move back.
func (s *searcher) child(move othello.Coord, maximizing bool, depth int) int {
	record, err := s.board.ApplyMove(move.X, move.Y)
	if err != nil {
		panic(fmt.Sprintf("legal move %s was rejected: %v", move, err))
	}
	defer s.board.UndoMove(record)

	return s.minimax(maximizing, depth-1)
}

func (s *searcher) minimax(maximizing bool, depth int) int {
	s.nodes++

	if depth == 0 || !s.board.HasAnyLegalMove() {
		return Evaluate(s.board)
	}

	best := math.MaxInt
	if maximizing {
		best = math.MinInt
	}

	for _, move := range s.board.LegalMoves() {
		score := s.child(move, !maximizing, depth)

		if maximizing && score > best || !maximizing && score < best {
			best = score
		}
	}

	return best
}
