package engine

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/satoshiokita/reversi/internal/othello"
)

const (
	// Human is the color played by the person at the board.
	Human = othello.Black

	// Computer is the color played by the search. Evaluate scores from its perspective.
	Computer = othello.White
)

var (
	// ErrNotYourTurn is returned when a side tries to move out of turn.
	ErrNotYourTurn = errors.New("not your turn")

	// ErrGameOver is returned for moves after neither side can play.
	ErrGameOver = errors.New("game is over")
)

// Ply is one step of the game as seen by the UI: a placed disc or a pass.
type Ply struct {
	Color   othello.Cell
	Move    othello.Coord
	Pass    bool
	Flipped []othello.Coord
}

// Game is a human versus computer game. It owns its board and is not safe for concurrent use.
type Game struct {
	board       *othello.Board
	searchLevel int
}

// Option configures a Game.
type Option func(*Game)

// WithSearchLevel sets the depth of the computer's search.
func WithSearchLevel(level int) Option {
	return func(g *Game) {
		g.searchLevel = level
	}
}

// WithBoard starts the game from a custom board instead of the starting position.
func WithBoard(board *othello.Board) Option {
	return func(g *Game) {
		g.board = board
	}
}

// NewGame creates a new game in the starting position.
func NewGame(opts ...Option) *Game {
	g := &Game{
		board:       othello.NewBoardStart(),
		searchLevel: DefaultSearchLevel,
	}

	for _, opt := range opts {
		opt(g)
	}

	if g.searchLevel < 1 {
		g.searchLevel = 1
	}

	return g
}

// Reset starts a new game on the same board.
func (g *Game) Reset() {
	g.board.Reset()
}

// Board returns a copy of the current board.
func (g *Game) Board() *othello.Board {
	return g.board.Clone()
}

// SearchLevel returns the depth of the computer's search.
func (g *Game) SearchLevel() int {
	return g.searchLevel
}

// Get returns the content of square (x, y).
func (g *Game) Get(x, y int) (othello.Cell, error) {
	return g.board.Get(x, y)
}

// IsLegal checks if the side to move may play on (x, y).
func (g *Game) IsLegal(x, y int) bool {
	return g.board.IsLegal(x, y)
}

// CountLegalMoves returns the number of legal moves for the side to move.
func (g *Game) CountLegalMoves() int {
	return g.board.CountLegalMoves()
}

// LegalMoves returns the legal moves for the side to move.
func (g *Game) LegalMoves() []othello.Coord {
	return g.board.LegalMoves()
}

// Turn returns the color to move.
func (g *Game) Turn() othello.Cell {
	return g.board.Turn()
}

// Tally returns the disc count of both colors.
func (g *Game) Tally() othello.Tally {
	return g.board.Tally()
}

// Over checks if the board is full or neither side can move.
func (g *Game) Over() bool {
	if g.board.Tally().Empty == 0 {
		return true
	}
	return !g.board.CanMove(othello.Black) && !g.board.CanMove(othello.White)
}

// Winner returns the color with most discs, or Empty for a draw.
func (g *Game) Winner() othello.Cell {
	tally := g.board.Tally()
	switch {
	case tally.Black > tally.White:
		return othello.Black
	case tally.White > tally.Black:
		return othello.White
	default:
		return othello.Empty
	}
}

// play applies a move for the side to move and converts the record to a Ply.
func (g *Game) play(move othello.Coord) (Ply, error) {
	record, err := g.board.ApplyMove(move.X, move.Y)
	if err != nil {
		return Ply{}, err
	}

	return Ply{
		Color:   record.Color,
		Move:    record.Move,
		Flipped: record.Flipped,
	}, nil
}

// pass hands the turn to the other side and returns the pass as a Ply.
func (g *Game) pass() Ply {
	color := g.board.Turn()
	g.board.ToggleTurn()

	slog.Info("forced pass", "color", color.String())

	return Ply{Color: color, Pass: true}
}

// Pass gives up the turn. It is only allowed when the side to move has no legal move.
func (g *Game) Pass() (Ply, error) {
	if g.Over() {
		return Ply{}, ErrGameOver
	}

	if g.board.HasAnyLegalMove() {
		return Ply{}, fmt.Errorf("%w: pass with %d legal moves", othello.ErrIllegalMove, g.board.CountLegalMoves())
	}

	return g.pass(), nil
}

// PlayHuman plays the human move on (x, y). If the computer has no reply but the
// human can still move, the computer passes and the returned plies include that pass.
func (g *Game) PlayHuman(x, y int) ([]Ply, error) {
	if g.Over() {
		return nil, ErrGameOver
	}

	if g.board.Turn() != Human {
		return nil, fmt.Errorf("%w: %s to move", ErrNotYourTurn, g.board.Turn())
	}

	ply, err := g.play(othello.Coord{X: x, Y: y})
	if err != nil {
		return nil, err
	}

	plies := []Ply{ply}

	if !g.board.HasAnyLegalMove() && g.board.CanMove(Human) {
		plies = append(plies, g.pass())
	}

	g.logIfOver()

	return plies, nil
}

// PlayComputer searches and plays computer moves. As long as the human is forced
// to pass, the computer keeps moving; it returns once the human can play or the
// game is over.
func (g *Game) PlayComputer() ([]Ply, error) {
	if g.Over() {
		return nil, ErrGameOver
	}

	if g.board.Turn() != Computer {
		return nil, fmt.Errorf("%w: %s to move", ErrNotYourTurn, g.board.Turn())
	}

	var plies []Ply

	for {
		move, ok := BestMove(g.board, g.searchLevel)
		if !ok {
			plies = append(plies, g.pass())
			break
		}

		ply, err := g.play(move)
		if err != nil {
			panic(fmt.Sprintf("search returned illegal move %s: %v", move, err))
		}
		plies = append(plies, ply)

		if g.board.HasAnyLegalMove() {
			break
		}

		// The human is forced to pass. If the computer is blocked as well, the game ends.
		if !g.board.CanMove(Computer) {
			break
		}

		plies = append(plies, g.pass())
	}

	g.logIfOver()

	return plies, nil
}

func (g *Game) logIfOver() {
	if !g.Over() {
		return
	}

	tally := g.board.Tally()
	slog.Info("game over", "black", tally.Black, "white", tally.White, "winner", g.Winner().String())
}
