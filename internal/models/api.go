package models

import (
	"errors"
	"fmt"
	"time"

	"github.com/satoshiokita/reversi/internal/engine"
	"github.com/satoshiokita/reversi/internal/othello"
)

// GameSnapshot is the stored form of a game: the current board only, no move history.
type GameSnapshot struct {
	ID          string    `json:"id"           db:"id"`
	Board       string    `json:"board"        db:"board"`
	SearchLevel int       `json:"search_level" db:"search_level"`
	UpdatedAt   time.Time `json:"updated_at"   db:"updated_at"`
}

// NewGameSnapshot captures the current state of game.
func NewGameSnapshot(id string, game *engine.Game) GameSnapshot {
	return GameSnapshot{
		ID:          id,
		Board:       game.Board().String(),
		SearchLevel: game.SearchLevel(),
		UpdatedAt:   time.Now().UTC(),
	}
}

// Game restores the game stored in the snapshot.
func (s GameSnapshot) Game() (*engine.Game, error) {
	board, err := othello.NewBoardFromString(s.Board)
	if err != nil {
		return nil, fmt.Errorf("invalid board in snapshot %s: %w", s.ID, err)
	}

	return engine.NewGame(engine.WithBoard(board), engine.WithSearchLevel(s.SearchLevel)), nil
}

// NewGameRequest represents the payload for creating a game.
type NewGameRequest struct {
	// SearchLevel overrides the configured search depth if set. Zero keeps the default.
	SearchLevel int `json:"search_level"`
}

// Validate validates the new game request.
func (r *NewGameRequest) Validate(maxSearchLevel int) error {
	if r.SearchLevel < 0 || r.SearchLevel > maxSearchLevel {
		return fmt.Errorf("search_level must be between 0 (default) and %d", maxSearchLevel)
	}
	return nil
}

// MoveRequest represents the payload for a human move.
type MoveRequest struct {
	Move string `json:"move"`
}

// Coord parses the requested move.
func (r *MoveRequest) Coord() (othello.Coord, error) {
	if r.Move == "" {
		return othello.Coord{}, errors.New("move is empty or missing")
	}
	return othello.ParseCoord(r.Move)
}

// GameState is the view of a game used for drawing it.
type GameState struct {
	ID         string   `json:"id"`
	Board      string   `json:"board"`
	Rows       []string `json:"rows"`
	Turn       string   `json:"turn"`
	Black      int      `json:"black"`
	White      int      `json:"white"`
	LegalMoves []string `json:"legal_moves"`
	Over       bool     `json:"over"`
	Winner     string   `json:"winner,omitempty"`
}

// NewGameState builds the view of game.
func NewGameState(id string, game *engine.Game) GameState {
	board := game.Board()
	serialized := board.String()

	rows := make([]string, othello.Size)
	for y := range othello.Size {
		rows[y] = serialized[y*othello.Size : (y+1)*othello.Size]
	}

	legalMoves := make([]string, 0)
	for _, move := range board.LegalMoves() {
		legalMoves = append(legalMoves, move.String())
	}

	tally := board.Tally()

	state := GameState{
		ID:         id,
		Board:      serialized,
		Rows:       rows,
		Turn:       board.Turn().String(),
		Black:      tally.Black,
		White:      tally.White,
		LegalMoves: legalMoves,
		Over:       game.Over(),
	}

	if state.Over {
		state.Winner = game.Winner().String()
		if game.Winner() == othello.Empty {
			state.Winner = "draw"
		}
	}

	return state
}

// PlyResponse describes a single placed disc or pass.
type PlyResponse struct {
	Color   string   `json:"color"`
	Move    string   `json:"move,omitempty"`
	Pass    bool     `json:"pass"`
	Flipped []string `json:"flipped"`
}

// NewPlyResponses converts engine plies for the API.
func NewPlyResponses(plies []engine.Ply) []PlyResponse {
	responses := make([]PlyResponse, len(plies))
	for i, ply := range plies {
		flipped := make([]string, len(ply.Flipped))
		for j, c := range ply.Flipped {
			flipped[j] = c.String()
		}

		responses[i] = PlyResponse{
			Color:   ply.Color.String(),
			Pass:    ply.Pass,
			Flipped: flipped,
		}

		if !ply.Pass {
			responses[i].Move = ply.Move.String()
		}
	}
	return responses
}

// MoveResponse is returned after a human move and the computer's reply.
type MoveResponse struct {
	Plies []PlyResponse `json:"plies"`
	State GameState     `json:"state"`
}
