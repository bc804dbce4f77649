package ws

import (
	"encoding/json"
)

type Incoming struct {
	Event string          `json:"event"`
	ID    int             `json:"id"`
	Data  json.RawMessage `json:"data"`
}

type Outgoing struct {
	ID    int    `json:"id"`
	Data  any    `json:"data,omitempty"`
	Error string `json:"error,omitempty"`
}

// NewGameRequest is the data of a new_game event.
type NewGameRequest struct {
	SearchLevel int `json:"search_level"`
}

// GameRequest is the data of state, move and pass events.
type GameRequest struct {
	GameID string `json:"game_id"`
	Move   string `json:"move,omitempty"`
}
