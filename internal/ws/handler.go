package ws

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/gofiber/contrib/websocket"
	"github.com/satoshiokita/reversi/internal/config"
	"github.com/satoshiokita/reversi/internal/models"
	"github.com/satoshiokita/reversi/internal/repository"
)

const (
	storeTimeout = 5 * time.Second
)

// Conn is the part of a websocket connection used by Handler.
type Conn interface {
	ReadMessage() (int, []byte, error)
	WriteMessage(messageType int, data []byte) error
}

type Handler struct {
	games *repository.GameRepository
	ws    Conn
}

// NewHandler creates a new Handler.
func NewHandler(ws Conn, games *repository.GameRepository) *Handler {
	return &Handler{games: games, ws: ws}
}

func (h *Handler) readMessage() (*Incoming, error) {
	var req Incoming

	msgType, msg, err := h.ws.ReadMessage()
	if err != nil {
		return nil, fmt.Errorf("ws read error: %w", err)
	}

	slog.Debug("read ws message", "msgType", msgType, "msg", string(msg))

	if msgType != websocket.TextMessage {
		return nil, fmt.Errorf("unexpected message type: %d", msgType)
	}

	if err = json.Unmarshal(msg, &req); err != nil {
		return nil, fmt.Errorf("unmarshal error: %w", err)
	}

	return &req, nil
}

func (h *Handler) writeMessage(outgoing *Outgoing) error {
	msg, err := json.Marshal(outgoing)
	if err != nil {
		return fmt.Errorf("marshal error: %w", err)
	}

	slog.Debug("write ws message", "msg", string(msg))

	if err = h.ws.WriteMessage(websocket.TextMessage, msg); err != nil {
		return fmt.Errorf("write error: %w", err)
	}

	return nil
}

func (h *Handler) handleMessage(req *Incoming) (any, error) {
	if req.Event == "" {
		return nil, errors.New("event field is either empty or missing")
	}

	ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
	defer cancel()

	switch req.Event {
	case "new_game":
		return h.handleNewGame(ctx, req)
	case "state":
		return h.handleState(ctx, req)
	case "move":
		return h.handleMove(ctx, req)
	case "pass":
		return h.handlePass(ctx, req)
	default:
		return nil, fmt.Errorf("unknown event: %s", req.Event)
	}
}

// Handle handles the websocket connection. Failed requests are answered with an
// error message; the connection is only closed on transport errors.
func (h *Handler) Handle() error {
	for {
		req, err := h.readMessage()
		if err != nil {
			return err
		}

		outgoing := &Outgoing{ID: req.ID}

		data, err := h.handleMessage(req)
		if err != nil {
			outgoing.Error = err.Error()
		} else {
			outgoing.Data = data
		}

		if err = h.writeMessage(outgoing); err != nil {
			return fmt.Errorf("ws write error: %w", err)
		}
	}
}

func unmarshalData(req *Incoming, v any) error {
	if len(req.Data) == 0 {
		return fmt.Errorf("%s: data field is missing", req.Event)
	}

	if err := json.Unmarshal(req.Data, v); err != nil {
		return fmt.Errorf("%s: invalid data: %w", req.Event, err)
	}

	return nil
}

func (h *Handler) handleNewGame(ctx context.Context, req *Incoming) (any, error) {
	var reqData NewGameRequest
	if len(req.Data) > 0 {
		if err := unmarshalData(req, &reqData); err != nil {
			return nil, err
		}
	}

	newGame := models.NewGameRequest{SearchLevel: reqData.SearchLevel}
	if err := newGame.Validate(config.MaxSearchLevel); err != nil {
		return nil, err
	}

	return h.games.Create(ctx, newGame.SearchLevel)
}

func (h *Handler) handleState(ctx context.Context, req *Incoming) (any, error) {
	var reqData GameRequest
	if err := unmarshalData(req, &reqData); err != nil {
		return nil, err
	}

	return h.games.State(ctx, reqData.GameID)
}

func (h *Handler) handleMove(ctx context.Context, req *Incoming) (any, error) {
	var reqData GameRequest
	if err := unmarshalData(req, &reqData); err != nil {
		return nil, err
	}

	moveReq := models.MoveRequest{Move: reqData.Move}
	move, err := moveReq.Coord()
	if err != nil {
		return nil, err
	}

	return h.games.Move(ctx, reqData.GameID, move)
}

func (h *Handler) handlePass(ctx context.Context, req *Incoming) (any, error) {
	var reqData GameRequest
	if err := unmarshalData(req, &reqData); err != nil {
		return nil, err
	}

	return h.games.Pass(ctx, reqData.GameID)
}
