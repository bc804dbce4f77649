package repository

import (
	"context"
	"errors"
	"fmt"
	"hash/fnv"
	"sync"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/satoshiokita/reversi/internal/engine"
	"github.com/satoshiokita/reversi/internal/models"
	"github.com/satoshiokita/reversi/internal/othello"
)

const gameLockStripes = 64

// ErrInvalidGameID is returned for IDs that are not UUIDs.
var ErrInvalidGameID = errors.New("invalid game ID")

// GameRepository plays games stored in a GameStore. Moves on the same game are serialized.
type GameRepository struct {
	store       GameStore
	searchLevel int
	locks       [gameLockStripes]sync.Mutex
}

// NewGameRepository creates a GameRepository. New games search searchLevel plies deep unless overridden.
func NewGameRepository(store GameStore, searchLevel int) *GameRepository {
	return &GameRepository{
		store:       store,
		searchLevel: searchLevel,
	}
}

// NewGameRepositoryFromCtx returns the GameRepository installed in the fiber app.
func NewGameRepositoryFromCtx(c *fiber.Ctx) *GameRepository {
	return c.Locals("games").(*GameRepository) //nolint: errcheck
}

func (repo *GameRepository) lock(id string) func() {
	h := fnv.New32a()
	_, _ = h.Write([]byte(id))

	mutex := &repo.locks[h.Sum32()%gameLockStripes]
	mutex.Lock()
	return mutex.Unlock
}

func (repo *GameRepository) load(ctx context.Context, id string) (*engine.Game, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidGameID, id)
	}

	snapshot, err := repo.store.Load(ctx, id)
	if err != nil {
		return nil, err
	}

	return snapshot.Game()
}

// Create starts a new game and returns its state.
func (repo *GameRepository) Create(ctx context.Context, searchLevel int) (models.GameState, error) {
	if searchLevel == 0 {
		searchLevel = repo.searchLevel
	}

	id := uuid.New().String()
	game := engine.NewGame(engine.WithSearchLevel(searchLevel))

	if err := repo.store.Save(ctx, models.NewGameSnapshot(id, game)); err != nil {
		return models.GameState{}, err
	}

	return models.NewGameState(id, game), nil
}

// State returns the current state of a game.
func (repo *GameRepository) State(ctx context.Context, id string) (models.GameState, error) {
	game, err := repo.load(ctx, id)
	if err != nil {
		return models.GameState{}, err
	}

	return models.NewGameState(id, game), nil
}

// Move plays a human move and, if it is then the computer's turn, the computer's reply.
func (repo *GameRepository) Move(ctx context.Context, id string, move othello.Coord) (models.MoveResponse, error) {
	defer repo.lock(id)()

	game, err := repo.load(ctx, id)
	if err != nil {
		return models.MoveResponse{}, err
	}

	plies, err := game.PlayHuman(move.X, move.Y)
	if err != nil {
		return models.MoveResponse{}, err
	}

	if !game.Over() && game.Turn() == engine.Computer {
		computerPlies, err := game.PlayComputer()
		if err != nil {
			return models.MoveResponse{}, err
		}
		plies = append(plies, computerPlies...)
	}

	if err = repo.store.Save(ctx, models.NewGameSnapshot(id, game)); err != nil {
		return models.MoveResponse{}, err
	}

	return models.MoveResponse{
		Plies: models.NewPlyResponses(plies),
		State: models.NewGameState(id, game),
	}, nil
}

// Pass passes for the human when no legal move is available, then lets the computer play.
func (repo *GameRepository) Pass(ctx context.Context, id string) (models.MoveResponse, error) {
	defer repo.lock(id)()

	game, err := repo.load(ctx, id)
	if err != nil {
		return models.MoveResponse{}, err
	}

	if game.Turn() != engine.Human {
		return models.MoveResponse{}, fmt.Errorf("%w: %s to move", engine.ErrNotYourTurn, game.Turn())
	}

	ply, err := game.Pass()
	if err != nil {
		return models.MoveResponse{}, err
	}

	plies := []engine.Ply{ply}

	computerPlies, err := game.PlayComputer()
	if err != nil {
		return models.MoveResponse{}, err
	}
	plies = append(plies, computerPlies...)

	if err = repo.store.Save(ctx, models.NewGameSnapshot(id, game)); err != nil {
		return models.MoveResponse{}, err
	}

	return models.MoveResponse{
		Plies: models.NewPlyResponses(plies),
		State: models.NewGameState(id, game),
	}, nil
}

// Delete removes a game.
func (repo *GameRepository) Delete(ctx context.Context, id string) error {
	defer repo.lock(id)()

	if _, err := uuid.Parse(id); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidGameID, id)
	}

	return repo.store.Delete(ctx, id)
}
