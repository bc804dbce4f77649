package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/satoshiokita/reversi/internal/models"
)

const createGamesTable = `
	CREATE TABLE IF NOT EXISTS games (
		id           UUID PRIMARY KEY,
		board        CHAR(66) NOT NULL,
		search_level INTEGER NOT NULL,
		updated_at   TIMESTAMPTZ NOT NULL
	);
`

// PostgresGameStore keeps games in the games table.
type PostgresGameStore struct {
	db *sqlx.DB
}

func NewPostgresGameStore(db *sqlx.DB) *PostgresGameStore {
	return &PostgresGameStore{db: db}
}

// Migrate creates the games table if it does not exist.
func (s *PostgresGameStore) Migrate(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, createGamesTable); err != nil {
		return fmt.Errorf("error creating games table: %w", err)
	}
	return nil
}

func (s *PostgresGameStore) Save(ctx context.Context, snapshot models.GameSnapshot) error {
	query := `
		INSERT INTO games (id, board, search_level, updated_at)
		VALUES (:id, :board, :search_level, :updated_at)
		ON CONFLICT (id)
		DO UPDATE SET
			board = EXCLUDED.board,
			search_level = EXCLUDED.search_level,
			updated_at = EXCLUDED.updated_at;
	`

	if _, err := s.db.NamedExecContext(ctx, query, snapshot); err != nil {
		return fmt.Errorf("error storing game: %w", err)
	}

	return nil
}

func (s *PostgresGameStore) Load(ctx context.Context, id string) (models.GameSnapshot, error) {
	var snapshot models.GameSnapshot

	query := `SELECT id, board, search_level, updated_at FROM games WHERE id = $1;`

	err := s.db.GetContext(ctx, &snapshot, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return models.GameSnapshot{}, ErrGameNotFound
	}
	if err != nil {
		return models.GameSnapshot{}, fmt.Errorf("error getting game: %w", err)
	}

	return snapshot, nil
}

func (s *PostgresGameStore) Delete(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM games WHERE id = $1;`, id)
	if err != nil {
		return fmt.Errorf("error deleting game: %w", err)
	}

	deleted, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("error counting deleted games: %w", err)
	}

	if deleted == 0 {
		return ErrGameNotFound
	}

	return nil
}
