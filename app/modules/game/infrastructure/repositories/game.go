package gamedb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// ErrNotFound is returned when a game is not found.
var ErrNotFound = errors.New("game not found")

// Impl implements the Repository interface using Bun ORM.
type Impl struct {
	db bun.IDB
}

// NewRepository creates a new game repository.
func NewRepository(db bun.IDB) Repository {
	return &Impl{db: db}
}

// resolveDB returns the provided db handle, falling back to the repository's
// default connection if db is nil.
func (r *Impl) resolveDB(db bun.IDB) bun.IDB {
	if db == nil {
		return r.db
	}
	return db
}

// GetByID retrieves a game by its ID.
func (r *Impl) GetByID(ctx context.Context, db bun.IDB, gameID uuid.UUID) (*Game, error) {
	db = r.resolveDB(db)
	game := new(Game)
	err := db.NewSelect().
		Model(game).
		Where("id = ?", gameID).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get game by ID: %w", err)
	}
	return game, nil
}

// Create inserts a new game.
func (r *Impl) Create(ctx context.Context, db bun.IDB, game *Game) error {
	db = r.resolveDB(db)
	_, err := db.NewInsert().
		Model(game).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to insert game: %w", err)
	}
	return nil
}

// End sets the game's end time, guarded on end_time still being NULL.
func (r *Impl) End(ctx context.Context, db bun.IDB, game *Game) error {
	db = r.resolveDB(db)
	result, err := db.NewUpdate().
		Model(game).
		Column("end_time").
		Where("id = ?", game.ID).
		Where("end_time IS NULL").
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to end game: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}

// CloseOpenForSession closes every open game under the session with endTime.
func (r *Impl) CloseOpenForSession(ctx context.Context, db bun.IDB, sessionID uuid.UUID, endTime time.Time) (int64, error) {
	db = r.resolveDB(db)
	result, err := db.NewUpdate().
		Model((*Game)(nil)).
		Set("end_time = ?", endTime).
		Where("session_id = ?", sessionID).
		Where("end_time IS NULL").
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to close open games for session: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return rows, nil
}
