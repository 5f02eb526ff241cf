package rounddb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// ErrNotFound is returned when a round is not found.
var ErrNotFound = errors.New("round not found")

// Impl implements the Repository interface using Bun ORM.
type Impl struct {
	db bun.IDB
}

// NewRepository creates a new round repository.
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

// GetByID retrieves a round by its ID.
func (r *Impl) GetByID(ctx context.Context, db bun.IDB, roundID uuid.UUID) (*Round, error) {
	db = r.resolveDB(db)
	round := new(Round)
	err := db.NewSelect().
		Model(round).
		Where("id = ?", roundID).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get round by ID: %w", err)
	}
	return round, nil
}

// Create inserts a new round. The unique index on (game_id, number) is the
// backstop against concurrent starts with the same number.
func (r *Impl) Create(ctx context.Context, db bun.IDB, round *Round) error {
	db = r.resolveDB(db)
	_, err := db.NewInsert().
		Model(round).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to insert round: %w", err)
	}
	return nil
}

// End sets the round's end time, guarded on end_time still being NULL.
func (r *Impl) End(ctx context.Context, db bun.IDB, round *Round) error {
	db = r.resolveDB(db)
	result, err := db.NewUpdate().
		Model(round).
		Column("end_time").
		Where("id = ?", round.ID).
		Where("end_time IS NULL").
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to end round: %w", err)
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

// NumberExists reports whether the game already has a round with this number.
func (r *Impl) NumberExists(ctx context.Context, db bun.IDB, gameID uuid.UUID, number int) (bool, error) {
	db = r.resolveDB(db)
	exists, err := db.NewSelect().
		Model((*Round)(nil)).
		Where("game_id = ?", gameID).
		Where("number = ?", number).
		Exists(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to check round number: %w", err)
	}
	return exists, nil
}
