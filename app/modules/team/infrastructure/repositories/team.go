package teamdb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// ErrNotFound is returned when a team is not found.
var ErrNotFound = errors.New("team not found")

// Impl implements the Repository interface using Bun ORM.
type Impl struct {
	db bun.IDB
}

// NewRepository creates a new team repository.
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

// GetByID retrieves a team by its ID.
func (r *Impl) GetByID(ctx context.Context, db bun.IDB, teamID uuid.UUID) (*Team, error) {
	db = r.resolveDB(db)
	team := new(Team)
	err := db.NewSelect().
		Model(team).
		Where("id = ?", teamID).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get team by ID: %w", err)
	}
	return team, nil
}

// ExistsForGame reports whether any team exists for the game.
func (r *Impl) ExistsForGame(ctx context.Context, db bun.IDB, gameID uuid.UUID) (bool, error) {
	db = r.resolveDB(db)
	exists, err := db.NewSelect().
		Model((*Team)(nil)).
		Where("game_id = ?", gameID).
		Exists(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to check teams for game: %w", err)
	}
	return exists, nil
}

// CreatePair inserts both teams atomically.
func (r *Impl) CreatePair(ctx context.Context, db bun.IDB, teamA, teamB *Team) error {
	db = r.resolveDB(db)
	pair := []*Team{teamA, teamB}
	_, err := db.NewInsert().
		Model(&pair).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to insert team pair: %w", err)
	}
	return nil
}

// ListForGame returns the teams of a game.
func (r *Impl) ListForGame(ctx context.Context, db bun.IDB, gameID uuid.UUID) ([]Team, error) {
	db = r.resolveDB(db)
	var teams []Team
	err := db.NewSelect().
		Model(&teams).
		Where("game_id = ?", gameID).
		Order("has_first_round DESC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list teams for game: %w", err)
	}
	return teams, nil
}

// AddPlayers appends roster entries.
func (r *Impl) AddPlayers(ctx context.Context, db bun.IDB, players []*Player) error {
	if len(players) == 0 {
		return nil
	}
	db = r.resolveDB(db)
	_, err := db.NewInsert().
		Model(&players).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to insert players: %w", err)
	}
	return nil
}

// ListPlayers returns the roster of a team.
func (r *Impl) ListPlayers(ctx context.Context, db bun.IDB, teamID uuid.UUID) ([]Player, error) {
	db = r.resolveDB(db)
	var players []Player
	err := db.NewSelect().
		Model(&players).
		Where("team_id = ?", teamID).
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list players: %w", err)
	}
	return players, nil
}
