package scoredb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// ErrNotFound is returned when no score exists for the requested key.
var ErrNotFound = errors.New("team score not found")

// Impl implements the Repository interface using Bun ORM.
type Impl struct {
	db bun.IDB
}

// NewRepository creates a new score repository.
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

// GetByRoundAndTeam retrieves the score for a (round, team) pair.
func (r *Impl) GetByRoundAndTeam(ctx context.Context, db bun.IDB, roundID, teamID uuid.UUID) (*TeamScore, error) {
	db = r.resolveDB(db)
	score := new(TeamScore)
	err := db.NewSelect().
		Model(score).
		Where("round_id = ?", roundID).
		Where("team_id = ?", teamID).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get team score: %w", err)
	}
	return score, nil
}

// Upsert inserts or overwrites the score for the (round, team) key. The
// unique index on (round_id, team_id) resolves concurrent inserts: the loser
// lands on DO UPDATE rather than erroring, and RETURNING hands back the live
// row so the caller sees the winning row's ID.
func (r *Impl) Upsert(ctx context.Context, db bun.IDB, score *TeamScore) error {
	db = r.resolveDB(db)
	_, err := db.NewInsert().
		Model(score).
		On("CONFLICT (round_id, team_id) DO UPDATE").
		Set("value = EXCLUDED.value").
		Returning("id, value").
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to upsert team score: %w", err)
	}
	return nil
}

// UpdateValue overwrites the value of an existing score row by ID.
func (r *Impl) UpdateValue(ctx context.Context, db bun.IDB, score *TeamScore) error {
	db = r.resolveDB(db)
	_, err := db.NewUpdate().
		Model(score).
		Column("value").
		Where("id = ?", score.ID).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to update team score: %w", err)
	}
	return nil
}

// ListForRound returns all scores recorded for a round.
func (r *Impl) ListForRound(ctx context.Context, db bun.IDB, roundID uuid.UUID) ([]TeamScore, error) {
	db = r.resolveDB(db)
	var scores []TeamScore
	err := db.NewSelect().
		Model(&scores).
		Where("round_id = ?", roundID).
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list scores for round: %w", err)
	}
	return scores, nil
}
