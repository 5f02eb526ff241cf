package scoredb

import (
	"context"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Repository defines storage access for team scores.
type Repository interface {
	GetByRoundAndTeam(ctx context.Context, db bun.IDB, roundID, teamID uuid.UUID) (*TeamScore, error)

	// Upsert inserts the score or, if a row for the (round, team) key already
	// exists, overwrites its value. The model's ID is replaced with the live
	// row's ID either way.
	Upsert(ctx context.Context, db bun.IDB, score *TeamScore) error

	// UpdateValue overwrites the value of an existing score row by ID.
	UpdateValue(ctx context.Context, db bun.IDB, score *TeamScore) error

	ListForRound(ctx context.Context, db bun.IDB, roundID uuid.UUID) ([]TeamScore, error)
}
