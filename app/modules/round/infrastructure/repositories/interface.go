package rounddb

import (
	"context"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Repository defines storage access for rounds.
type Repository interface {
	GetByID(ctx context.Context, db bun.IDB, roundID uuid.UUID) (*Round, error)
	Create(ctx context.Context, db bun.IDB, round *Round) error
	End(ctx context.Context, db bun.IDB, round *Round) error
	NumberExists(ctx context.Context, db bun.IDB, gameID uuid.UUID, number int) (bool, error)
}
