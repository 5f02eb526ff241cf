package gamedb

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Repository defines storage access for games.
type Repository interface {
	GetByID(ctx context.Context, db bun.IDB, gameID uuid.UUID) (*Game, error)
	Create(ctx context.Context, db bun.IDB, game *Game) error
	End(ctx context.Context, db bun.IDB, game *Game) error

	// CloseOpenForSession closes every open game under a session with the
	// given end time and returns how many were closed. Games must not
	// outlive their session.
	CloseOpenForSession(ctx context.Context, db bun.IDB, sessionID uuid.UUID, endTime time.Time) (int64, error)
}
