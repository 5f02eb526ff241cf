package teamdb

import (
	"context"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Repository defines storage access for teams and players.
type Repository interface {
	GetByID(ctx context.Context, db bun.IDB, teamID uuid.UUID) (*Team, error)
	ExistsForGame(ctx context.Context, db bun.IDB, gameID uuid.UUID) (bool, error)

	// CreatePair inserts both teams of a game in one statement. The unique
	// index on (game_id, lower(colour)) is the backstop against a concurrent
	// pair creation.
	CreatePair(ctx context.Context, db bun.IDB, teamA, teamB *Team) error

	ListForGame(ctx context.Context, db bun.IDB, gameID uuid.UUID) ([]Team, error)
	AddPlayers(ctx context.Context, db bun.IDB, players []*Player) error
	ListPlayers(ctx context.Context, db bun.IDB, teamID uuid.UUID) ([]Player, error)
}
