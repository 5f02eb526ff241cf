package roundservice

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// RoundInfo is the round view returned to callers.
type RoundInfo struct {
	ID                uuid.UUID  `json:"id"`
	GameID            uuid.UUID  `json:"gameId"`
	Number            int        `json:"number"`
	StartsFirstTeamID uuid.UUID  `json:"startsFirstTeamId"`
	StartTime         time.Time  `json:"startTime"`
	EndTime           *time.Time `json:"endTime"`
}

// Service defines the round lifecycle operations.
type Service interface {
	// Start opens a round under an open game. Numbers are caller-supplied;
	// only per-game uniqueness is guaranteed, not sequential order.
	Start(ctx context.Context, gameID uuid.UUID, number int, startsFirstTeamID uuid.UUID) (*RoundInfo, error)

	// End closes the round.
	End(ctx context.Context, roundID uuid.UUID) (*RoundInfo, error)
}
