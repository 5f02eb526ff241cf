package gameservice

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// GameInfo is the game view returned to callers.
type GameInfo struct {
	ID           uuid.UUID  `json:"id"`
	SessionID    uuid.UUID  `json:"sessionId"`
	StartTime    time.Time  `json:"startTime"`
	EndTime      *time.Time `json:"endTime"`
	TargetRounds *int       `json:"targetRounds"`
}

// Service defines the game lifecycle operations.
type Service interface {
	// Start opens a game under an open session. TargetRounds is an optional
	// hint, stored but never enforced.
	Start(ctx context.Context, sessionID uuid.UUID, targetRounds *int) (*GameInfo, error)

	// End closes the game. Open rounds under it are left as they are.
	End(ctx context.Context, gameID uuid.UUID) (*GameInfo, error)
}
