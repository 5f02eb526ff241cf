package sessionservice

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// SessionInfo is the session view returned to callers.
type SessionInfo struct {
	ID        uuid.UUID  `json:"id"`
	LaneID    int64      `json:"laneId"`
	StartTime time.Time  `json:"startTime"`
	EndTime   *time.Time `json:"endTime"`
}

// Service defines the session lifecycle operations.
type Service interface {
	// Start opens a new session on a lane.
	Start(ctx context.Context, laneID int64) (*SessionInfo, error)

	// End closes the session and force-closes any games still open under it.
	End(ctx context.Context, sessionID uuid.UUID) (*SessionInfo, error)
}
