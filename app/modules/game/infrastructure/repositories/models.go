package gamedb

import (
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Game is one complete match between two teams within a session.
// TargetRounds is a hint from the client and is never enforced.
type Game struct {
	bun.BaseModel `bun:"table:games,alias:g"`

	ID           uuid.UUID  `bun:"id,pk,type:uuid"`
	SessionID    uuid.UUID  `bun:"session_id,notnull,type:uuid"`
	StartTime    time.Time  `bun:"start_time,notnull"`
	EndTime      *time.Time `bun:"end_time"`
	TargetRounds *int       `bun:"target_rounds"`
}
