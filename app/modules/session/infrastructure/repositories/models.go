package sessiondb

import (
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Session is one continuous occupancy of a lane. EndTime stays nil while the
// session is open; ending is the only mutation a session ever receives.
type Session struct {
	bun.BaseModel `bun:"table:sessions,alias:s"`

	ID        uuid.UUID  `bun:"id,pk,type:uuid"`
	LaneID    int64      `bun:"lane_id,notnull"`
	StartTime time.Time  `bun:"start_time,notnull"`
	EndTime   *time.Time `bun:"end_time"`
}
