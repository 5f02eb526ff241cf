package venuedb

import (
	"github.com/uptrace/bun"
)

// Venue is a physical location hosting lanes. Reference data, seeded by
// migrations and never written at runtime.
type Venue struct {
	bun.BaseModel `bun:"table:venues,alias:v"`

	ID   int64  `bun:"id,pk,autoincrement"`
	Name string `bun:"name,notnull"`
}

// Lane is a playing surface within a venue. The lane number is unique within
// its venue.
type Lane struct {
	bun.BaseModel `bun:"table:lanes,alias:l"`

	ID         int64 `bun:"id,pk,autoincrement"`
	VenueID    int64 `bun:"venue_id,notnull"`
	LaneNumber int   `bun:"lane_number,notnull"`
}
