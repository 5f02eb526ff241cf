package venuedb

import (
	"context"

	"github.com/uptrace/bun"
)

// Repository defines read access to venue and lane reference data.
type Repository interface {
	ListVenues(ctx context.Context, db bun.IDB) ([]Venue, error)
	ListLanes(ctx context.Context, db bun.IDB, venueID int64) ([]Lane, error)
	LaneExists(ctx context.Context, db bun.IDB, laneID int64) (bool, error)
}
