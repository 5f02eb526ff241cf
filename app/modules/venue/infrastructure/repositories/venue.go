package venuedb

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"
)

// Impl implements the Repository interface using Bun ORM.
type Impl struct {
	db bun.IDB
}

// NewRepository creates a new venue repository.
func NewRepository(db bun.IDB) Repository {
	return &Impl{db: db}
}

// resolveDB returns the provided db handle, falling back to the repository's
// default connection if db is nil.
func (r *Impl) resolveDB(db bun.IDB) bun.IDB {
	if db == nil {
		return r.db
	}
	return db
}

// ListVenues returns all venues ordered by ID.
func (r *Impl) ListVenues(ctx context.Context, db bun.IDB) ([]Venue, error) {
	db = r.resolveDB(db)
	var venues []Venue
	err := db.NewSelect().
		Model(&venues).
		Order("id ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list venues: %w", err)
	}
	return venues, nil
}

// ListLanes returns all lanes for a venue ordered by lane number.
func (r *Impl) ListLanes(ctx context.Context, db bun.IDB, venueID int64) ([]Lane, error) {
	db = r.resolveDB(db)
	var lanes []Lane
	err := db.NewSelect().
		Model(&lanes).
		Where("venue_id = ?", venueID).
		Order("lane_number ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list lanes: %w", err)
	}
	return lanes, nil
}

// LaneExists reports whether a lane with the given ID exists.
func (r *Impl) LaneExists(ctx context.Context, db bun.IDB, laneID int64) (bool, error) {
	db = r.resolveDB(db)
	exists, err := db.NewSelect().
		Model((*Lane)(nil)).
		Where("id = ?", laneID).
		Exists(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to check lane existence: %w", err)
	}
	return exists, nil
}
