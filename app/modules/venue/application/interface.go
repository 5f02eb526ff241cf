package venueservice

import "context"

// VenueInfo is the venue view returned to callers.
type VenueInfo struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// LaneInfo is the lane view returned to callers.
type LaneInfo struct {
	ID         int64 `json:"id"`
	VenueID    int64 `json:"venueId"`
	LaneNumber int   `json:"laneNumber"`
}

// Service exposes the venue and lane reference data.
type Service interface {
	ListVenues(ctx context.Context) ([]VenueInfo, error)
	ListLanes(ctx context.Context, venueID int64) ([]LaneInfo, error)
}
