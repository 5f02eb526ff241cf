package venueservice

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"

	venuedb "github.com/ice-and-stone/scorekeeper/app/modules/venue/infrastructure/repositories"
	"github.com/ice-and-stone/scorekeeper/app/shared/operations"
	"github.com/ice-and-stone/scorekeeper/app/shared/results"
)

// VenueService serves the seeded venue and lane catalogue.
type VenueService struct {
	repo venuedb.Repository
	tel  operations.Telemetry
	db   *bun.DB
}

// NewVenueService creates a new VenueService.
func NewVenueService(repo venuedb.Repository, tel operations.Telemetry, db *bun.DB) *VenueService {
	tel.ServiceName = "VenueService"
	return &VenueService{repo: repo, tel: tel, db: db}
}

func (s *VenueService) ListVenues(ctx context.Context) ([]VenueInfo, error) {
	result, err := operations.WithTelemetry(ctx, s.tel, "ListVenues", "",
		func(ctx context.Context) (results.OperationResult[[]VenueInfo, error], error) {
			venues, err := s.repo.ListVenues(ctx, s.idb())
			if err != nil {
				return results.OperationResult[[]VenueInfo, error]{}, fmt.Errorf("failed to list venues: %w", err)
			}
			infos := make([]VenueInfo, 0, len(venues))
			for _, v := range venues {
				infos = append(infos, VenueInfo{ID: v.ID, Name: v.Name})
			}
			return results.SuccessResult[[]VenueInfo, error](infos), nil
		})
	if err != nil {
		return nil, err
	}
	return *result.Success, nil
}

func (s *VenueService) ListLanes(ctx context.Context, venueID int64) ([]LaneInfo, error) {
	result, err := operations.WithTelemetry(ctx, s.tel, "ListLanes", fmt.Sprintf("%d", venueID),
		func(ctx context.Context) (results.OperationResult[[]LaneInfo, error], error) {
			lanes, err := s.repo.ListLanes(ctx, s.idb(), venueID)
			if err != nil {
				return results.OperationResult[[]LaneInfo, error]{}, fmt.Errorf("failed to list lanes: %w", err)
			}
			infos := make([]LaneInfo, 0, len(lanes))
			for _, l := range lanes {
				infos = append(infos, LaneInfo{ID: l.ID, VenueID: l.VenueID, LaneNumber: l.LaneNumber})
			}
			return results.SuccessResult[[]LaneInfo, error](infos), nil
		})
	if err != nil {
		return nil, err
	}
	return *result.Success, nil
}

// idb widens the *bun.DB so a nil database in unit tests stays a typed nil
// handle for the repository fakes.
func (s *VenueService) idb() bun.IDB {
	if s.db == nil {
		return nil
	}
	return s.db
}
