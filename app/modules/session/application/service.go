package sessionservice

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	gamedb "github.com/ice-and-stone/scorekeeper/app/modules/game/infrastructure/repositories"
	sessiondb "github.com/ice-and-stone/scorekeeper/app/modules/session/infrastructure/repositories"
	venuedb "github.com/ice-and-stone/scorekeeper/app/modules/venue/infrastructure/repositories"
	"github.com/ice-and-stone/scorekeeper/app/shared/operations"
	"github.com/ice-and-stone/scorekeeper/app/shared/results"
)

// SessionService implements the Service interface.
type SessionService struct {
	repo  sessiondb.Repository
	games gamedb.Repository
	lanes venuedb.Repository
	tel   operations.Telemetry
	db    *bun.DB
}

// NewSessionService creates a new SessionService.
func NewSessionService(
	repo sessiondb.Repository,
	games gamedb.Repository,
	lanes venuedb.Repository,
	tel operations.Telemetry,
	db *bun.DB,
) *SessionService {
	tel.ServiceName = "SessionService"
	return &SessionService{
		repo:  repo,
		games: games,
		lanes: lanes,
		tel:   tel,
		db:    db,
	}
}

// Start opens a new session on a lane.
func (s *SessionService) Start(ctx context.Context, laneID int64) (*SessionInfo, error) {
	startTx := func(ctx context.Context, db bun.IDB) (results.OperationResult[*SessionInfo, error], error) {
		return s.startLogic(ctx, db, laneID)
	}

	result, err := operations.WithTelemetry(ctx, s.tel, "StartSession", strconv.FormatInt(laneID, 10),
		func(ctx context.Context) (results.OperationResult[*SessionInfo, error], error) {
			return operations.RunInTx(ctx, s.db, startTx)
		})
	if err != nil {
		return nil, err
	}
	if result.IsFailure() {
		return nil, *result.Failure
	}
	return *result.Success, nil
}

// startLogic contains the core logic.
func (s *SessionService) startLogic(ctx context.Context, db bun.IDB, laneID int64) (results.OperationResult[*SessionInfo, error], error) {
	laneExists, err := s.lanes.LaneExists(ctx, db, laneID)
	if err != nil {
		return results.OperationResult[*SessionInfo, error]{}, fmt.Errorf("failed to check lane: %w", err)
	}
	if !laneExists {
		return results.FailureResult[*SessionInfo, error](ErrLaneNotFound), nil
	}

	session := &sessiondb.Session{
		ID:        uuid.New(),
		LaneID:    laneID,
		StartTime: time.Now().UTC(),
	}
	if err := s.repo.Create(ctx, db, session); err != nil {
		return results.OperationResult[*SessionInfo, error]{}, fmt.Errorf("failed to create session: %w", err)
	}

	return results.SuccessResult[*SessionInfo, error](toSessionInfo(session)), nil
}

// End closes the session. Every game still open under it is closed with the
// same end time; games cannot outlive their session.
func (s *SessionService) End(ctx context.Context, sessionID uuid.UUID) (*SessionInfo, error) {
	endTx := func(ctx context.Context, db bun.IDB) (results.OperationResult[*SessionInfo, error], error) {
		return s.endLogic(ctx, db, sessionID)
	}

	result, err := operations.WithTelemetry(ctx, s.tel, "EndSession", sessionID.String(),
		func(ctx context.Context) (results.OperationResult[*SessionInfo, error], error) {
			return operations.RunInTx(ctx, s.db, endTx)
		})
	if err != nil {
		return nil, err
	}
	if result.IsFailure() {
		return nil, *result.Failure
	}
	return *result.Success, nil
}

// endLogic contains the core logic.
func (s *SessionService) endLogic(ctx context.Context, db bun.IDB, sessionID uuid.UUID) (results.OperationResult[*SessionInfo, error], error) {
	session, err := s.repo.GetByID(ctx, db, sessionID)
	if err != nil {
		if errors.Is(err, sessiondb.ErrNotFound) {
			return results.FailureResult[*SessionInfo, error](ErrSessionNotFound), nil
		}
		return results.OperationResult[*SessionInfo, error]{}, fmt.Errorf("failed to get session: %w", err)
	}
	if session.EndTime != nil {
		return results.FailureResult[*SessionInfo, error](ErrSessionAlreadyEnded), nil
	}

	endTime := time.Now().UTC()

	if _, err := s.games.CloseOpenForSession(ctx, db, session.ID, endTime); err != nil {
		return results.OperationResult[*SessionInfo, error]{}, fmt.Errorf("failed to close open games: %w", err)
	}

	session.EndTime = &endTime
	if err := s.repo.End(ctx, db, session); err != nil {
		return results.OperationResult[*SessionInfo, error]{}, fmt.Errorf("failed to end session: %w", err)
	}

	return results.SuccessResult[*SessionInfo, error](toSessionInfo(session)), nil
}

func toSessionInfo(session *sessiondb.Session) *SessionInfo {
	return &SessionInfo{
		ID:        session.ID,
		LaneID:    session.LaneID,
		StartTime: session.StartTime,
		EndTime:   session.EndTime,
	}
}
