package gameservice

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	gamedb "github.com/ice-and-stone/scorekeeper/app/modules/game/infrastructure/repositories"
	sessiondb "github.com/ice-and-stone/scorekeeper/app/modules/session/infrastructure/repositories"
	"github.com/ice-and-stone/scorekeeper/app/shared/operations"
	"github.com/ice-and-stone/scorekeeper/app/shared/results"
)

// GameService implements the Service interface.
type GameService struct {
	repo     gamedb.Repository
	sessions sessiondb.Repository
	tel      operations.Telemetry
	db       *bun.DB
}

// NewGameService creates a new GameService.
func NewGameService(
	repo gamedb.Repository,
	sessions sessiondb.Repository,
	tel operations.Telemetry,
	db *bun.DB,
) *GameService {
	tel.ServiceName = "GameService"
	return &GameService{
		repo:     repo,
		sessions: sessions,
		tel:      tel,
		db:       db,
	}
}

// Start opens a game under an open session.
func (s *GameService) Start(ctx context.Context, sessionID uuid.UUID, targetRounds *int) (*GameInfo, error) {
	startTx := func(ctx context.Context, db bun.IDB) (results.OperationResult[*GameInfo, error], error) {
		return s.startLogic(ctx, db, sessionID, targetRounds)
	}

	result, err := operations.WithTelemetry(ctx, s.tel, "StartGame", sessionID.String(),
		func(ctx context.Context) (results.OperationResult[*GameInfo, error], error) {
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
func (s *GameService) startLogic(ctx context.Context, db bun.IDB, sessionID uuid.UUID, targetRounds *int) (results.OperationResult[*GameInfo, error], error) {
	session, err := s.sessions.GetByID(ctx, db, sessionID)
	if err != nil {
		if errors.Is(err, sessiondb.ErrNotFound) {
			return results.FailureResult[*GameInfo, error](ErrSessionNotFound), nil
		}
		return results.OperationResult[*GameInfo, error]{}, fmt.Errorf("failed to get session: %w", err)
	}
	if session.EndTime != nil {
		return results.FailureResult[*GameInfo, error](ErrSessionEnded), nil
	}

	game := &gamedb.Game{
		ID:           uuid.New(),
		SessionID:    session.ID,
		StartTime:    time.Now().UTC(),
		TargetRounds: targetRounds,
	}
	if err := s.repo.Create(ctx, db, game); err != nil {
		return results.OperationResult[*GameInfo, error]{}, fmt.Errorf("failed to create game: %w", err)
	}

	return results.SuccessResult[*GameInfo, error](toGameInfo(game)), nil
}

// End closes the game. Rounds are deliberately not cascaded.
func (s *GameService) End(ctx context.Context, gameID uuid.UUID) (*GameInfo, error) {
	endTx := func(ctx context.Context, db bun.IDB) (results.OperationResult[*GameInfo, error], error) {
		return s.endLogic(ctx, db, gameID)
	}

	result, err := operations.WithTelemetry(ctx, s.tel, "EndGame", gameID.String(),
		func(ctx context.Context) (results.OperationResult[*GameInfo, error], error) {
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
func (s *GameService) endLogic(ctx context.Context, db bun.IDB, gameID uuid.UUID) (results.OperationResult[*GameInfo, error], error) {
	game, err := s.repo.GetByID(ctx, db, gameID)
	if err != nil {
		if errors.Is(err, gamedb.ErrNotFound) {
			return results.FailureResult[*GameInfo, error](ErrGameNotFound), nil
		}
		return results.OperationResult[*GameInfo, error]{}, fmt.Errorf("failed to get game: %w", err)
	}
	if game.EndTime != nil {
		return results.FailureResult[*GameInfo, error](ErrGameAlreadyEnded), nil
	}

	endTime := time.Now().UTC()
	game.EndTime = &endTime
	if err := s.repo.End(ctx, db, game); err != nil {
		return results.OperationResult[*GameInfo, error]{}, fmt.Errorf("failed to end game: %w", err)
	}

	return results.SuccessResult[*GameInfo, error](toGameInfo(game)), nil
}

func toGameInfo(game *gamedb.Game) *GameInfo {
	return &GameInfo{
		ID:           game.ID,
		SessionID:    game.SessionID,
		StartTime:    game.StartTime,
		EndTime:      game.EndTime,
		TargetRounds: game.TargetRounds,
	}
}
