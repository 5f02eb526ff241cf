package roundservice

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	gamedb "github.com/ice-and-stone/scorekeeper/app/modules/game/infrastructure/repositories"
	rounddb "github.com/ice-and-stone/scorekeeper/app/modules/round/infrastructure/repositories"
	teamdb "github.com/ice-and-stone/scorekeeper/app/modules/team/infrastructure/repositories"
	"github.com/ice-and-stone/scorekeeper/app/shared/operations"
	"github.com/ice-and-stone/scorekeeper/app/shared/results"
)

// RoundService implements the Service interface.
type RoundService struct {
	repo  rounddb.Repository
	games gamedb.Repository
	teams teamdb.Repository
	tel   operations.Telemetry
	db    *bun.DB
}

// NewRoundService creates a new RoundService.
func NewRoundService(
	repo rounddb.Repository,
	games gamedb.Repository,
	teams teamdb.Repository,
	tel operations.Telemetry,
	db *bun.DB,
) *RoundService {
	tel.ServiceName = "RoundService"
	return &RoundService{
		repo:  repo,
		games: games,
		teams: teams,
		tel:   tel,
		db:    db,
	}
}

// Start opens a round under an open game.
func (s *RoundService) Start(ctx context.Context, gameID uuid.UUID, number int, startsFirstTeamID uuid.UUID) (*RoundInfo, error) {
	startTx := func(ctx context.Context, db bun.IDB) (results.OperationResult[*RoundInfo, error], error) {
		return s.startLogic(ctx, db, gameID, number, startsFirstTeamID)
	}

	result, err := operations.WithTelemetry(ctx, s.tel, "StartRound", gameID.String(),
		func(ctx context.Context) (results.OperationResult[*RoundInfo, error], error) {
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
func (s *RoundService) startLogic(ctx context.Context, db bun.IDB, gameID uuid.UUID, number int, startsFirstTeamID uuid.UUID) (results.OperationResult[*RoundInfo, error], error) {
	game, err := s.games.GetByID(ctx, db, gameID)
	if err != nil {
		if errors.Is(err, gamedb.ErrNotFound) {
			return results.FailureResult[*RoundInfo, error](ErrGameNotFound), nil
		}
		return results.OperationResult[*RoundInfo, error]{}, fmt.Errorf("failed to get game: %w", err)
	}
	if game.EndTime != nil {
		return results.FailureResult[*RoundInfo, error](ErrGameAlreadyEnded), nil
	}

	startsTeam, err := s.teams.GetByID(ctx, db, startsFirstTeamID)
	if err != nil {
		if errors.Is(err, teamdb.ErrNotFound) {
			return results.FailureResult[*RoundInfo, error](ErrTeamNotFound), nil
		}
		return results.OperationResult[*RoundInfo, error]{}, fmt.Errorf("failed to get starting team: %w", err)
	}
	if startsTeam.GameID != game.ID {
		return results.FailureResult[*RoundInfo, error](ErrTeamWrongGame), nil
	}

	exists, err := s.repo.NumberExists(ctx, db, game.ID, number)
	if err != nil {
		return results.OperationResult[*RoundInfo, error]{}, fmt.Errorf("failed to check round number: %w", err)
	}
	if exists {
		return results.FailureResult[*RoundInfo, error](ErrDuplicateRoundNumber), nil
	}

	round := &rounddb.Round{
		ID:                uuid.New(),
		GameID:            game.ID,
		Number:            number,
		StartsFirstTeamID: startsTeam.ID,
		StartTime:         time.Now().UTC(),
	}
	if err := s.repo.Create(ctx, db, round); err != nil {
		return results.OperationResult[*RoundInfo, error]{}, fmt.Errorf("failed to create round: %w", err)
	}

	return results.SuccessResult[*RoundInfo, error](toRoundInfo(round)), nil
}

// End closes the round.
func (s *RoundService) End(ctx context.Context, roundID uuid.UUID) (*RoundInfo, error) {
	endTx := func(ctx context.Context, db bun.IDB) (results.OperationResult[*RoundInfo, error], error) {
		return s.endLogic(ctx, db, roundID)
	}

	result, err := operations.WithTelemetry(ctx, s.tel, "EndRound", roundID.String(),
		func(ctx context.Context) (results.OperationResult[*RoundInfo, error], error) {
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
func (s *RoundService) endLogic(ctx context.Context, db bun.IDB, roundID uuid.UUID) (results.OperationResult[*RoundInfo, error], error) {
	round, err := s.repo.GetByID(ctx, db, roundID)
	if err != nil {
		if errors.Is(err, rounddb.ErrNotFound) {
			return results.FailureResult[*RoundInfo, error](ErrRoundNotFound), nil
		}
		return results.OperationResult[*RoundInfo, error]{}, fmt.Errorf("failed to get round: %w", err)
	}
	if round.EndTime != nil {
		return results.FailureResult[*RoundInfo, error](ErrRoundAlreadyEnded), nil
	}

	endTime := time.Now().UTC()
	round.EndTime = &endTime
	if err := s.repo.End(ctx, db, round); err != nil {
		return results.OperationResult[*RoundInfo, error]{}, fmt.Errorf("failed to end round: %w", err)
	}

	return results.SuccessResult[*RoundInfo, error](toRoundInfo(round)), nil
}

func toRoundInfo(round *rounddb.Round) *RoundInfo {
	return &RoundInfo{
		ID:                round.ID,
		GameID:            round.GameID,
		Number:            round.Number,
		StartsFirstTeamID: round.StartsFirstTeamID,
		StartTime:         round.StartTime,
		EndTime:           round.EndTime,
	}
}
