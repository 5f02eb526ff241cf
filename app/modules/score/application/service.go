package scoreservice

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	rounddb "github.com/ice-and-stone/scorekeeper/app/modules/round/infrastructure/repositories"
	scoredb "github.com/ice-and-stone/scorekeeper/app/modules/score/infrastructure/repositories"
	teamdb "github.com/ice-and-stone/scorekeeper/app/modules/team/infrastructure/repositories"
	"github.com/ice-and-stone/scorekeeper/app/shared/operations"
	"github.com/ice-and-stone/scorekeeper/app/shared/results"
)

// ScoreService implements the Service interface.
type ScoreService struct {
	repo   scoredb.Repository
	rounds rounddb.Repository
	teams  teamdb.Repository
	tel    operations.Telemetry
	db     *bun.DB
}

// NewScoreService creates a new ScoreService.
func NewScoreService(
	repo scoredb.Repository,
	rounds rounddb.Repository,
	teams teamdb.Repository,
	tel operations.Telemetry,
	db *bun.DB,
) *ScoreService {
	tel.ServiceName = "ScoreService"
	return &ScoreService{
		repo:   repo,
		rounds: rounds,
		teams:  teams,
		tel:    tel,
		db:     db,
	}
}

// PostTeamScore records a team's score for a round, overwriting any previous
// value for the same (round, team) pair.
func (s *ScoreService) PostTeamScore(ctx context.Context, roundID, teamID uuid.UUID, value int) (*ScoreInfo, error) {
	postTx := func(ctx context.Context, db bun.IDB) (results.OperationResult[*ScoreInfo, error], error) {
		return s.postLogic(ctx, db, roundID, teamID, value)
	}

	result, err := operations.WithTelemetry(ctx, s.tel, "PostTeamScore", roundID.String(),
		func(ctx context.Context) (results.OperationResult[*ScoreInfo, error], error) {
			return operations.RunInTx(ctx, s.db, postTx)
		})
	if err != nil {
		return nil, err
	}
	if result.IsFailure() {
		return nil, *result.Failure
	}
	return *result.Success, nil
}

// postLogic contains the core logic. Value validation runs before any read so
// a bad payload never touches the database.
func (s *ScoreService) postLogic(ctx context.Context, db bun.IDB, roundID, teamID uuid.UUID, value int) (results.OperationResult[*ScoreInfo, error], error) {
	if value < 0 {
		return results.FailureResult[*ScoreInfo, error](ErrNegativeValue), nil
	}

	round, err := s.rounds.GetByID(ctx, db, roundID)
	if err != nil {
		if errors.Is(err, rounddb.ErrNotFound) {
			return results.FailureResult[*ScoreInfo, error](ErrRoundNotFound), nil
		}
		return results.OperationResult[*ScoreInfo, error]{}, fmt.Errorf("failed to get round: %w", err)
	}

	team, err := s.teams.GetByID(ctx, db, teamID)
	if err != nil {
		if errors.Is(err, teamdb.ErrNotFound) {
			return results.FailureResult[*ScoreInfo, error](ErrTeamNotFound), nil
		}
		return results.OperationResult[*ScoreInfo, error]{}, fmt.Errorf("failed to get team: %w", err)
	}
	if team.GameID != round.GameID {
		return results.FailureResult[*ScoreInfo, error](ErrTeamWrongGame), nil
	}

	// Read the current row for the key inside the same transaction as the
	// write so an overwrite updates the existing row in place.
	existing, err := s.repo.GetByRoundAndTeam(ctx, db, round.ID, team.ID)
	if err != nil && !errors.Is(err, scoredb.ErrNotFound) {
		return results.OperationResult[*ScoreInfo, error]{}, fmt.Errorf("failed to look up score: %w", err)
	}

	if existing != nil {
		existing.Value = value
		if err := s.repo.UpdateValue(ctx, db, existing); err != nil {
			return results.OperationResult[*ScoreInfo, error]{}, fmt.Errorf("failed to update score: %w", err)
		}
		return results.SuccessResult[*ScoreInfo, error](toScoreInfo(existing)), nil
	}

	// Fresh insert. The unique index on (round_id, team_id) backstops the
	// concurrent-insert race: the loser lands on DO UPDATE and RETURNING
	// replaces the ID with the winning row's.
	score := &scoredb.TeamScore{
		ID:      uuid.New(),
		RoundID: round.ID,
		TeamID:  team.ID,
		Value:   value,
	}
	if err := s.repo.Upsert(ctx, db, score); err != nil {
		return results.OperationResult[*ScoreInfo, error]{}, fmt.Errorf("failed to upsert score: %w", err)
	}

	return results.SuccessResult[*ScoreInfo, error](toScoreInfo(score)), nil
}

// ListForRound returns all scores recorded for the round.
func (s *ScoreService) ListForRound(ctx context.Context, roundID uuid.UUID) ([]ScoreInfo, error) {
	listTx := func(ctx context.Context, db bun.IDB) (results.OperationResult[[]ScoreInfo, error], error) {
		return s.listLogic(ctx, db, roundID)
	}

	result, err := operations.WithTelemetry(ctx, s.tel, "ListScoresForRound", roundID.String(),
		func(ctx context.Context) (results.OperationResult[[]ScoreInfo, error], error) {
			return operations.RunInTx(ctx, s.db, listTx)
		})
	if err != nil {
		return nil, err
	}
	if result.IsFailure() {
		return nil, *result.Failure
	}
	return *result.Success, nil
}

func (s *ScoreService) listLogic(ctx context.Context, db bun.IDB, roundID uuid.UUID) (results.OperationResult[[]ScoreInfo, error], error) {
	if _, err := s.rounds.GetByID(ctx, db, roundID); err != nil {
		if errors.Is(err, rounddb.ErrNotFound) {
			return results.FailureResult[[]ScoreInfo, error](ErrRoundNotFound), nil
		}
		return results.OperationResult[[]ScoreInfo, error]{}, fmt.Errorf("failed to get round: %w", err)
	}

	scores, err := s.repo.ListForRound(ctx, db, roundID)
	if err != nil {
		return results.OperationResult[[]ScoreInfo, error]{}, fmt.Errorf("failed to list scores: %w", err)
	}

	infos := make([]ScoreInfo, 0, len(scores))
	for i := range scores {
		infos = append(infos, *toScoreInfo(&scores[i]))
	}
	return results.SuccessResult[[]ScoreInfo, error](infos), nil
}

func toScoreInfo(score *scoredb.TeamScore) *ScoreInfo {
	return &ScoreInfo{
		ID:      score.ID,
		RoundID: score.RoundID,
		TeamID:  score.TeamID,
		Value:   score.Value,
	}
}
