package teamservice

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	gamedb "github.com/ice-and-stone/scorekeeper/app/modules/game/infrastructure/repositories"
	teamdb "github.com/ice-and-stone/scorekeeper/app/modules/team/infrastructure/repositories"
	"github.com/ice-and-stone/scorekeeper/app/shared/operations"
	"github.com/ice-and-stone/scorekeeper/app/shared/results"
)

// TeamService implements the Service interface.
type TeamService struct {
	repo  teamdb.Repository
	games gamedb.Repository
	tel   operations.Telemetry
	db    *bun.DB
}

// NewTeamService creates a new TeamService.
func NewTeamService(
	repo teamdb.Repository,
	games gamedb.Repository,
	tel operations.Telemetry,
	db *bun.DB,
) *TeamService {
	tel.ServiceName = "TeamService"
	return &TeamService{
		repo:  repo,
		games: games,
		tel:   tel,
		db:    db,
	}
}

// CreatePair creates both teams of a game atomically.
func (s *TeamService) CreatePair(ctx context.Context, input CreatePairInput) (*TeamPair, error) {
	createTx := func(ctx context.Context, db bun.IDB) (results.OperationResult[*TeamPair, error], error) {
		return s.createPairLogic(ctx, db, input)
	}

	result, err := operations.WithTelemetry(ctx, s.tel, "CreateTeamPair", input.GameID.String(),
		func(ctx context.Context) (results.OperationResult[*TeamPair, error], error) {
			return operations.RunInTx(ctx, s.db, createTx)
		})
	if err != nil {
		return nil, err
	}
	if result.IsFailure() {
		return nil, *result.Failure
	}
	return *result.Success, nil
}

// createPairLogic contains the core logic.
func (s *TeamService) createPairLogic(ctx context.Context, db bun.IDB, input CreatePairInput) (results.OperationResult[*TeamPair, error], error) {
	if strings.TrimSpace(input.NameA) == "" || strings.TrimSpace(input.ColourA) == "" ||
		strings.TrimSpace(input.NameB) == "" || strings.TrimSpace(input.ColourB) == "" {
		return results.FailureResult[*TeamPair, error](ErrBlankTeamField), nil
	}

	game, err := s.games.GetByID(ctx, db, input.GameID)
	if err != nil {
		if errors.Is(err, gamedb.ErrNotFound) {
			return results.FailureResult[*TeamPair, error](ErrGameNotFound), nil
		}
		return results.OperationResult[*TeamPair, error]{}, fmt.Errorf("failed to get game: %w", err)
	}
	if game.EndTime != nil {
		return results.FailureResult[*TeamPair, error](ErrGameEnded), nil
	}

	exists, err := s.repo.ExistsForGame(ctx, db, game.ID)
	if err != nil {
		return results.OperationResult[*TeamPair, error]{}, fmt.Errorf("failed to check existing teams: %w", err)
	}
	if exists {
		return results.FailureResult[*TeamPair, error](ErrTeamsAlreadyExist), nil
	}

	if strings.EqualFold(input.ColourA, input.ColourB) {
		return results.FailureResult[*TeamPair, error](ErrSameColour), nil
	}

	teamAStarts := strings.EqualFold(input.FirstRoundTeam, "A")
	teamBStarts := strings.EqualFold(input.FirstRoundTeam, "B")
	if !teamAStarts && !teamBStarts {
		teamAStarts = true
	}
	if teamAStarts && teamBStarts {
		return results.FailureResult[*TeamPair, error](ErrAmbiguousFirstRound), nil
	}

	teamA := &teamdb.Team{
		ID:            uuid.New(),
		GameID:        game.ID,
		Name:          input.NameA,
		Colour:        input.ColourA,
		HasFirstRound: teamAStarts,
	}
	teamB := &teamdb.Team{
		ID:            uuid.New(),
		GameID:        game.ID,
		Name:          input.NameB,
		Colour:        input.ColourB,
		HasFirstRound: teamBStarts,
	}

	if err := s.repo.CreatePair(ctx, db, teamA, teamB); err != nil {
		return results.OperationResult[*TeamPair, error]{}, fmt.Errorf("failed to create teams: %w", err)
	}

	return results.SuccessResult[*TeamPair, error](&TeamPair{
		TeamA: toTeamInfo(teamA),
		TeamB: toTeamInfo(teamB),
	}), nil
}

// AddPlayers appends roster entries, skipping blank names and trimming the
// rest. Repeated identical calls append duplicates; that is accepted
// behavior, not deduplicated.
func (s *TeamService) AddPlayers(ctx context.Context, teamID uuid.UUID, names []string) error {
	addTx := func(ctx context.Context, db bun.IDB) (results.OperationResult[struct{}, error], error) {
		return s.addPlayersLogic(ctx, db, teamID, names)
	}

	result, err := operations.WithTelemetry(ctx, s.tel, "AddPlayers", teamID.String(),
		func(ctx context.Context) (results.OperationResult[struct{}, error], error) {
			return operations.RunInTx(ctx, s.db, addTx)
		})
	if err != nil {
		return err
	}
	if result.IsFailure() {
		return *result.Failure
	}
	return nil
}

// addPlayersLogic contains the core logic.
func (s *TeamService) addPlayersLogic(ctx context.Context, db bun.IDB, teamID uuid.UUID, names []string) (results.OperationResult[struct{}, error], error) {
	team, err := s.repo.GetByID(ctx, db, teamID)
	if err != nil {
		if errors.Is(err, teamdb.ErrNotFound) {
			return results.FailureResult[struct{}, error](ErrTeamNotFound), nil
		}
		return results.OperationResult[struct{}, error]{}, fmt.Errorf("failed to get team: %w", err)
	}

	var players []*teamdb.Player
	for _, name := range names {
		trimmed := strings.TrimSpace(name)
		if trimmed == "" {
			continue
		}
		players = append(players, &teamdb.Player{
			ID:     uuid.New(),
			TeamID: team.ID,
			Name:   trimmed,
		})
	}

	if err := s.repo.AddPlayers(ctx, db, players); err != nil {
		return results.OperationResult[struct{}, error]{}, fmt.Errorf("failed to add players: %w", err)
	}

	return results.SuccessResult[struct{}, error](struct{}{}), nil
}

// ListForGame returns the game's teams; the repository orders the
// first-round team first.
func (s *TeamService) ListForGame(ctx context.Context, gameID uuid.UUID) ([]TeamInfo, error) {
	listTx := func(ctx context.Context, db bun.IDB) (results.OperationResult[[]TeamInfo, error], error) {
		return s.listForGameLogic(ctx, db, gameID)
	}

	result, err := operations.WithTelemetry(ctx, s.tel, "ListTeamsForGame", gameID.String(),
		func(ctx context.Context) (results.OperationResult[[]TeamInfo, error], error) {
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

func (s *TeamService) listForGameLogic(ctx context.Context, db bun.IDB, gameID uuid.UUID) (results.OperationResult[[]TeamInfo, error], error) {
	if _, err := s.games.GetByID(ctx, db, gameID); err != nil {
		if errors.Is(err, gamedb.ErrNotFound) {
			return results.FailureResult[[]TeamInfo, error](ErrGameNotFound), nil
		}
		return results.OperationResult[[]TeamInfo, error]{}, fmt.Errorf("failed to get game: %w", err)
	}

	teams, err := s.repo.ListForGame(ctx, db, gameID)
	if err != nil {
		return results.OperationResult[[]TeamInfo, error]{}, fmt.Errorf("failed to list teams: %w", err)
	}

	infos := make([]TeamInfo, 0, len(teams))
	for i := range teams {
		infos = append(infos, toTeamInfo(&teams[i]))
	}
	return results.SuccessResult[[]TeamInfo, error](infos), nil
}

// ListPlayers returns a team's roster.
func (s *TeamService) ListPlayers(ctx context.Context, teamID uuid.UUID) ([]PlayerInfo, error) {
	listTx := func(ctx context.Context, db bun.IDB) (results.OperationResult[[]PlayerInfo, error], error) {
		return s.listPlayersLogic(ctx, db, teamID)
	}

	result, err := operations.WithTelemetry(ctx, s.tel, "ListTeamPlayers", teamID.String(),
		func(ctx context.Context) (results.OperationResult[[]PlayerInfo, error], error) {
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

func (s *TeamService) listPlayersLogic(ctx context.Context, db bun.IDB, teamID uuid.UUID) (results.OperationResult[[]PlayerInfo, error], error) {
	team, err := s.repo.GetByID(ctx, db, teamID)
	if err != nil {
		if errors.Is(err, teamdb.ErrNotFound) {
			return results.FailureResult[[]PlayerInfo, error](ErrTeamNotFound), nil
		}
		return results.OperationResult[[]PlayerInfo, error]{}, fmt.Errorf("failed to get team: %w", err)
	}

	players, err := s.repo.ListPlayers(ctx, db, team.ID)
	if err != nil {
		return results.OperationResult[[]PlayerInfo, error]{}, fmt.Errorf("failed to list players: %w", err)
	}

	infos := make([]PlayerInfo, 0, len(players))
	for _, player := range players {
		infos = append(infos, PlayerInfo{
			ID:     player.ID,
			TeamID: player.TeamID,
			Name:   player.Name,
		})
	}
	return results.SuccessResult[[]PlayerInfo, error](infos), nil
}

func toTeamInfo(team *teamdb.Team) TeamInfo {
	return TeamInfo{
		ID:            team.ID,
		GameID:        team.GameID,
		Name:          team.Name,
		Colour:        team.Colour,
		HasFirstRound: team.HasFirstRound,
	}
}
