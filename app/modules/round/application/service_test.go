package roundservice

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uptrace/bun"

	gamedb "github.com/ice-and-stone/scorekeeper/app/modules/game/infrastructure/repositories"
	rounddb "github.com/ice-and-stone/scorekeeper/app/modules/round/infrastructure/repositories"
	teamdb "github.com/ice-and-stone/scorekeeper/app/modules/team/infrastructure/repositories"
	"github.com/ice-and-stone/scorekeeper/app/shared/faults"
	"github.com/ice-and-stone/scorekeeper/app/shared/operations"
)

func TestStartRound(t *testing.T) {
	gameID := uuid.New()
	teamID := uuid.New()
	otherGameID := uuid.New()
	ended := time.Now().UTC().Add(-time.Hour)

	openGame := func(ctx context.Context, db bun.IDB, id uuid.UUID) (*gamedb.Game, error) {
		return &gamedb.Game{ID: gameID, SessionID: uuid.New(), StartTime: time.Now().UTC()}, nil
	}
	gameTeam := func(ctx context.Context, db bun.IDB, id uuid.UUID) (*teamdb.Team, error) {
		return &teamdb.Team{ID: teamID, GameID: gameID, Colour: "red"}, nil
	}

	tests := []struct {
		name        string
		setupGame   func(*FakeGameRepo)
		setupTeam   func(*FakeTeamRepo)
		setupRound  func(*FakeRoundRepo)
		wantErr     bool
		wantErrType error
		wantKind    error
	}{
		{
			name:       "happy path",
			setupGame:  func(f *FakeGameRepo) { f.GetByIDFunc = openGame },
			setupTeam:  func(f *FakeTeamRepo) { f.GetByIDFunc = gameTeam },
			setupRound: func(f *FakeRoundRepo) {},
		},
		{
			name:        "game not found",
			setupGame:   func(f *FakeGameRepo) {},
			setupTeam:   func(f *FakeTeamRepo) {},
			setupRound:  func(f *FakeRoundRepo) {},
			wantErr:     true,
			wantErrType: ErrGameNotFound,
			wantKind:    faults.ErrNotFound,
		},
		{
			name: "game already ended",
			setupGame: func(f *FakeGameRepo) {
				f.GetByIDFunc = func(ctx context.Context, db bun.IDB, id uuid.UUID) (*gamedb.Game, error) {
					return &gamedb.Game{ID: gameID, SessionID: uuid.New(), EndTime: &ended}, nil
				}
			},
			setupTeam:   func(f *FakeTeamRepo) {},
			setupRound:  func(f *FakeRoundRepo) {},
			wantErr:     true,
			wantErrType: ErrGameAlreadyEnded,
			wantKind:    faults.ErrInvalidState,
		},
		{
			name:        "starting team not found",
			setupGame:   func(f *FakeGameRepo) { f.GetByIDFunc = openGame },
			setupTeam:   func(f *FakeTeamRepo) {},
			setupRound:  func(f *FakeRoundRepo) {},
			wantErr:     true,
			wantErrType: ErrTeamNotFound,
			wantKind:    faults.ErrNotFound,
		},
		{
			name:      "starting team belongs to another game",
			setupGame: func(f *FakeGameRepo) { f.GetByIDFunc = openGame },
			setupTeam: func(f *FakeTeamRepo) {
				f.GetByIDFunc = func(ctx context.Context, db bun.IDB, id uuid.UUID) (*teamdb.Team, error) {
					return &teamdb.Team{ID: teamID, GameID: otherGameID, Colour: "red"}, nil
				}
			},
			setupRound:  func(f *FakeRoundRepo) {},
			wantErr:     true,
			wantErrType: ErrTeamWrongGame,
			wantKind:    faults.ErrInvalidState,
		},
		{
			name:      "duplicate round number",
			setupGame: func(f *FakeGameRepo) { f.GetByIDFunc = openGame },
			setupTeam: func(f *FakeTeamRepo) { f.GetByIDFunc = gameTeam },
			setupRound: func(f *FakeRoundRepo) {
				f.NumberExistsFunc = func(ctx context.Context, db bun.IDB, g uuid.UUID, n int) (bool, error) {
					return true, nil
				}
			},
			wantErr:     true,
			wantErrType: ErrDuplicateRoundNumber,
			wantKind:    faults.ErrConflict,
		},
		{
			name:      "database error",
			setupGame: func(f *FakeGameRepo) { f.GetByIDFunc = openGame },
			setupTeam: func(f *FakeTeamRepo) { f.GetByIDFunc = gameTeam },
			setupRound: func(f *FakeRoundRepo) {
				f.CreateFunc = func(ctx context.Context, db bun.IDB, r *rounddb.Round) error {
					return errors.New("database connection failed")
				}
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			games := &FakeGameRepo{}
			tt.setupGame(games)
			teams := &FakeTeamRepo{}
			tt.setupTeam(teams)
			repo := NewFakeRoundRepo()
			tt.setupRound(repo)

			svc := NewRoundService(repo, games, teams, operations.Telemetry{}, nil)

			result, err := svc.Start(context.Background(), gameID, 3, teamID)

			if tt.wantErr {
				assert.Error(t, err)
				if tt.wantErrType != nil {
					assert.ErrorIs(t, err, tt.wantErrType)
				}
				if tt.wantKind != nil {
					assert.ErrorIs(t, err, tt.wantKind)
				}
				return
			}

			require.NoError(t, err)
			require.NotNil(t, result)
			assert.Equal(t, gameID, result.GameID)
			assert.Equal(t, 3, result.Number)
			assert.Equal(t, teamID, result.StartsFirstTeamID)
			assert.Nil(t, result.EndTime)
			assert.Equal(t, []string{"NumberExists", "Create"}, repo.Trace())
		})
	}
}

// Rounds are not required to be sequential; any unused number is valid.
func TestStartRoundNonSequentialNumber(t *testing.T) {
	gameID := uuid.New()
	teamID := uuid.New()

	games := &FakeGameRepo{GetByIDFunc: func(ctx context.Context, db bun.IDB, id uuid.UUID) (*gamedb.Game, error) {
		return &gamedb.Game{ID: gameID, StartTime: time.Now().UTC()}, nil
	}}
	teams := &FakeTeamRepo{GetByIDFunc: func(ctx context.Context, db bun.IDB, id uuid.UUID) (*teamdb.Team, error) {
		return &teamdb.Team{ID: teamID, GameID: gameID, Colour: "yellow"}, nil
	}}
	repo := NewFakeRoundRepo()

	svc := NewRoundService(repo, games, teams, operations.Telemetry{}, nil)

	result, err := svc.Start(context.Background(), gameID, 7, teamID)
	require.NoError(t, err)
	assert.Equal(t, 7, result.Number)
}

func TestEndRound(t *testing.T) {
	roundID := uuid.New()
	gameID := uuid.New()
	teamID := uuid.New()
	ended := time.Now().UTC().Add(-time.Hour)

	t.Run("happy path", func(t *testing.T) {
		repo := NewFakeRoundRepo()
		repo.GetByIDFunc = func(ctx context.Context, db bun.IDB, id uuid.UUID) (*rounddb.Round, error) {
			return &rounddb.Round{ID: roundID, GameID: gameID, Number: 1, StartsFirstTeamID: teamID, StartTime: time.Now().UTC()}, nil
		}

		svc := NewRoundService(repo, &FakeGameRepo{}, &FakeTeamRepo{}, operations.Telemetry{}, nil)

		result, err := svc.End(context.Background(), roundID)
		require.NoError(t, err)
		require.NotNil(t, result.EndTime)
		assert.Equal(t, []string{"GetByID", "End"}, repo.Trace())
	})

	t.Run("round not found", func(t *testing.T) {
		svc := NewRoundService(NewFakeRoundRepo(), &FakeGameRepo{}, &FakeTeamRepo{}, operations.Telemetry{}, nil)

		_, err := svc.End(context.Background(), roundID)
		assert.ErrorIs(t, err, ErrRoundNotFound)
		assert.ErrorIs(t, err, faults.ErrNotFound)
	})

	t.Run("already ended", func(t *testing.T) {
		repo := NewFakeRoundRepo()
		repo.GetByIDFunc = func(ctx context.Context, db bun.IDB, id uuid.UUID) (*rounddb.Round, error) {
			return &rounddb.Round{ID: roundID, GameID: gameID, Number: 1, StartsFirstTeamID: teamID, EndTime: &ended}, nil
		}
		svc := NewRoundService(repo, &FakeGameRepo{}, &FakeTeamRepo{}, operations.Telemetry{}, nil)

		_, err := svc.End(context.Background(), roundID)
		assert.ErrorIs(t, err, ErrRoundAlreadyEnded)
		assert.ErrorIs(t, err, faults.ErrInvalidState)
		assert.NotContains(t, repo.Trace(), "End")
	})
}
