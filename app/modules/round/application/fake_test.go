package roundservice

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	gamedb "github.com/ice-and-stone/scorekeeper/app/modules/game/infrastructure/repositories"
	rounddb "github.com/ice-and-stone/scorekeeper/app/modules/round/infrastructure/repositories"
	teamdb "github.com/ice-and-stone/scorekeeper/app/modules/team/infrastructure/repositories"
)

// ------------------------
// Fake Round Repo
// ------------------------

type FakeRoundRepo struct {
	trace []string

	GetByIDFunc      func(ctx context.Context, db bun.IDB, roundID uuid.UUID) (*rounddb.Round, error)
	CreateFunc       func(ctx context.Context, db bun.IDB, round *rounddb.Round) error
	EndFunc          func(ctx context.Context, db bun.IDB, round *rounddb.Round) error
	NumberExistsFunc func(ctx context.Context, db bun.IDB, gameID uuid.UUID, number int) (bool, error)
}

func NewFakeRoundRepo() *FakeRoundRepo {
	return &FakeRoundRepo{trace: []string{}}
}

func (f *FakeRoundRepo) record(step string) {
	f.trace = append(f.trace, step)
}

func (f *FakeRoundRepo) GetByID(ctx context.Context, db bun.IDB, roundID uuid.UUID) (*rounddb.Round, error) {
	f.record("GetByID")
	if f.GetByIDFunc != nil {
		return f.GetByIDFunc(ctx, db, roundID)
	}
	return nil, rounddb.ErrNotFound
}

func (f *FakeRoundRepo) Create(ctx context.Context, db bun.IDB, round *rounddb.Round) error {
	f.record("Create")
	if f.CreateFunc != nil {
		return f.CreateFunc(ctx, db, round)
	}
	return nil
}

func (f *FakeRoundRepo) End(ctx context.Context, db bun.IDB, round *rounddb.Round) error {
	f.record("End")
	if f.EndFunc != nil {
		return f.EndFunc(ctx, db, round)
	}
	return nil
}

func (f *FakeRoundRepo) NumberExists(ctx context.Context, db bun.IDB, gameID uuid.UUID, number int) (bool, error) {
	f.record("NumberExists")
	if f.NumberExistsFunc != nil {
		return f.NumberExistsFunc(ctx, db, gameID, number)
	}
	return false, nil
}

func (f *FakeRoundRepo) Trace() []string {
	out := make([]string, len(f.trace))
	copy(out, f.trace)
	return out
}

var _ rounddb.Repository = (*FakeRoundRepo)(nil)

// ------------------------
// Fake Game Repo
// ------------------------

type FakeGameRepo struct {
	GetByIDFunc func(ctx context.Context, db bun.IDB, gameID uuid.UUID) (*gamedb.Game, error)
}

func (f *FakeGameRepo) GetByID(ctx context.Context, db bun.IDB, gameID uuid.UUID) (*gamedb.Game, error) {
	if f.GetByIDFunc != nil {
		return f.GetByIDFunc(ctx, db, gameID)
	}
	return nil, gamedb.ErrNotFound
}

func (f *FakeGameRepo) Create(ctx context.Context, db bun.IDB, game *gamedb.Game) error {
	return nil
}

func (f *FakeGameRepo) End(ctx context.Context, db bun.IDB, game *gamedb.Game) error {
	return nil
}

func (f *FakeGameRepo) CloseOpenForSession(ctx context.Context, db bun.IDB, sessionID uuid.UUID, endTime time.Time) (int64, error) {
	return 0, nil
}

var _ gamedb.Repository = (*FakeGameRepo)(nil)

// ------------------------
// Fake Team Repo
// ------------------------

type FakeTeamRepo struct {
	GetByIDFunc func(ctx context.Context, db bun.IDB, teamID uuid.UUID) (*teamdb.Team, error)
}

func (f *FakeTeamRepo) GetByID(ctx context.Context, db bun.IDB, teamID uuid.UUID) (*teamdb.Team, error) {
	if f.GetByIDFunc != nil {
		return f.GetByIDFunc(ctx, db, teamID)
	}
	return nil, teamdb.ErrNotFound
}

func (f *FakeTeamRepo) ExistsForGame(ctx context.Context, db bun.IDB, gameID uuid.UUID) (bool, error) {
	return false, nil
}

func (f *FakeTeamRepo) CreatePair(ctx context.Context, db bun.IDB, teamA, teamB *teamdb.Team) error {
	return nil
}

func (f *FakeTeamRepo) ListForGame(ctx context.Context, db bun.IDB, gameID uuid.UUID) ([]teamdb.Team, error) {
	return nil, nil
}

func (f *FakeTeamRepo) AddPlayers(ctx context.Context, db bun.IDB, players []*teamdb.Player) error {
	return nil
}

func (f *FakeTeamRepo) ListPlayers(ctx context.Context, db bun.IDB, teamID uuid.UUID) ([]teamdb.Player, error) {
	return nil, nil
}

var _ teamdb.Repository = (*FakeTeamRepo)(nil)
