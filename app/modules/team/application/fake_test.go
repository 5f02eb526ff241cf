package teamservice

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	gamedb "github.com/ice-and-stone/scorekeeper/app/modules/game/infrastructure/repositories"
	teamdb "github.com/ice-and-stone/scorekeeper/app/modules/team/infrastructure/repositories"
)

// ------------------------
// Fake Team Repo
// ------------------------

type FakeTeamRepo struct {
	trace []string

	GetByIDFunc       func(ctx context.Context, db bun.IDB, teamID uuid.UUID) (*teamdb.Team, error)
	ExistsForGameFunc func(ctx context.Context, db bun.IDB, gameID uuid.UUID) (bool, error)
	CreatePairFunc    func(ctx context.Context, db bun.IDB, teamA, teamB *teamdb.Team) error
	ListForGameFunc   func(ctx context.Context, db bun.IDB, gameID uuid.UUID) ([]teamdb.Team, error)
	AddPlayersFunc    func(ctx context.Context, db bun.IDB, players []*teamdb.Player) error
	ListPlayersFunc   func(ctx context.Context, db bun.IDB, teamID uuid.UUID) ([]teamdb.Player, error)
}

func NewFakeTeamRepo() *FakeTeamRepo {
	return &FakeTeamRepo{trace: []string{}}
}

func (f *FakeTeamRepo) record(step string) {
	f.trace = append(f.trace, step)
}

func (f *FakeTeamRepo) GetByID(ctx context.Context, db bun.IDB, teamID uuid.UUID) (*teamdb.Team, error) {
	f.record("GetByID")
	if f.GetByIDFunc != nil {
		return f.GetByIDFunc(ctx, db, teamID)
	}
	return nil, teamdb.ErrNotFound
}

func (f *FakeTeamRepo) ExistsForGame(ctx context.Context, db bun.IDB, gameID uuid.UUID) (bool, error) {
	f.record("ExistsForGame")
	if f.ExistsForGameFunc != nil {
		return f.ExistsForGameFunc(ctx, db, gameID)
	}
	return false, nil
}

func (f *FakeTeamRepo) CreatePair(ctx context.Context, db bun.IDB, teamA, teamB *teamdb.Team) error {
	f.record("CreatePair")
	if f.CreatePairFunc != nil {
		return f.CreatePairFunc(ctx, db, teamA, teamB)
	}
	return nil
}

func (f *FakeTeamRepo) ListForGame(ctx context.Context, db bun.IDB, gameID uuid.UUID) ([]teamdb.Team, error) {
	f.record("ListForGame")
	if f.ListForGameFunc != nil {
		return f.ListForGameFunc(ctx, db, gameID)
	}
	return nil, nil
}

func (f *FakeTeamRepo) AddPlayers(ctx context.Context, db bun.IDB, players []*teamdb.Player) error {
	f.record("AddPlayers")
	if f.AddPlayersFunc != nil {
		return f.AddPlayersFunc(ctx, db, players)
	}
	return nil
}

func (f *FakeTeamRepo) ListPlayers(ctx context.Context, db bun.IDB, teamID uuid.UUID) ([]teamdb.Player, error) {
	f.record("ListPlayers")
	if f.ListPlayersFunc != nil {
		return f.ListPlayersFunc(ctx, db, teamID)
	}
	return nil, nil
}

func (f *FakeTeamRepo) Trace() []string {
	out := make([]string, len(f.trace))
	copy(out, f.trace)
	return out
}

var _ teamdb.Repository = (*FakeTeamRepo)(nil)

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
