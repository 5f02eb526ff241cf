package gameservice

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	gamedb "github.com/ice-and-stone/scorekeeper/app/modules/game/infrastructure/repositories"
	sessiondb "github.com/ice-and-stone/scorekeeper/app/modules/session/infrastructure/repositories"
)

// ------------------------
// Fake Game Repo
// ------------------------

type FakeGameRepo struct {
	trace []string

	GetByIDFunc func(ctx context.Context, db bun.IDB, gameID uuid.UUID) (*gamedb.Game, error)
	CreateFunc  func(ctx context.Context, db bun.IDB, game *gamedb.Game) error
	EndFunc     func(ctx context.Context, db bun.IDB, game *gamedb.Game) error
}

func NewFakeGameRepo() *FakeGameRepo {
	return &FakeGameRepo{trace: []string{}}
}

func (f *FakeGameRepo) record(step string) {
	f.trace = append(f.trace, step)
}

func (f *FakeGameRepo) GetByID(ctx context.Context, db bun.IDB, gameID uuid.UUID) (*gamedb.Game, error) {
	f.record("GetByID")
	if f.GetByIDFunc != nil {
		return f.GetByIDFunc(ctx, db, gameID)
	}
	return nil, gamedb.ErrNotFound
}

func (f *FakeGameRepo) Create(ctx context.Context, db bun.IDB, game *gamedb.Game) error {
	f.record("Create")
	if f.CreateFunc != nil {
		return f.CreateFunc(ctx, db, game)
	}
	return nil
}

func (f *FakeGameRepo) End(ctx context.Context, db bun.IDB, game *gamedb.Game) error {
	f.record("End")
	if f.EndFunc != nil {
		return f.EndFunc(ctx, db, game)
	}
	return nil
}

func (f *FakeGameRepo) CloseOpenForSession(ctx context.Context, db bun.IDB, sessionID uuid.UUID, endTime time.Time) (int64, error) {
	f.record("CloseOpenForSession")
	return 0, nil
}

func (f *FakeGameRepo) Trace() []string {
	out := make([]string, len(f.trace))
	copy(out, f.trace)
	return out
}

var _ gamedb.Repository = (*FakeGameRepo)(nil)

// ------------------------
// Fake Session Repo
// ------------------------

type FakeSessionRepo struct {
	GetByIDFunc func(ctx context.Context, db bun.IDB, sessionID uuid.UUID) (*sessiondb.Session, error)
}

func (f *FakeSessionRepo) GetByID(ctx context.Context, db bun.IDB, sessionID uuid.UUID) (*sessiondb.Session, error) {
	if f.GetByIDFunc != nil {
		return f.GetByIDFunc(ctx, db, sessionID)
	}
	return nil, sessiondb.ErrNotFound
}

func (f *FakeSessionRepo) Create(ctx context.Context, db bun.IDB, session *sessiondb.Session) error {
	return nil
}

func (f *FakeSessionRepo) End(ctx context.Context, db bun.IDB, session *sessiondb.Session) error {
	return nil
}

var _ sessiondb.Repository = (*FakeSessionRepo)(nil)
