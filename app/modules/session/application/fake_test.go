package sessionservice

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	gamedb "github.com/ice-and-stone/scorekeeper/app/modules/game/infrastructure/repositories"
	sessiondb "github.com/ice-and-stone/scorekeeper/app/modules/session/infrastructure/repositories"
	venuedb "github.com/ice-and-stone/scorekeeper/app/modules/venue/infrastructure/repositories"
)

// ------------------------
// Fake Session Repo
// ------------------------

type FakeSessionRepo struct {
	trace []string

	GetByIDFunc func(ctx context.Context, db bun.IDB, sessionID uuid.UUID) (*sessiondb.Session, error)
	CreateFunc  func(ctx context.Context, db bun.IDB, session *sessiondb.Session) error
	EndFunc     func(ctx context.Context, db bun.IDB, session *sessiondb.Session) error
}

func NewFakeSessionRepo() *FakeSessionRepo {
	return &FakeSessionRepo{trace: []string{}}
}

func (f *FakeSessionRepo) record(step string) {
	f.trace = append(f.trace, step)
}

func (f *FakeSessionRepo) GetByID(ctx context.Context, db bun.IDB, sessionID uuid.UUID) (*sessiondb.Session, error) {
	f.record("GetByID")
	if f.GetByIDFunc != nil {
		return f.GetByIDFunc(ctx, db, sessionID)
	}
	return nil, sessiondb.ErrNotFound
}

func (f *FakeSessionRepo) Create(ctx context.Context, db bun.IDB, session *sessiondb.Session) error {
	f.record("Create")
	if f.CreateFunc != nil {
		return f.CreateFunc(ctx, db, session)
	}
	return nil
}

func (f *FakeSessionRepo) End(ctx context.Context, db bun.IDB, session *sessiondb.Session) error {
	f.record("End")
	if f.EndFunc != nil {
		return f.EndFunc(ctx, db, session)
	}
	return nil
}

func (f *FakeSessionRepo) Trace() []string {
	out := make([]string, len(f.trace))
	copy(out, f.trace)
	return out
}

var _ sessiondb.Repository = (*FakeSessionRepo)(nil)

// ------------------------
// Fake Game Repo
// ------------------------

type FakeGameRepo struct {
	CloseOpenForSessionFunc func(ctx context.Context, db bun.IDB, sessionID uuid.UUID, endTime time.Time) (int64, error)
}

func (f *FakeGameRepo) GetByID(ctx context.Context, db bun.IDB, gameID uuid.UUID) (*gamedb.Game, error) {
	return nil, gamedb.ErrNotFound
}

func (f *FakeGameRepo) Create(ctx context.Context, db bun.IDB, game *gamedb.Game) error {
	return nil
}

func (f *FakeGameRepo) End(ctx context.Context, db bun.IDB, game *gamedb.Game) error {
	return nil
}

func (f *FakeGameRepo) CloseOpenForSession(ctx context.Context, db bun.IDB, sessionID uuid.UUID, endTime time.Time) (int64, error) {
	if f.CloseOpenForSessionFunc != nil {
		return f.CloseOpenForSessionFunc(ctx, db, sessionID, endTime)
	}
	return 0, nil
}

var _ gamedb.Repository = (*FakeGameRepo)(nil)

// ------------------------
// Fake Lane Repo
// ------------------------

type FakeLaneRepo struct {
	LaneExistsFunc func(ctx context.Context, db bun.IDB, laneID int64) (bool, error)
}

func (f *FakeLaneRepo) ListVenues(ctx context.Context, db bun.IDB) ([]venuedb.Venue, error) {
	return nil, nil
}

func (f *FakeLaneRepo) ListLanes(ctx context.Context, db bun.IDB, venueID int64) ([]venuedb.Lane, error) {
	return nil, nil
}

func (f *FakeLaneRepo) LaneExists(ctx context.Context, db bun.IDB, laneID int64) (bool, error) {
	if f.LaneExistsFunc != nil {
		return f.LaneExistsFunc(ctx, db, laneID)
	}
	return false, nil
}

var _ venuedb.Repository = (*FakeLaneRepo)(nil)
