package scoreservice

import (
	"context"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	rounddb "github.com/ice-and-stone/scorekeeper/app/modules/round/infrastructure/repositories"
	scoredb "github.com/ice-and-stone/scorekeeper/app/modules/score/infrastructure/repositories"
	teamdb "github.com/ice-and-stone/scorekeeper/app/modules/team/infrastructure/repositories"
)

// ------------------------
// Fake Score Repo
// ------------------------

// FakeScoreRepo keeps scores in a map keyed by (round, team) so upsert
// semantics can be asserted directly.
type FakeScoreRepo struct {
	trace  []string
	scores map[string]*scoredb.TeamScore

	GetByRoundAndTeamFunc func(ctx context.Context, db bun.IDB, roundID, teamID uuid.UUID) (*scoredb.TeamScore, error)
	UpsertFunc            func(ctx context.Context, db bun.IDB, score *scoredb.TeamScore) error
	UpdateValueFunc       func(ctx context.Context, db bun.IDB, score *scoredb.TeamScore) error
	ListForRoundFunc      func(ctx context.Context, db bun.IDB, roundID uuid.UUID) ([]scoredb.TeamScore, error)
}

func NewFakeScoreRepo() *FakeScoreRepo {
	return &FakeScoreRepo{
		trace:  []string{},
		scores: map[string]*scoredb.TeamScore{},
	}
}

func (f *FakeScoreRepo) record(step string) {
	f.trace = append(f.trace, step)
}

func key(roundID, teamID uuid.UUID) string {
	return roundID.String() + "/" + teamID.String()
}

func (f *FakeScoreRepo) GetByRoundAndTeam(ctx context.Context, db bun.IDB, roundID, teamID uuid.UUID) (*scoredb.TeamScore, error) {
	f.record("GetByRoundAndTeam")
	if f.GetByRoundAndTeamFunc != nil {
		return f.GetByRoundAndTeamFunc(ctx, db, roundID, teamID)
	}
	score, ok := f.scores[key(roundID, teamID)]
	if !ok {
		return nil, scoredb.ErrNotFound
	}
	copied := *score
	return &copied, nil
}

func (f *FakeScoreRepo) Upsert(ctx context.Context, db bun.IDB, score *scoredb.TeamScore) error {
	f.record("Upsert")
	if f.UpsertFunc != nil {
		return f.UpsertFunc(ctx, db, score)
	}
	k := key(score.RoundID, score.TeamID)
	if existing, ok := f.scores[k]; ok {
		score.ID = existing.ID
	}
	copied := *score
	f.scores[k] = &copied
	return nil
}

func (f *FakeScoreRepo) UpdateValue(ctx context.Context, db bun.IDB, score *scoredb.TeamScore) error {
	f.record("UpdateValue")
	if f.UpdateValueFunc != nil {
		return f.UpdateValueFunc(ctx, db, score)
	}
	k := key(score.RoundID, score.TeamID)
	copied := *score
	f.scores[k] = &copied
	return nil
}

func (f *FakeScoreRepo) ListForRound(ctx context.Context, db bun.IDB, roundID uuid.UUID) ([]scoredb.TeamScore, error) {
	f.record("ListForRound")
	if f.ListForRoundFunc != nil {
		return f.ListForRoundFunc(ctx, db, roundID)
	}
	var out []scoredb.TeamScore
	for _, score := range f.scores {
		if score.RoundID == roundID {
			out = append(out, *score)
		}
	}
	return out, nil
}

func (f *FakeScoreRepo) Trace() []string {
	out := make([]string, len(f.trace))
	copy(out, f.trace)
	return out
}

func (f *FakeScoreRepo) Rows() int {
	return len(f.scores)
}

var _ scoredb.Repository = (*FakeScoreRepo)(nil)

// ------------------------
// Fake Round Repo
// ------------------------

type FakeRoundRepo struct {
	GetByIDFunc func(ctx context.Context, db bun.IDB, roundID uuid.UUID) (*rounddb.Round, error)
}

func (f *FakeRoundRepo) GetByID(ctx context.Context, db bun.IDB, roundID uuid.UUID) (*rounddb.Round, error) {
	if f.GetByIDFunc != nil {
		return f.GetByIDFunc(ctx, db, roundID)
	}
	return nil, rounddb.ErrNotFound
}

func (f *FakeRoundRepo) Create(ctx context.Context, db bun.IDB, round *rounddb.Round) error {
	return nil
}

func (f *FakeRoundRepo) End(ctx context.Context, db bun.IDB, round *rounddb.Round) error {
	return nil
}

func (f *FakeRoundRepo) NumberExists(ctx context.Context, db bun.IDB, gameID uuid.UUID, number int) (bool, error) {
	return false, nil
}

var _ rounddb.Repository = (*FakeRoundRepo)(nil)

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
