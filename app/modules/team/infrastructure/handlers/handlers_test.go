package teamhandlers

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	teamservice "github.com/ice-and-stone/scorekeeper/app/modules/team/application"
)

type fakeTeamService struct {
	CreatePairFunc  func(ctx context.Context, input teamservice.CreatePairInput) (*teamservice.TeamPair, error)
	AddPlayersFunc  func(ctx context.Context, teamID uuid.UUID, names []string) error
	ListForGameFunc func(ctx context.Context, gameID uuid.UUID) ([]teamservice.TeamInfo, error)
	ListPlayersFunc func(ctx context.Context, teamID uuid.UUID) ([]teamservice.PlayerInfo, error)
}

func (f *fakeTeamService) CreatePair(ctx context.Context, input teamservice.CreatePairInput) (*teamservice.TeamPair, error) {
	return f.CreatePairFunc(ctx, input)
}

func (f *fakeTeamService) AddPlayers(ctx context.Context, teamID uuid.UUID, names []string) error {
	return f.AddPlayersFunc(ctx, teamID, names)
}

func (f *fakeTeamService) ListForGame(ctx context.Context, gameID uuid.UUID) ([]teamservice.TeamInfo, error) {
	return f.ListForGameFunc(ctx, gameID)
}

func (f *fakeTeamService) ListPlayers(ctx context.Context, teamID uuid.UUID) ([]teamservice.PlayerInfo, error) {
	return f.ListPlayersFunc(ctx, teamID)
}

func newTestRouter(svc teamservice.Service) http.Handler {
	r := chi.NewRouter()
	h := NewTeamHandlers(svc, slog.New(slog.DiscardHandler))
	h.Register(r)
	return r
}

func TestHandleListForGame(t *testing.T) {
	gameID := uuid.New()

	t.Run("happy path", func(t *testing.T) {
		svc := &fakeTeamService{
			ListForGameFunc: func(ctx context.Context, id uuid.UUID) ([]teamservice.TeamInfo, error) {
				assert.Equal(t, gameID, id)
				return []teamservice.TeamInfo{
					{ID: uuid.New(), GameID: id, Name: "Reds", Colour: "Red", HasFirstRound: true},
					{ID: uuid.New(), GameID: id, Name: "Blues", Colour: "Blue"},
				}, nil
			},
		}

		req := httptest.NewRequest(http.MethodGet, "/games/"+gameID.String()+"/teams", nil)
		rec := httptest.NewRecorder()
		newTestRouter(svc).ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		var resp []teamservice.TeamInfo
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		require.Len(t, resp, 2)
		assert.Equal(t, "Reds", resp[0].Name)
	})

	t.Run("invalid game id", func(t *testing.T) {
		svc := &fakeTeamService{}

		req := httptest.NewRequest(http.MethodGet, "/games/not-a-uuid/teams", nil)
		rec := httptest.NewRecorder()
		newTestRouter(svc).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("game not found", func(t *testing.T) {
		svc := &fakeTeamService{
			ListForGameFunc: func(ctx context.Context, id uuid.UUID) ([]teamservice.TeamInfo, error) {
				return nil, teamservice.ErrGameNotFound
			},
		}

		req := httptest.NewRequest(http.MethodGet, "/games/"+gameID.String()+"/teams", nil)
		rec := httptest.NewRecorder()
		newTestRouter(svc).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestHandleListPlayers(t *testing.T) {
	teamID := uuid.New()

	t.Run("happy path", func(t *testing.T) {
		svc := &fakeTeamService{
			ListPlayersFunc: func(ctx context.Context, id uuid.UUID) ([]teamservice.PlayerInfo, error) {
				assert.Equal(t, teamID, id)
				return []teamservice.PlayerInfo{
					{ID: uuid.New(), TeamID: id, Name: "Alice"},
				}, nil
			},
		}

		req := httptest.NewRequest(http.MethodGet, "/teams/"+teamID.String()+"/players", nil)
		rec := httptest.NewRecorder()
		newTestRouter(svc).ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		var resp []teamservice.PlayerInfo
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		require.Len(t, resp, 1)
		assert.Equal(t, "Alice", resp[0].Name)
	})

	t.Run("invalid team id", func(t *testing.T) {
		svc := &fakeTeamService{}

		req := httptest.NewRequest(http.MethodGet, "/teams/not-a-uuid/players", nil)
		rec := httptest.NewRecorder()
		newTestRouter(svc).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("team not found", func(t *testing.T) {
		svc := &fakeTeamService{
			ListPlayersFunc: func(ctx context.Context, id uuid.UUID) ([]teamservice.PlayerInfo, error) {
				return nil, teamservice.ErrTeamNotFound
			},
		}

		req := httptest.NewRequest(http.MethodGet, "/teams/"+teamID.String()+"/players", nil)
		rec := httptest.NewRecorder()
		newTestRouter(svc).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
