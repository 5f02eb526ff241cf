package teamservice

import (
	"context"

	"github.com/google/uuid"
)

// TeamInfo is the team view returned to callers.
type TeamInfo struct {
	ID            uuid.UUID `json:"id"`
	GameID        uuid.UUID `json:"gameId"`
	Name          string    `json:"name"`
	Colour        string    `json:"colour"`
	HasFirstRound bool      `json:"hasFirstRound"`
}

// PlayerInfo is the roster entry view returned to callers.
type PlayerInfo struct {
	ID     uuid.UUID `json:"id"`
	TeamID uuid.UUID `json:"teamId"`
	Name   string    `json:"name"`
}

// TeamPair holds the two teams of a game.
type TeamPair struct {
	TeamA TeamInfo `json:"teamA"`
	TeamB TeamInfo `json:"teamB"`
}

// CreatePairInput carries the fields for creating a game's team pair.
// FirstRoundTeam selects "A" or "B" (case-insensitive); any other or absent
// value defaults to "A".
type CreatePairInput struct {
	GameID         uuid.UUID
	NameA          string
	ColourA        string
	NameB          string
	ColourB        string
	FirstRoundTeam string
}

// Service defines the roster operations.
type Service interface {
	// CreatePair creates the exactly-two opposing teams of a game. A game
	// receives its pair exactly once.
	CreatePair(ctx context.Context, input CreatePairInput) (*TeamPair, error)

	// AddPlayers appends players to a team's roster. Blank names are skipped,
	// surviving names are trimmed; duplicates are accepted.
	AddPlayers(ctx context.Context, teamID uuid.UUID, names []string) error

	// ListForGame returns the game's teams, the first-round team first.
	ListForGame(ctx context.Context, gameID uuid.UUID) ([]TeamInfo, error)

	// ListPlayers returns a team's roster.
	ListPlayers(ctx context.Context, teamID uuid.UUID) ([]PlayerInfo, error)
}
