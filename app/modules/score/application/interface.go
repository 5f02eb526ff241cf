package scoreservice

import (
	"context"

	"github.com/google/uuid"
)

// ScoreInfo is the score view returned to callers.
type ScoreInfo struct {
	ID      uuid.UUID `json:"id"`
	RoundID uuid.UUID `json:"roundId"`
	TeamID  uuid.UUID `json:"teamId"`
	Value   int       `json:"value"`
}

// Service defines the score operations.
type Service interface {
	// PostTeamScore records a team's score for a round. Reposting for the
	// same (round, team) pair overwrites the previous value.
	PostTeamScore(ctx context.Context, roundID, teamID uuid.UUID, value int) (*ScoreInfo, error)

	// ListForRound returns all scores recorded for the round.
	ListForRound(ctx context.Context, roundID uuid.UUID) ([]ScoreInfo, error)
}
