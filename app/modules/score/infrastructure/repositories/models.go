package scoredb

import (
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// TeamScore is the single live score row for a (round, team) pair. Reposting
// overwrites the value in place; no history is kept.
type TeamScore struct {
	bun.BaseModel `bun:"table:team_scores,alias:ts"`

	ID      uuid.UUID `bun:"id,pk,type:uuid"`
	RoundID uuid.UUID `bun:"round_id,notnull,type:uuid"`
	TeamID  uuid.UUID `bun:"team_id,notnull,type:uuid"`
	Value   int       `bun:"value,notnull"`
}
