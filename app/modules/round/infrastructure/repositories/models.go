package rounddb

import (
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Round is one scoring interval within a game. Numbers are caller-supplied
// and unique per game, not necessarily sequential.
type Round struct {
	bun.BaseModel `bun:"table:rounds,alias:r"`

	ID                uuid.UUID  `bun:"id,pk,type:uuid"`
	GameID            uuid.UUID  `bun:"game_id,notnull,type:uuid"`
	Number            int        `bun:"number,notnull"`
	StartsFirstTeamID uuid.UUID  `bun:"starts_first_team_id,notnull,type:uuid"`
	StartTime         time.Time  `bun:"start_time,notnull"`
	EndTime           *time.Time `bun:"end_time"`
}
