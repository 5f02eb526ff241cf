package teamdb

import (
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Team is one of exactly two competing sides within a game. Colour is
// free-form but unique within the game case-insensitively, and exactly one
// team of the pair has HasFirstRound set.
type Team struct {
	bun.BaseModel `bun:"table:teams,alias:t"`

	ID            uuid.UUID `bun:"id,pk,type:uuid"`
	GameID        uuid.UUID `bun:"game_id,notnull,type:uuid"`
	Name          string    `bun:"name,notnull"`
	Colour        string    `bun:"colour,notnull"`
	HasFirstRound bool      `bun:"has_first_round,notnull"`
}

// Player is a roster entry. Names are not unique; repeated adds append
// duplicates.
type Player struct {
	bun.BaseModel `bun:"table:players,alias:p"`

	ID     uuid.UUID `bun:"id,pk,type:uuid"`
	TeamID uuid.UUID `bun:"team_id,notnull,type:uuid"`
	Name   string    `bun:"name,notnull"`
}
