package achievementdb

import (
	"github.com/uptrace/bun"
)

// Trigger types an achievement can be evaluated on.
const (
	TriggerRound   = "round"
	TriggerSession = "session"
)

// Achievement is static reference data consumed by an external evaluator.
// The backend seeds the catalogue and never writes it afterwards.
type Achievement struct {
	bun.BaseModel `bun:"table:achievements,alias:a"`

	ID          int64   `bun:"id,pk,autoincrement"`
	Name        string  `bun:"name,notnull"`
	TriggerType string  `bun:"trigger_type,notnull"`
	Description *string `bun:"description"`
}
