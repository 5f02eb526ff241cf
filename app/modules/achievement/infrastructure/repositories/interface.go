package achievementdb

import (
	"context"

	"github.com/uptrace/bun"
)

// Repository defines read access to the achievement catalogue.
type Repository interface {
	List(ctx context.Context, db bun.IDB) ([]Achievement, error)
}
