package achievementdb

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"
)

// Impl implements the Repository interface using Bun ORM.
type Impl struct {
	db bun.IDB
}

// NewRepository creates a new achievement repository.
func NewRepository(db bun.IDB) Repository {
	return &Impl{db: db}
}

// List returns the full achievement catalogue ordered by ID.
func (r *Impl) List(ctx context.Context, db bun.IDB) ([]Achievement, error) {
	if db == nil {
		db = r.db
	}
	var achievements []Achievement
	err := db.NewSelect().
		Model(&achievements).
		Order("id ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list achievements: %w", err)
	}
	return achievements, nil
}
