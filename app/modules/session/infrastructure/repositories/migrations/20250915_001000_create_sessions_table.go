package sessionmigrations

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Creating sessions table...")

		return db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
			if _, err := tx.ExecContext(ctx, `
				CREATE TABLE IF NOT EXISTS sessions (
					id UUID PRIMARY KEY,
					lane_id BIGINT NOT NULL REFERENCES lanes(id) ON DELETE CASCADE,
					start_time TIMESTAMPTZ NOT NULL,
					end_time TIMESTAMPTZ
				);
				CREATE INDEX IF NOT EXISTS idx_sessions_lane_start ON sessions(lane_id, start_time);
			`); err != nil {
				return fmt.Errorf("failed to create sessions table: %w", err)
			}
			return nil
		})
	}, func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Dropping sessions table...")

		return db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
			if _, err := tx.ExecContext(ctx, `DROP TABLE IF EXISTS sessions;`); err != nil {
				return fmt.Errorf("failed to drop sessions table: %w", err)
			}
			return nil
		})
	})
}
