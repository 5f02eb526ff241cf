package gamemigrations

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Creating games table...")

		return db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
			if _, err := tx.ExecContext(ctx, `
				CREATE TABLE IF NOT EXISTS games (
					id UUID PRIMARY KEY,
					session_id UUID NOT NULL REFERENCES sessions(id) ON DELETE CASCADE,
					start_time TIMESTAMPTZ NOT NULL,
					end_time TIMESTAMPTZ,
					target_rounds INT
				);
				CREATE INDEX IF NOT EXISTS idx_games_session_open ON games(session_id) WHERE end_time IS NULL;
			`); err != nil {
				return fmt.Errorf("failed to create games table: %w", err)
			}
			return nil
		})
	}, func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Dropping games table...")

		return db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
			if _, err := tx.ExecContext(ctx, `DROP TABLE IF EXISTS games;`); err != nil {
				return fmt.Errorf("failed to drop games table: %w", err)
			}
			return nil
		})
	})
}
