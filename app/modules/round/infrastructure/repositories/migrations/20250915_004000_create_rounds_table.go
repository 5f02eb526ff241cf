package roundmigrations

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Creating rounds table...")

		return db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
			if _, err := tx.ExecContext(ctx, `
				CREATE TABLE IF NOT EXISTS rounds (
					id UUID PRIMARY KEY,
					game_id UUID NOT NULL REFERENCES games(id) ON DELETE CASCADE,
					number INT NOT NULL,
					starts_first_team_id UUID NOT NULL REFERENCES teams(id) ON DELETE CASCADE,
					start_time TIMESTAMPTZ NOT NULL,
					end_time TIMESTAMPTZ,
					CONSTRAINT uq_rounds_game_number UNIQUE (game_id, number)
				);
				CREATE INDEX IF NOT EXISTS idx_rounds_game ON rounds(game_id);
			`); err != nil {
				return fmt.Errorf("failed to create rounds table: %w", err)
			}
			return nil
		})
	}, func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Dropping rounds table...")

		return db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
			if _, err := tx.ExecContext(ctx, `DROP TABLE IF EXISTS rounds;`); err != nil {
				return fmt.Errorf("failed to drop rounds table: %w", err)
			}
			return nil
		})
	})
}
