package scoremigrations

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Creating team_scores table...")

		return db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
			if _, err := tx.ExecContext(ctx, `
				CREATE TABLE IF NOT EXISTS team_scores (
					id UUID PRIMARY KEY,
					round_id UUID NOT NULL REFERENCES rounds(id) ON DELETE CASCADE,
					team_id UUID NOT NULL REFERENCES teams(id) ON DELETE CASCADE,
					value INT NOT NULL CHECK (value >= 0),
					CONSTRAINT uq_team_scores_round_team UNIQUE (round_id, team_id)
				);
			`); err != nil {
				return fmt.Errorf("failed to create team_scores table: %w", err)
			}
			return nil
		})
	}, func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Dropping team_scores table...")

		return db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
			if _, err := tx.ExecContext(ctx, `DROP TABLE IF EXISTS team_scores;`); err != nil {
				return fmt.Errorf("failed to drop team_scores table: %w", err)
			}
			return nil
		})
	})
}
