package teammigrations

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Creating teams and players tables...")

		return db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
			if _, err := tx.ExecContext(ctx, `
				CREATE TABLE IF NOT EXISTS teams (
					id UUID PRIMARY KEY,
					game_id UUID NOT NULL REFERENCES games(id) ON DELETE CASCADE,
					name VARCHAR(100) NOT NULL,
					colour VARCHAR(50) NOT NULL,
					has_first_round BOOLEAN NOT NULL DEFAULT FALSE
				);
				CREATE UNIQUE INDEX IF NOT EXISTS uq_teams_game_colour ON teams(game_id, LOWER(colour));
				CREATE INDEX IF NOT EXISTS idx_teams_game ON teams(game_id);
			`); err != nil {
				return fmt.Errorf("failed to create teams table: %w", err)
			}

			if _, err := tx.ExecContext(ctx, `
				CREATE TABLE IF NOT EXISTS players (
					id UUID PRIMARY KEY,
					team_id UUID NOT NULL REFERENCES teams(id) ON DELETE CASCADE,
					name VARCHAR(100) NOT NULL
				);
				CREATE INDEX IF NOT EXISTS idx_players_team ON players(team_id);
			`); err != nil {
				return fmt.Errorf("failed to create players table: %w", err)
			}

			return nil
		})
	}, func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Dropping players and teams tables...")

		return db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
			if _, err := tx.ExecContext(ctx, `DROP TABLE IF EXISTS players;`); err != nil {
				return fmt.Errorf("failed to drop players table: %w", err)
			}
			if _, err := tx.ExecContext(ctx, `DROP TABLE IF EXISTS teams;`); err != nil {
				return fmt.Errorf("failed to drop teams table: %w", err)
			}
			return nil
		})
	})
}
