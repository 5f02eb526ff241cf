package achievementmigrations

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Creating achievements table with seed catalogue...")

		return db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
			if _, err := tx.ExecContext(ctx, `
				CREATE TABLE IF NOT EXISTS achievements (
					id BIGSERIAL PRIMARY KEY,
					name VARCHAR(100) NOT NULL,
					trigger_type VARCHAR(20) NOT NULL,
					description TEXT
				);
			`); err != nil {
				return fmt.Errorf("failed to create achievements table: %w", err)
			}

			if _, err := tx.ExecContext(ctx, `
				INSERT INTO achievements (id, name, trigger_type, description) VALUES
					(1, 'Icebreaker', 'round', 'Team scores first points in a game'),
					(2, 'Mighty Mjolnir', 'round', 'Team scores maximum points in a round'),
					(3, 'Lucky Loki', 'round', 'Team scores max points in 3 consecutive rounds'),
					(4, 'Looking for Leif', 'session', 'Team completes 5+ games in a session'),
					(5, 'Niflheim''s Touch', 'session', 'Team scores zero in a game'),
					(6, 'Odin''s Offspring', 'session', 'Win all games in a session with at least 5 games'),
					(7, 'Appointed Housecarl', 'session', 'Win 1 game'),
					(8, 'Dubbed Thane', 'session', 'Win 2 consecutive games'),
					(9, 'Promoted to Jarl', 'session', 'Win 3 consecutive games'),
					(10, 'Coronated King', 'session', 'Win 5 consecutive games')
				ON CONFLICT (id) DO NOTHING;
			`); err != nil {
				return fmt.Errorf("failed to seed achievements: %w", err)
			}

			if _, err := tx.ExecContext(ctx, `
				SELECT setval('achievements_id_seq', (SELECT MAX(id) FROM achievements));
			`); err != nil {
				return fmt.Errorf("failed to advance achievements sequence: %w", err)
			}

			return nil
		})
	}, func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Dropping achievements table...")

		return db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
			if _, err := tx.ExecContext(ctx, `DROP TABLE IF EXISTS achievements;`); err != nil {
				return fmt.Errorf("failed to drop achievements table: %w", err)
			}
			return nil
		})
	})
}
