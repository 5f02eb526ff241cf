package venuemigrations

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Creating venues and lanes tables with seed data...")

		return db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
			if _, err := tx.ExecContext(ctx, `
				CREATE TABLE IF NOT EXISTS venues (
					id BIGSERIAL PRIMARY KEY,
					name VARCHAR(200) NOT NULL
				);
			`); err != nil {
				return fmt.Errorf("failed to create venues table: %w", err)
			}

			if _, err := tx.ExecContext(ctx, `
				CREATE TABLE IF NOT EXISTS lanes (
					id BIGSERIAL PRIMARY KEY,
					venue_id BIGINT NOT NULL REFERENCES venues(id) ON DELETE CASCADE,
					lane_number INT NOT NULL,
					CONSTRAINT uq_lanes_venue_number UNIQUE (venue_id, lane_number)
				);
			`); err != nil {
				return fmt.Errorf("failed to create lanes table: %w", err)
			}

			if _, err := tx.ExecContext(ctx, `
				INSERT INTO venues (id, name) VALUES
					(1, 'Midgard Curling Yard'),
					(2, 'Frostfang Arena')
				ON CONFLICT (id) DO NOTHING;
			`); err != nil {
				return fmt.Errorf("failed to seed venues: %w", err)
			}

			if _, err := tx.ExecContext(ctx, `
				INSERT INTO lanes (id, venue_id, lane_number) VALUES
					(1, 1, 1),
					(2, 1, 2),
					(3, 2, 1),
					(4, 2, 2)
				ON CONFLICT (id) DO NOTHING;
			`); err != nil {
				return fmt.Errorf("failed to seed lanes: %w", err)
			}

			// Keep the sequences ahead of the seeded IDs.
			if _, err := tx.ExecContext(ctx, `
				SELECT setval('venues_id_seq', (SELECT MAX(id) FROM venues));
				SELECT setval('lanes_id_seq', (SELECT MAX(id) FROM lanes));
			`); err != nil {
				return fmt.Errorf("failed to advance sequences: %w", err)
			}

			return nil
		})
	}, func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Dropping lanes and venues tables...")

		return db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
			if _, err := tx.ExecContext(ctx, `DROP TABLE IF EXISTS lanes;`); err != nil {
				return fmt.Errorf("failed to drop lanes table: %w", err)
			}
			if _, err := tx.ExecContext(ctx, `DROP TABLE IF EXISTS venues;`); err != nil {
				return fmt.Errorf("failed to drop venues table: %w", err)
			}
			return nil
		})
	})
}
