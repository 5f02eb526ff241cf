package main

import (
	"database/sql"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"
	"github.com/uptrace/bun/migrate"
	"github.com/urfave/cli/v2"

	achievementmigrations "github.com/ice-and-stone/scorekeeper/app/modules/achievement/infrastructure/repositories/migrations"
	gamemigrations "github.com/ice-and-stone/scorekeeper/app/modules/game/infrastructure/repositories/migrations"
	roundmigrations "github.com/ice-and-stone/scorekeeper/app/modules/round/infrastructure/repositories/migrations"
	scoremigrations "github.com/ice-and-stone/scorekeeper/app/modules/score/infrastructure/repositories/migrations"
	sessionmigrations "github.com/ice-and-stone/scorekeeper/app/modules/session/infrastructure/repositories/migrations"
	teammigrations "github.com/ice-and-stone/scorekeeper/app/modules/team/infrastructure/repositories/migrations"
	venuemigrations "github.com/ice-and-stone/scorekeeper/app/modules/venue/infrastructure/repositories/migrations"
	"github.com/ice-and-stone/scorekeeper/config"
)

type moduleMigrator struct {
	name     string
	migrator *migrate.Migrator
}

func main() {
	configFile := flag.String("config", "config.yaml", "Path to the configuration file")
	flag.Parse()

	cfg, err := config.LoadConfig(*configFile)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	pgdb := sql.OpenDB(pgdriver.NewConnector(pgdriver.WithDSN(cfg.Postgres.DSN)))
	db := bun.NewDB(pgdb, pgdialect.New())
	defer db.Close()

	// Modules migrate in dependency order: child tables hold foreign keys
	// into tables owned by earlier modules.
	migrators := []moduleMigrator{
		{"venue", migrate.NewMigrator(db, venuemigrations.Migrations)},
		{"session", migrate.NewMigrator(db, sessionmigrations.Migrations)},
		{"game", migrate.NewMigrator(db, gamemigrations.Migrations)},
		{"team", migrate.NewMigrator(db, teammigrations.Migrations)},
		{"round", migrate.NewMigrator(db, roundmigrations.Migrations)},
		{"score", migrate.NewMigrator(db, scoremigrations.Migrations)},
		{"achievement", migrate.NewMigrator(db, achievementmigrations.Migrations)},
	}

	cliApp := &cli.App{
		Name: "bun",
		Commands: []*cli.Command{
			newMultiModuleDBCommand(migrators),
		},
	}

	if err := cliApp.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func findMigrator(migrators []moduleMigrator, name string) (*migrate.Migrator, bool) {
	for _, m := range migrators {
		if m.name == name {
			return m.migrator, true
		}
	}
	return nil, false
}

func newMultiModuleDBCommand(migrators []moduleMigrator) *cli.Command {
	return &cli.Command{
		Name:  "migrate",
		Usage: "database migrations",
		Subcommands: []*cli.Command{
			{
				Name:  "init",
				Usage: "create migration tables",
				Action: func(c *cli.Context) error {
					for _, m := range migrators {
						fmt.Printf("Initializing migrations for module: %s\n", m.name)
						if err := m.migrator.Init(c.Context); err != nil {
							return fmt.Errorf("init %s: %w", m.name, err)
						}
					}
					return nil
				},
			},
			{
				Name:  "migrate",
				Usage: "migrate database",
				Action: func(c *cli.Context) error {
					for _, m := range migrators {
						group, err := m.migrator.Migrate(c.Context)
						if err != nil {
							return fmt.Errorf("migrate %s: %w", m.name, err)
						}
						if group.IsZero() {
							fmt.Printf("No new migrations to run for module: %s\n", m.name)
						} else {
							fmt.Printf("Migrated module: %s to %s\n", m.name, group)
						}
					}
					return nil
				},
			},
			{
				Name:  "rollback",
				Usage: "rollback the last migration group",
				Action: func(c *cli.Context) error {
					// Reverse order so children drop before their parents.
					for i := len(migrators) - 1; i >= 0; i-- {
						m := migrators[i]
						group, err := m.migrator.Rollback(c.Context)
						if err != nil {
							return fmt.Errorf("rollback %s: %w", m.name, err)
						}
						if group.IsZero() {
							fmt.Printf("No groups to roll back for module: %s\n", m.name)
						} else {
							fmt.Printf("Rolled back module: %s to %s\n", m.name, group)
						}
					}
					return nil
				},
			},
			{
				Name:  "create_go",
				Usage: "create Go migration",
				Action: func(c *cli.Context) error {
					moduleName := c.Args().First()
					migrator, ok := findMigrator(migrators, moduleName)
					if !ok {
						return fmt.Errorf("invalid module name: %s", moduleName)
					}

					name := strings.Join(c.Args().Tail(), "_")
					mf, err := migrator.CreateGoMigration(c.Context, name)
					if err != nil {
						return err
					}
					fmt.Printf("Created migration for module %s: %s (%s)\n", moduleName, mf.Name, mf.Path)
					return nil
				},
			},
			{
				Name:  "status",
				Usage: "print migrations status",
				Action: func(c *cli.Context) error {
					for _, m := range migrators {
						ms, err := m.migrator.MigrationsWithStatus(c.Context)
						if err != nil {
							return err
						}
						fmt.Printf("Migrations for module: %s\n", m.name)
						fmt.Printf("  %s\n", ms)
						fmt.Printf("  Applied: %s\n", ms.Applied())
						fmt.Printf("  Unapplied: %s\n", ms.Unapplied())
					}
					return nil
				},
			},
		},
	}
}
