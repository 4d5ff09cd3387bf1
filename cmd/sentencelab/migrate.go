package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/jmoiron/sqlx"
	"github.com/spf13/cobra"

	"github.com/at-ishikawa/sentencelab/internal/config"
	"github.com/at-ishikawa/sentencelab/internal/database"
)

func newMigrateCommand() *cobra.Command {
	migrateCmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply or roll back schema migrations",
	}

	migrateCmd.AddCommand(
		&cobra.Command{
			Use:   "up",
			Short: "Apply all pending migrations",
			RunE: func(cmd *cobra.Command, args []string) error {
				db, err := openDatabase()
				if err != nil {
					return err
				}
				defer func() { _ = db.Close() }()

				if err := database.MigrateUp(db); err != nil {
					return err
				}
				color.Green("migrations applied")
				return nil
			},
		},
		&cobra.Command{
			Use:   "down",
			Short: "Roll back the most recent migration",
			RunE: func(cmd *cobra.Command, args []string) error {
				db, err := openDatabase()
				if err != nil {
					return err
				}
				defer func() { _ = db.Close() }()

				if err := database.MigrateDown(db); err != nil {
					return err
				}
				color.Yellow("rolled back one migration")
				return nil
			},
		},
	)

	return migrateCmd
}

func openDatabase() (*sqlx.DB, error) {
	loader, err := config.NewConfigLoader(configFile)
	if err != nil {
		return nil, fmt.Errorf("create config loader: %w", err)
	}
	cfg, err := loader.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	db, err := database.Open(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	return db, nil
}
