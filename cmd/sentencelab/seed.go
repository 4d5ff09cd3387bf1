package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/at-ishikawa/sentencelab/internal/seed"
)

func newSeedCommand() *cobra.Command {
	var file string
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Import tags, vocabulary, and templates from a YAML file",
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := seed.Load(file)
			if err != nil {
				return err
			}

			if dryRun {
				color.Yellow("dry run: %d tags, %d vocabulary entries, %d templates parsed",
					len(data.Tags), len(data.Vocabulary), len(data.Templates))
				return nil
			}

			db, err := openDatabase()
			if err != nil {
				return err
			}
			defer func() { _ = db.Close() }()

			result, err := seed.NewImporter(db).Import(cmd.Context(), data)
			if err != nil {
				return fmt.Errorf("import seed data: %w", err)
			}

			color.Green("imported %d tags, %d mappings, %d vocabulary entries, %d templates, %d slots, %d taggings",
				result.Tags, result.Mappings, result.Vocabulary, result.Templates, result.Slots, result.Taggings)
			return nil
		},
	}
	cmd.Flags().StringVar(&file, "file", "seed.yml", "seed file path")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "parse and validate without writing")

	return cmd
}
