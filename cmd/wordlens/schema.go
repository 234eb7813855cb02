package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/at-ishikawa/wordlens/internal/bootstrap"
	"github.com/at-ishikawa/wordlens/internal/config"
	"github.com/at-ishikawa/wordlens/internal/dictionary"
)

func newSchemaCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "schema",
		Short: "Show the detected dictionary table and columns",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configFile)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			db, schema, err := bootstrap.OpenDictionary(ctx, cfg.Dictionary)
			if err != nil {
				return err
			}
			defer func() {
				_ = db.Close()
			}()

			rows, err := dictionary.NewSQLSource(db).CountRows(ctx, schema.Table)
			if err != nil {
				return fmt.Errorf("source.CountRows > %w", err)
			}

			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, "database:    %s\n", cfg.Dictionary.Path)
			_, _ = fmt.Fprintf(out, "strategy:    %s\n", cfg.Dictionary.Schema.Strategy)
			_, _ = fmt.Fprintf(out, "table:       %s (%d rows)\n", schema.Table, rows)
			_, _ = fmt.Fprintf(out, "headword:    %s\n", schema.HeadwordColumn)
			_, _ = fmt.Fprintf(out, "translation: %s\n", schema.TranslationColumn)
			return nil
		},
	}
}
