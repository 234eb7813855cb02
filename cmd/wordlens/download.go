package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/at-ishikawa/wordlens/internal/config"
	"github.com/at-ishikawa/wordlens/internal/download"
)

func newDownloadCommand() *cobra.Command {
	var force bool
	command := &cobra.Command{
		Use:   "download",
		Short: "Download the dictionary database if it is missing",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configFile)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			out := cmd.OutOrStdout()
			if force {
				if err := download.Download(ctx, cfg.Dictionary); err != nil {
					return fmt.Errorf("download.Download > %w", err)
				}
				_, _ = fmt.Fprintf(out, "downloaded %s\n", cfg.Dictionary.Path)
				return nil
			}

			downloaded, err := download.Ensure(ctx, cfg.Dictionary)
			if err != nil {
				return fmt.Errorf("download.Ensure > %w", err)
			}
			if downloaded {
				_, _ = fmt.Fprintf(out, "downloaded %s\n", cfg.Dictionary.Path)
			} else {
				_, _ = fmt.Fprintf(out, "%s already exists\n", cfg.Dictionary.Path)
			}
			return nil
		},
	}
	command.Flags().BoolVar(&force, "force", false, "download even if the database exists")
	return command
}
