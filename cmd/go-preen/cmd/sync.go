package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mrz1836/go-preen/internal/config"
	"github.com/mrz1836/go-preen/internal/gitmeta"
	"github.com/mrz1836/go-preen/internal/manifest"
	"github.com/mrz1836/go-preen/internal/syncer"
)

// newSyncCmd builds the sync subcommand
func newSyncCmd() *cobra.Command {
	var quiet bool

	cmd := &cobra.Command{
		Use:   "sync [path]",
		Short: "Regenerate derived files from .preen.yml",
		Long: `Synchronise derived files from the project manifest.

Reads .preen.yml and writes or updates CITATION.cff, the GitHub Actions
workflows and the lint configuration. The manifest is the single source
of truth; generated files are overwritten when their content changes.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			start := "."
			if len(args) > 0 {
				start = args[0]
			}

			projectRoot, err := gitmeta.FindProjectRoot(start)
			if err != nil {
				return err
			}

			cfg, err := config.Load(projectRoot)
			if err != nil {
				return err
			}
			formatter := newFormatter(cfg.ColorOutput)

			m, err := manifest.Load(projectRoot)
			if err != nil {
				return err
			}

			synced, err := syncer.Sync(projectRoot, m)
			if err != nil {
				return err
			}

			if quiet {
				return nil
			}

			for _, file := range synced {
				if file.Changed {
					formatter.Info("Updated %s", file.Path)
				} else {
					formatter.Detail("No changes for %s", file.Path)
				}
			}
			formatter.Success("Sync complete")
			return nil
		},
	}

	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Suppress informational output")

	return cmd
}
