package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/mrz1836/go-preen/internal/checks"
	"github.com/mrz1836/go-preen/internal/checks/builtin"
	"github.com/mrz1836/go-preen/internal/checks/gotools"
	"github.com/mrz1836/go-preen/internal/config"
	prerrors "github.com/mrz1836/go-preen/internal/errors"
	"github.com/mrz1836/go-preen/internal/gitmeta"
	"github.com/mrz1836/go-preen/internal/manifest"
	"github.com/mrz1836/go-preen/internal/remedy"
	"github.com/mrz1836/go-preen/internal/runner"
)

// newCheckCmd builds the check subcommand
func newCheckCmd() *cobra.Command {
	var (
		skipChecks []string
		onlyChecks []string
		applyFixes bool
		strict     bool
		listChecks bool
	)

	cmd := &cobra.Command{
		Use:   "check [path]",
		Short: "Run hygiene checks",
		Long: `Run the hygiene checks against a project and report every issue found.

Fixable issues can be applied in bulk with --fix, confirmed one at a
time interactively (the default when issues are fixable), or left alone
with --strict, which also turns any issue into a non-zero exit code.`,
		Example: `  # Run all checks on the current project
  go-preen check

  # Run only the metadata checks
  go-preen check --only citation,version

  # Apply every proposed fix without confirmation
  go-preen check --fix

  # CI gate: no fixes, fail on any issue
  go-preen check --strict`,
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
			if verbose {
				formatter.Info("Project root: %s", projectRoot)
			}

			registry := defaultRegistry()

			if listChecks {
				formatter.Header("Available Checks")
				for _, check := range registry.Instantiate(projectRoot) {
					formatter.Detail("%-12s %s", check.Name(), check.Description())
				}
				return nil
			}

			skip := config.CombineSkips(skipChecks, cfg.SkipChecks, manifestSkips(projectRoot))

			results, err := runner.Run(projectRoot, registry.Factories(), runner.Options{
				Skip: skip,
				Only: onlyChecks,
			})
			if err != nil {
				return err
			}

			for pair := results.Oldest(); pair != nil; pair = pair.Next() {
				result := pair.Value
				if result.Passed {
					formatter.Success("%s passed (%s)", pair.Key, formatter.Duration(result.Duration))
				} else {
					formatter.Error("%s failed (%s)", pair.Key, formatter.Duration(result.Duration))
				}
			}

			driver := remedy.New(formatter, os.Stdin, remedy.Options{
				ApplyAll: applyFixes,
				Strict:   strict || cfg.Strict,
			})
			ok, err := driver.Resolve(results)
			if err != nil {
				return err
			}
			if !ok {
				return prerrors.ErrChecksFailed
			}
			return nil
		},
	}

	cmd.Flags().StringSliceVar(&skipChecks, "skip", nil, "Skip specific checks")
	cmd.Flags().StringSliceVar(&onlyChecks, "only", nil, "Run only specific checks")
	cmd.Flags().BoolVar(&applyFixes, "fix", false, "Apply every proposed fix without confirmation")
	cmd.Flags().BoolVar(&strict, "strict", false, "Apply no fixes and exit non-zero on any issue")
	cmd.Flags().BoolVar(&listChecks, "list", false, "Show available checks and exit")

	return cmd
}

// defaultRegistry wires up the built-in check set in execution order
func defaultRegistry() *checks.Registry {
	registry := checks.NewRegistry()
	registry.Register(gotools.NewLintCheck)
	registry.Register(gotools.NewTestsCheck)
	registry.Register(gotools.NewDepsCheck)
	registry.Register(builtin.NewCitationCheck)
	registry.Register(builtin.NewCIMatrixCheck)
	registry.Register(builtin.NewStructureCheck)
	registry.Register(builtin.NewVersionCheck)
	return registry
}

// manifestSkips reads skip_checks from the manifest; a missing or broken
// manifest contributes nothing (the metadata checks will report it)
func manifestSkips(projectRoot string) []string {
	m, err := manifest.Load(projectRoot)
	if err != nil {
		return nil
	}
	return m.SkipChecks
}
