package main

import (
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/NayanVR/tuono/internal/bundler"
	"github.com/NayanVR/tuono/internal/config"
	"github.com/NayanVR/tuono/internal/errors"
)

func bundleCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bundle",
		Short: "Compile the route tree into the server entry point",
		Long: `Scan src/routes, resolve each file to a URL pattern, and write
the generated server entry and shims into .tuono/.

Examples:
  tuono bundle`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBundle()
		},
	}

	return cmd
}

func runBundle() error {
	cfg, err := config.LoadFromWorkingDir()
	if err != nil {
		return err
	}

	if err := checkProject(cfg); err != nil {
		return err
	}

	start := time.Now()

	table, err := bundler.NewCollector(cfg.Dir(), nil).Collect()
	if err != nil {
		return err
	}

	generated := bundler.NewGenerator(table, bundler.ServerEntryTemplate).Generate()

	boot := bundler.NewBootstrapper(cfg.Dir())
	if err := boot.EnsureOutputDir(); err != nil {
		return err
	}
	if err := boot.WriteOutputs(generated, bundler.ClientEntryData, bundler.ServerEntryData); err != nil {
		return err
	}

	success("Bundled %d routes in %s", len(table), time.Since(start).Round(time.Millisecond))
	info("output: %s", cfg.OutputPath())

	return nil
}

// checkProject verifies the working directory is a tuono project.
func checkProject(cfg *config.Config) error {
	if _, err := os.Stat(cfg.RoutesPath()); err != nil {
		return errors.New("E130").
			WithDetail("looked for " + cfg.RoutesPath()).
			WithSuggestion("Run from the project root, or create src/routes.")
	}
	return nil
}
