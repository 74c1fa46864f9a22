package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/NayanVR/tuono/internal/config"
	"github.com/NayanVR/tuono/internal/dev"
)

func devCmd() *cobra.Command {
	var (
		port    int
		host    string
		verbose bool
	)

	cmd := &cobra.Command{
		Use:   "dev",
		Short: "Watch routes and rebundle on change",
		Long: `Start the development server.

The dev server watches src/routes, re-runs the bundler on every
change, and refreshes connected browsers over WebSocket.

Examples:
  tuono dev
  tuono dev --port=8080
  tuono dev --host=0.0.0.0`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDev(port, host, verbose)
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", 0, "Port to run on (default from tuono.json)")
	cmd.Flags().StringVarP(&host, "host", "H", "", "Host to bind to (default from tuono.json)")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Verbose logging")

	return cmd
}

func runDev(port int, host string, verbose bool) error {
	cfg, err := config.LoadFromWorkingDir()
	if err != nil {
		return err
	}

	if err := checkProject(cfg); err != nil {
		return err
	}

	// Apply command-line overrides
	if port > 0 {
		cfg.Dev.Port = port
	}
	if host != "" {
		cfg.Dev.Host = host
	}

	printBanner()
	fmt.Println("  dev")
	fmt.Println()

	logger := zap.NewNop()
	if verbose {
		logger, err = zap.NewDevelopment()
		if err != nil {
			return err
		}
		defer logger.Sync()
	}

	server, err := dev.NewServer(dev.ServerOptions{
		Config: cfg,
		Logger: logger,
		OnBundle: func(err error) {
			if err != nil {
				errorMsg("Bundle failed: %s", err)
				return
			}
			success("Bundled routes into %s", cfg.OutputPath())
		},
		OnReload: func(clients int) {
			if clients > 0 {
				success("Reloaded %d browsers", clients)
			}
		},
	})
	if err != nil {
		return err
	}

	info("listening on %s", cfg.DevAddr())
	fmt.Println()

	// Handle signals
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sigCh
		fmt.Println("\n\n  Shutting down...")
		cancel()
	}()

	return server.Start(ctx)
}
