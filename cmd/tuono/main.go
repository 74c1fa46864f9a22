package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/NayanVR/tuono/internal/errors"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

const banner = `
  ┌┬┐┬ ┬┌─┐┌┐┌┌─┐
   │ │ ││ ││││││ │
   ┴ └─┘└─┘┘└┘└─┘
`

func main() {
	rootCmd := &cobra.Command{
		Use:   "tuono",
		Short: "The file-system router and bundler",
		Long: `Tuono compiles a file-system route tree into a server entry point.

Route files under src/routes map to URL patterns by their path:
index files collapse to their directory, [param] segments become
dynamic. The bundler writes the generated server into .tuono/.

  tuono bundle   compile routes once
  tuono dev      watch routes and rebundle with hot reload`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		bundleCmd(),
		devCmd(),
		versionCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		errors.PrintError(err)
		os.Exit(1)
	}
}

// printBanner prints the Tuono ASCII art banner.
func printBanner() {
	fmt.Print(banner)
}

// success prints a success message.
func success(format string, args ...any) {
	fmt.Printf("\033[32m✓\033[0m %s\n", fmt.Sprintf(format, args...))
}

// info prints an info message.
func info(format string, args ...any) {
	fmt.Printf("  %s\n", fmt.Sprintf(format, args...))
}

// errorMsg prints an error message.
func errorMsg(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "\033[31m✗\033[0m %s\n", fmt.Sprintf(format, args...))
}
