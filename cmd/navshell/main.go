package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/vango-dev/navshell/internal/errors"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		errors.Print(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "navshell",
		Short: "Routed layout shell with live navigation",
		Long: `navshell serves a layout shell with a header, a navigation bar, and
a content outlet. Pages are rendered on the server and swapped over a
WebSocket when a navigation link is clicked.

Routes:
  /            home (empty outlet)
  /dashboard   dashboard
  /about       about
  /login       login form`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		serveCmd(),
		renderCmd(),
		routesCmd(),
		versionCmd(),
	)

	return rootCmd
}
