package cli

import (
	"context"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// Execute runs the trapmap CLI under ctx and returns an error if any
// command fails. It sets up the root command with all subcommands (build,
// query, verify, draw) and configures logging based on the --verbose flag.
// ctx carries the process's signal-triggered shutdown (SIGINT/SIGTERM);
// the core itself never sees it, since it has no blocking operations.
func Execute(ctx context.Context) error {
	var verbose bool

	root := &cobra.Command{
		Use:          "trapmap",
		Short:        "trapmap builds and queries trapezoidal decompositions of segment sets",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			ctx := withLogger(cmd.Context(), newLogger(os.Stderr, level))
			cmd.SetContext(ctx)
		},
	}

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newBuildCmd())
	root.AddCommand(newQueryCmd())
	root.AddCommand(newVerifyCmd())
	root.AddCommand(newDrawCmd())

	return root.ExecuteContext(ctx)
}
