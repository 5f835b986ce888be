package cli

import (
	"log/slog"

	"github.com/spf13/cobra"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose bool
}

// NewRootCommand creates the root command for the quiesce CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "quiesce",
		Short: "Quiesce - deterministic state-stabilization engine",
		Long: `Quiesce drives a program to a fixpoint over positionally addressed
state hooks, then runs deferred effects and emits an aggregated output
document.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if opts.Verbose {
				slog.SetLogLoggerLevel(slog.LevelDebug)
			}
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")

	cmd.AddCommand(NewDemoCommand(opts))

	return cmd
}
