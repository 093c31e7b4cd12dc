// Package cli implements the las command tree.
package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/cantwellc/LAS/array"
)

// Version is the las release string.
const Version = "v0.1.0-dev"

// NewCLI builds the root command.
func NewCLI() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "las",
		Short: "Inspect N-dimensional array layouts",
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Disable usage printing on errors
			cmd.SilenceUsage = true
		},
	}

	rootCmd.PersistentFlags().Bool("bounds-check", false, "Validate every index against its axis")
	rootCmd.PersistentFlags().Bool("debug", false, "Log array lifecycle events to stderr")

	cobra.EnableCommandSorting = false

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Show version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "las %s\n", Version)
		},
	}

	rootCmd.AddCommand(
		NewLayoutCmd(),
		NewProbeCmd(),
		versionCmd,
	)

	return rootCmd
}

// arrayOptions translates the persistent flags into array options.
func arrayOptions(cmd *cobra.Command) []array.Option {
	checked, _ := cmd.Flags().GetBool("bounds-check")
	debug, _ := cmd.Flags().GetBool("debug")

	level := slog.LevelWarn
	if debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

	return []array.Option{
		array.WithBoundsCheck(checked),
		array.WithLogger(logger),
	}
}
