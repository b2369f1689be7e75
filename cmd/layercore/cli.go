package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/born-ml/layercore/internal/envconfig"
	"github.com/born-ml/layercore/internal/logutil"
)

const version = "v0.1.0-dev"

func NewCLI() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "layercore",
		Short: "Load and evaluate single inference layers",
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Disable usage printing on errors
			cmd.SilenceUsage = true
			slog.SetDefault(logutil.NewLogger(os.Stderr, logutil.Level(envconfig.Debug)))
		},
	}

	cobra.EnableCommandSorting = false

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Show version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "layercore %s\n", version)
			return nil
		},
	}

	rootCmd.AddCommand(
		NewApplyCmd(),
		NewPackCmd(),
		NewInspectCmd(),
		NewEnvCmd(),
		versionCmd,
	)

	return rootCmd
}
