package main

import (
	"log/slog"

	"stellate/internal/logging"

	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "stellate-sim",
		Short:         "Headless stellated-tetrahedron generator",
		Long:          `Drives the fractal generator frame by frame on a simulated clock and prints face counts and timings.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().String("log-level", "warn", "debug, info, warn or error")
	root.AddCommand(newRunCmd(), newEstimateCmd())
	return root
}

func loggerFor(cmd *cobra.Command) (*slog.Logger, error) {
	name, _ := cmd.Flags().GetString("log-level")
	level, err := logging.ParseLevel(name)
	if err != nil {
		return nil, err
	}
	return logging.NewWithWriter(cmd.ErrOrStderr(), level), nil
}
