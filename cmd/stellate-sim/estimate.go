package main

import (
	"fmt"
	"text/tabwriter"

	"stellate/internal/fractal"
	"stellate/internal/params"

	"github.com/spf13/cobra"
)

func newEstimateCmd() *cobra.Command {
	var delay float64
	cmd := &cobra.Command{
		Use:   "estimate",
		Short: "Print face counts and busy windows per epoch",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := params.DefaultConfig().With(params.FieldStepDelay, delay)
			if err != nil {
				return err
			}
			bounds, _ := params.FieldBounds(params.FieldEpoch)
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "EPOCH\tDEEPEST\tTOTAL\tESTIMATE")
			for epoch := int(bounds.Min); epoch <= int(bounds.Max); epoch++ {
				cfg.Epoch = epoch
				fmt.Fprintf(tw, "%d\t%d\t%d\t%v\n", epoch, fractal.LevelCount(epoch), fractal.TotalCount(epoch), cfg.Estimate())
			}
			return tw.Flush()
		},
	}
	cmd.Flags().Float64VarP(&delay, "step-delay", "d", 0, "step delay in milliseconds")
	return cmd
}
