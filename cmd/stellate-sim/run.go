package main

import (
	"fmt"
	"time"

	"stellate/internal/params"
	"stellate/internal/scene"

	"github.com/spf13/cobra"
)

// maxFrames bounds a simulated run; a full epoch-6 regeneration at the
// slowest step delay fits well inside it at 60 frames per second.
const maxFrames = 10_000_000

func newRunCmd() *cobra.Command {
	var (
		preset    string
		overrides map[string]string
		frame     time.Duration
	)
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run one regeneration to completion",
		Long:  `Builds the mesh for the given parameters, one unit of work per simulated frame, and prints per-level face counts.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := loggerFor(cmd)
			if err != nil {
				return err
			}
			cfg := params.DefaultConfig()
			if preset != "" {
				if cfg, err = params.LoadFile(preset, cfg); err != nil {
					return err
				}
			}
			if cfg, err = params.FromMap(cfg, overrides); err != nil {
				return err
			}
			if frame <= 0 {
				return fmt.Errorf("frame must be positive, got %v", frame)
			}

			start := time.Unix(0, 0)
			now := start
			sc := scene.New(cfg, scene.WithLogger(log), scene.WithClock(func() time.Time { return now }))

			frames := 0
			for !sc.Settled() {
				if frames >= maxFrames {
					return fmt.Errorf("regeneration did not finish within %d frames", maxFrames)
				}
				if err := sc.Tick(now); err != nil {
					return err
				}
				frames++
				now = now.Add(frame)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, cfg.String())
			for i, n := range sc.LevelCounts() {
				fmt.Fprintf(out, "level %d: %d\n", i+1, n)
			}
			fmt.Fprintf(out, "total: %d\n", len(sc.Entries()))
			fmt.Fprintf(out, "frames: %d\n", frames)
			fmt.Fprintf(out, "simulated: %v\n", now.Sub(start))
			fmt.Fprintf(out, "estimate: %v\n", cfg.Estimate())
			return nil
		},
	}
	cmd.Flags().StringVarP(&preset, "config", "c", "", "YAML preset file")
	cmd.Flags().StringToStringVarP(&overrides, "param", "p", nil, "parameter override, e.g. -p epoch=4 -p step_delay=50")
	cmd.Flags().DurationVar(&frame, "frame", time.Second/60, "simulated frame duration")
	return cmd
}
