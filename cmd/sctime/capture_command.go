package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"sctime/internal/capture"
	"sctime/internal/deps"
	"sctime/internal/logging"
)

func newCaptureCommand(ctx *commandContext) *cobra.Command {
	var (
		interval  time.Duration
		maxLength time.Duration
		keep      bool
	)
	cmd := &cobra.Command{
		Use:   "capture <entrant-id> <video>",
		Short: "Read lap times from timer footage and append them to an entrant",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			col, err := parseIndex(args[0], "entrant id")
			if err != nil {
				return err
			}
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("interval") {
				interval = secondsDuration(cfg.Capture.IntervalSeconds)
			}
			if !cmd.Flags().Changed("max") {
				maxLength = secondsDuration(cfg.Capture.MaxSeconds)
			}

			if err := deps.MissingError(deps.CheckBinaries(deps.CaptureRequirements(cfg))); err != nil {
				return err
			}

			frameDir := filepath.Join(cfg.Capture.FrameDir, uuid.NewString())
			if !keep {
				defer os.RemoveAll(frameDir)
			}
			frames, err := capture.ExtractFrames(cmd.Context(), args[1], frameDir, capture.FrameOptions{
				Interval:    interval,
				MaxDuration: maxLength,
			})
			if err != nil {
				return err
			}

			recognizer := capture.CommandRecognizer{
				Args:    cfg.Capture.OCRCommand,
				Timeout: time.Duration(cfg.Capture.OCRTimeout) * time.Second,
			}
			return ctx.withSession(cmd, true, func(s *sessionState) error {
				s.logger.Info("reading lap times from footage",
					logging.Int("column", col),
					logging.Int("frames", len(frames)),
					logging.Duration("interval", interval),
					logging.Bool("keep_frames", keep),
				)
				feeder := capture.NewFeeder(s.grid, recognizer, s.logger)
				result, err := feeder.Feed(cmd.Context(), col, frames)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Captured %d laps from %d frames (%d skipped, %d repeated)\n",
					result.Appended, len(frames), result.Skipped, result.Duplicates)
				if keep {
					fmt.Fprintf(cmd.OutOrStdout(), "Frames kept in %s\n", frameDir)
				}
				return nil
			})
		},
	}
	cmd.Flags().DurationVar(&interval, "interval", time.Second, "Time between sampled frames (default capture.interval_seconds)")
	cmd.Flags().DurationVar(&maxLength, "max", 0, "Maximum footage length to read (default capture.max_seconds)")
	cmd.Flags().BoolVar(&keep, "keep-frames", false, "Keep extracted frames after capture")
	return cmd
}

func secondsDuration(seconds float64) time.Duration {
	return time.Duration(seconds * float64(time.Second))
}
