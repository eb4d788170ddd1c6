package main

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/zsiec/tick/pkg/tick"
)

var errRateFlags = errors.New("--fps and --rate are mutually exclusive")

func newSecondsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seconds <seconds>",
		Short: "Convert seconds to ticks",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			secs, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return fmt.Errorf("invalid seconds %q: %w", args[0], err)
			}
			if math.IsNaN(secs) || math.IsInf(secs, 0) {
				return fmt.Errorf("invalid seconds %q: not finite", args[0])
			}
			t := tick.FromSeconds(secs)
			fmt.Fprintln(cmd.OutOrStdout(), t.Raw())
			return nil
		},
	}
}

func newFramesCmd() *cobra.Command {
	var (
		fps     uint32
		rate    float64
		reverse bool
	)

	cmd := &cobra.Command{
		Use:   "frames <tick>",
		Short: "Convert a tick to a frame index, or a frame index to a tick with --reverse",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fpsSet := cmd.Flags().Changed("fps")
			rateSet := cmd.Flags().Changed("rate")
			if fpsSet && rateSet {
				return errRateFlags
			}
			if fpsSet && fps == 0 {
				return tick.ErrZeroFrameRate
			}
			if rateSet && (rate <= 0 || math.IsNaN(rate) || math.IsInf(rate, 0)) {
				return fmt.Errorf("invalid rate %v", rate)
			}

			out := cmd.OutOrStdout()
			if reverse {
				frame, err := strconv.ParseInt(args[0], 10, 64)
				if err != nil {
					return fmt.Errorf("invalid frame %q: %w", args[0], err)
				}
				if rateSet {
					fmt.Fprintln(out, tick.FromFramesFloat(frame, rate).Raw())
				} else {
					fmt.Fprintln(out, tick.FromFrames(frame, fps).Raw())
				}
				return nil
			}

			t, err := tick.Parse(args[0])
			if err != nil {
				return err
			}
			if rateSet {
				fmt.Fprintln(out, t.ToFramesFloat(rate))
			} else {
				fmt.Fprintln(out, t.ToFrames(fps))
			}
			return nil
		},
	}
	cmd.Flags().Uint32Var(&fps, "fps", 24, "Integer frame rate")
	cmd.Flags().Float64Var(&rate, "rate", 0, "Fractional frame rate, e.g. 29.97")
	cmd.Flags().BoolVar(&reverse, "reverse", false, "Treat the argument as a frame index")
	return cmd
}

// rateFlag is a pflag.Value holding a tick.FrameRate in any of the forms
// ParseFrameRate accepts.
type rateFlag struct {
	rate tick.FrameRate
}

func (f *rateFlag) String() string { return f.rate.String() }

func (f *rateFlag) Set(s string) error {
	r, err := tick.ParseFrameRate(s)
	if err != nil {
		return err
	}
	if r.IsZero() {
		return tick.ErrZeroFrameRate
	}
	f.rate = r
	return nil
}

func (f *rateFlag) Type() string { return "framerate" }

func newTimecodeCmd() *cobra.Command {
	rate := &rateFlag{rate: tick.FrameRate24}

	cmd := &cobra.Command{
		Use:   "timecode <tick>",
		Short: "Convert a tick to HH:MM:SS:FF",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := tick.Parse(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), t.ToTimecode(rate.rate))
			return nil
		},
	}
	cmd.Flags().Var(rate, "rate", "Frame rate, e.g. 25, 30000/1001 or 29.97")
	return cmd
}

func newFromTimecodeCmd() *cobra.Command {
	rate := &rateFlag{rate: tick.FrameRate24}

	cmd := &cobra.Command{
		Use:   "from-timecode <HH:MM:SS:FF>",
		Short: "Convert a timecode to a tick",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tc, err := tick.ParseTimecode(args[0])
			if err != nil {
				return err
			}
			check := tc
			if strings.HasPrefix(strings.TrimSpace(args[0]), "-") {
				check = tick.Timecode{Hours: -tc.Hours, Minutes: -tc.Minutes, Seconds: -tc.Seconds, Frames: -tc.Frames}
			}
			if !check.Valid(rate.rate) {
				return fmt.Errorf("timecode %s out of range at %s", tc, rate.rate)
			}
			fmt.Fprintln(cmd.OutOrStdout(), tick.FromTimecode(tc, rate.rate).Raw())
			return nil
		},
	}
	cmd.Flags().Var(rate, "rate", "Frame rate, e.g. 25, 30000/1001 or 29.97")
	return cmd
}
