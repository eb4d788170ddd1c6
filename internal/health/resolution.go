package health

import (
	"context"
	"fmt"

	"github.com/zsiec/tick/pkg/tick"
)

// commonRates are the frame rates the resolution checker verifies.
var commonRates = []tick.FrameRate{
	tick.FrameRate24,
	tick.FrameRate25,
	tick.FrameRate30,
	tick.FrameRate48,
	tick.FrameRate50,
	tick.FrameRate60,
	tick.FrameRate120,
	tick.FrameRate23_976,
	tick.FrameRate29_97,
	tick.FrameRate59_94,
}

// ResolutionChecker verifies that the compiled tick resolution represents
// the common frame rates. Integer rates must have whole-tick frame
// periods. Every rate must round trip frame counts through timecode.
type ResolutionChecker struct {
	rates []tick.FrameRate
}

// NewResolutionChecker checks the common broadcast and film rates plus
// any extra rates, typically the configured default.
func NewResolutionChecker(extra ...tick.FrameRate) *ResolutionChecker {
	rates := make([]tick.FrameRate, 0, len(commonRates)+len(extra))
	rates = append(rates, commonRates...)
	for _, r := range extra {
		if !r.IsZero() {
			rates = append(rates, r)
		}
	}
	return &ResolutionChecker{rates: rates}
}

// Name returns the name of the checker.
func (c *ResolutionChecker) Name() string {
	return "resolution"
}

// Check reports StatusDown when a rate fails to round trip and
// StatusDegraded when an integer rate is not tick exact.
func (c *ResolutionChecker) Check(ctx context.Context) error {
	var inexact []string
	for _, r := range c.rates {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := roundTrip(r); err != nil {
			return err
		}
		if r.IsInteger() && !r.IsExact() {
			inexact = append(inexact, r.String())
		}
	}
	if len(inexact) > 0 {
		return fmt.Errorf("integer rates %v are not tick exact at %d ticks/s: %w",
			inexact, tick.TicksPerSecond, ErrDegraded)
	}
	return nil
}

func roundTrip(r tick.FrameRate) error {
	for _, n := range []int64{1, r.Nominal(), r.Nominal() * 3600} {
		tc := tick.Timecode{Frames: n}
		got := tick.FromTimecode(tc, r).ToTimecode(r).TotalFrames(r)
		if got != n {
			return fmt.Errorf("rate %s: %d frames round tripped to %d", r, n, got)
		}
	}
	return nil
}

// Details lists which rates have whole-tick frame periods.
func (c *ResolutionChecker) Details() map[string]interface{} {
	exact := make([]string, 0, len(c.rates))
	inexact := make([]string, 0)
	for _, r := range c.rates {
		if r.IsExact() {
			exact = append(exact, r.String())
		} else {
			inexact = append(inexact, r.String())
		}
	}
	return map[string]interface{}{
		"ticks_per_second": tick.TicksPerSecond,
		"exact_rates":      exact,
		"inexact_rates":    inexact,
	}
}
