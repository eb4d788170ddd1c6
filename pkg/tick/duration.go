package tick

import "time"

// FromDuration converts d via FromSeconds, truncating to whole ticks.
func FromDuration(d time.Duration) Tick {
	return FromSeconds(d.Seconds())
}

// Duration converts t via Seconds to the nearest representable
// time.Duration, truncating sub-nanosecond remainders.
func (t Tick) Duration() time.Duration {
	return time.Duration(t.Seconds() * float64(time.Second))
}
