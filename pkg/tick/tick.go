package tick

import "cmp"

// Tick is a point or span of time measured in 1/TicksPerSecond second units.
// Negative values represent time before an origin.
type Tick int64

// Common spans.
const (
	Zero   Tick = 0
	Second      = Tick(TicksPerSecond)
	Minute      = 60 * Second
	Hour        = 60 * Minute
)

// New returns the tick with the given raw count.
func New(raw int64) Tick {
	return Tick(raw)
}

// Raw returns the tick count.
func (t Tick) Raw() int64 {
	return int64(t)
}

// FromSeconds converts seconds to ticks, truncating toward zero.
// Use Second.MulFloat(secs) for nearest-tick rounding.
func FromSeconds(secs float64) Tick {
	return Tick(secs * float64(TicksPerSecond))
}

// Seconds converts t to seconds. The result is exact while |t| < 2^53.
func (t Tick) Seconds() float64 {
	return float64(t) / float64(TicksPerSecond)
}

// Compare returns -1, 0 or +1 as t is less than, equal to or greater than u.
func (t Tick) Compare(u Tick) int {
	return cmp.Compare(t, u)
}

// Neg returns -t. Negating math.MinInt64 wraps to itself.
func (t Tick) Neg() Tick {
	return -t
}

// Abs returns |t|. The absolute value of math.MinInt64 wraps to itself.
func (t Tick) Abs() Tick {
	if t < 0 {
		return -t
	}
	return t
}

// Min returns the earlier of t and u.
func (t Tick) Min(u Tick) Tick {
	return min(t, u)
}

// Max returns the later of t and u.
func (t Tick) Max(u Tick) Tick {
	return max(t, u)
}

// Clamp limits t to [lo, hi].
func (t Tick) Clamp(lo, hi Tick) Tick {
	return max(lo, min(t, hi))
}
