package tick

import (
	"math"

	"golang.org/x/exp/constraints"
)

// roundHalfAway rounds v to the nearest integer, ties away from zero, by
// biasing by one half and truncating. The bias is applied in T's precision.
// Non-finite input converts however the platform converts it; no panic.
func roundHalfAway[T constraints.Float](v T) int64 {
	if v >= 0 {
		return int64(v + 0.5)
	}
	return int64(v - 0.5)
}

// roundHalfEven rounds v to the nearest integer, ties to even.
func roundHalfEven(v float64) int64 {
	return int64(math.RoundToEven(v))
}
