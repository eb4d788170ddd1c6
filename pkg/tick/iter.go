package tick

import (
	"iter"
	"math"
)

// Forward yields the raw counts t, t+1, t+2, ... and stops before reaching
// math.MaxInt64. The sequence is lazy and can be ranged over any number of
// times.
func (t Tick) Forward() iter.Seq[int64] {
	return func(yield func(int64) bool) {
		for v := int64(t); v < math.MaxInt64; v++ {
			if !yield(v) {
				return
			}
		}
	}
}

// Backward yields the raw counts t, t-1, t-2, ... and stops before reaching
// math.MinInt64.
func (t Tick) Backward() iter.Seq[int64] {
	return func(yield func(int64) bool) {
		for v := int64(t); v > math.MinInt64; v-- {
			if !yield(v) {
				return
			}
		}
	}
}
