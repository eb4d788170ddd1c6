package tick

import (
	"math"

	"golang.org/x/exp/constraints"

	"github.com/zsiec/tick/internal/wide"
)

// ToFrames returns the index of the frame containing t at fps frames per
// second. The product is formed in 128 bits and the quotient truncates toward
// zero, so the result is exact whenever fps divides TicksPerSecond. A zero
// fps yields 0.
func (t Tick) ToFrames(fps uint32) int64 {
	return wide.MulDiv(int64(t), uint64(fps), uint64(TicksPerSecond))
}

// FromFrames returns the start of frame at fps frames per second, computed in
// 128 bits and truncated toward zero. A zero fps yields 0.
func FromFrames(frame int64, fps uint32) Tick {
	return Tick(wide.MulDiv(frame, uint64(TicksPerSecond), uint64(fps)))
}

// ToFramesFloat returns the frame index of t at a fractional rate, computed
// in float64 and rounded half to even. Rates that are not finite and strictly
// positive yield 0.
func (t Tick) ToFramesFloat(fps float64) int64 {
	if !validFloatRate(fps) {
		return 0
	}
	return roundHalfEven(float64(t) * fps / float64(TicksPerSecond))
}

// FromFramesFloat returns the start of frame at a fractional rate, computed in
// float64 and rounded half to even. Rates that are not finite and strictly
// positive yield 0.
func FromFramesFloat(frame int64, fps float64) Tick {
	if !validFloatRate(fps) {
		return 0
	}
	return Tick(roundHalfEven(float64(frame) * float64(TicksPerSecond) / fps))
}

// ToFramesAt is ToFramesFloat for a rate of any float type. A float32 rate
// is widened to float64 before the computation.
func ToFramesAt[T constraints.Float](t Tick, fps T) int64 {
	return t.ToFramesFloat(float64(fps))
}

// FromFramesAt is FromFramesFloat for a rate of any float type.
func FromFramesAt[T constraints.Float](frame int64, fps T) Tick {
	return FromFramesFloat(frame, float64(fps))
}

func validFloatRate(fps float64) bool {
	return fps > 0 && !math.IsInf(fps, 1)
}
