package tick

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Add returns t+u with int64 wraparound.
func (t Tick) Add(u Tick) Tick {
	return t + u
}

// Sub returns t-u with int64 wraparound.
func (t Tick) Sub(u Tick) Tick {
	return t - u
}

// Mul returns t*u computed in float64 and rounded half away from zero.
func (t Tick) Mul(u Tick) Tick {
	return Tick(roundHalfAway(float64(t) * float64(u)))
}

// Div returns t/u computed in float64 and rounded half away from zero.
//
// Dividing by a zero Tick yields ±Inf or NaN before rounding; converting
// those to an integer is platform dependent in Go. Callers must not rely on
// the result.
func (t Tick) Div(u Tick) Tick {
	return Tick(roundHalfAway(float64(t) / float64(u)))
}

// Lerp interpolates between t and other. The factor is clamped to [0, 1]
// (NaN counts as 0) and the blend is computed in float64, rounded half away
// from zero. Endpoints are exact while both ticks fit a float64 mantissa.
func (t Tick) Lerp(other Tick, factor float64) Tick {
	if math.IsNaN(factor) {
		factor = 0
	}
	factor = max(0, min(factor, 1))
	return Tick(roundHalfAway(float64(t)*(1-factor) + float64(other)*factor))
}

// MulInt returns t*n with int64 wraparound. n is converted to int64 first.
func MulInt[T constraints.Integer](t Tick, n T) Tick {
	return t * Tick(n)
}

// DivInt returns t/n truncated toward zero. Like the / operator it panics
// when n is zero.
func DivInt[T constraints.Integer](t Tick, n T) Tick {
	return t / Tick(n)
}

// MulFloat scales t by f in T's precision and rounds half away from zero.
func MulFloat[T constraints.Float](t Tick, f T) Tick {
	return Tick(roundHalfAway(T(t) * f))
}

// DivFloat divides t by f in T's precision and rounds half away from zero.
// A zero divisor behaves as in Div.
func DivFloat[T constraints.Float](t Tick, f T) Tick {
	return Tick(roundHalfAway(T(t) / f))
}
