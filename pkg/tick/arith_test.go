package tick

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAddSub(t *testing.T) {
	assert.Equal(t, 3*Second, Second.Add(2*Second))
	assert.Equal(t, -Second, Second.Sub(2*Second))
	assert.Equal(t, Tick(math.MinInt64), Tick(math.MaxInt64).Add(1))
}

func TestMulDiv(t *testing.T) {
	tests := []struct {
		name     string
		got      Tick
		expected Tick
	}{
		{name: "Mul exact", got: Tick(3).Mul(Tick(4)), expected: 12},
		{name: "Mul negative", got: Tick(-3).Mul(Tick(2)), expected: -6},
		{name: "Div exact", got: Tick(12).Div(Tick(4)), expected: 3},
		{name: "Div positive tie rounds away", got: Tick(7).Div(Tick(2)), expected: 4},
		{name: "Div negative tie rounds away", got: Tick(-7).Div(Tick(2)), expected: -4},
		{name: "Div below half", got: Tick(10).Div(Tick(3)), expected: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.got)
		})
	}
}

func TestIntegerScalars(t *testing.T) {
	assert.Equal(t, 3*Second, MulInt(Second, 3))
	assert.Equal(t, 2*Second, MulInt(Second, uint8(2)))
	assert.Equal(t, -Second, MulInt(Second, int64(-1)))

	assert.Equal(t, Tick(3), DivInt(Tick(7), 2))
	assert.Equal(t, Tick(-3), DivInt(Tick(-7), uint16(2)))
	assert.Equal(t, Second/4, DivInt(Second, int32(4)))

	assert.Panics(t, func() { DivInt(Second, 0) })
}

func TestFloatScalars(t *testing.T) {
	assert.Equal(t, Second/2, MulFloat(Second, 0.5))
	assert.Equal(t, Tick(3), MulFloat(Tick(5), 0.5))
	assert.Equal(t, Tick(-3), MulFloat(Tick(-5), 0.5))
	assert.Equal(t, Tick(2), MulFloat(Tick(3), float32(0.5)))

	assert.Equal(t, Tick(3), DivFloat(Tick(10), 4.0))
	assert.Equal(t, Tick(-3), DivFloat(Tick(-10), float32(4)))
	assert.Equal(t, 2*Second, DivFloat(Second, 0.5))
}

func TestLerp(t *testing.T) {
	a, b := -Second, 3*Second

	tests := []struct {
		name     string
		factor   float64
		expected Tick
	}{
		{name: "Start", factor: 0, expected: a},
		{name: "End", factor: 1, expected: b},
		{name: "Midpoint", factor: 0.5, expected: Second},
		{name: "Clamped below", factor: -2, expected: a},
		{name: "Clamped above", factor: 7, expected: b},
		{name: "NaN counts as zero", factor: math.NaN(), expected: a},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, a.Lerp(b, tt.factor))
		})
	}

	assert.Equal(t, Tick(3), Tick(0).Lerp(Tick(5), 0.5))
	assert.Equal(t, Tick(-3), Tick(0).Lerp(Tick(-5), 0.5))
}

func TestRoundingModesStayDistinct(t *testing.T) {
	// 2.5 seconds of ticks at one frame per second is an exact tie
	raw := Tick(TicksPerSecond * 5 / 2)

	assert.Equal(t, int64(2), raw.ToFramesFloat(1.0), "frame counts round half to even")
	assert.Equal(t, Tick(3), DivFloat(raw, float64(TicksPerSecond)), "arithmetic rounds half away from zero")
	assert.Equal(t, Tick(3), Tick(0).Lerp(Tick(5), 0.5))
	assert.Equal(t, Tick(3), FromFloat(2.5))
}
