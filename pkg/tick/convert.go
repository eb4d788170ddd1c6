package tick

import (
	"math"
	"math/big"

	"golang.org/x/exp/constraints"
)

// FromInt converts any integer to a Tick. Unsigned values above
// math.MaxInt64 wrap.
func FromInt[T constraints.Integer](v T) Tick {
	return Tick(v)
}

// ToInt converts t to any integer type, truncating to T's width.
func ToInt[T constraints.Integer](t Tick) T {
	return T(t)
}

// FromFloat converts a float tick count to a Tick, rounding half away from
// zero. This is a raw count conversion; use FromSeconds for seconds.
func FromFloat[T constraints.Float](v T) Tick {
	return Tick(roundHalfAway(v))
}

// ToFloat converts the raw tick count to T.
func ToFloat[T constraints.Float](t Tick) T {
	return T(t)
}

var mask64 = new(big.Int).SetUint64(math.MaxUint64)

// FromBigInt narrows v to its low 64 bits in two's complement, the same
// truncation an integer conversion applies. A nil v is zero.
func FromBigInt(v *big.Int) Tick {
	if v == nil {
		return 0
	}
	low := new(big.Int).And(v, mask64)
	return Tick(int64(low.Uint64()))
}

// BigInt returns t as a *big.Int.
func (t Tick) BigInt() *big.Int {
	return big.NewInt(int64(t))
}
