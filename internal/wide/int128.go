// Package wide provides the signed 128-bit intermediate used to multiply and
// divide int64 tick counts without overflowing.
package wide

import "math/bits"

// Int128 is a signed 128-bit integer in sign-magnitude form.
// The zero value is 0.
type Int128 struct {
	neg    bool
	hi, lo uint64
}

// FromInt64 widens v.
func FromInt64(v int64) Int128 {
	if v < 0 {
		// uint64(-v) is 1<<63 for math.MinInt64, which is the correct magnitude
		return Int128{neg: true, lo: uint64(-v)}
	}
	return Int128{lo: uint64(v)}
}

// FromUint64 widens v.
func FromUint64(v uint64) Int128 {
	return Int128{lo: v}
}

// MulUint64 returns x*m. Bits beyond 128 are discarded.
func (x Int128) MulUint64(m uint64) Int128 {
	carry, lo := bits.Mul64(x.lo, m)
	hi := x.hi*m + carry
	return Int128{neg: x.neg, hi: hi, lo: lo}.norm()
}

// Add returns x+y.
func (x Int128) Add(y Int128) Int128 {
	if x.neg == y.neg {
		lo, carry := bits.Add64(x.lo, y.lo, 0)
		hi, _ := bits.Add64(x.hi, y.hi, carry)
		return Int128{neg: x.neg, hi: hi, lo: lo}.norm()
	}
	// signs differ: subtract the smaller magnitude from the larger
	if cmpMag(x, y) >= 0 {
		return subMag(x, y, x.neg)
	}
	return subMag(y, x, y.neg)
}

// QuoUint64 returns x/d truncated toward zero. It panics if d == 0, like the
// builtin division operator.
func (x Int128) QuoUint64(d uint64) Int128 {
	if d == 0 {
		panic("wide: division by zero")
	}
	qhi := x.hi / d
	rem := x.hi % d
	qlo, _ := bits.Div64(rem, x.lo, d)
	return Int128{neg: x.neg, hi: qhi, lo: qlo}.norm()
}

// Int64 narrows x to its low 64 bits in two's complement, the same wraparound
// an integer conversion applies.
func (x Int128) Int64() int64 {
	v := int64(x.lo)
	if x.neg {
		return -v
	}
	return v
}

func (x Int128) norm() Int128 {
	if x.hi == 0 && x.lo == 0 {
		x.neg = false
	}
	return x
}

func cmpMag(x, y Int128) int {
	switch {
	case x.hi != y.hi:
		if x.hi > y.hi {
			return 1
		}
		return -1
	case x.lo != y.lo:
		if x.lo > y.lo {
			return 1
		}
		return -1
	}
	return 0
}

// subMag returns |a|-|b| with the given sign; |a| must be >= |b|.
func subMag(a, b Int128, neg bool) Int128 {
	lo, borrow := bits.Sub64(a.lo, b.lo, 0)
	hi, _ := bits.Sub64(a.hi, b.hi, borrow)
	return Int128{neg: neg, hi: hi, lo: lo}.norm()
}

// MulDiv returns x*m/d computed in 128 bits, truncated toward zero and
// narrowed to int64. A zero divisor yields 0.
func MulDiv(x int64, m, d uint64) int64 {
	if d == 0 {
		return 0
	}
	return FromInt64(x).MulUint64(m).QuoUint64(d).Int64()
}
