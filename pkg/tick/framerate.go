package tick

import (
	"fmt"
	"strconv"
	"strings"
)

// FrameRate is an exact rational frame rate of num/den frames per second.
//
// Rates built with NewFrameRate always have a non-zero numerator and
// denominator. The zero FrameRate is the absent rate: IsZero reports it and
// every conversion that takes a FrameRate returns zero values for it.
type FrameRate struct {
	num uint32
	den uint32
}

// Common frame rates
var (
	FrameRate24  = FrameRate{num: 24, den: 1}  // film
	FrameRate25  = FrameRate{num: 25, den: 1}  // PAL
	FrameRate30  = FrameRate{num: 30, den: 1}  // web video
	FrameRate48  = FrameRate{num: 48, den: 1}  // HFR film
	FrameRate50  = FrameRate{num: 50, den: 1}  // PAL progressive
	FrameRate60  = FrameRate{num: 60, den: 1}  // web video
	FrameRate120 = FrameRate{num: 120, den: 1} // high refresh displays

	// NTSC frame rates
	FrameRate23_976 = FrameRate{num: 24000, den: 1001}
	FrameRate29_97  = FrameRate{num: 30000, den: 1001}
	FrameRate59_94  = FrameRate{num: 60000, den: 1001}

	Film     = FrameRate24
	PAL      = FrameRate25
	NTSC     = FrameRate29_97
	NTSCFilm = FrameRate23_976
)

// NewFrameRate returns num/den frames per second. It fails with
// ErrZeroFrameRate, returning the zero FrameRate, if either part is zero.
func NewFrameRate(num, den uint32) (FrameRate, error) {
	if num == 0 || den == 0 {
		return FrameRate{}, fmt.Errorf("%d/%d: %w", num, den, ErrZeroFrameRate)
	}
	return FrameRate{num: num, den: den}, nil
}

// FrameRateFromInt returns the integer rate fps/1.
func FrameRateFromInt(fps uint32) (FrameRate, error) {
	return NewFrameRate(fps, 1)
}

// Num returns the numerator.
func (r FrameRate) Num() uint32 {
	return r.num
}

// Den returns the denominator.
func (r FrameRate) Den() uint32 {
	return r.den
}

// IsZero reports whether r is the absent rate.
func (r FrameRate) IsZero() bool {
	return r.num == 0 || r.den == 0
}

// IsInteger reports whether r is a whole number of frames per second.
func (r FrameRate) IsInteger() bool {
	return !r.IsZero() && r.num%r.den == 0
}

// Float64 returns the rate as a float. The zero rate is 0.
func (r FrameRate) Float64() float64 {
	if r.IsZero() {
		return 0
	}
	return float64(r.num) / float64(r.den)
}

// Nominal returns the ceiling of num/den: the frame count a timecode second
// holds (30 for 30000/1001). It bounds the frames field of a Timecode and is
// not used for exact tick arithmetic.
func (r FrameRate) Nominal() int64 {
	if r.IsZero() {
		return 0
	}
	n, d := int64(r.num), int64(r.den)
	return (n + d - 1) / d
}

// IsExact reports whether one frame at r is a whole number of ticks, that is
// whether TicksPerSecond*den is divisible by num.
func (r FrameRate) IsExact() bool {
	if r.IsZero() {
		return false
	}
	return (uint64(TicksPerSecond)*uint64(r.den))%uint64(r.num) == 0
}

// FrameDuration returns the length of one frame, truncated to whole ticks.
func (r FrameRate) FrameDuration() Tick {
	return FromTimecode(Timecode{Frames: 1}, r)
}

// String returns "num/den", or just "num" for integer rates over 1.
func (r FrameRate) String() string {
	if r.den == 1 {
		return strconv.FormatUint(uint64(r.num), 10)
	}
	return strconv.FormatUint(uint64(r.num), 10) + "/" + strconv.FormatUint(uint64(r.den), 10)
}

// MarshalText implements encoding.TextMarshaler.
func (r FrameRate) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler using ParseFrameRate.
func (r *FrameRate) UnmarshalText(text []byte) error {
	rate, err := ParseFrameRate(string(text))
	if err != nil {
		return err
	}
	*r = rate
	return nil
}

// ntscShorthand maps the decimal names broadcast tooling uses for the 1001
// family to their exact rates.
var ntscShorthand = map[string]FrameRate{
	"23.976": FrameRate23_976,
	"23.98":  FrameRate23_976,
	"29.97":  FrameRate29_97,
	"47.952": {num: 48000, den: 1001},
	"47.95":  {num: 48000, den: 1001},
	"59.94":  FrameRate59_94,
	"119.88": {num: 120000, den: 1001},
}

// ParseFrameRate parses "24", "30000/1001", or a decimal rate. The NTSC
// shorthands 23.976, 23.98, 29.97, 47.952, 59.94 and 119.88 map to their
// x000/1001 rates, with or without trailing zeros; any other decimal with up
// to six significant fractional digits is converted exactly. Every result is
// reduced, so "12.5" becomes 25/2 and "48/2" becomes 24.
func ParseFrameRate(s string) (FrameRate, error) {
	text := trimFraction(strings.TrimSpace(s))
	if r, ok := ntscShorthand[text]; ok {
		return r, nil
	}

	if num, den, ok := strings.Cut(text, "/"); ok {
		n, err := strconv.ParseUint(num, 10, 32)
		if err != nil {
			return FrameRate{}, parseError("ParseFrameRate", s, err)
		}
		d, err := strconv.ParseUint(den, 10, 32)
		if err != nil {
			return FrameRate{}, parseError("ParseFrameRate", s, err)
		}
		if n == 0 || d == 0 {
			return FrameRate{}, parseError("ParseFrameRate", s, ErrZeroFrameRate)
		}
		g := gcd(n, d)
		return FrameRate{num: uint32(n / g), den: uint32(d / g)}, nil
	}

	whole, frac, hasFrac := strings.Cut(text, ".")
	if !hasFrac {
		n, err := strconv.ParseUint(whole, 10, 32)
		if err != nil {
			return FrameRate{}, parseError("ParseFrameRate", s, err)
		}
		r, err := FrameRateFromInt(uint32(n))
		if err != nil {
			return FrameRate{}, parseError("ParseFrameRate", s, ErrZeroFrameRate)
		}
		return r, nil
	}

	if frac == "" || len(frac) > 6 {
		return FrameRate{}, parseError("ParseFrameRate", s, ErrInvalidFrameRate)
	}
	den := uint64(1)
	for range frac {
		den *= 10
	}
	n, err := strconv.ParseUint(whole+frac, 10, 64)
	if err != nil {
		return FrameRate{}, parseError("ParseFrameRate", s, err)
	}
	g := gcd(n, den)
	n, den = n/g, den/g
	if n > 1<<32-1 {
		return FrameRate{}, parseError("ParseFrameRate", s, strconv.ErrRange)
	}
	r, err := NewFrameRate(uint32(n), uint32(den))
	if err != nil {
		return FrameRate{}, parseError("ParseFrameRate", s, ErrZeroFrameRate)
	}
	return r, nil
}

// trimFraction drops trailing zeros after a decimal point, and the point
// itself when nothing follows it, so "29.970" reads as "29.97" and "25.00"
// as "25". Ratio text is returned unchanged.
func trimFraction(text string) string {
	if !strings.Contains(text, ".") || strings.Contains(text, "/") || !strings.HasSuffix(text, "0") {
		return text
	}
	text = strings.TrimRight(text, "0")
	return strings.TrimSuffix(text, ".")
}

func gcd(a, b uint64) uint64 {
	for b != 0 {
		a, b = b, a%b
	}
	if a == 0 {
		return 1
	}
	return a
}
