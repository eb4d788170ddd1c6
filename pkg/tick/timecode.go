package tick

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/zsiec/tick/internal/wide"
)

// Timecode is a non-drop-frame HH:MM:SS:FF position at some FrameRate.
// Frames counts up to the rate's Nominal value, so at 30000/1001 a timecode
// second holds 30 frames even though 29.97 frames elapse per real second.
type Timecode struct {
	Hours   int64 `json:"hours"`
	Minutes int64 `json:"minutes"`
	Seconds int64 `json:"seconds"`
	Frames  int64 `json:"frames"`
}

// ToTimecode converts t to a timecode at rate.
//
// The frame count is taken at the exact rational rate and rounded to the
// nearest frame, ties away from zero: (raw*num ± divisor/2) / divisor with
// divisor = TicksPerSecond*den, in 128 bits. That count is then split into hours,
// minutes, seconds and frames using the nominal rate. Negative ticks produce
// non-positive fields. The zero rate yields the zero Timecode.
func (t Tick) ToTimecode(rate FrameRate) Timecode {
	if rate.IsZero() {
		return Timecode{}
	}
	divisor := uint64(TicksPerSecond) * uint64(rate.den)
	half := wide.FromUint64(divisor / 2)
	if t < 0 {
		half = wide.FromInt64(-int64(divisor / 2))
	}
	total := wide.FromInt64(int64(t)).
		MulUint64(uint64(rate.num)).
		Add(half).
		QuoUint64(divisor).
		Int64()

	nominal := rate.Nominal()
	return Timecode{
		Hours:   total / nominal / 3600,
		Minutes: (total / nominal / 60) % 60,
		Seconds: (total / nominal) % 60,
		Frames:  total % nominal,
	}
}

// FromTimecode converts tc at rate back to ticks: the nominal frame count
// h*3600*n + m*60*n + s*n + f is scaled by TicksPerSecond*den/num in 128 bits
// and truncated. The zero rate yields 0.
//
// ToTimecode(FromTimecode(tc, r), r) == tc for every tc valid at r. The other
// direction only holds for ticks on a frame boundary.
func FromTimecode(tc Timecode, rate FrameRate) Tick {
	if rate.IsZero() {
		return 0
	}
	return Tick(wide.FromInt64(tc.TotalFrames(rate)).
		MulUint64(uint64(TicksPerSecond)).
		MulUint64(uint64(rate.den)).
		QuoUint64(uint64(rate.num)).
		Int64())
}

// TotalFrames returns the nominal frame count tc represents at rate.
func (tc Timecode) TotalFrames(rate FrameRate) int64 {
	n := rate.Nominal()
	return tc.Hours*3600*n + tc.Minutes*60*n + tc.Seconds*n + tc.Frames
}

// Valid reports whether every field is in range for rate: hours >= 0,
// minutes and seconds in [0, 60), frames in [0, Nominal).
func (tc Timecode) Valid(rate FrameRate) bool {
	if rate.IsZero() {
		return false
	}
	return tc.Hours >= 0 &&
		tc.Minutes >= 0 && tc.Minutes < 60 &&
		tc.Seconds >= 0 && tc.Seconds < 60 &&
		tc.Frames >= 0 && tc.Frames < rate.Nominal()
}

func (tc Timecode) negative() bool {
	return tc.Hours < 0 || tc.Minutes < 0 || tc.Seconds < 0 || tc.Frames < 0
}

// String formats tc as HH:MM:SS:FF. A negative timecode is rendered with a
// leading minus sign and absolute field values.
func (tc Timecode) String() string {
	if tc.negative() {
		abs := func(v int64) int64 {
			if v < 0 {
				return -v
			}
			return v
		}
		return fmt.Sprintf("-%02d:%02d:%02d:%02d", abs(tc.Hours), abs(tc.Minutes), abs(tc.Seconds), abs(tc.Frames))
	}
	return fmt.Sprintf("%02d:%02d:%02d:%02d", tc.Hours, tc.Minutes, tc.Seconds, tc.Frames)
}

// ParseTimecode parses HH:MM:SS:FF, HH:MM:SS;FF or HH:MM:SS. A leading minus
// sign negates every field. Field ranges are not checked; use Valid.
func ParseTimecode(s string) (Timecode, error) {
	text := strings.TrimSpace(s)
	neg := strings.HasPrefix(text, "-")
	text = strings.TrimPrefix(text, "-")

	fields := strings.FieldsFunc(text, func(r rune) bool { return r == ':' || r == ';' })
	if len(fields) != 3 && len(fields) != 4 ||
		strings.Count(text, ":")+strings.Count(text, ";") != len(fields)-1 ||
		strings.Contains(text[:max(0, strings.LastIndexAny(text, ":;"))], ";") {
		return Timecode{}, parseError("ParseTimecode", s, ErrInvalidTimecode)
	}

	values := make([]int64, 4)
	for i, field := range fields {
		if field == "" || strings.ContainsAny(field, "+-") {
			return Timecode{}, parseError("ParseTimecode", s, ErrInvalidTimecode)
		}
		v, err := strconv.ParseInt(field, 10, 64)
		if err != nil {
			return Timecode{}, parseError("ParseTimecode", s, err)
		}
		if neg {
			v = -v
		}
		values[i] = v
	}
	return Timecode{Hours: values[0], Minutes: values[1], Seconds: values[2], Frames: values[3]}, nil
}
