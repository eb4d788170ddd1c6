package tick

import (
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var namedRates = []struct {
	name string
	rate FrameRate
}{
	{name: "Film", rate: Film},
	{name: "PAL", rate: PAL},
	{name: "30", rate: FrameRate30},
	{name: "48", rate: FrameRate48},
	{name: "50", rate: FrameRate50},
	{name: "60", rate: FrameRate60},
	{name: "120", rate: FrameRate120},
	{name: "NTSC film", rate: NTSCFilm},
	{name: "NTSC", rate: NTSC},
	{name: "NTSC 59.94", rate: FrameRate59_94},
}

func TestTimecode_ForwardRoundTrip(t *testing.T) {
	for _, tr := range namedRates {
		t.Run(tr.name, func(t *testing.T) {
			n := tr.rate.Nominal()
			for _, h := range []int64{0, 1, 23, 99} {
				for _, m := range []int64{0, 30, 59} {
					for _, s := range []int64{0, 45, 59} {
						for _, f := range []int64{0, 1, n / 2, n - 1} {
							tc := Timecode{Hours: h, Minutes: m, Seconds: s, Frames: f}
							require.True(t, tc.Valid(tr.rate))
							got := FromTimecode(tc, tr.rate).ToTimecode(tr.rate)
							require.Equal(t, tc, got, "rate %s", tr.rate)
						}
					}
				}
			}
		})
	}
}

func TestTimecode_NTSC(t *testing.T) {
	tc := Timecode{Hours: 1, Minutes: 30, Seconds: 45, Frames: 15}
	assert.Equal(t, tc, FromTimecode(tc, NTSC).ToTimecode(NTSC))

	// one timecode second at 30000/1001 lasts 1.001 real seconds
	assert.Equal(t, Tick(TicksPerSecond*1001/1000), FromTimecode(Timecode{Seconds: 1}, NTSC))
	assert.Equal(t, Timecode{Seconds: 1}, Second.ToTimecode(NTSC))

	// frames run up to the nominal 30
	assert.Equal(t, int64(30), NTSC.Nominal())
	assert.True(t, Timecode{Frames: 29}.Valid(NTSC))
	assert.False(t, Timecode{Frames: 30}.Valid(NTSC))
}

func TestTimecode_Exact(t *testing.T) {
	assert.Equal(t, Timecode{Hours: 1}, Hour.ToTimecode(Film))
	assert.Equal(t, Hour, FromTimecode(Timecode{Hours: 1}, Film))
	assert.Equal(t, Timecode{Minutes: 1, Seconds: 1, Frames: 12}, (Minute + Second + Second/2).ToTimecode(Film))
}

func TestTimecode_ReverseRoundTripOnFrameBoundaries(t *testing.T) {
	for _, tr := range namedRates {
		if !tr.rate.IsInteger() {
			continue
		}
		fps := uint32(tr.rate.Nominal())
		for n := int64(0); n < 5000; n += 37 {
			tk := FromFrames(n, fps)
			assert.Equal(t, tk, FromTimecode(tk.ToTimecode(tr.rate), tr.rate), "rate %s frame %d", tr.rate, n)
		}
	}
}

func TestTimecode_RoundsToNearestFrame(t *testing.T) {
	half := Tick(TicksPerSecond / 48)

	assert.Equal(t, Timecode{Frames: 1}, half.ToTimecode(Film))
	assert.Equal(t, Timecode{Frames: 0}, (half - 1).ToTimecode(Film))
	assert.Equal(t, Timecode{Frames: -1}, (-half).ToTimecode(Film))
	assert.Equal(t, Timecode{Frames: 0}, (-half + 1).ToTimecode(Film))
}

func TestTimecode_Negative(t *testing.T) {
	tc := (-Second).ToTimecode(Film)
	assert.Equal(t, Timecode{Seconds: -1}, tc)
	assert.Equal(t, "-00:00:01:00", tc.String())
	assert.Equal(t, -Second, FromTimecode(tc, Film))
	assert.False(t, tc.Valid(Film))
}

func TestTimecode_ZeroRate(t *testing.T) {
	var zero FrameRate
	assert.Equal(t, Timecode{}, Hour.ToTimecode(zero))
	assert.Equal(t, Tick(0), FromTimecode(Timecode{Hours: 1}, zero))
	assert.False(t, Timecode{}.Valid(zero))
}

func TestTimecode_Valid(t *testing.T) {
	tests := []struct {
		name     string
		tc       Timecode
		expected bool
	}{
		{name: "Zero", tc: Timecode{}, expected: true},
		{name: "Last frame", tc: Timecode{Hours: 10, Minutes: 59, Seconds: 59, Frames: 23}, expected: true},
		{name: "Frame overflow", tc: Timecode{Frames: 24}, expected: false},
		{name: "Seconds overflow", tc: Timecode{Seconds: 60}, expected: false},
		{name: "Minutes overflow", tc: Timecode{Minutes: 60}, expected: false},
		{name: "Negative hours", tc: Timecode{Hours: -1}, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.tc.Valid(Film))
		})
	}
}

func TestTimecode_String(t *testing.T) {
	assert.Equal(t, "01:02:03:04", Timecode{Hours: 1, Minutes: 2, Seconds: 3, Frames: 4}.String())
	assert.Equal(t, "00:00:00:00", Timecode{}.String())
	assert.Equal(t, "123:00:00:00", Timecode{Hours: 123}.String())
}

func TestParseTimecode(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected Timecode
	}{
		{name: "Colons", input: "01:02:03:04", expected: Timecode{Hours: 1, Minutes: 2, Seconds: 3, Frames: 4}},
		{name: "Semicolon before frames", input: "01:02:03;04", expected: Timecode{Hours: 1, Minutes: 2, Seconds: 3, Frames: 4}},
		{name: "No frames", input: "10:00:00", expected: Timecode{Hours: 10}},
		{name: "Negative", input: "-00:00:01:00", expected: Timecode{Seconds: -1}},
		{name: "Surrounding space", input: " 00:00:00:05 ", expected: Timecode{Frames: 5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseTimecode(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestParseTimecode_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		err   error
	}{
		{name: "Empty", input: "", err: ErrInvalidTimecode},
		{name: "Too few fields", input: "01:02", err: ErrInvalidTimecode},
		{name: "Too many fields", input: "01:02:03:04:05", err: ErrInvalidTimecode},
		{name: "Semicolon too early", input: "01;02:03:04", err: ErrInvalidTimecode},
		{name: "Trailing separator", input: "01:02:03:", err: ErrInvalidTimecode},
		{name: "Empty field", input: "01::03:04", err: ErrInvalidTimecode},
		{name: "Signed field", input: "01:+2:03:04", err: ErrInvalidTimecode},
		{name: "Not a number", input: "aa:bb:cc:dd", err: strconv.ErrSyntax},
		{name: "Out of range", input: "99999999999999999999:00:00:00", err: strconv.ErrRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseTimecode(tt.input)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.err)

			var pe *ParseError
			require.True(t, errors.As(err, &pe))
			assert.Equal(t, "ParseTimecode", pe.Func)
			assert.Equal(t, tt.input, pe.Input)
		})
	}
}

func TestParseTimecode_RoundTripsString(t *testing.T) {
	tc := Timecode{Hours: 2, Minutes: 15, Seconds: 7, Frames: 19}
	got, err := ParseTimecode(tc.String())
	require.NoError(t, err)
	assert.Equal(t, tc, got)
}
