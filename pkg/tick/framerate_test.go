package tick

import (
	"encoding/json"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFrameRate(t *testing.T) {
	r, err := NewFrameRate(30000, 1001)
	require.NoError(t, err)
	assert.Equal(t, NTSC, r)
	assert.Equal(t, uint32(30000), r.Num())
	assert.Equal(t, uint32(1001), r.Den())

	for _, parts := range [][2]uint32{{0, 1}, {24, 0}, {0, 0}} {
		r, err := NewFrameRate(parts[0], parts[1])
		assert.ErrorIs(t, err, ErrZeroFrameRate)
		assert.True(t, r.IsZero())
	}

	r, err = FrameRateFromInt(25)
	require.NoError(t, err)
	assert.Equal(t, PAL, r)

	_, err = FrameRateFromInt(0)
	assert.ErrorIs(t, err, ErrZeroFrameRate)
}

func TestFrameRate_Properties(t *testing.T) {
	tests := []struct {
		name      string
		rate      FrameRate
		nominal   int64
		isInteger bool
		float     float64
		str       string
	}{
		{name: "Film", rate: Film, nominal: 24, isInteger: true, float: 24, str: "24"},
		{name: "NTSC film", rate: NTSCFilm, nominal: 24, isInteger: false, float: 23.976, str: "24000/1001"},
		{name: "NTSC", rate: NTSC, nominal: 30, isInteger: false, float: 29.97, str: "30000/1001"},
		{name: "59.94", rate: FrameRate59_94, nominal: 60, isInteger: false, float: 59.94, str: "60000/1001"},
		{name: "Unreduced integer", rate: FrameRate{num: 48, den: 2}, nominal: 24, isInteger: true, float: 24, str: "48/2"},
		{name: "Zero", rate: FrameRate{}, nominal: 0, isInteger: false, float: 0, str: "0/0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.nominal, tt.rate.Nominal())
			assert.Equal(t, tt.isInteger, tt.rate.IsInteger())
			assert.InDelta(t, tt.float, tt.rate.Float64(), 0.001)
			assert.Equal(t, tt.str, tt.rate.String())
		})
	}
}

func TestFrameRate_IsExact(t *testing.T) {
	for _, r := range []FrameRate{Film, PAL, FrameRate30, FrameRate48, FrameRate50, FrameRate60, FrameRate120} {
		assert.True(t, r.IsExact(), "rate %s", r)
	}
	// 1001-family frame periods are not whole ticks
	assert.False(t, NTSC.IsExact())
	assert.False(t, FrameRate{}.IsExact())
}

func TestFrameRate_FrameDuration(t *testing.T) {
	assert.Equal(t, Tick(TicksPerSecond/24), Film.FrameDuration())
	assert.Equal(t, Tick(TicksPerSecond*1001/30000), NTSC.FrameDuration())
	assert.Equal(t, Tick(0), FrameRate{}.FrameDuration())
}

func TestParseFrameRate(t *testing.T) {
	tests := []struct {
		input    string
		expected FrameRate
	}{
		{input: "24", expected: Film},
		{input: "30000/1001", expected: NTSC},
		{input: "29.97", expected: NTSC},
		{input: " 23.976 ", expected: NTSCFilm},
		{input: "23.98", expected: NTSCFilm},
		{input: "59.94", expected: FrameRate59_94},
		{input: "119.88", expected: FrameRate{num: 120000, den: 1001}},
		{input: "25.0", expected: PAL},
		{input: "12.5", expected: FrameRate{num: 25, den: 2}},
		{input: "48/2", expected: FrameRate24},
		{input: "60000/2002", expected: FrameRate29_97},
		{input: "29.970", expected: NTSC},
		{input: "59.940", expected: FrameRate59_94},
		{input: "23.9760", expected: NTSCFilm},
		{input: "25.00", expected: PAL},
		{input: "12.50", expected: FrameRate{num: 25, den: 2}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseFrameRate(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestParseFrameRate_Errors(t *testing.T) {
	tests := []struct {
		input string
		err   error
	}{
		{input: "0", err: ErrZeroFrameRate},
		{input: "30/0", err: ErrZeroFrameRate},
		{input: "0.0", err: ErrZeroFrameRate},
		{input: "abc", err: strconv.ErrSyntax},
		{input: "-24", err: strconv.ErrSyntax},
		{input: "24/x", err: strconv.ErrSyntax},
		{input: "4294967296", err: strconv.ErrRange},
		{input: "24.", err: ErrInvalidFrameRate},
		{input: "0/0", err: ErrZeroFrameRate},
		{input: "0.000", err: ErrZeroFrameRate},
		{input: "1.1234567", err: ErrInvalidFrameRate},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			_, err := ParseFrameRate(tt.input)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.err)
		})
	}
}

func TestFrameRate_Text(t *testing.T) {
	type config struct {
		Rate FrameRate `json:"rate"`
	}

	data, err := json.Marshal(config{Rate: NTSC})
	require.NoError(t, err)
	assert.JSONEq(t, `{"rate":"30000/1001"}`, string(data))

	var cfg config
	require.NoError(t, json.Unmarshal([]byte(`{"rate":"29.97"}`), &cfg))
	assert.Equal(t, NTSC, cfg.Rate)

	assert.Error(t, json.Unmarshal([]byte(`{"rate":"fast"}`), &cfg))
}
