package tick

import (
	"errors"
	"strconv"
)

var (
	// ErrZeroFrameRate is returned when a frame rate numerator or denominator is zero.
	ErrZeroFrameRate = errors.New("frame rate numerator and denominator must be non-zero")

	// ErrInvalidFrameRate is returned for frame rate text that is neither an
	// integer, a num/den pair, nor a decimal rate.
	ErrInvalidFrameRate = errors.New("invalid frame rate")

	// ErrInvalidTimecode is returned for timecode text that is not HH:MM:SS:FF.
	ErrInvalidTimecode = errors.New("invalid timecode")

	// ErrJSONString is returned when a Tick is decoded from a JSON string
	// instead of a JSON number.
	ErrJSONString = errors.New("tick must be a JSON number")
)

// ParseError records a failed text conversion.
type ParseError struct {
	Func  string // the failing function (Parse, ParseFrameRate, ParseTimecode)
	Input string // the input text
	Err   error  // the reason the conversion failed
}

func (e *ParseError) Error() string {
	return "tick." + e.Func + ": parsing " + strconv.Quote(e.Input) + ": " + e.Err.Error()
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

func parseError(fn, input string, err error) *ParseError {
	var numErr *strconv.NumError
	if errors.As(err, &numErr) {
		err = numErr.Err
	}
	return &ParseError{Func: fn, Input: input, Err: err}
}
