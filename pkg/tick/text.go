package tick

import (
	"bytes"
	"strconv"
)

// String returns "Tick(<raw>)".
func (t Tick) String() string {
	return "Tick(" + strconv.FormatInt(int64(t), 10) + ")"
}

// Parse parses a signed decimal int64 tick count. Anything else, including
// surrounding whitespace or a value outside the int64 range, fails with a
// *ParseError.
func Parse(s string) (Tick, error) {
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, parseError("Parse", s, err)
	}
	return Tick(v), nil
}

// MarshalText encodes the raw count in decimal.
func (t Tick) MarshalText() ([]byte, error) {
	return strconv.AppendInt(nil, int64(t), 10), nil
}

// UnmarshalText decodes a decimal raw count.
func (t *Tick) UnmarshalText(text []byte) error {
	v, err := Parse(string(text))
	if err != nil {
		return err
	}
	*t = v
	return nil
}

// MarshalJSON encodes t as a bare JSON number.
func (t Tick) MarshalJSON() ([]byte, error) {
	return t.MarshalText()
}

// UnmarshalJSON decodes a JSON number. JSON strings are rejected so a Tick is
// always a single integer field on the wire; null leaves t unchanged.
func (t *Tick) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if string(data) == "null" {
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		return parseError("UnmarshalJSON", string(data), ErrJSONString)
	}
	return t.UnmarshalText(data)
}
