package api

import (
	"errors"
	"math"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	apperrors "github.com/zsiec/tick/internal/errors"
	"github.com/zsiec/tick/pkg/tick"
)

// Codes attached to API validation errors.
const (
	CodeInvalidBody      = "INVALID_BODY"
	CodeInvalidNumber    = "INVALID_NUMBER"
	CodeInvalidName      = "INVALID_NAME"
	CodeInvalidOperation = "INVALID_OPERATION"
	CodeDivisionByZero   = "DIVISION_BY_ZERO"
	CodeMarkerNotFound   = "MARKER_NOT_FOUND"
)

// invalidParam reports a query or path parameter that failed to parse.
func invalidParam(param, input string, err error) *apperrors.AppError {
	code := CodeInvalidNumber
	if errors.Is(err, strconv.ErrRange) {
		code = apperrors.CodeOutOfRange
	}
	return apperrors.Wrap(err, apperrors.ErrorTypeValidation, "invalid "+param+" "+strconv.Quote(input), http.StatusBadRequest).
		WithCode(code).
		WithDetails(map[string]interface{}{
			"param": param,
			"input": input,
		})
}

func tickVar(r *http.Request) (tick.Tick, error) {
	return tick.Parse(mux.Vars(r)["tick"])
}

func frameVar(r *http.Request) (int64, error) {
	s := mux.Vars(r)["frame"]
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, invalidParam("frame", s, err)
	}
	return n, nil
}

// secondsParam parses ?seconds= and rejects values whose tick count does
// not fit an int64.
func secondsParam(r *http.Request) (float64, error) {
	s := r.URL.Query().Get("seconds")
	secs, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, invalidParam("seconds", s, err)
	}
	limit := math.Ldexp(1, 63) / float64(tick.TicksPerSecond)
	if math.IsNaN(secs) || math.Abs(secs) >= limit {
		return 0, invalidParam("seconds", s, strconv.ErrRange)
	}
	return secs, nil
}

// frameRate parses ?rate= as FrameRate text, falling back to the default.
func (h *Handlers) frameRate(r *http.Request) (tick.FrameRate, error) {
	s := r.URL.Query().Get("rate")
	if s == "" {
		if h.defaultRate.IsZero() {
			return tick.FrameRate{}, apperrors.Wrap(tick.ErrZeroFrameRate, apperrors.ErrorTypeValidation,
				"rate is required", http.StatusBadRequest).WithCode(apperrors.CodeZeroFrameRate)
		}
		return h.defaultRate, nil
	}
	return tick.ParseFrameRate(s)
}

// frameMode selects integer or floating point frame conversion.
type frameMode struct {
	fps  uint32
	rate float64
}

func (f frameMode) integer() bool { return f.fps != 0 }

// frameMode reads ?fps=<uint> or ?rate=<float>. Without either the default
// frame rate is used, as an integer rate when it is one.
func (h *Handlers) frameMode(r *http.Request) (frameMode, error) {
	q := r.URL.Query()
	fpsText, rateText := q.Get("fps"), q.Get("rate")

	switch {
	case fpsText != "" && rateText != "":
		return frameMode{}, apperrors.NewValidationError("fps and rate are mutually exclusive").
			WithCode(apperrors.CodeInvalidFrameRate)

	case fpsText != "":
		fps, err := strconv.ParseUint(fpsText, 10, 32)
		if err != nil {
			return frameMode{}, invalidParam("fps", fpsText, err).WithCode(apperrors.CodeInvalidFrameRate)
		}
		if fps == 0 {
			return frameMode{}, apperrors.Wrap(tick.ErrZeroFrameRate, apperrors.ErrorTypeValidation,
				"fps must be positive", http.StatusBadRequest).WithCode(apperrors.CodeZeroFrameRate)
		}
		return frameMode{fps: uint32(fps)}, nil

	case rateText != "":
		rate, err := strconv.ParseFloat(rateText, 64)
		if err != nil || math.IsNaN(rate) || math.IsInf(rate, 0) || rate <= 0 {
			if err == nil {
				err = tick.ErrInvalidFrameRate
			}
			return frameMode{}, invalidParam("rate", rateText, err).WithCode(apperrors.CodeInvalidFrameRate)
		}
		return frameMode{rate: rate}, nil
	}

	switch {
	case h.defaultRate.IsZero():
		return frameMode{}, apperrors.Wrap(tick.ErrZeroFrameRate, apperrors.ErrorTypeValidation,
			"fps or rate is required", http.StatusBadRequest).WithCode(apperrors.CodeZeroFrameRate)
	case h.defaultRate.IsInteger():
		return frameMode{fps: h.defaultRate.Num() / h.defaultRate.Den()}, nil
	default:
		return frameMode{rate: h.defaultRate.Float64()}, nil
	}
}
