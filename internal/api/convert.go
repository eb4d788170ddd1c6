package api

import (
	"fmt"
	"net/http"

	"github.com/gorilla/mux"

	apperrors "github.com/zsiec/tick/internal/errors"
	"github.com/zsiec/tick/pkg/tick"
)

// Conversion operation labels.
const (
	opFromSeconds  = "from_seconds"
	opTickInfo     = "tick_info"
	opToFrames     = "to_frames"
	opFromFrames   = "from_frames"
	opToTimecode   = "to_timecode"
	opFromTimecode = "from_timecode"
	opLerp         = "lerp"
	opArith        = "arith"
)

// HandleFromSeconds - GET /api/v1/ticks/from-seconds?seconds=
func (h *Handlers) HandleFromSeconds(w http.ResponseWriter, r *http.Request) {
	secs, err := secondsParam(r)
	if err != nil {
		h.fail(w, r, opFromSeconds, err)
		return
	}
	t := tick.FromSeconds(secs)
	h.converted(w, r, opFromSeconds, SecondsResponse{Tick: t, Seconds: t.Seconds()})
}

// HandleTick - GET /api/v1/ticks/{tick}
func (h *Handlers) HandleTick(w http.ResponseWriter, r *http.Request) {
	t, err := tickVar(r)
	if err != nil {
		h.fail(w, r, opTickInfo, err)
		return
	}
	h.converted(w, r, opTickInfo, TickInfoResponse{
		Tick:     t,
		Seconds:  t.Seconds(),
		Duration: t.Duration().String(),
	})
}

// HandleToFrames - GET /api/v1/ticks/{tick}/frames?fps=|rate=
func (h *Handlers) HandleToFrames(w http.ResponseWriter, r *http.Request) {
	t, err := tickVar(r)
	if err != nil {
		h.fail(w, r, opToFrames, err)
		return
	}
	mode, err := h.frameMode(r)
	if err != nil {
		h.fail(w, r, opToFrames, err)
		return
	}

	resp := FramesResponse{Tick: t, FPS: mode.fps, Rate: mode.rate}
	if mode.integer() {
		resp.Frames = t.ToFrames(mode.fps)
	} else {
		resp.Frames = t.ToFramesFloat(mode.rate)
	}
	h.converted(w, r, opToFrames, resp)
}

// HandleFromFrames - GET /api/v1/frames/{frame}?fps=|rate=
func (h *Handlers) HandleFromFrames(w http.ResponseWriter, r *http.Request) {
	frame, err := frameVar(r)
	if err != nil {
		h.fail(w, r, opFromFrames, err)
		return
	}
	mode, err := h.frameMode(r)
	if err != nil {
		h.fail(w, r, opFromFrames, err)
		return
	}

	var t tick.Tick
	if mode.integer() {
		t = tick.FromFrames(frame, mode.fps)
	} else {
		t = tick.FromFramesFloat(frame, mode.rate)
	}
	h.converted(w, r, opFromFrames, TickResponse{Tick: t})
}

// HandleToTimecode - GET /api/v1/ticks/{tick}/timecode?rate=
func (h *Handlers) HandleToTimecode(w http.ResponseWriter, r *http.Request) {
	t, err := tickVar(r)
	if err != nil {
		h.fail(w, r, opToTimecode, err)
		return
	}
	rate, err := h.frameRate(r)
	if err != nil {
		h.fail(w, r, opToTimecode, err)
		return
	}

	tc := t.ToTimecode(rate)
	h.converted(w, r, opToTimecode, TimecodeResponse{
		Tick:       t,
		Rate:       rate,
		Timecode:   tc.String(),
		Components: tc,
	})
}

// HandleFromTimecode - GET /api/v1/timecode/{timecode}?rate=
func (h *Handlers) HandleFromTimecode(w http.ResponseWriter, r *http.Request) {
	tc, err := tick.ParseTimecode(mux.Vars(r)["timecode"])
	if err != nil {
		h.fail(w, r, opFromTimecode, err)
		return
	}
	rate, err := h.frameRate(r)
	if err != nil {
		h.fail(w, r, opFromTimecode, err)
		return
	}
	h.converted(w, r, opFromTimecode, TickResponse{Tick: tick.FromTimecode(tc, rate)})
}

// HandleLerp - POST /api/v1/ticks/lerp
func (h *Handlers) HandleLerp(w http.ResponseWriter, r *http.Request) {
	var req LerpRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.fail(w, r, opLerp, err)
		return
	}
	h.converted(w, r, opLerp, TickResponse{Tick: req.A.Lerp(req.B, req.T)})
}

// HandleArith - POST /api/v1/ticks/arith
//
// Binary ops (add, sub, mul, div, min, max) take b; scale ops (mul_float,
// div_float) take scalar; neg and abs take neither.
func (h *Handlers) HandleArith(w http.ResponseWriter, r *http.Request) {
	var req ArithRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.fail(w, r, opArith, err)
		return
	}

	t, err := applyArith(req)
	if err != nil {
		h.fail(w, r, opArith, err)
		return
	}
	h.converted(w, r, opArith, TickResponse{Tick: t})
}

func applyArith(req ArithRequest) (tick.Tick, error) {
	needB := func() (tick.Tick, error) {
		if req.B == nil {
			return 0, apperrors.NewValidationError("op " + req.Op + " requires b").WithCode(CodeInvalidOperation)
		}
		return *req.B, nil
	}
	needScalar := func() (float64, error) {
		if req.Scalar == nil {
			return 0, apperrors.NewValidationError("op " + req.Op + " requires scalar").WithCode(CodeInvalidOperation)
		}
		return *req.Scalar, nil
	}
	divByZero := apperrors.NewValidationError("division by zero").WithCode(CodeDivisionByZero)

	switch req.Op {
	case "add", "sub", "mul", "div", "min", "max":
		b, err := needB()
		if err != nil {
			return 0, err
		}
		switch req.Op {
		case "add":
			return req.A.Add(b), nil
		case "sub":
			return req.A.Sub(b), nil
		case "mul":
			return req.A.Mul(b), nil
		case "div":
			if b == 0 {
				return 0, divByZero
			}
			return req.A.Div(b), nil
		case "min":
			return req.A.Min(b), nil
		default:
			return req.A.Max(b), nil
		}

	case "mul_float", "div_float":
		f, err := needScalar()
		if err != nil {
			return 0, err
		}
		if req.Op == "mul_float" {
			return tick.MulFloat(req.A, f), nil
		}
		if f == 0 {
			return 0, divByZero
		}
		return tick.DivFloat(req.A, f), nil

	case "neg":
		return req.A.Neg(), nil
	case "abs":
		return req.A.Abs(), nil
	}

	return 0, apperrors.NewValidationError(fmt.Sprintf("unknown op %q", req.Op)).
		WithCode(CodeInvalidOperation).
		WithDetails(map[string]interface{}{
			"ops": []string{"add", "sub", "mul", "div", "min", "max", "mul_float", "div_float", "neg", "abs"},
		})
}
