package errors

import (
	"context"
	stderrors "errors"
	"net/http"
	"strconv"

	"github.com/zsiec/tick/pkg/tick"
)

// Codes attached to validation errors raised by tick conversions.
const (
	CodeInvalidTick      = "INVALID_TICK"
	CodeInvalidFrameRate = "INVALID_FRAME_RATE"
	CodeZeroFrameRate    = "ZERO_FRAME_RATE"
	CodeInvalidTimecode  = "INVALID_TIMECODE"
	CodeOutOfRange       = "OUT_OF_RANGE"
)

// FromTickError maps errors returned by package tick to AppErrors. Parse
// failures and zero frame rates become validation errors carrying the
// offending input; context errors become timeouts; anything else is internal.
// A nil err returns nil.
func FromTickError(err error) *AppError {
	if err == nil {
		return nil
	}
	if appErr, ok := GetAppError(err); ok {
		return appErr
	}

	var pe *tick.ParseError
	switch {
	case stderrors.As(err, &pe):
		code := CodeInvalidTick
		switch {
		case stderrors.Is(pe.Err, tick.ErrZeroFrameRate):
			code = CodeZeroFrameRate
		case stderrors.Is(pe.Err, strconv.ErrRange):
			code = CodeOutOfRange
		case pe.Func == "ParseFrameRate":
			code = CodeInvalidFrameRate
		case pe.Func == "ParseTimecode":
			code = CodeInvalidTimecode
		}
		return Wrap(err, ErrorTypeValidation, pe.Error(), http.StatusBadRequest).
			WithCode(code).
			WithDetails(map[string]interface{}{
				"input":  pe.Input,
				"reason": pe.Err.Error(),
			})

	case stderrors.Is(err, tick.ErrZeroFrameRate):
		return Wrap(err, ErrorTypeValidation, err.Error(), http.StatusBadRequest).
			WithCode(CodeZeroFrameRate)

	case stderrors.Is(err, context.DeadlineExceeded), stderrors.Is(err, context.Canceled):
		return Wrap(err, ErrorTypeTimeout, "request timed out", http.StatusGatewayTimeout)
	}

	return WrapInternalError(err, "An unexpected error occurred")
}
