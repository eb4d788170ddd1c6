package errors

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zsiec/tick/pkg/tick"
)

func TestAppError(t *testing.T) {
	t.Run("New creates error correctly", func(t *testing.T) {
		err := New(ErrorTypeValidation, "Invalid input", http.StatusBadRequest)

		assert.Equal(t, ErrorTypeValidation, err.Type)
		assert.Equal(t, "Invalid input", err.Message)
		assert.Equal(t, http.StatusBadRequest, err.HTTPStatus)
		assert.Equal(t, "VALIDATION_ERROR: Invalid input", err.Error())
	})

	t.Run("Wrap wraps error correctly", func(t *testing.T) {
		originalErr := errors.New("original error")
		err := Wrap(originalErr, ErrorTypeInternal, "Something went wrong", http.StatusInternalServerError)

		assert.Equal(t, ErrorTypeInternal, err.Type)
		assert.Equal(t, originalErr, err.Unwrap())
		assert.Contains(t, err.Error(), "original error")
		assert.ErrorIs(t, err, originalErr)
	})

	t.Run("WithDetails and WithCode", func(t *testing.T) {
		details := map[string]interface{}{"input": "25/0"}
		err := NewValidationError("bad rate").WithDetails(details).WithCode(CodeZeroFrameRate)

		assert.Equal(t, details, err.Details)
		assert.Equal(t, CodeZeroFrameRate, err.Code)
	})
}

func TestErrorConstructors(t *testing.T) {
	tests := []struct {
		name       string
		err        *AppError
		wantType   ErrorType
		wantStatus int
	}{
		{name: "NewValidationError", err: NewValidationError("Invalid field"), wantType: ErrorTypeValidation, wantStatus: http.StatusBadRequest},
		{name: "NewNotFoundError", err: NewNotFoundError("marker"), wantType: ErrorTypeNotFound, wantStatus: http.StatusNotFound},
		{name: "NewInternalError", err: NewInternalError("Server error"), wantType: ErrorTypeInternal, wantStatus: http.StatusInternalServerError},
		{name: "NewTimeoutError", err: NewTimeoutError("Request timeout"), wantType: ErrorTypeTimeout, wantStatus: http.StatusGatewayTimeout},
		{name: "NewRateLimitError", err: NewRateLimitError("Too many requests"), wantType: ErrorTypeRateLimit, wantStatus: http.StatusTooManyRequests},
		{name: "NewServiceDownError", err: NewServiceDownError("Redis"), wantType: ErrorTypeServiceDown, wantStatus: http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantType, tt.err.Type)
			assert.Equal(t, tt.wantStatus, tt.err.HTTPStatus)
			assert.NotEmpty(t, tt.err.Message)
		})
	}
}

func TestGetAppError(t *testing.T) {
	appErr := NewNotFoundError("marker")

	got, ok := GetAppError(fmt.Errorf("lookup: %w", appErr))
	require.True(t, ok)
	assert.Same(t, appErr, got)
	assert.True(t, IsAppError(appErr))

	got, ok = GetAppError(errors.New("plain"))
	assert.False(t, ok)
	assert.Nil(t, got)
	assert.False(t, IsAppError(errors.New("plain")))
}

func TestFromTickError(t *testing.T) {
	parse := func(fn func() error) error { return fn() }

	tests := []struct {
		name       string
		err        error
		wantType   ErrorType
		wantStatus int
		wantCode   string
		wantInput  string
	}{
		{
			name:       "bad tick",
			err:        parse(func() error { _, err := tick.Parse("1.5"); return err }),
			wantType:   ErrorTypeValidation,
			wantStatus: http.StatusBadRequest,
			wantCode:   CodeInvalidTick,
			wantInput:  "1.5",
		},
		{
			name:       "tick out of range",
			err:        parse(func() error { _, err := tick.Parse("99999999999999999999"); return err }),
			wantType:   ErrorTypeValidation,
			wantStatus: http.StatusBadRequest,
			wantCode:   CodeOutOfRange,
			wantInput:  "99999999999999999999",
		},
		{
			name:       "bad frame rate",
			err:        parse(func() error { _, err := tick.ParseFrameRate("fast"); return err }),
			wantType:   ErrorTypeValidation,
			wantStatus: http.StatusBadRequest,
			wantCode:   CodeInvalidFrameRate,
			wantInput:  "fast",
		},
		{
			name:       "zero frame rate text",
			err:        parse(func() error { _, err := tick.ParseFrameRate("25/0"); return err }),
			wantType:   ErrorTypeValidation,
			wantStatus: http.StatusBadRequest,
			wantCode:   CodeZeroFrameRate,
			wantInput:  "25/0",
		},
		{
			name:       "bad timecode",
			err:        parse(func() error { _, err := tick.ParseTimecode("1:2"); return err }),
			wantType:   ErrorTypeValidation,
			wantStatus: http.StatusBadRequest,
			wantCode:   CodeInvalidTimecode,
			wantInput:  "1:2",
		},
		{
			name:       "zero frame rate constructor",
			err:        parse(func() error { _, err := tick.NewFrameRate(0, 1); return err }),
			wantType:   ErrorTypeValidation,
			wantStatus: http.StatusBadRequest,
			wantCode:   CodeZeroFrameRate,
		},
		{
			name:       "deadline",
			err:        fmt.Errorf("redis: %w", context.DeadlineExceeded),
			wantType:   ErrorTypeTimeout,
			wantStatus: http.StatusGatewayTimeout,
		},
		{
			name:       "unknown",
			err:        errors.New("boom"),
			wantType:   ErrorTypeInternal,
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			appErr := FromTickError(tt.err)
			require.NotNil(t, appErr)
			assert.Equal(t, tt.wantType, appErr.Type)
			assert.Equal(t, tt.wantStatus, appErr.HTTPStatus)
			assert.Equal(t, tt.wantCode, appErr.Code)
			if tt.wantInput != "" {
				assert.Equal(t, tt.wantInput, appErr.Details["input"])
			}
			assert.ErrorIs(t, appErr, tt.err)
		})
	}

	assert.Nil(t, FromTickError(nil))

	existing := NewNotFoundError("marker")
	assert.Same(t, existing, FromTickError(existing))
}
