package errors

import (
	"encoding/json"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/zsiec/tick/internal/logger"
)

// ErrorResponse is the JSON envelope for every error reply.
type ErrorResponse struct {
	Error   ErrorDetails `json:"error"`
	TraceID string       `json:"trace_id,omitempty"`
}

// ErrorDetails contains the error details.
type ErrorDetails struct {
	Type    ErrorType              `json:"type"`
	Message string                 `json:"message"`
	Code    string                 `json:"code,omitempty"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// ErrorHandler handles error responses.
type ErrorHandler struct {
	logger  *logrus.Logger
	sampler *logger.SampledLogger
}

// NewErrorHandler creates a new error handler.
func NewErrorHandler(logger *logrus.Logger) *ErrorHandler {
	return &ErrorHandler{
		logger: logger,
	}
}

// WithSampler routes client error and unavailable-dependency logs through
// s so a burst of failing requests cannot flood the log.
func (h *ErrorHandler) WithSampler(s *logger.SampledLogger) *ErrorHandler {
	h.sampler = s
	return h
}

// HandleError writes err as a JSON error envelope. Errors from package tick
// are mapped to validation errors; unknown errors become 500s without
// leaking their text.
func (h *ErrorHandler) HandleError(w http.ResponseWriter, r *http.Request, err error) {
	traceID := requestTraceID(r)
	appErr := FromTickError(err)

	fields := logrus.Fields{
		"error_type": appErr.Type,
		"error_code": appErr.Code,
		"trace_id":   traceID,
		"method":     r.Method,
		"path":       r.URL.Path,
		"remote_ip":  logger.RemoteIP(r),
	}
	logEntry := h.logger.WithFields(fields)

	switch appErr.HTTPStatus {
	case http.StatusServiceUnavailable:
		if h.sampler != nil {
			h.sampler.Log(logrus.ErrorLevel, logger.CategoryDependency, appErr.Error(), fields)
		} else {
			logEntry.Error(appErr.Error())
		}
	case http.StatusInternalServerError:
		logEntry.Error(appErr.Error())
	case http.StatusBadRequest, http.StatusNotFound, http.StatusTooManyRequests:
		if h.sampler != nil {
			h.sampler.Log(logrus.WarnLevel, logger.CategoryValidation, appErr.Error(), fields)
		} else {
			logEntry.Warn(appErr.Error())
		}
	default:
		logEntry.Info(appErr.Error())
	}

	response := ErrorResponse{
		Error: ErrorDetails{
			Type:    appErr.Type,
			Message: appErr.Message,
			Code:    appErr.Code,
			Details: appErr.Details,
		},
		TraceID: traceID,
	}

	if traceID != "" {
		w.Header().Set("X-Request-ID", traceID)
	}
	h.writeJSON(w, appErr.HTTPStatus, response)
}

// HandleNotFound handles 404 errors.
func (h *ErrorHandler) HandleNotFound(w http.ResponseWriter, r *http.Request) {
	err := NewNotFoundError("endpoint")
	h.HandleError(w, r, err)
}

// HandleMethodNotAllowed handles 405 errors.
func (h *ErrorHandler) HandleMethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	err := New(ErrorTypeValidation, "Method not allowed", http.StatusMethodNotAllowed)
	h.HandleError(w, r, err)
}

// HandlePanic handles panics in HTTP handlers.
func (h *ErrorHandler) HandlePanic(w http.ResponseWriter, r *http.Request, recovered interface{}) {
	h.logger.WithFields(logrus.Fields{
		"panic":     recovered,
		"method":    r.Method,
		"path":      r.URL.Path,
		"remote_ip": logger.RemoteIP(r),
		"trace_id":  requestTraceID(r),
	}).Error("Panic recovered in HTTP handler")

	err := NewInternalError("An unexpected error occurred")
	h.HandleError(w, r, err)
}

func requestTraceID(r *http.Request) string {
	if id := logger.GetRequestID(r.Context()); id != "" {
		return id
	}
	return r.Header.Get("X-Request-ID")
}

// writeJSON writes a JSON response.
func (h *ErrorHandler) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.WithError(err).Error("Failed to encode error response")
	}
}

// Middleware returns an error handling middleware.
func (h *ErrorHandler) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if recovered := recover(); recovered != nil {
				h.HandlePanic(w, r, recovered)
			}
		}()

		next.ServeHTTP(w, r)
	})
}
