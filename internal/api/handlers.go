// Package api serves tick conversions and timeline markers as JSON over
// HTTP.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	apperrors "github.com/zsiec/tick/internal/errors"
	"github.com/zsiec/tick/internal/logger"
	"github.com/zsiec/tick/internal/markers"
	"github.com/zsiec/tick/internal/metrics"
	"github.com/zsiec/tick/pkg/tick"
)

// maxBodyBytes caps JSON request bodies.
const maxBodyBytes = 64 << 10

// Handlers serves the /api/v1 routes.
type Handlers struct {
	store       markers.Store
	errors      *apperrors.ErrorHandler
	logger      logger.Logger
	defaultRate tick.FrameRate
}

// NewHandlers creates the API handlers. defaultRate is used when a request
// does not name a frame rate. A nil log discards handler logs.
func NewHandlers(store markers.Store, errHandler *apperrors.ErrorHandler, log logger.Logger, defaultRate tick.FrameRate) *Handlers {
	if log == nil {
		log = logger.NewNullLogger()
	}
	return &Handlers{
		store:       store,
		errors:      errHandler,
		logger:      log.WithField("component", "api"),
		defaultRate: defaultRate,
	}
}

// RegisterRoutes registers all API routes under /api/v1.
func (h *Handlers) RegisterRoutes(router *mux.Router) {
	api := router.PathPrefix("/api/v1").Subrouter()

	// Literal paths first so they are not captured by {tick}.
	api.HandleFunc("/ticks/from-seconds", h.HandleFromSeconds).Methods("GET")
	api.HandleFunc("/ticks/lerp", h.HandleLerp).Methods("POST")
	api.HandleFunc("/ticks/arith", h.HandleArith).Methods("POST")

	api.HandleFunc("/ticks/{tick}", h.HandleTick).Methods("GET")
	api.HandleFunc("/ticks/{tick}/frames", h.HandleToFrames).Methods("GET")
	api.HandleFunc("/ticks/{tick}/timecode", h.HandleToTimecode).Methods("GET")
	api.HandleFunc("/frames/{frame}", h.HandleFromFrames).Methods("GET")
	api.HandleFunc("/timecode/{timecode}", h.HandleFromTimecode).Methods("GET")

	api.HandleFunc("/timelines/{timeline}/markers", h.HandleListMarkers).Methods("GET")
	api.HandleFunc("/timelines/{timeline}/markers/{name}", h.HandlePutMarker).Methods("PUT")
	api.HandleFunc("/timelines/{timeline}/markers/{name}", h.HandleGetMarker).Methods("GET")
	api.HandleFunc("/timelines/{timeline}/markers/{name}", h.HandleDeleteMarker).Methods("DELETE")

	h.logger.Info("API routes registered")
}

func writeJSON(ctx context.Context, w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.FromContext(ctx).WithError(err).Error("Failed to encode JSON response")
	}
}

// decodeJSON reads a single JSON object from the request body.
func decodeJSON(w http.ResponseWriter, r *http.Request, v interface{}) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		var pe *tick.ParseError
		if errors.As(err, &pe) {
			return err
		}
		return apperrors.NewValidationError("invalid JSON body: " + err.Error()).
			WithCode(CodeInvalidBody)
	}
	return nil
}

// converted counts a successful conversion and writes the response.
func (h *Handlers) converted(w http.ResponseWriter, r *http.Request, op string, v interface{}) {
	metrics.IncConversion(op)
	writeJSON(r.Context(), w, http.StatusOK, v)
}

// fail maps err to an AppError, counts it against op when op names a
// conversion, and writes the error envelope.
func (h *Handlers) fail(w http.ResponseWriter, r *http.Request, op string, err error) {
	appErr := classify(err)
	if op != "" {
		reason := appErr.Code
		if reason == "" {
			reason = string(appErr.Type)
		}
		metrics.IncConversionError(op, reason)
	}
	h.errors.HandleError(w, r, appErr)
}

func classify(err error) *apperrors.AppError {
	switch {
	case errors.Is(err, markers.ErrMarkerNotFound):
		return apperrors.Wrap(err, apperrors.ErrorTypeNotFound, err.Error(), http.StatusNotFound).
			WithCode(CodeMarkerNotFound)
	case errors.Is(err, markers.ErrInvalidName):
		return apperrors.Wrap(err, apperrors.ErrorTypeValidation, err.Error(), http.StatusBadRequest).
			WithCode(CodeInvalidName)
	}
	return apperrors.FromTickError(err)
}
