package api

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	apperrors "github.com/zsiec/tick/internal/errors"
	"github.com/zsiec/tick/internal/markers"
)

// storeErr passes through not-found and validation errors from the store
// and reports anything else as an unavailable dependency.
func storeErr(err error) error {
	var appErr *apperrors.AppError
	switch {
	case errors.Is(err, markers.ErrMarkerNotFound), errors.Is(err, markers.ErrInvalidName), errors.As(err, &appErr):
		return err
	}
	return apperrors.Wrap(err, apperrors.ErrorTypeServiceDown,
		"marker store is currently unavailable", http.StatusServiceUnavailable)
}

// HandleListMarkers - GET /api/v1/timelines/{timeline}/markers?rate=
func (h *Handlers) HandleListMarkers(w http.ResponseWriter, r *http.Request) {
	timeline := mux.Vars(r)["timeline"]

	rate, err := h.frameRate(r)
	if err != nil {
		h.fail(w, r, "", err)
		return
	}

	list, err := h.store.List(r.Context(), timeline)
	if err != nil {
		h.fail(w, r, "", storeErr(err))
		return
	}

	resp := MarkerListResponse{
		Timeline: timeline,
		Markers:  make([]MarkerDTO, 0, len(list)),
		Count:    len(list),
	}
	for _, m := range list {
		resp.Markers = append(resp.Markers, toMarkerDTO(m, rate))
	}
	writeJSON(r.Context(), w, http.StatusOK, resp)
}

// HandleGetMarker - GET /api/v1/timelines/{timeline}/markers/{name}?rate=
func (h *Handlers) HandleGetMarker(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	rate, err := h.frameRate(r)
	if err != nil {
		h.fail(w, r, "", err)
		return
	}

	m, err := h.store.Get(r.Context(), vars["timeline"], vars["name"])
	if err != nil {
		h.fail(w, r, "", storeErr(err))
		return
	}
	writeJSON(r.Context(), w, http.StatusOK, toMarkerDTO(m, rate))
}

// HandlePutMarker - PUT /api/v1/timelines/{timeline}/markers/{name}
func (h *Handlers) HandlePutMarker(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	rate, err := h.frameRate(r)
	if err != nil {
		h.fail(w, r, "", err)
		return
	}

	var req PutMarkerRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.fail(w, r, "", err)
		return
	}
	if req.Position == nil {
		h.fail(w, r, "", apperrors.NewValidationError("position is required").WithCode(CodeInvalidBody))
		return
	}

	m := markers.Marker{Timeline: vars["timeline"], Name: vars["name"], Position: *req.Position}
	if err := h.store.Put(r.Context(), m); err != nil {
		h.fail(w, r, "", storeErr(err))
		return
	}

	stored, err := h.store.Get(r.Context(), m.Timeline, m.Name)
	if err != nil {
		h.fail(w, r, "", storeErr(err))
		return
	}

	h.logger.WithFields(map[string]interface{}{
		"timeline": m.Timeline,
		"marker":   m.Name,
		"position": m.Position.Raw(),
	}).Debug("Marker stored")

	writeJSON(r.Context(), w, http.StatusOK, toMarkerDTO(stored, rate))
}

// HandleDeleteMarker - DELETE /api/v1/timelines/{timeline}/markers/{name}
func (h *Handlers) HandleDeleteMarker(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	if err := h.store.Delete(r.Context(), vars["timeline"], vars["name"]); err != nil {
		h.fail(w, r, "", storeErr(err))
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
