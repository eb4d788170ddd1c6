package health

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/zsiec/tick/pkg/tick"
	"github.com/zsiec/tick/pkg/version"
)

// healthTimeout bounds a full /health run.
const healthTimeout = 10 * time.Second

// Response represents the health check response.
type Response struct {
	Status         Status            `json:"status"`
	Timestamp      time.Time         `json:"timestamp"`
	Version        string            `json:"version"`
	Uptime         string            `json:"uptime"`
	TicksPerSecond int64             `json:"ticks_per_second"`
	Checks         map[string]*Check `json:"checks,omitempty"`
}

type statusResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

// Handler serves the health, readiness and liveness endpoints.
type Handler struct {
	manager   *Manager
	startTime time.Time
}

// NewHandler creates a new health check handler.
func NewHandler(manager *Manager) *Handler {
	return &Handler{
		manager:   manager,
		startTime: time.Now(),
	}
}

// HandleHealth runs every checker and reports the aggregated result.
// Degraded health still answers 200.
func (h *Handler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), healthTimeout)
	defer cancel()

	checks := h.manager.RunChecks(ctx)
	overall := h.manager.GetOverallStatus()

	h.writeJSON(w, statusCode(overall), Response{
		Status:         overall,
		Timestamp:      time.Now(),
		Version:        version.Version,
		Uptime:         formatUptime(time.Since(h.startTime)),
		TicksPerSecond: tick.TicksPerSecond,
		Checks:         checks,
	})
}

// HandleReady reports the status of the most recent check run without
// running the checkers again.
func (h *Handler) HandleReady(w http.ResponseWriter, r *http.Request) {
	overall := h.manager.GetOverallStatus()
	h.writeJSON(w, statusCode(overall), statusResponse{
		Status:    string(overall),
		Timestamp: time.Now(),
	})
}

// HandleLive answers as long as the process can serve HTTP.
func (h *Handler) HandleLive(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, statusResponse{
		Status:    "alive",
		Timestamp: time.Now(),
	})
}

func statusCode(s Status) int {
	if s == StatusDown {
		return http.StatusServiceUnavailable
	}
	return http.StatusOK
}

// formatUptime renders d as "1 day 2 hours 5 seconds", omitting zero
// units. Durations under a second render as "0 seconds".
func formatUptime(d time.Duration) string {
	units := []struct {
		value int
		name  string
	}{
		{int(d.Hours() / 24), "day"},
		{int(d.Hours()) % 24, "hour"},
		{int(d.Minutes()) % 60, "minute"},
		{int(d.Seconds()) % 60, "second"},
	}

	parts := make([]string, 0, len(units))
	for _, u := range units {
		if u.value > 0 {
			parts = append(parts, formatUnit(u.value, u.name))
		}
	}
	if len(parts) == 0 {
		return formatUnit(0, "second")
	}
	return strings.Join(parts, " ")
}

func formatUnit(value int, unit string) string {
	if value == 1 {
		return "1 " + unit
	}
	return strconv.Itoa(value) + " " + unit + "s"
}

func (h *Handler) writeJSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.manager.logger.WithError(err).Error("Failed to encode health response")
	}
}
