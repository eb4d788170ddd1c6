package api

import (
	"time"

	"github.com/zsiec/tick/internal/markers"
	"github.com/zsiec/tick/pkg/tick"
)

// API response DTOs
type SecondsResponse struct {
	Tick    tick.Tick `json:"tick"`
	Seconds float64   `json:"seconds"`
}

type TickInfoResponse struct {
	Tick     tick.Tick `json:"tick"`
	Seconds  float64   `json:"seconds"`
	Duration string    `json:"duration"`
}

type FramesResponse struct {
	Tick   tick.Tick `json:"tick"`
	Frames int64     `json:"frames"`
	FPS    uint32    `json:"fps,omitempty"`
	Rate   float64   `json:"rate,omitempty"`
}

type TickResponse struct {
	Tick tick.Tick `json:"tick"`
}

type TimecodeResponse struct {
	Tick       tick.Tick      `json:"tick"`
	Rate       tick.FrameRate `json:"rate"`
	Timecode   string         `json:"timecode"`
	Components tick.Timecode  `json:"components"`
}

// LerpRequest blends A toward B by T, clamped to [0, 1].
type LerpRequest struct {
	A tick.Tick `json:"a"`
	B tick.Tick `json:"b"`
	T float64   `json:"t"`
}

// ArithRequest applies Op to A and either B or Scalar.
type ArithRequest struct {
	Op     string     `json:"op"`
	A      tick.Tick  `json:"a"`
	B      *tick.Tick `json:"b,omitempty"`
	Scalar *float64   `json:"scalar,omitempty"`
}

// PutMarkerRequest is the body of a marker PUT.
type PutMarkerRequest struct {
	Position *tick.Tick `json:"position"`
}

type MarkerDTO struct {
	Timeline  string         `json:"timeline"`
	Name      string         `json:"name"`
	Position  tick.Tick      `json:"position"`
	Seconds   float64        `json:"seconds"`
	Rate      tick.FrameRate `json:"rate"`
	Timecode  string         `json:"timecode"`
	UpdatedAt time.Time      `json:"updated_at"`
}

type MarkerListResponse struct {
	Timeline string      `json:"timeline"`
	Markers  []MarkerDTO `json:"markers"`
	Count    int         `json:"count"`
}

func toMarkerDTO(m *markers.Marker, rate tick.FrameRate) MarkerDTO {
	return MarkerDTO{
		Timeline:  m.Timeline,
		Name:      m.Name,
		Position:  m.Position,
		Seconds:   m.Position.Seconds(),
		Rate:      rate,
		Timecode:  m.Position.ToTimecode(rate).String(),
		UpdatedAt: m.UpdatedAt,
	}
}
