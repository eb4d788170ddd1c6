package api

import (
	"fmt"
	"io"
	"net/http"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/zsiec/tick/internal/errors"
	"github.com/zsiec/tick/internal/markers"
	"github.com/zsiec/tick/pkg/tick"
)

func TestMarkerLifecycle(t *testing.T) {
	router := newTestRouter(t, markers.NewMemoryStore(), tick.Film)
	base := "/api/v1/timelines/reel1/markers"

	rr := do(t, router, "PUT", base+"/intro", fmt.Sprintf(`{"position":%d}`, (90*tick.Second).Raw()))
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	put := decode[MarkerDTO](t, rr)
	assert.Equal(t, "reel1", put.Timeline)
	assert.Equal(t, "intro", put.Name)
	assert.Equal(t, 90*tick.Second, put.Position)
	assert.Equal(t, 90.0, put.Seconds)
	assert.Equal(t, "00:01:30:00", put.Timecode)
	assert.False(t, put.UpdatedAt.IsZero())

	rr = do(t, router, "GET", base+"/intro?rate=25", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	got := decode[MarkerDTO](t, rr)
	assert.Equal(t, tick.PAL, got.Rate)
	assert.Equal(t, "00:01:30:00", got.Timecode)

	rr = do(t, router, "PUT", base+"/cold-open", `{"position":0}`)
	require.Equal(t, http.StatusOK, rr.Code)

	rr = do(t, router, "GET", base, nil)
	require.Equal(t, http.StatusOK, rr.Code)
	list := decode[MarkerListResponse](t, rr)
	assert.Equal(t, 2, list.Count)
	require.Len(t, list.Markers, 2)
	assert.Equal(t, "cold-open", list.Markers[0].Name)
	assert.Equal(t, "intro", list.Markers[1].Name)

	rr = do(t, router, "DELETE", base+"/intro", nil)
	assert.Equal(t, http.StatusNoContent, rr.Code)

	assertAPIError(t, do(t, router, "GET", base+"/intro", nil), http.StatusNotFound, CodeMarkerNotFound)
	assertAPIError(t, do(t, router, "DELETE", base+"/intro", nil), http.StatusNotFound, CodeMarkerNotFound)
}

func TestMarkerEmptyTimeline(t *testing.T) {
	router := newTestRouter(t, markers.NewMemoryStore(), tick.Film)

	rr := do(t, router, "GET", "/api/v1/timelines/empty/markers", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	list := decode[MarkerListResponse](t, rr)
	assert.Equal(t, 0, list.Count)
	assert.NotNil(t, list.Markers)
}

func TestMarkerValidation(t *testing.T) {
	router := newTestRouter(t, markers.NewMemoryStore(), tick.Film)

	tests := []struct {
		name   string
		method string
		path   string
		body   interface{}
		status int
		code   string
	}{
		{"colon in name", "PUT", "/api/v1/timelines/reel/markers/a:b", `{"position":1}`, http.StatusBadRequest, CodeInvalidName},
		{"missing position", "PUT", "/api/v1/timelines/reel/markers/m", `{}`, http.StatusBadRequest, CodeInvalidBody},
		{"string position", "PUT", "/api/v1/timelines/reel/markers/m", `{"position":"1"}`, http.StatusBadRequest, apperrors.CodeInvalidTick},
		{"bad rate", "GET", "/api/v1/timelines/reel/markers?rate=0/1", nil, http.StatusBadRequest, apperrors.CodeZeroFrameRate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertAPIError(t, do(t, router, tt.method, tt.path, tt.body), tt.status, tt.code)
		})
	}
}

func TestMarkersWithRedisStore(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	log := logrus.New()
	log.SetOutput(io.Discard)
	store := markers.NewRedisStore(client, log, "api:markers", 0)
	t.Cleanup(func() { store.Close() })

	router := newTestRouter(t, store, tick.NTSC)

	rr := do(t, router, "PUT", "/api/v1/timelines/ep1/markers/act1", fmt.Sprintf(`{"position":%d}`, tick.Minute.Raw()))
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	assert.Equal(t, tick.NTSC, decode[MarkerDTO](t, rr).Rate)
	assert.Equal(t, fmt.Sprint(tick.Minute.Raw()), mr.HGet("api:markers:ep1", "act1"))

	mr.Close()
	resp := assertAPIError(t, do(t, router, "GET", "/api/v1/timelines/ep1/markers/act1", nil), http.StatusServiceUnavailable, "")
	assert.Equal(t, apperrors.ErrorTypeServiceDown, resp.Error.Type)
}
