package markers

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/zsiec/tick/internal/metrics"
)

const backendMemory = "memory"

// MemoryStore keeps markers in process memory.
type MemoryStore struct {
	mu        sync.RWMutex
	timelines map[string]map[string]Marker
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{timelines: make(map[string]map[string]Marker)}
}

// Put creates or replaces a marker.
func (s *MemoryStore) Put(ctx context.Context, m Marker) (err error) {
	defer observe(backendMemory, "put", time.Now(), &err)

	if err := validateKey(m.Timeline, m.Name); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	m.UpdatedAt = time.Now().UTC()

	s.mu.Lock()
	defer s.mu.Unlock()
	tl, ok := s.timelines[m.Timeline]
	if !ok {
		tl = make(map[string]Marker)
		s.timelines[m.Timeline] = tl
	}
	tl[m.Name] = m
	return nil
}

// Get returns a copy of a stored marker.
func (s *MemoryStore) Get(ctx context.Context, timeline, name string) (_ *Marker, err error) {
	defer observe(backendMemory, "get", time.Now(), &err)

	if err := validateKey(timeline, name); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	m, ok := s.timelines[timeline][name]
	if !ok {
		return nil, fmt.Errorf("%s/%s: %w", timeline, name, ErrMarkerNotFound)
	}
	return &m, nil
}

// List returns copies of every marker on a timeline.
func (s *MemoryStore) List(ctx context.Context, timeline string) (_ []*Marker, err error) {
	defer observe(backendMemory, "list", time.Now(), &err)

	if err := ValidateName("timeline", timeline); err != nil {
		return nil, err
	}

	s.mu.RLock()
	tl := s.timelines[timeline]
	out := make([]*Marker, 0, len(tl))
	for _, m := range tl {
		m := m
		out = append(out, &m)
	}
	s.mu.RUnlock()

	sortMarkers(out)
	return out, nil
}

// Delete removes a marker. Empty timelines are dropped.
func (s *MemoryStore) Delete(ctx context.Context, timeline, name string) (err error) {
	defer observe(backendMemory, "delete", time.Now(), &err)

	if err := validateKey(timeline, name); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	tl, ok := s.timelines[timeline]
	if !ok {
		return fmt.Errorf("%s/%s: %w", timeline, name, ErrMarkerNotFound)
	}
	if _, ok := tl[name]; !ok {
		return fmt.Errorf("%s/%s: %w", timeline, name, ErrMarkerNotFound)
	}
	delete(tl, name)
	if len(tl) == 0 {
		delete(s.timelines, timeline)
	}
	return nil
}

// Close drops all markers.
func (s *MemoryStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.timelines = make(map[string]map[string]Marker)
	return nil
}

// observe records a store call. Missing markers are an expected outcome
// and count as successful operations.
func observe(backend, op string, start time.Time, errp *error) {
	err := *errp
	if errors.Is(err, ErrMarkerNotFound) {
		err = nil
	}
	metrics.ObserveMarkerOperation(backend, op, err, time.Since(start))
}
