// Package markers stores named tick positions (cue points) grouped by
// timeline.
package markers

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/zsiec/tick/pkg/tick"
)

// MaxNameLength bounds timeline and marker names.
const MaxNameLength = 128

var (
	// ErrMarkerNotFound is returned when a marker does not exist on its timeline.
	ErrMarkerNotFound = errors.New("marker not found")

	// ErrInvalidName is returned for empty, overlong or colon-bearing names.
	ErrInvalidName = errors.New("invalid name")
)

// Marker is a named position on a timeline.
type Marker struct {
	Timeline  string    `json:"timeline"`
	Name      string    `json:"name"`
	Position  tick.Tick `json:"position"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Store defines the interface for marker persistence.
type Store interface {
	// Put creates or replaces a marker. UpdatedAt is set by the store.
	Put(ctx context.Context, m Marker) error

	// Get returns a single marker or ErrMarkerNotFound.
	Get(ctx context.Context, timeline, name string) (*Marker, error)

	// List returns the markers of a timeline ordered by Position, then Name.
	// An unknown timeline yields an empty list.
	List(ctx context.Context, timeline string) ([]*Marker, error)

	// Delete removes a marker or returns ErrMarkerNotFound.
	Delete(ctx context.Context, timeline, name string) error

	// Close releases any resources held by the store.
	Close() error
}

// ValidateName checks a timeline or marker name. kind names the field in
// the returned error.
func ValidateName(kind, name string) error {
	switch {
	case name == "":
		return fmt.Errorf("%s name is empty: %w", kind, ErrInvalidName)
	case len(name) > MaxNameLength:
		return fmt.Errorf("%s name exceeds %d bytes: %w", kind, MaxNameLength, ErrInvalidName)
	case strings.ContainsRune(name, ':'):
		return fmt.Errorf("%s name %q contains ':': %w", kind, name, ErrInvalidName)
	}
	return nil
}

func validateKey(timeline, name string) error {
	if err := ValidateName("timeline", timeline); err != nil {
		return err
	}
	return ValidateName("marker", name)
}

func sortMarkers(ms []*Marker) {
	slices.SortFunc(ms, func(a, b *Marker) int {
		if c := a.Position.Compare(b.Position); c != 0 {
			return c
		}
		return strings.Compare(a.Name, b.Name)
	})
}
