package logger

import (
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

// Log categories sampled by the HTTP error handler. Each category has its
// own token bucket.
const (
	CategoryValidation = "validation"
	CategoryDependency = "dependency"
)

// SampledLogger rate limits log lines per category with a token bucket.
// Lines dropped while a category is throttled are counted and reported as
// the "suppressed" field on the next line that gets through.
type SampledLogger struct {
	base  Logger
	every time.Duration
	burst int

	mu         sync.Mutex
	limiters   map[string]*rate.Limiter
	suppressed map[string]int64
	dropped    map[string]int64
}

// NewSampledLogger allows burst lines per category, refilling one token
// every interval.
func NewSampledLogger(base Logger, every time.Duration, burst int) *SampledLogger {
	return &SampledLogger{
		base:       base,
		every:      every,
		burst:      burst,
		limiters:   make(map[string]*rate.Limiter),
		suppressed: make(map[string]int64),
		dropped:    make(map[string]int64),
	}
}

// Log writes msg at level unless category is currently throttled.
// It reports whether the line was written.
func (s *SampledLogger) Log(level logrus.Level, category, msg string, fields map[string]interface{}) bool {
	s.mu.Lock()
	limiter, ok := s.limiters[category]
	if !ok {
		limiter = rate.NewLimiter(rate.Every(s.every), s.burst)
		s.limiters[category] = limiter
	}
	if !limiter.Allow() {
		s.suppressed[category]++
		s.dropped[category]++
		s.mu.Unlock()
		return false
	}
	suppressed := s.suppressed[category]
	s.suppressed[category] = 0
	s.mu.Unlock()

	out := make(map[string]interface{}, len(fields)+2)
	for k, v := range fields {
		out[k] = v
	}
	out["category"] = category
	if suppressed > 0 {
		out["suppressed"] = suppressed
	}
	s.base.WithFields(out).Log(level, msg)
	return true
}

// Dropped returns the total number of lines dropped per category.
func (s *SampledLogger) Dropped() map[string]int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make(map[string]int64, len(s.dropped))
	for k, v := range s.dropped {
		out[k] = v
	}
	return out
}
