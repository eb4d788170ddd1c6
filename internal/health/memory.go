package health

import (
	"context"
	"fmt"
	"runtime"
	"sync"
)

// MemoryChecker reports degraded health when the Go heap grows past a
// limit. A zero limit disables the check.
type MemoryChecker struct {
	limitBytes uint64

	mu   sync.Mutex
	last runtime.MemStats
}

// NewMemoryChecker creates a new memory checker.
func NewMemoryChecker(limitBytes uint64) *MemoryChecker {
	return &MemoryChecker{limitBytes: limitBytes}
}

// Name returns the name of the checker.
func (m *MemoryChecker) Name() string {
	return "memory"
}

// Check samples runtime memory statistics.
func (m *MemoryChecker) Check(ctx context.Context) error {
	var stats runtime.MemStats
	runtime.ReadMemStats(&stats)

	m.mu.Lock()
	m.last = stats
	m.mu.Unlock()

	if m.limitBytes > 0 && stats.HeapAlloc > m.limitBytes {
		return fmt.Errorf("heap %d bytes exceeds limit %d: %w", stats.HeapAlloc, m.limitBytes, ErrDegraded)
	}
	return nil
}

// Details reports the heap figures from the last check.
func (m *MemoryChecker) Details() map[string]interface{} {
	m.mu.Lock()
	defer m.mu.Unlock()
	return map[string]interface{}{
		"heap_alloc_bytes": m.last.HeapAlloc,
		"heap_sys_bytes":   m.last.HeapSys,
		"num_gc":           m.last.NumGC,
		"goroutines":       runtime.NumGoroutine(),
	}
}
