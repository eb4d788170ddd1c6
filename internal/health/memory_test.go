package health

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryChecker(t *testing.T) {
	t.Run("no limit", func(t *testing.T) {
		checker := NewMemoryChecker(0)
		assert.Equal(t, "memory", checker.Name())
		require.NoError(t, checker.Check(context.Background()))

		details := checker.Details()
		assert.NotZero(t, details["heap_alloc_bytes"])
		assert.NotZero(t, details["goroutines"])
	})

	t.Run("over limit degrades", func(t *testing.T) {
		checker := NewMemoryChecker(1)
		err := checker.Check(context.Background())
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrDegraded)
	})
}
