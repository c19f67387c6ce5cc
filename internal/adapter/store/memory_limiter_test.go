package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryLimiter(t *testing.T) {
	ctx := context.Background()

	t.Run("blocks after the limit", func(t *testing.T) {
		l := NewMemoryLimiter(2, time.Minute)
		for i := 0; i < 2; i++ {
			ok, err := l.Allow(ctx, "alice")
			require.NoError(t, err)
			assert.True(t, ok)
		}
		ok, err := l.Allow(ctx, "alice")
		require.NoError(t, err)
		assert.False(t, ok)

		ok, _ = l.Allow(ctx, "bob")
		assert.True(t, ok, "quota is per client")
	})

	t.Run("window expiry resets the count", func(t *testing.T) {
		l := NewMemoryLimiter(1, 20*time.Millisecond)
		ok, _ := l.Allow(ctx, "alice")
		assert.True(t, ok)
		ok, _ = l.Allow(ctx, "alice")
		assert.False(t, ok)

		time.Sleep(40 * time.Millisecond)
		ok, _ = l.Allow(ctx, "alice")
		assert.True(t, ok)
	})

	t.Run("zero limit disables", func(t *testing.T) {
		l := NewMemoryLimiter(0, time.Minute)
		for i := 0; i < 10; i++ {
			ok, _ := l.Allow(ctx, "alice")
			assert.True(t, ok)
		}
	})
}
