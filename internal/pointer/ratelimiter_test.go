package pointer

import (
	"errors"
	"testing"
	"time"

	config "github.com/inference-gateway/deskcast/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRateLimiter(t *testing.T) {
	clock := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	rl := NewRateLimiter(config.RateLimitConfig{Enabled: true, MaxActions: 2, WindowSeconds: 10})
	rl.now = func() time.Time { return clock }

	require.NoError(t, rl.CheckAndRecord(EventClick))
	require.NoError(t, rl.CheckAndRecord(EventDown))
	assert.Equal(t, 2, rl.CurrentCount())

	err := rl.CheckAndRecord(EventUp)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrRateLimited))
	assert.Equal(t, 2, rl.CurrentCount())

	clock = clock.Add(11 * time.Second)
	assert.Equal(t, 0, rl.CurrentCount())
	assert.NoError(t, rl.CheckAndRecord(EventClick))

	rl.Reset()
	assert.Equal(t, 0, rl.CurrentCount())
}

func TestRateLimiter_Disabled(t *testing.T) {
	rl := NewRateLimiter(config.RateLimitConfig{Enabled: false, MaxActions: 1, WindowSeconds: 60})

	for i := 0; i < 5; i++ {
		assert.NoError(t, rl.CheckAndRecord(EventClick))
	}
	assert.Equal(t, 0, rl.CurrentCount())
}
