package apihubs

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewRateLimiter_FallsBackOnInvalidConfig(t *testing.T) {
	r := NewRateLimiter(0, -1)

	assert.InDelta(t, 1.0, float64(r.limiter.Limit()), 0.001)
	assert.Equal(t, 1, r.limiter.Burst())
	assert.True(t, r.RetryAt().IsZero())
}

func TestRateLimiter_Wait_Burst(t *testing.T) {
	r := NewRateLimiter(1000, 3)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		assert.NoError(t, r.Wait(ctx))
	}
}

func TestRateLimiter_Wait_CancelledContext(t *testing.T) {
	r := NewRateLimiter(0.001, 1)
	ctx, cancel := context.WithCancel(context.Background())

	assert.NoError(t, r.Wait(ctx))

	cancel()
	assert.Error(t, r.Wait(ctx))
}

func TestRateLimiter_RecordRateLimitError(t *testing.T) {
	r := NewRateLimiter(10, 1)

	r.RecordRateLimitError(2 * time.Second)
	assert.WithinDuration(t, time.Now().Add(2*time.Second), r.RetryAt(), time.Second)

	r.RecordRateLimitError(0)
	assert.WithinDuration(t, time.Now().Add(defaultBackoff), r.RetryAt(), time.Second)
}

func TestRateLimiter_Wait_ShortBackoff(t *testing.T) {
	r := NewRateLimiter(1000, 1)
	r.RecordRateLimitError(30 * time.Millisecond)

	start := time.Now()
	assert.NoError(t, r.Wait(context.Background()))
	assert.GreaterOrEqual(t, time.Since(start), 20*time.Millisecond)
}
