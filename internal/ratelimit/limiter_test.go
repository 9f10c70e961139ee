package ratelimit_test

import (
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/feral-file/ff-economy/internal/mocks"
	"github.com/feral-file/ff-economy/internal/ratelimit"
)

func setupLimiter(t *testing.T, cfg ratelimit.Config, now *time.Time) ratelimit.Limiter {
	ctrl := gomock.NewController(t)
	clock := mocks.NewMockClock(ctrl)
	clock.EXPECT().Now().DoAndReturn(func() time.Time { return *now }).AnyTimes()
	return ratelimit.NewLimiter(cfg, clock)
}

func TestLimiter_Burst(t *testing.T) {
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	l := setupLimiter(t, ratelimit.Config{RequestsPerSecond: 1, Burst: 2}, &now)

	ok, _ := l.Allow("0xabc")
	assert.True(t, ok)
	ok, _ = l.Allow("0xabc")
	assert.True(t, ok)

	ok, retryAfter := l.Allow("0xabc")
	assert.False(t, ok)
	assert.Equal(t, time.Second, retryAfter)

	// a rejected request does not consume the next token
	now = now.Add(time.Second)
	ok, _ = l.Allow("0xabc")
	assert.True(t, ok)
}

func TestLimiter_PerPrincipal(t *testing.T) {
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	l := setupLimiter(t, ratelimit.Config{RequestsPerSecond: 1, Burst: 1}, &now)

	ok, _ := l.Allow("0xabc")
	assert.True(t, ok)
	ok, _ = l.Allow("0xabc")
	assert.False(t, ok)

	ok, _ = l.Allow("0xdef")
	assert.True(t, ok)
}

func TestLimiter_EvictedPrincipalStartsFull(t *testing.T) {
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	l := setupLimiter(t, ratelimit.Config{RequestsPerSecond: 1, Burst: 1, MaxPrincipals: 1}, &now)

	ok, _ := l.Allow("0xabc")
	assert.True(t, ok)
	ok, _ = l.Allow("0xdef")
	assert.True(t, ok)

	ok, _ = l.Allow("0xabc")
	assert.True(t, ok)
}

func TestLimiter_ZeroRate(t *testing.T) {
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	l := setupLimiter(t, ratelimit.Config{RequestsPerSecond: 0, Burst: 1}, &now)

	ok, _ := l.Allow("0xabc")
	assert.True(t, ok)
	ok, retryAfter := l.Allow("0xabc")
	assert.False(t, ok)
	assert.Zero(t, retryAfter)
}
