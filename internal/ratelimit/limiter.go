package ratelimit

import (
	"sync"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/time/rate"

	"github.com/feral-file/ff-economy/internal/adapter"
)

const DEFAULT_MAX_PRINCIPALS = 10000

// Config holds the token bucket shared by every principal
type Config struct {
	RequestsPerSecond float64
	Burst             int
	// MaxPrincipals bounds the number of buckets kept; the least recently seen is evicted first
	MaxPrincipals int
}

// Limiter limits requests per principal
//
//go:generate mockgen -source=limiter.go -destination=../mocks/ratelimit_limiter.go -package=mocks -mock_names=Limiter=MockRateLimiter
type Limiter interface {
	// Allow consumes a token of the principal. When none is available it returns false
	// and the delay until the next token.
	Allow(principal string) (bool, time.Duration)
}

type limiter struct {
	config Config
	clock  adapter.Clock

	mu      sync.Mutex
	buckets *lru.Cache[string, *rate.Limiter]
}

// NewLimiter creates a per principal limiter
func NewLimiter(cfg Config, clock adapter.Clock) Limiter {
	if cfg.MaxPrincipals <= 0 {
		cfg.MaxPrincipals = DEFAULT_MAX_PRINCIPALS
	}
	if cfg.Burst <= 0 {
		cfg.Burst = 1
	}
	// New only fails on a non-positive size
	buckets, _ := lru.New[string, *rate.Limiter](cfg.MaxPrincipals)

	return &limiter{
		config:  cfg,
		clock:   clock,
		buckets: buckets,
	}
}

func (l *limiter) bucket(principal string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	if b, ok := l.buckets.Get(principal); ok {
		return b
	}
	b := rate.NewLimiter(rate.Limit(l.config.RequestsPerSecond), l.config.Burst)
	l.buckets.Add(principal, b)
	return b
}

func (l *limiter) Allow(principal string) (bool, time.Duration) {
	now := l.clock.Now()
	reservation := l.bucket(principal).ReserveN(now, 1)
	if !reservation.OK() {
		return false, 0
	}

	delay := reservation.DelayFrom(now)
	if delay > 0 {
		reservation.CancelAt(now)
		return false, delay
	}
	return true, 0
}
