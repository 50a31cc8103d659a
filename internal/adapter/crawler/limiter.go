package crawler

import (
	"context"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// HostLimiter throttles requests per host with token buckets. Requests to
// different hosts proceed concurrently; requests to one host are spaced by
// the configured delay.
type HostLimiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	delay    time.Duration
}

// NewHostLimiter creates a limiter enforcing delay between hits on one
// host, with no bursting.
func NewHostLimiter(delay time.Duration) *HostLimiter {
	return &HostLimiter{
		limiters: make(map[string]*rate.Limiter),
		delay:    delay,
	}
}

// Wait blocks until the host's rate limit allows a request, or the context
// is canceled.
func (l *HostLimiter) Wait(ctx context.Context, host string) error {
	l.mu.Lock()
	limiter, ok := l.limiters[host]
	if !ok {
		limiter = rate.NewLimiter(rate.Every(l.delay), 1)
		l.limiters[host] = limiter
	}
	l.mu.Unlock()

	return limiter.Wait(ctx)
}
