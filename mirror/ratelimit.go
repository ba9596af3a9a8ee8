package mirror

import (
	"context"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// HostLimiter paces requests per origin host using token buckets. Each host
// gets its own limiter with a burst of 1, so consecutive fetches to the
// same host are separated by at least the configured interval while a host
// switch does not wait.
type HostLimiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	interval time.Duration
}

// NewHostLimiter creates a HostLimiter with the given minimum interval
// between requests to the same host.
func NewHostLimiter(interval time.Duration) *HostLimiter {
	return &HostLimiter{
		limiters: make(map[string]*rate.Limiter),
		interval: interval,
	}
}

// Wait blocks until the rate limit allows a request to host. Returns an
// error only if the context is canceled first.
func (l *HostLimiter) Wait(ctx context.Context, host string) error {
	l.mu.Lock()
	limiter, ok := l.limiters[host]
	if !ok {
		limiter = rate.NewLimiter(rate.Every(l.interval), 1)
		l.limiters[host] = limiter
	}
	l.mu.Unlock()

	return limiter.Wait(ctx)
}
