package rate_limiter

import (
	"context"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// VisitorLimiter hands out one token bucket per client key.
type VisitorLimiter struct {
	mu       sync.Mutex
	visitors map[string]*clientLimiter
	limit    rate.Limit
	burst    int
	idle     time.Duration
	now      func() time.Time
}

func NewVisitorLimiter(rps float64, burst int, idle time.Duration) *VisitorLimiter {
	return &VisitorLimiter{
		visitors: make(map[string]*clientLimiter),
		limit:    rate.Limit(rps),
		burst:    burst,
		idle:     idle,
		now:      time.Now,
	}
}

// GetVisitor returns the limiter for key, creating it on first sight.
func (l *VisitorLimiter) GetVisitor(key string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	v, exists := l.visitors[key]
	if !exists {
		limiter := rate.NewLimiter(l.limit, l.burst)
		l.visitors[key] = &clientLimiter{limiter, l.now()}
		return limiter
	}

	v.lastSeen = l.now()
	return v.limiter
}

// Allow reports whether key may make one more request now.
func (l *VisitorLimiter) Allow(key string) bool {
	return l.GetVisitor(key).AllowN(l.now(), 1)
}

// Cleanup forgets visitors idle for longer than the configured timeout and
// returns how many were dropped.
func (l *VisitorLimiter) Cleanup() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	dropped := 0
	for key, v := range l.visitors {
		if l.now().Sub(v.lastSeen) > l.idle {
			delete(l.visitors, key)
			dropped++
		}
	}
	return dropped
}

// StartVisitorCleanupLoop runs Cleanup every interval until ctx ends.
func (l *VisitorLimiter) StartVisitorCleanupLoop(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			l.Cleanup()
		}
	}
}

// Len is the number of tracked visitors.
func (l *VisitorLimiter) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.visitors)
}
