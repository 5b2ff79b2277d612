package http

import (
	"sync"
	"time"
)

const (
	idleClientTTL       = time.Hour
	idleClientSweepEach = 30 * time.Minute
)

type bucket struct {
	tokens float64
	seen   time.Time
}

// RateLimiter meters requests per client with a token bucket that refills
// continuously at limit tokens per window and holds at most burst tokens.
type RateLimiter struct {
	mu      sync.Mutex
	perSec  float64
	burst   float64
	buckets map[string]*bucket
	now     func() time.Time

	stop     chan struct{}
	stopOnce sync.Once
}

// NewRateLimiter allows limit requests per window to each client. A burst of
// zero or less lets a fresh client spend the whole window's allowance at once.
func NewRateLimiter(limit int, window time.Duration, burst int) *RateLimiter {
	if burst <= 0 {
		burst = limit
	}
	rl := &RateLimiter{
		perSec:  float64(limit) / window.Seconds(),
		burst:   float64(burst),
		buckets: make(map[string]*bucket),
		now:     time.Now,
		stop:    make(chan struct{}),
	}
	go rl.sweepLoop()
	return rl
}

func (rl *RateLimiter) sweepLoop() {
	ticker := time.NewTicker(idleClientSweepEach)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			rl.forgetIdle()
		case <-rl.stop:
			return
		}
	}
}

// forgetIdle drops clients not seen for idleClientTTL. Their buckets would
// be full again anyway.
func (rl *RateLimiter) forgetIdle() {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	for client, b := range rl.buckets {
		if now.Sub(b.seen) > idleClientTTL {
			delete(rl.buckets, client)
		}
	}
}

// Stop ends the background sweep. It is safe to call more than once.
func (rl *RateLimiter) Stop() {
	rl.stopOnce.Do(func() { close(rl.stop) })
}

// refill tops up the client's bucket for the time since it was last seen.
// Callers hold rl.mu.
func (rl *RateLimiter) refill(client string, now time.Time) *bucket {
	b, ok := rl.buckets[client]
	if !ok {
		b = &bucket{tokens: rl.burst, seen: now}
		rl.buckets[client] = b
		return b
	}
	if elapsed := now.Sub(b.seen); elapsed > 0 {
		b.tokens = min(rl.burst, b.tokens+elapsed.Seconds()*rl.perSec)
		b.seen = now
	}
	return b
}

// Allow spends one token from client's bucket, reporting false when empty.
func (rl *RateLimiter) Allow(client string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	b := rl.refill(client, rl.now())
	if b.tokens < 1 {
		return false
	}
	b.tokens--
	return true
}

// RetryAfter is how long client must wait until its next request is allowed.
func (rl *RateLimiter) RetryAfter(client string) time.Duration {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	if _, ok := rl.buckets[client]; !ok {
		return 0
	}
	b := rl.refill(client, rl.now())
	if b.tokens >= 1 || rl.perSec <= 0 {
		return 0
	}
	return time.Duration((1 - b.tokens) / rl.perSec * float64(time.Second))
}
