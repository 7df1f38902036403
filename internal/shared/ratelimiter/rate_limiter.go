// Package ratelimiter provides the fixed-window request limiter applied
// to every endpoint.
package ratelimiter

import (
	"math"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"fanbase_backend/internal/api"
)

// Limiter counts requests per client IP in a fixed window. State is
// process-local and resets on restart.
type Limiter struct {
	mu          sync.Mutex
	max         int
	window      time.Duration
	windowStart time.Time
	counts      map[string]int

	now func() time.Time // overridable for tests
}

// NewLimiter creates a Limiter allowing max requests per client IP per
// window.
func NewLimiter(max int, window time.Duration) *Limiter {
	return &Limiter{
		max:         max,
		window:      window,
		windowStart: time.Now(),
		counts:      map[string]int{},
		now:         time.Now,
	}
}

// take registers one request for key and reports whether it is allowed,
// the remaining allowance and the time until the window resets.
func (l *Limiter) take(key string) (allowed bool, remaining int, reset time.Duration) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	if now.Sub(l.windowStart) >= l.window {
		l.counts = map[string]int{}
		l.windowStart = now
	}

	l.counts[key]++
	reset = l.window - now.Sub(l.windowStart)
	remaining = l.max - l.counts[key]
	if remaining < 0 {
		remaining = 0
	}
	return l.counts[key] <= l.max, remaining, reset
}

// Middleware returns the gin middleware enforcing the limit. Rejected
// requests receive a 429 with a retry-after hint in minutes.
func (l *Limiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := c.ClientIP()
		if ip == "" {
			ip = "unknown"
		}

		allowed, remaining, reset := l.take(ip)

		c.Header("X-RateLimit-Limit", strconv.Itoa(l.max))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(remaining))
		c.Header("X-RateLimit-Reset", strconv.Itoa(int(reset.Seconds())))

		if !allowed {
			c.Header("Retry-After", strconv.Itoa(int(reset.Seconds())))
			api.TooManyRequests(c, "Too many requests, please try again later.", gin.H{
				"retryAfter": int(math.Ceil(reset.Minutes())),
			})
			c.Abort()
			return
		}
		c.Next()
	}
}
