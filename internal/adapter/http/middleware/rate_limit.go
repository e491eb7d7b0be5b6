package middleware

import (
	"net/http"
	"sync"
	"time"

	"repair_intake/pkg"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// idleLimiterTTL is how long an unused client limiter is kept.
const idleLimiterTTL = time.Hour

var errRateLimited = pkg.NewDomainErrorSimple("RATE_LIMITED", "Too many requests, try again later", http.StatusTooManyRequests)

// RateLimiter keeps one token bucket per client IP.
type RateLimiter struct {
	limit rate.Limit
	burst int

	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	lastSeen map[string]time.Time
	now      func() time.Time
}

func NewRateLimiter(perMinute, burst int) *RateLimiter {
	if perMinute <= 0 {
		perMinute = 1
	}
	if burst <= 0 {
		burst = 1
	}
	return &RateLimiter{
		limit:    rate.Every(time.Minute / time.Duration(perMinute)),
		burst:    burst,
		limiters: make(map[string]*rate.Limiter),
		lastSeen: make(map[string]time.Time),
		now:      time.Now,
	}
}

func (rl *RateLimiter) limiter(key string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	l, ok := rl.limiters[key]
	if !ok {
		l = rate.NewLimiter(rl.limit, rl.burst)
		rl.limiters[key] = l
	}
	rl.lastSeen[key] = rl.now()
	return l
}

// Cleanup drops limiters idle for longer than an hour.
func (rl *RateLimiter) Cleanup() {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	for key, seen := range rl.lastSeen {
		if now.Sub(seen) > idleLimiterTTL {
			delete(rl.limiters, key)
			delete(rl.lastSeen, key)
		}
	}
}

// Middleware rejects a client with 429 once its bucket is empty.
func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !rl.limiter(c.ClientIP()).Allow() {
			c.Header("Retry-After", "60")
			c.AbortWithStatusJSON(errRateLimited.HTTPStatus, errRateLimited.ToHTTPError())
			return
		}
		c.Next()
	}
}
