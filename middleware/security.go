package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// SecurityHeaders adds security-related headers to all responses.
func SecurityHeaders() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("X-Frame-Options", "DENY")
		c.Header("X-Content-Type-Options", "nosniff")
		c.Header("X-XSS-Protection", "1; mode=block")
		c.Header("Referrer-Policy", "strict-origin-when-cross-origin")
		c.Next()
	}
}

type limiterEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter stores per-IP token buckets.
type RateLimiter struct {
	ips   map[string]*limiterEntry
	mu    sync.Mutex
	rate  rate.Limit
	burst int
	ttl   time.Duration
}

// NewRateLimiter creates a rate limiter allowing r events with the given
// burst per IP. Stale entries are evicted so the map cannot grow unbounded.
func NewRateLimiter(r rate.Limit, burst int, ttl time.Duration) *RateLimiter {
	rl := &RateLimiter{
		ips:   make(map[string]*limiterEntry),
		rate:  r,
		burst: burst,
		ttl:   ttl,
	}

	go func() {
		ticker := time.NewTicker(ttl)
		defer ticker.Stop()
		for range ticker.C {
			rl.mu.Lock()
			now := time.Now()
			for ip, e := range rl.ips {
				if now.Sub(e.lastSeen) > rl.ttl {
					delete(rl.ips, ip)
				}
			}
			rl.mu.Unlock()
		}
	}()

	return rl
}

// GetLimiter returns the limiter for the given IP, creating one on first use.
func (rl *RateLimiter) GetLimiter(ip string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	entry, exists := rl.ips[ip]
	if !exists {
		entry = &limiterEntry{
			limiter: rate.NewLimiter(rl.rate, rl.burst),
		}
		rl.ips[ip] = entry
	}
	entry.lastSeen = time.Now()
	return entry.limiter
}

// AuthRateLimit limits credential endpoints to 20 attempts per minute per IP.
func AuthRateLimit() gin.HandlerFunc {
	limiter := NewRateLimiter(rate.Every(time.Minute/20), 10, 5*time.Minute)

	return func(c *gin.Context) {
		if !limiter.GetLimiter(c.ClientIP()).Allow() {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"success": false,
				"message": "Too many attempts. Please try again later.",
			})
			return
		}
		c.Next()
	}
}
