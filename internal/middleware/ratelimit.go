package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"

	"schedule-calendar/pkg/response"
)

const (
	maxTrackedClients = 1000
	clientTTL         = 5 * time.Minute

	msgTooManyRequests = "Too many requests"
)

// RateLimit rejects a client IP with 429 once it exceeds its per-minute
// budget. All routes using it share one budget per client.
func (m Middleware) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if m.limiter == nil {
			c.Next()
			return
		}

		ip := c.ClientIP()
		if !m.limiter.Allow(ip) {
			m.l.Warnf(c.Request.Context(), "rate limit exceeded for %s on %s", ip, c.FullPath())
			response.AbortFail(c, http.StatusTooManyRequests, msgTooManyRequests)
			return
		}
		c.Next()
	}
}

// rateLimiter keeps one token bucket per client, evicting idle clients.
type rateLimiter struct {
	limiters *expirable.LRU[string, *rate.Limiter]
	rate     rate.Limit
	burst    int
}

func newRateLimiter(requestsPerMin int) *rateLimiter {
	burst := requestsPerMin / 10
	if burst < 1 {
		burst = 1
	}
	return &rateLimiter{
		limiters: expirable.NewLRU[string, *rate.Limiter](maxTrackedClients, nil, clientTTL),
		rate:     rate.Limit(float64(requestsPerMin) / 60.0), // Per second
		burst:    burst,
	}
}

func (rl *rateLimiter) Allow(key string) bool {
	limiter, ok := rl.limiters.Get(key)
	if !ok {
		limiter = rate.NewLimiter(rl.rate, rl.burst)
		rl.limiters.Add(key, limiter)
	}
	return limiter.Allow()
}
