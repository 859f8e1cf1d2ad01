package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/time/rate"

	"github.com/Aashutosh2004011/TaskManagement-Backend/pkg/response"
)

// RateLimit enforces a per-client token bucket keyed by client IP.
// Limiters live in an LRU cache so the client table cannot grow unbounded;
// an evicted client simply starts with a fresh bucket on its next request.
func (m Middleware) RateLimit() gin.HandlerFunc {
	cfg := m.cfg.RateLimit
	if !cfg.Enabled {
		return func(c *gin.Context) { c.Next() }
	}

	size := cfg.ClientCacheSize
	if size <= 0 {
		size = 1024
	}
	limit := rate.Limit(cfg.RequestsPerSecond)
	if limit <= 0 {
		limit = 10
	}
	burst := cfg.Burst
	if burst <= 0 {
		// int(limit) truncates fractional rates to 0, which would
		// reject every request.
		burst = int(limit)
		if burst < 1 {
			burst = 1
		}
	}

	clients, _ := lru.New[string, *rate.Limiter](size)

	return func(c *gin.Context) {
		ip := c.ClientIP()
		limiter, ok := clients.Get(ip)
		if !ok {
			limiter = rate.NewLimiter(limit, burst)
			clients.Add(ip, limiter)
		}

		if !limiter.Allow() {
			m.l.Warnf(c.Request.Context(), "rate limit exceeded for %s", ip)
			c.AbortWithStatusJSON(http.StatusTooManyRequests, response.Resp{
				ErrorCode: http.StatusTooManyRequests,
				Message:   "too many requests",
			})
			return
		}

		c.Next()
	}
}
