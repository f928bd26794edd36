package middleware

import (
	"net/http"
	"sync"
	"time"

	"agenda-bff/config"
	"agenda-bff/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"
)

const (
	defaultRateLimitCacheSize = 5000
	defaultRateLimitCacheTTL  = time.Hour
)

// RateLimiter keeps one token bucket per client IP.
type RateLimiter struct {
	ips *expirable.LRU[string, *rate.Limiter]
	mu  sync.Mutex
	r   rate.Limit
	b   int
}

func NewRateLimiter(cfg config.RateLimitConfig) *RateLimiter {
	size := cfg.CacheSize
	if size <= 0 {
		size = defaultRateLimitCacheSize
	}
	ttl := time.Duration(cfg.CacheTTL) * time.Second
	if ttl <= 0 {
		ttl = defaultRateLimitCacheTTL
	}

	return &RateLimiter{
		ips: expirable.NewLRU[string, *rate.Limiter](size, nil, ttl),
		r:   rate.Limit(cfg.RequestsPerSecond),
		b:   cfg.Burst,
	}
}

func (rl *RateLimiter) GetLimiter(ip string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	if limiter, ok := rl.ips.Get(ip); ok {
		return limiter
	}
	limiter := rate.NewLimiter(rl.r, rl.b)
	rl.ips.Add(ip, limiter)
	return limiter
}

// RateLimit rejects clients exceeding the configured rate with 429.
func (m Middleware) RateLimit() gin.HandlerFunc {
	rl := m.limiter
	if rl == nil {
		return func(c *gin.Context) {
			c.Next()
		}
	}

	return func(c *gin.Context) {
		if !rl.GetLimiter(c.ClientIP()).Allow() {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, response.Resp{
				ErrorCode: http.StatusTooManyRequests,
				Message:   "Too many requests",
			})
			return
		}
		c.Next()
	}
}
