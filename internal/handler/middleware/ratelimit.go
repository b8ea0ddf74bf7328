package middleware

import (
	"net/http"
	"sync"
	"time"

	"rentaldesk/internal/handler/httperr"
	"rentaldesk/internal/pkg/config"
	"rentaldesk/internal/pkg/errs"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

var ErrRateLimited = errs.New("too many requests")

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter throttles a route per client IP with a token bucket.
type RateLimiter struct {
	mu       sync.Mutex
	visitors map[string]*visitor
	limit    rate.Limit
	burst    int
	idle     time.Duration
	now      func() time.Time
}

func NewLoginRateLimiter(cfg config.RateLimitConfig) *RateLimiter {
	perMinute := cfg.LoginPerMinute
	if perMinute <= 0 {
		perMinute = 10
	}
	burst := cfg.LoginBurst
	if burst <= 0 {
		burst = 1
	}
	return &RateLimiter{
		visitors: make(map[string]*visitor),
		limit:    rate.Every(time.Minute / time.Duration(perMinute)),
		burst:    burst,
		idle:     10 * time.Minute,
		now:      time.Now,
	}
}

func (rl *RateLimiter) getLimiter(ip string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	for key, v := range rl.visitors {
		if now.Sub(v.lastSeen) > rl.idle {
			delete(rl.visitors, key)
		}
	}

	v, exists := rl.visitors[ip]
	if !exists {
		v = &visitor{limiter: rate.NewLimiter(rl.limit, rl.burst)}
		rl.visitors[ip] = v
	}
	v.lastSeen = now
	return v.limiter
}

func (rl *RateLimiter) Limit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !rl.getLimiter(c.ClientIP()).Allow() {
			c.Header("Retry-After", "60")
			httperr.AbortWithError(c, http.StatusTooManyRequests, ErrRateLimited, "Too many requests. Please try again later.", nil)
			return
		}
		c.Next()
	}
}
