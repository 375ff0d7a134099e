package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"turnero/internal/infrastructure/ratelimit"
	"turnero/internal/shared/logger"
	"turnero/internal/shared/utils"
)

// RateLimiter caps requests per client IP within one named scope, so that
// ticket submissions and login attempts are counted separately.
type RateLimiter struct {
	limiter ratelimit.RateLimiter
	scope   string
	config  ratelimit.RateLimitConfig
	logger  logger.Interface
}

func NewRateLimiter(limiter ratelimit.RateLimiter, scope string, perMinute int, logger logger.Interface) *RateLimiter {
	return &RateLimiter{
		limiter: limiter,
		scope:   scope,
		config:  ratelimit.RateLimitConfig{RequestsPerMinute: perMinute},
		logger:  logger,
	}
}

// Limit returns a Gin middleware that enforces the limit per client IP.
func (rl *RateLimiter) Limit() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := rl.scope + ":" + c.ClientIP()

		allowed, err := rl.limiter.Allow(c.Request.Context(), key, rl.config)
		if err != nil {
			// Redis outages must not take ticket submission down with them.
			rl.logger.Warnw("rate limiter unavailable, allowing request", "error", err, "scope", rl.scope)
			c.Next()
			return
		}

		if !allowed {
			rl.logger.Warnw("rate limit exceeded", "scope", rl.scope, "client_ip", c.ClientIP())
			utils.ErrorResponse(c, http.StatusTooManyRequests, "rate limit exceeded, please try again later")
			c.Abort()
			return
		}

		c.Next()
	}
}
