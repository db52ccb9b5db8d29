package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"venture-link.backend/pkg/logger"
	"venture-link.backend/pkg/redis"
)

// RateLimitMiddleware enforces a per-profile budget using the shared redis
// counter. Unauthenticated requests fall back to the client IP as identity.
func RateLimitMiddleware(limiter *redis.RateLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity := c.ClientIP()
		if profileID, ok := GetProfileID(c); ok {
			identity = profileID.String()
		}

		allowed, err := limiter.Allow(c.Request.Context(), identity)
		if err != nil {
			// Redis being down should not take messaging down with it
			logger.Error(c.Request.Context(), "rate limiter unavailable", zap.Error(err))
			c.Next()
			return
		}

		if !allowed {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error":  "rate limit exceeded, slow down",
				"status": http.StatusTooManyRequests,
			})
			return
		}

		c.Next()
	}
}
