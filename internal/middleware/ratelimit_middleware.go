package middleware

import (
	"context"
	"net/http"
	"strconv"

	"curling-registry/internal/redis"
	"curling-registry/internal/transport/httpdto"
	registry_errors "curling-registry/pkg/errors"

	"github.com/gin-gonic/gin"
)

type RegisterLimiter interface {
	AllowRegister(ctx context.Context, ip string) (*redis.RateLimitResult, error)
}

// RegisterRateLimitMiddleware limits registration attempts per client IP
func RegisterRateLimitMiddleware(limiter RegisterLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		result, err := limiter.AllowRegister(c.Request.Context(), c.ClientIP())
		if err != nil {
			c.JSON(http.StatusInternalServerError, httpdto.NewErrorResponse("rate limit error", "INTERNAL_ERROR"))
			c.Abort()
			return
		}

		setRateLimitHeaders(c, result)

		if !result.Allowed {
			c.JSON(http.StatusTooManyRequests, httpdto.NewErrorResponse(registry_errors.ErrRateLimited.Error(), "RATE_LIMITED"))
			c.Abort()
			return
		}

		c.Next()
	}
}

// setRateLimitHeaders sets standard rate limit response headers
func setRateLimitHeaders(c *gin.Context, result *redis.RateLimitResult) {
	c.Header("X-RateLimit-Limit", strconv.Itoa(result.Limit))
	c.Header("X-RateLimit-Remaining", strconv.Itoa(result.Remaining))
	c.Header("X-RateLimit-Reset", strconv.FormatInt(int64(result.ResetIn.Seconds()), 10))
}
