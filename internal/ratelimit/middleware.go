package ratelimit

import (
	"fmt"
	"math"
	"net/http"
	"strconv"

	authhandler "loyalty-server/internal/auth/handler"
	"loyalty-server/internal/observability"

	"github.com/gin-gonic/gin"
)

// Middleware limits requests per Telegram user. It must run after the Mini
// App auth middleware; requests without a session are keyed by client IP.
func Middleware(svc *Service, logger *observability.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := "ip:" + c.ClientIP()
		if user, ok := authhandler.TelegramUser(c); ok {
			key = fmt.Sprintf("tg:%d", user.ID)
		}

		result := svc.Allow(key)
		if result.Limit > 0 {
			c.Header("X-RateLimit-Limit", strconv.Itoa(result.Limit))
			c.Header("X-RateLimit-Remaining", strconv.Itoa(result.Remaining))
		}

		if !result.Allowed {
			retryAfter := int(math.Ceil(result.RetryAfter.Seconds()))
			c.Header("Retry-After", strconv.Itoa(retryAfter))

			ctx := observability.WithFields(c.Request.Context(), observability.Field{Key: "rate_limit_key", Value: key})
			logger.Warn(ctx, "rate limit exceeded")

			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error":       "Too many requests",
				"code":        "RATE_LIMIT_EXCEEDED",
				"retry_after": retryAfter,
			})
			return
		}

		c.Next()
	}
}
