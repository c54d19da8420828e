package middleware

import (
	"math"
	"strconv"

	"github.com/labstack/echo/v4"

	"avrstore/internal/infrastructure/ratelimit"
	"avrstore/pkg/errors"
	"avrstore/pkg/logger"
	"avrstore/pkg/response"
)

// RateLimit keys on the authenticated user when there is one and on the
// client IP otherwise.
func RateLimit(limiter *ratelimit.RateLimiter, action string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			key := c.RealIP()
			if uid, ok := c.Get(ContextUID).(string); ok && uid != "" {
				key = "user:" + uid
			}

			allowed, wait := limiter.Allow(key, action)
			if !allowed {
				retryAfter := int(math.Ceil(wait.Seconds()))
				logger.Warn("Rate limit exceeded: %s", logger.Fields(map[string]interface{}{
					"key":         key,
					"action":      action,
					"retry_after": retryAfter,
				}))
				c.Response().Header().Set("Retry-After", strconv.Itoa(retryAfter))
				return response.Error(c, errors.TooManyRequests("Rate limit exceeded").WithDetail("retry_after", retryAfter))
			}

			return next(c)
		}
	}
}
