package middleware

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
)

// AttemptLimiter abstracts the redis-backed login throttle.
type AttemptLimiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}

// RateLimit throttles requests per client IP. A nil limiter disables the
// middleware entirely; limiter errors fail open so an unavailable Redis
// never locks users out of login.
func RateLimit(limiter AttemptLimiter) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if limiter == nil {
				return next(c)
			}

			allowed, err := limiter.Allow(c.Request().Context(), c.RealIP())
			if err != nil {
				return next(c)
			}
			if !allowed {
				return echo.NewHTTPError(http.StatusTooManyRequests, "too many attempts, try again later")
			}
			return next(c)
		}
	}
}
